package render

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agenttrace/config"
	"github.com/hupe1980/agenttrace/core"
	"github.com/hupe1980/agenttrace/internal/testutil"
)

func TestNewMulti_Collapses(t *testing.T) {
	assert.IsType(t, core.NopRenderer{}, NewMulti())
	assert.IsType(t, core.NopRenderer{}, NewMulti(nil, nil))

	single := &testutil.CaptureRenderer{}
	assert.Same(t, single, NewMulti(nil, single))
}

func TestMulti_FansOut(t *testing.T) {
	a := &testutil.CaptureRenderer{}
	b := &testutil.CaptureRenderer{}
	m := NewMulti(a, b)

	require.NoError(t, m.Render(core.NewFunctionCallEvent("f")))
	require.NoError(t, m.RenderSummary(core.Summary{}))

	assert.Len(t, a.Events(), 1)
	assert.Len(t, b.Events(), 1)
	assert.Len(t, a.Summaries(), 1)
	assert.Len(t, b.Summaries(), 1)
}

func TestMulti_ContinuesPastFailures(t *testing.T) {
	sentinel := errors.New("sink down")
	failing := &testutil.CaptureRenderer{FailWith: sentinel}
	healthy := &testutil.CaptureRenderer{}
	m := NewMulti(failing, healthy)

	err := m.Render(core.NewFunctionCallEvent("f"))
	require.ErrorIs(t, err, sentinel)
	assert.Len(t, healthy.Events(), 1, "a failing destination must not starve the others")
}

func TestForConfig(t *testing.T) {
	t.Run("console", func(t *testing.T) {
		r, err := ForConfig(config.New())
		require.NoError(t, err)
		assert.IsType(t, &Console{}, r)
	})

	t.Run("disabled", func(t *testing.T) {
		r, err := ForConfig(config.New(func(o *config.Options) { o.Mode = config.ModeDisabled }))
		require.NoError(t, err)
		assert.IsType(t, core.NopRenderer{}, r)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "events.jsonl")
		r, err := ForConfig(config.New(func(o *config.Options) {
			o.Mode = config.ModeFile
			o.LogFilePath = path
		}))
		require.NoError(t, err)
		f, ok := r.(*File)
		require.True(t, ok)
		defer f.Close()
		assert.Equal(t, path, f.Path())
	})

	t.Run("file without path", func(t *testing.T) {
		_, err := ForConfig(config.New(func(o *config.Options) { o.Mode = config.ModeFile }))
		assert.ErrorIs(t, err, ErrMissingFilePath)
	})

	t.Run("webhook", func(t *testing.T) {
		r, err := ForConfig(config.New(func(o *config.Options) {
			o.Mode = config.ModeWebhook
			o.WebhookURL = "https://hooks.example.com/tracking"
		}))
		require.NoError(t, err)
		w, ok := r.(*Webhook)
		require.True(t, ok)
		assert.Equal(t, "https://hooks.example.com/tracking", w.URL())
	})

	t.Run("webhook without url", func(t *testing.T) {
		_, err := ForConfig(config.New(func(o *config.Options) { o.Mode = config.ModeWebhook }))
		assert.ErrorIs(t, err, ErrMissingWebhookURL)
	})
}
