package agenttrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agenttrace/config"
	"github.com/hupe1980/agenttrace/core"
	"github.com/hupe1980/agenttrace/internal/testutil"
	"github.com/hupe1980/agenttrace/render"
)

func TestNewDefaults(t *testing.T) {
	tracker, err := New()
	require.NoError(t, err)

	assert.True(t, tracker.Enabled())
	assert.Equal(t, config.ModeConsole, tracker.Config().Mode())
	assert.NotNil(t, tracker.Registry())
}

func TestNewHonorsConfigOverride(t *testing.T) {
	cfg := config.New(func(o *config.Options) {
		o.Mode = config.ModeDisabled
	})

	tracker, err := New(func(o *Options) {
		o.Config = cfg
	})
	require.NoError(t, err)

	assert.Same(t, cfg, tracker.Config())
	assert.False(t, tracker.Enabled())
}

func TestNewFailsWithoutFilePath(t *testing.T) {
	cfg := config.New(func(o *config.Options) {
		o.Mode = config.ModeFile
	})

	_, err := New(func(o *Options) {
		o.Config = cfg
	})
	require.ErrorIs(t, err, render.ErrMissingFilePath)
}

func TestTrackerDelegatesToRegistry(t *testing.T) {
	capture := &testutil.CaptureRenderer{}

	tracker, err := New(func(o *Options) {
		o.Renderer = capture
	})
	require.NoError(t, err)

	sessionID := tracker.StartSession("user-7")
	require.NotEmpty(t, sessionID)

	ev := core.NewFunctionCallEvent("add_event")
	ev.ExecutionTimeMS = 12.5
	tracker.Emit(ev)

	assert.Equal(t, sessionID, ev.Base().SessionID)
	assert.Equal(t, tracker.EndSession(), sessionID)

	events := tracker.Events()
	require.Len(t, events, 3)
	assert.Equal(t, core.KindSessionStart, events[0].Kind())
	assert.Equal(t, core.KindFunctionCall, events[1].Kind())
	assert.Equal(t, core.KindSessionEnd, events[2].Kind())

	summary := tracker.Summary()
	assert.Equal(t, 1, summary.FunctionCallsCount)

	tracker.RenderSummary()
	require.Len(t, capture.Summaries(), 1)
}
