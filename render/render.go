package render

import (
	"errors"
	"fmt"

	"github.com/hupe1980/agenttrace/config"
	"github.com/hupe1980/agenttrace/core"
)

var (
	// ErrMissingFilePath is returned by ForConfig when file mode is selected
	// without a log file path.
	ErrMissingFilePath = errors.New("render: file mode requires a log file path")
	// ErrMissingWebhookURL is returned by ForConfig when webhook mode is
	// selected without a webhook URL.
	ErrMissingWebhookURL = errors.New("render: webhook mode requires a webhook URL")
)

// Multi fans every render out to a group of renderers. Unlike a pipeline it
// keeps going after individual failures, since destinations are independent;
// the collected errors are joined.
type Multi struct {
	renderers []core.Renderer
}

var _ core.Renderer = (*Multi)(nil)

// NewMulti combines renderers into one. Nil entries are dropped; an empty
// group collapses to core.NopRenderer and a singleton group to the renderer
// itself.
func NewMulti(renderers ...core.Renderer) core.Renderer {
	filtered := make([]core.Renderer, 0, len(renderers))
	for _, r := range renderers {
		if r == nil {
			continue
		}
		filtered = append(filtered, r)
	}
	if len(filtered) == 0 {
		return core.NopRenderer{}
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &Multi{renderers: filtered}
}

// Render forwards the event to every renderer in the group.
func (m *Multi) Render(ev core.Event) error {
	if m == nil {
		return nil
	}
	var errs []error
	for _, r := range m.renderers {
		if err := r.Render(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RenderSummary forwards the summary to every renderer in the group.
func (m *Multi) RenderSummary(s core.Summary) error {
	if m == nil {
		return nil
	}
	var errs []error
	for _, r := range m.renderers {
		if err := r.RenderSummary(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ForConfig builds the renderer matching the configured destination mode:
// console lines, a JSONL file, a webhook, or a no-op for disabled tracking.
// File and webhook modes require their destination to be set.
func ForConfig(cfg *config.Config) (core.Renderer, error) {
	if cfg == nil {
		cfg = config.New()
	}

	switch mode := cfg.Mode(); mode {
	case config.ModeConsole:
		return NewConsole(cfg), nil
	case config.ModeFile:
		path := cfg.LogFilePath()
		if path == "" {
			return nil, ErrMissingFilePath
		}
		return NewFile(path)
	case config.ModeWebhook:
		url := cfg.WebhookURL()
		if url == "" {
			return nil, ErrMissingWebhookURL
		}
		return NewWebhook(url), nil
	case config.ModeDisabled:
		return core.NopRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownMode, string(mode))
	}
}
