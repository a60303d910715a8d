package testutil

import (
	"sync"

	"github.com/hupe1980/agenttrace/core"
)

// CaptureRenderer implements core.Renderer by recording everything it is
// asked to render. It is safe for concurrent use.
//
// FailWith makes Render/RenderSummary record and then return that error;
// PanicWith makes them panic before recording. Both exist so tests can assert
// that the emit path swallows renderer misbehavior.
type CaptureRenderer struct {
	mu        sync.Mutex
	events    []core.Event
	summaries []core.Summary

	FailWith  error
	PanicWith any
}

var _ core.Renderer = (*CaptureRenderer)(nil)

// Render records the event.
func (r *CaptureRenderer) Render(ev core.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.PanicWith != nil {
		panic(r.PanicWith)
	}
	r.events = append(r.events, ev)
	return r.FailWith
}

// RenderSummary records the summary.
func (r *CaptureRenderer) RenderSummary(s core.Summary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.PanicWith != nil {
		panic(r.PanicWith)
	}
	r.summaries = append(r.summaries, s)
	return r.FailWith
}

// Events returns a copy of the rendered events in render order.
func (r *CaptureRenderer) Events() []core.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Kinds returns the discriminant tags of the rendered events in render
// order, a compact shape for order assertions.
func (r *CaptureRenderer) Kinds() []core.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Kind, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Kind()
	}
	return out
}

// Summaries returns a copy of the rendered summaries in render order.
func (r *CaptureRenderer) Summaries() []core.Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Summary, len(r.summaries))
	copy(out, r.summaries)
	return out
}

// Reset discards everything recorded so far.
func (r *CaptureRenderer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
	r.summaries = nil
}
