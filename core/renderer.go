package core

// Renderer consumes emitted events and session summaries. Implementations
// decide the destination and format: human-readable console lines, JSONL
// files, webhook deliveries. The registry depends only on this interface so
// concrete renderers stay injectable and never import session bookkeeping.
//
// Render errors are advisory: the emit path logs and discards them, since
// observability must not be able to break the observed system.
type Renderer interface {
	Render(event Event) error
	RenderSummary(summary Summary) error
}

// RenderFunc adapts a plain function to the Renderer interface. Summaries are
// silently discarded; use a full implementation when summary output matters.
type RenderFunc func(event Event) error

// Render invokes the wrapped function.
func (f RenderFunc) Render(event Event) error {
	if f == nil {
		return nil
	}
	return f(event)
}

// RenderSummary discards the summary.
func (RenderFunc) RenderSummary(Summary) error { return nil }

// NopRenderer discards all events and summaries. It is the default renderer
// for registries constructed without one and the backing implementation of
// the disabled destination mode.
type NopRenderer struct{}

// Render discards the event.
func (NopRenderer) Render(Event) error { return nil }

// RenderSummary discards the summary.
func (NopRenderer) RenderSummary(Summary) error { return nil }
