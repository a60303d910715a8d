package registry

import (
	"fmt"
	"sync"

	"github.com/hupe1980/agenttrace/config"
	"github.com/hupe1980/agenttrace/core"
	"github.com/hupe1980/agenttrace/logging"
)

// Options configures a Registry.
type Options struct {
	// Renderer receives every emitted event and rendered summary. Defaults
	// to core.NopRenderer.
	Renderer core.Renderer

	// Logger receives diagnostics about renderer failures. Defaults to
	// logging.NoOpLogger.
	Logger logging.Logger
}

// Registry tracks the active session and buffers its events. Safe for
// concurrent use: the active-session marker and the buffer mutate under one
// lock, and renderer forwarding happens outside it.
type Registry struct {
	mu        sync.RWMutex
	cfg       *config.Config
	renderer  core.Renderer
	logger    logging.Logger
	sessionID string
	events    []core.Event
}

// New creates a Registry. A nil cfg falls back to the default configuration.
func New(cfg *config.Config, optFns ...func(o *Options)) *Registry {
	opts := Options{
		Renderer: core.NopRenderer{},
		Logger:   logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if cfg == nil {
		cfg = config.New()
	}
	if opts.Renderer == nil {
		opts.Renderer = core.NopRenderer{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &Registry{cfg: cfg, renderer: opts.Renderer, logger: opts.Logger}
}

// WithRenderer sets the renderer events are forwarded to.
func WithRenderer(r core.Renderer) func(o *Options) {
	return func(o *Options) { o.Renderer = r }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// Config returns the configuration the registry was built with.
func (r *Registry) Config() *config.Config { return r.cfg }

// Enabled reports whether tracking is active per the configuration. Wrappers
// consult it to short-circuit before measuring.
func (r *Registry) Enabled() bool { return r.cfg.Enabled() }

// SessionID returns the active session identifier, or the empty string when
// no session is active.
func (r *Registry) SessionID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessionID
}

// StartSession discards any buffered events from a prior session, activates a
// fresh session and emits its SessionStart event. The user identifier is
// optional. Returns the new session identifier.
//
// Starting while a session is already active silently discards the old
// buffer.
func (r *Registry) StartSession(userID string) string {
	r.mu.Lock()
	ev := r.startSessionLocked(userID)
	id := r.sessionID
	r.mu.Unlock()

	r.forward(ev)
	return id
}

// startSessionLocked resets the buffer, activates a new session id and
// appends the SessionStart event. Callers must hold the write lock and
// forward the returned event after releasing it.
func (r *Registry) startSessionLocked(userID string) core.Event {
	r.events = nil
	r.sessionID = core.NewID()

	ev := core.NewSessionStartEvent(userID)
	ev.SessionID = r.sessionID
	r.events = append(r.events, ev)
	return ev
}

// EndSession appends a SessionEnd event, clears the active-session marker and
// returns the identifier that was active. The buffer is retained for summary
// queries until the next StartSession.
//
// Ending with no active session still appends an end event stamped with the
// empty identifier and returns the empty string.
func (r *Registry) EndSession() string {
	r.mu.Lock()
	id := r.sessionID
	ev := core.NewSessionEndEvent()
	ev.SessionID = id
	r.events = append(r.events, ev)
	r.sessionID = ""
	r.mu.Unlock()

	r.forward(ev)
	return id
}

// Emit stamps the event with the active session identifier, appends it to the
// buffer and forwards it to the renderer. When no session is active an
// implicit anonymous session is started first. Emit never fails; renderer
// errors are logged and discarded.
func (r *Registry) Emit(ev core.Event) {
	if ev == nil {
		return
	}

	r.mu.Lock()
	var started core.Event
	if r.sessionID == "" {
		started = r.startSessionLocked("")
	}
	ev.Base().SessionID = r.sessionID
	r.events = append(r.events, ev)
	r.mu.Unlock()

	if started != nil {
		r.forward(started)
	}
	r.forward(ev)
}

// Events returns a copy of the current buffer in emission order, safe to
// iterate while further events are emitted.
func (r *Registry) Events() []core.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]core.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Summary folds the current buffer into per-kind counts, total estimated
// cost and the session duration. The echoed session identifier is the live
// one and is empty after EndSession. An empty buffer yields a zero summary.
func (r *Registry) Summary() core.Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return core.Summarize(r.sessionID, r.events)
}

// RenderSummary computes the current summary and hands it to the renderer.
// Like Emit it never fails; renderer errors are logged and discarded.
func (r *Registry) RenderSummary() {
	s := r.Summary()

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Warn("summary renderer panicked", "panic", fmt.Sprintf("%v", rec))
		}
	}()
	if err := r.renderer.RenderSummary(s); err != nil {
		r.logger.Warn("summary renderer failed", "error", err)
	}
}

// forward hands one event to the renderer, containing any error or panic so
// the emit path stays failure free.
func (r *Registry) forward(ev core.Event) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Warn("event renderer panicked", "kind", string(ev.Kind()), "panic", fmt.Sprintf("%v", rec))
		}
	}()
	if err := r.renderer.Render(ev); err != nil {
		r.logger.Warn("event renderer failed", "kind", string(ev.Kind()), "error", err)
	}
}
