// Package agenttrace provides a high-level façade over the session registry,
// renderers and configuration enabling rapid instrumentation of AI agent
// applications. Most applications interact with this package by:
//  1. Creating a Tracker via New() (optionally overriding config, renderer or logger)
//  2. Wrapping work with wrap.Call / wrap.LLM against tracker.Registry()
//  3. Printing the end-of-session report via RenderSummary()
//
// The façade delegates event buffering to registry.Registry and output to the
// renderer derived from the configured mode. All defaults are safe for local
// development; production deployments typically supply a tuned config and a
// structured logger.
package agenttrace

import (
	"github.com/hupe1980/agenttrace/config"
	"github.com/hupe1980/agenttrace/core"
	"github.com/hupe1980/agenttrace/logging"
	"github.com/hupe1980/agenttrace/registry"
	"github.com/hupe1980/agenttrace/render"
)

// Options configures the Tracker instance.
type Options struct {
	// Config holds the tracking configuration (defaults to config.New()).
	Config *config.Config

	// Renderer overrides the destination derived from the configured mode.
	// Leave nil to let the factory pick console/file/webhook/noop.
	Renderer core.Renderer

	// Logger receives diagnostics from the tracking layer itself
	// (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// Tracker is the high-level façade aggregating the registry and its renderer.
type Tracker struct {
	cfg      *config.Config
	registry *registry.Registry
}

// New creates a new Tracker with optional overrides. Without a renderer
// override the destination is constructed from the config mode; file mode
// without a path and webhook mode without a URL fail here.
func New(optFns ...func(o *Options)) (*Tracker, error) {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.New()
	}

	renderer := opts.Renderer
	if renderer == nil {
		var err error

		renderer, err = render.ForConfig(cfg)
		if err != nil {
			return nil, err
		}
	}

	reg := registry.New(cfg, registry.WithRenderer(renderer), registry.WithLogger(opts.Logger))

	return &Tracker{cfg: cfg, registry: reg}, nil
}

// Registry exposes the underlying session registry for the wrap helpers.
func (t *Tracker) Registry() *registry.Registry { return t.registry }

// Config returns the live configuration shared with the registry.
func (t *Tracker) Config() *config.Config { return t.cfg }

// Enabled reports whether tracking is active (mode != disabled).
func (t *Tracker) Enabled() bool { return t.registry.Enabled() }

// StartSession begins a new session and returns its id.
func (t *Tracker) StartSession(userID string) string { return t.registry.StartSession(userID) }

// EndSession closes the active session and returns its id.
func (t *Tracker) EndSession() string { return t.registry.EndSession() }

// Emit records an event against the active session.
func (t *Tracker) Emit(ev core.Event) { t.registry.Emit(ev) }

// Events returns a copy of the buffered events.
func (t *Tracker) Events() []core.Event { return t.registry.Events() }

// Summary folds the buffered events into session totals.
func (t *Tracker) Summary() core.Summary { return t.registry.Summary() }

// RenderSummary sends the current summary to the renderer.
func (t *Tracker) RenderSummary() { t.registry.RenderSummary() }
