// Package render provides the concrete event renderers behind the tracking
// pipeline: an operator-facing console stream, a JSONL file appender and a
// JSON webhook delivery, plus a fan-out combinator and a factory that picks
// the renderer matching the configured destination mode.
//
// Renderers are self-gating: the console renderer re-checks the destination
// mode and verbosity on every call, so runtime configuration changes apply
// immediately.
package render
