// Package config holds the process-wide tracking configuration: the output
// destination mode, the console verbosity level, display toggles and color
// selection, and the per-thousand-token cost rate used by the LLM wrapper.
//
// A Config is safe for concurrent use. The registry, the wrappers and the
// renderers read it on every operation, so runtime mutations through the
// setters take effect immediately without rebuilding the pipeline.
package config
