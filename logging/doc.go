// Package logging provides a minimal logging interface and adapters for the
// tracking pipeline.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the registry and renderers use for their own diagnostics,
// separate from the operator-facing event output. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	reg := registry.New(cfg, registry.WithLogger(logger))
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
