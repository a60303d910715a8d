// Package registry implements the session lifecycle and the event buffer at
// the heart of the tracking pipeline.
//
// A Registry owns at most one active session at a time. Wrapped calls emit
// events into it; the registry stamps each event with the active session
// identifier (starting a session implicitly when none is active), appends it
// to the in-memory buffer and forwards it to the configured renderer. Render
// failures are logged and swallowed so observability can never break the
// observed call path.
package registry
