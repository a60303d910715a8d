// Package core provides the foundational domain types and interfaces used by
// AgentTrace. It defines the core abstractions for:
//
//   - Events (immutable records of observed occurrences: session lifecycle,
//     function calls, LLM calls, API calls, errors)
//   - Params (insertion-ordered name→value call parameter mappings)
//   - Summary (per-session aggregates folded from an event buffer)
//   - Renderer (the output-side contract implemented by the console, file and
//     webhook destinations)
//   - Bounded, panic-safe value description for logging arbitrary arguments
//
// The package intentionally keeps implementation concerns (session
// bookkeeping, concrete renderers, instrumentation wrappers) out of scope,
// exposing small interfaces so higher layers depend one-directionally on the
// abstractions defined here.
package core
