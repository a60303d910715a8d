// Package wrap provides the instrumentation wrappers that turn ordinary
// calls into tracked calls.
//
// Call and Run wrap any function: they measure wall-clock duration, capture
// the outcome and emit exactly one FunctionCall event per invocation, on
// success, on error and on panic alike. LLM does the same for language model
// invocations and additionally estimates token usage and cost.
//
// The wrappers never alter the wrapped call's contract. Results, errors and
// panics propagate unchanged, and when tracking is disabled the call is
// forwarded directly with no measurement at all.
package wrap
