package testutil

import (
	"time"

	"github.com/hupe1980/agenttrace/core"
)

// EventBuilder provides a fluent helper for constructing events in tests.
// Example:
//
//	ev := testutil.FunctionCall("add_event").Took(12.3).At(ts).Build()
//
// Chain only the parts you need; chainers that do not apply to the wrapped
// event kind are no-ops.
type EventBuilder struct {
	ev core.Event
}

// SessionStart starts a builder around a session_start event.
func SessionStart(userID string) *EventBuilder {
	return &EventBuilder{ev: core.NewSessionStartEvent(userID)}
}

// SessionEnd starts a builder around a session_end event.
func SessionEnd() *EventBuilder {
	return &EventBuilder{ev: core.NewSessionEndEvent()}
}

// FunctionCall starts a builder around a function_call event.
func FunctionCall(name string) *EventBuilder {
	return &EventBuilder{ev: core.NewFunctionCallEvent(name)}
}

// LLMCall starts a builder around an llm_call event.
func LLMCall(modelName string) *EventBuilder {
	return &EventBuilder{ev: core.NewLLMCallEvent(modelName)}
}

// APICall starts a builder around an api_call event.
func APICall(apiName, endpoint string) *EventBuilder {
	return &EventBuilder{ev: core.NewAPICallEvent(apiName, endpoint)}
}

// Error starts a builder around an error event.
func Error(errorType, message string) *EventBuilder {
	return &EventBuilder{ev: core.NewErrorEvent(errorType, message)}
}

// WithID overrides the auto-generated event ID (chainable). Use mainly where
// determinism matters.
func (b *EventBuilder) WithID(id string) *EventBuilder { b.ev.Base().EventID = id; return b }

// ForSession stamps the session id (chainable).
func (b *EventBuilder) ForSession(id string) *EventBuilder { b.ev.Base().SessionID = id; return b }

// At pins the timestamp (chainable).
func (b *EventBuilder) At(ts time.Time) *EventBuilder { b.ev.Base().Timestamp = ts; return b }

// Took sets the duration of a call event in milliseconds (chainable).
func (b *EventBuilder) Took(ms float64) *EventBuilder {
	switch ev := b.ev.(type) {
	case *core.FunctionCallEvent:
		ev.ExecutionTimeMS = ms
	case *core.LLMCallEvent:
		ev.ResponseTimeMS = ms
	case *core.APICallEvent:
		ev.ResponseTimeMS = ms
	}
	return b
}

// Param adds one named parameter to a function_call event (chainable).
func (b *EventBuilder) Param(name, value string) *EventBuilder {
	if ev, ok := b.ev.(*core.FunctionCallEvent); ok {
		ev.Parameters = ev.Parameters.Set(name, value)
	}
	return b
}

// Returned records the return value repr of a function_call event (chainable).
func (b *EventBuilder) Returned(v string) *EventBuilder {
	if ev, ok := b.ev.(*core.FunctionCallEvent); ok {
		ev.ReturnValue = v
	}
	return b
}

// Tokens sets token usage and estimated cost on an llm_call event (chainable).
func (b *EventBuilder) Tokens(n int, cost float64) *EventBuilder {
	if ev, ok := b.ev.(*core.LLMCallEvent); ok {
		ev.TokensUsed = n
		ev.EstimatedCost = cost
	}
	return b
}

// Input records the raw user input of an llm_call event (chainable).
func (b *EventBuilder) Input(s string) *EventBuilder {
	if ev, ok := b.ev.(*core.LLMCallEvent); ok {
		ev.UserInput = s
	}
	return b
}

// Status sets method and status code on an api_call event (chainable).
func (b *EventBuilder) Status(method string, code int) *EventBuilder {
	if ev, ok := b.ev.(*core.APICallEvent); ok {
		ev.Method = method
		ev.StatusCode = code
	}
	return b
}

// Sized records request/response sizes of an api_call event in bytes (chainable).
func (b *EventBuilder) Sized(request, response int) *EventBuilder {
	if ev, ok := b.ev.(*core.APICallEvent); ok {
		ev.RequestSize = request
		ev.ResponseSize = response
	}
	return b
}

// In attributes an error event to a function (chainable).
func (b *EventBuilder) In(functionName string) *EventBuilder {
	if ev, ok := b.ev.(*core.ErrorEvent); ok {
		ev.FunctionName = functionName
	}
	return b
}

// Stack attaches a stack trace to an error event (chainable).
func (b *EventBuilder) Stack(trace string) *EventBuilder {
	if ev, ok := b.ev.(*core.ErrorEvent); ok {
		ev.StackTrace = trace
	}
	return b
}

// Failed marks a call event unsuccessful with the given message (chainable).
func (b *EventBuilder) Failed(msg string) *EventBuilder {
	switch ev := b.ev.(type) {
	case *core.FunctionCallEvent:
		ev.Success = false
		ev.ErrorMessage = msg
	case *core.LLMCallEvent:
		ev.Success = false
		ev.ErrorMessage = msg
	case *core.APICallEvent:
		ev.Success = false
		ev.ErrorMessage = msg
	}
	return b
}

// Build returns the constructed event.
func (b *EventBuilder) Build() core.Event { return b.ev }
