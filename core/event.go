package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind is the discriminant tag identifying an event variant.
type Kind string

const (
	// KindSessionStart marks the first event of a session.
	KindSessionStart Kind = "session_start"
	// KindSessionEnd marks the last event of a session.
	KindSessionEnd Kind = "session_end"
	// KindFunctionCall records one observed function invocation.
	KindFunctionCall Kind = "function_call"
	// KindLLMCall records one observed language model invocation.
	KindLLMCall Kind = "llm_call"
	// KindAPICall records one observed outbound API request.
	KindAPICall Kind = "api_call"
	// KindError records a failure reported independently of a wrapped call.
	KindError Kind = "error"
)

// NewID generates a new unique identifier for events and sessions.
//
// Returns a string representation of a new UUID.
func NewID() string { return uuid.NewString() }

// BaseEvent carries the identity fields shared by every event kind. It is
// embedded by each concrete event type, which also supplies the Event
// interface implementation. After emission an event should be treated as
// immutable.
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
	Type      Kind      `json:"event_type"`
}

// newBaseEvent stamps a fresh identifier, a UTC creation timestamp and the
// discriminant tag. The session identifier is assigned later by the registry
// at emission time.
func newBaseEvent(t Kind) BaseEvent {
	return BaseEvent{EventID: NewID(), Timestamp: time.Now().UTC(), Type: t}
}

// Base returns the shared identity fields for in-place stamping.
func (b *BaseEvent) Base() *BaseEvent { return b }

// Kind reports the discriminant tag.
func (b *BaseEvent) Kind() Kind { return b.Type }

// String renders a minimal single-line description (kind plus shortened
// event id). Concrete event types override this with richer summaries.
func (b *BaseEvent) String() string { return fmt.Sprintf("%s %s", b.Type, ShortID(b.EventID)) }

// Event is the polymorphic record of one observed occurrence. Concrete event
// types implement it by embedding BaseEvent, keeping the set of variants
// closed. String returns a bounded one-line self-description suitable for
// structured log attributes.
type Event interface {
	Base() *BaseEvent
	Kind() Kind
	fmt.Stringer
}

// SessionStartEvent is the first event of every session.
type SessionStartEvent struct {
	BaseEvent
	UserID       string `json:"user_id,omitempty"`
	AgentVersion string `json:"agent_version,omitempty"`
}

// NewSessionStartEvent creates a session start event. The user identifier is
// optional; pass the empty string for anonymous sessions.
func NewSessionStartEvent(userID string) *SessionStartEvent {
	return &SessionStartEvent{BaseEvent: newBaseEvent(KindSessionStart), UserID: userID}
}

// String implements the bounded self-description for session starts.
func (e *SessionStartEvent) String() string {
	if e.UserID != "" {
		return fmt.Sprintf("session_start user=%s", Truncate(e.UserID, 50))
	}
	return "session_start"
}

// SessionEndEvent is the last event of a session. It carries no fields beyond
// the shared base; the summary aggregates live in Summary.
type SessionEndEvent struct {
	BaseEvent
}

// NewSessionEndEvent creates a session end event.
func NewSessionEndEvent() *SessionEndEvent {
	return &SessionEndEvent{BaseEvent: newBaseEvent(KindSessionEnd)}
}

// String implements the bounded self-description for session ends.
func (e *SessionEndEvent) String() string { return "session_end" }

// FunctionCallEvent records one observed function invocation: its name, the
// described arguments, wall-clock duration and outcome.
type FunctionCallEvent struct {
	BaseEvent
	FunctionName    string  `json:"function_name"`
	Parameters      Params  `json:"parameters,omitempty"`
	ExecutionTimeMS float64 `json:"execution_time_ms"`
	Success         bool    `json:"success"`
	ReturnValue     string  `json:"return_value,omitempty"`
	ErrorMessage    string  `json:"error_message,omitempty"`
}

// NewFunctionCallEvent creates a function call event. Success defaults to
// true; the wrapper flips it when the call returns an error.
func NewFunctionCallEvent(functionName string) *FunctionCallEvent {
	return &FunctionCallEvent{
		BaseEvent:    newBaseEvent(KindFunctionCall),
		FunctionName: functionName,
		Success:      true,
	}
}

// String implements the bounded self-description for function calls.
func (e *FunctionCallEvent) String() string {
	if !e.Success {
		return fmt.Sprintf("function_call %s (%.1fms, error: %s)", e.FunctionName, e.ExecutionTimeMS, Truncate(e.ErrorMessage, 50))
	}
	return fmt.Sprintf("function_call %s (%.1fms)", e.FunctionName, e.ExecutionTimeMS)
}

// LLMCallEvent records one observed language model invocation including the
// approximate token count and estimated cost computed by the LLM wrapper.
type LLMCallEvent struct {
	BaseEvent
	ModelName      string  `json:"model_name"`
	PromptLength   int     `json:"prompt_length"`
	ResponseLength int     `json:"response_length"`
	TokensUsed     int     `json:"tokens_used,omitempty"`
	EstimatedCost  float64 `json:"estimated_cost,omitempty"`
	ResponseTimeMS float64 `json:"response_time_ms"`
	Success        bool    `json:"success"`
	UserInput      string  `json:"user_input,omitempty"`
	LLMResponse    string  `json:"llm_response,omitempty"`
	ErrorMessage   string  `json:"error_message,omitempty"`
}

// NewLLMCallEvent creates an LLM call event for the named model.
func NewLLMCallEvent(modelName string) *LLMCallEvent {
	return &LLMCallEvent{
		BaseEvent: newBaseEvent(KindLLMCall),
		ModelName: modelName,
		Success:   true,
	}
}

// String implements the bounded self-description for LLM calls.
func (e *LLMCallEvent) String() string {
	if !e.Success {
		return fmt.Sprintf("llm_call %s (%.1fms, error: %s)", e.ModelName, e.ResponseTimeMS, Truncate(e.ErrorMessage, 50))
	}
	return fmt.Sprintf("llm_call %s (%.1fms, %d tokens)", e.ModelName, e.ResponseTimeMS, e.TokensUsed)
}

// APICallEvent records one observed outbound API request. No wrapper produces
// it automatically; callers construct and emit it when instrumenting raw API
// clients.
type APICallEvent struct {
	BaseEvent
	APIName        string  `json:"api_name"`
	Endpoint       string  `json:"endpoint"`
	Method         string  `json:"method"`
	ResponseTimeMS float64 `json:"response_time_ms"`
	StatusCode     int     `json:"status_code,omitempty"`
	Success        bool    `json:"success"`
	RequestSize    int     `json:"request_size,omitempty"`
	ResponseSize   int     `json:"response_size,omitempty"`
	ErrorMessage   string  `json:"error_message,omitempty"`
}

// NewAPICallEvent creates an API call event. The HTTP method defaults to GET.
func NewAPICallEvent(apiName, endpoint string) *APICallEvent {
	return &APICallEvent{
		BaseEvent: newBaseEvent(KindAPICall),
		APIName:   apiName,
		Endpoint:  endpoint,
		Method:    "GET",
		Success:   true,
	}
}

// String implements the bounded self-description for API calls.
func (e *APICallEvent) String() string {
	return fmt.Sprintf("api_call %s %s %s (%.1fms, %d)", e.APIName, e.Method, Truncate(e.Endpoint, 50), e.ResponseTimeMS, e.StatusCode)
}

// ErrorEvent records a failure reported independently of a wrapped call, for
// example domain validation errors surfaced by the host application.
type ErrorEvent struct {
	BaseEvent
	ErrorType    string         `json:"error_type"`
	ErrorMessage string         `json:"error_message"`
	StackTrace   string         `json:"stack_trace,omitempty"`
	FunctionName string         `json:"function_name,omitempty"`
	Context      map[string]any `json:"context,omitempty"`
}

// NewErrorEvent creates an error event with the given type label and message.
func NewErrorEvent(errorType, errorMessage string) *ErrorEvent {
	return &ErrorEvent{
		BaseEvent:    newBaseEvent(KindError),
		ErrorType:    errorType,
		ErrorMessage: errorMessage,
	}
}

// String implements the bounded self-description for error events.
func (e *ErrorEvent) String() string {
	return fmt.Sprintf("error %s: %s", e.ErrorType, Truncate(e.ErrorMessage, 50))
}
