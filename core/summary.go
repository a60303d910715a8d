package core

import "time"

// Summary aggregates one session's event buffer: per-kind counts, the summed
// estimated LLM cost, and the bracketing lifecycle timestamps. Pointer fields
// distinguish "absent" from zero: the duration is only populated when both a
// SessionStart and a SessionEnd event were observed.
type Summary struct {
	SessionID          string     `json:"session_id"`
	TotalTimeSeconds   *float64   `json:"total_time_seconds,omitempty"`
	FunctionCallsCount int        `json:"function_calls_count"`
	LLMCallsCount      int        `json:"llm_calls_count"`
	APICallsCount      int        `json:"api_calls_count"`
	ErrorsCount        int        `json:"errors_count"`
	TotalEstimatedCost float64    `json:"total_estimated_cost"`
	SessionStart       *time.Time `json:"session_start,omitempty"`
	SessionEnd         *time.Time `json:"session_end,omitempty"`
}

// Summarize folds an event buffer into a Summary in a single pass.
//
// Counting rules:
//   - each kind counts only its own events; a failed function call increments
//     function_calls_count, never errors_count
//   - total_estimated_cost sums estimated_cost across LLM call events
//   - session_start / session_end capture the first event of each kind;
//     total_time_seconds is their difference and is absent unless both exist
//
// The sessionID argument is echoed verbatim (it may be empty when no session
// is active). An empty buffer yields a zero summary.
func Summarize(sessionID string, events []Event) Summary {
	if len(events) == 0 {
		return Summary{}
	}

	s := Summary{SessionID: sessionID}
	for _, ev := range events {
		switch e := ev.(type) {
		case *SessionStartEvent:
			if s.SessionStart == nil {
				ts := e.Timestamp
				s.SessionStart = &ts
			}
		case *SessionEndEvent:
			if s.SessionEnd == nil {
				ts := e.Timestamp
				s.SessionEnd = &ts
			}
		case *FunctionCallEvent:
			s.FunctionCallsCount++
		case *LLMCallEvent:
			s.LLMCallsCount++
			s.TotalEstimatedCost += e.EstimatedCost
		case *APICallEvent:
			s.APICallsCount++
		case *ErrorEvent:
			s.ErrorsCount++
		}
	}

	if s.SessionStart != nil && s.SessionEnd != nil {
		secs := s.SessionEnd.Sub(*s.SessionStart).Seconds()
		s.TotalTimeSeconds = &secs
	}

	return s
}
