package wrap

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hupe1980/agenttrace/core"
	"github.com/hupe1980/agenttrace/registry"
)

// unknownModel is the sentinel name recorded when no model name can be
// extracted from the handle.
const unknownModel = "unknown_model"

// LLMOptions configures the capture behavior of LLM.
type LLMOptions struct {
	// UserInput overrides the recorded raw user input. By default the full
	// prompt is recorded.
	UserInput string
}

// WithUserInput records the given text as the raw user input instead of the
// full prompt, useful when the prompt embeds the user's command in a larger
// template.
func WithUserInput(input string) func(o *LLMOptions) {
	return func(o *LLMOptions) { o.UserInput = input }
}

// LLM invokes a language model call under instrumentation and returns the
// response text unchanged.
//
// The model handle only needs to reveal a name (a plain string or anything
// with a Name() string method); everything else about the call lives in fn.
// On success the event carries a whitespace-split token estimate for prompt
// plus response and an estimated cost of (tokens/1000) times the configured
// per-thousand-token rate. The estimate is indicative, not billing accurate.
//
// The emit discipline matches Call: exactly one LLMCall event per invocation,
// errors and panics propagate unchanged.
func LLM(reg *registry.Registry, model any, prompt string, fn func() (string, error), optFns ...func(o *LLMOptions)) (string, error) {
	if reg == nil || !reg.Enabled() {
		return fn()
	}

	opts := LLMOptions{UserInput: prompt}
	for _, optFn := range optFns {
		optFn(&opts)
	}

	ev := core.NewLLMCallEvent(ModelName(model))
	ev.PromptLength = utf8.RuneCountInString(prompt)
	ev.UserInput = opts.UserInput

	start := time.Now()
	defer func() {
		ev.ResponseTimeMS = time.Since(start).Seconds() * 1000
		if rec := recover(); rec != nil {
			ev.Success = false
			ev.ErrorMessage = fmt.Sprintf("panic: %v", rec)
			reg.Emit(ev)
			panic(rec)
		}
		reg.Emit(ev)
	}()

	response, err := fn()
	if err != nil {
		ev.Success = false
		ev.ErrorMessage = err.Error()
		return response, err
	}

	ev.ResponseLength = utf8.RuneCountInString(response)
	ev.LLMResponse = response
	tokens := estimateTokens(prompt) + estimateTokens(response)
	ev.TokensUsed = tokens
	ev.EstimatedCost = float64(tokens) / 1000 * reg.Config().CostPerKiloTokens()
	return response, err
}

// ModelName extracts a human-readable model name from a model handle. Plain
// strings are used as-is and anything exposing a Name() string method is
// asked; other handles yield the "unknown_model" sentinel, as does a Name
// method that panics. A path-like prefix (as in "models/gemini-pro") is
// stripped down to the last segment.
func ModelName(model any) (name string) {
	defer func() {
		if r := recover(); r != nil {
			name = unknownModel
		}
	}()

	switch m := model.(type) {
	case string:
		name = m
	case interface{ Name() string }:
		name = m.Name()
	default:
		return unknownModel
	}

	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return unknownModel
	}
	return name
}

// estimateTokens approximates the token count of a text by whitespace
// splitting.
func estimateTokens(text string) int {
	return len(strings.Fields(text))
}
