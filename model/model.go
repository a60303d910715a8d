package model

import (
	"context"
	"fmt"
	"strings"
)

// Usage reports the token accounting a provider returned for a single call.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the result of a single prompt/completion exchange.
type Response struct {
	Text  string `json:"text"`
	Usage Usage  `json:"usage"`
}

// Model is the minimal interface implemented by language model providers.
// Name identifies the underlying model for display and cost attribution.
type Model interface {
	// Name returns the model identifier (e.g. "gpt-4o-mini").
	Name() string

	// Generate sends a single user prompt and returns the completion.
	Generate(ctx context.Context, prompt string) (*Response, error)
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
type MockModel struct {
	name      string
	responses map[string]string
}

var _ Model = (*MockModel)(nil)

// NewMockModel constructs a MockModel with the given model name.
func NewMockModel(name string) *MockModel {
	return &MockModel{
		name:      name,
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an input prompt.
func (m *MockModel) AddResponse(prompt, response string) { m.responses[prompt] = response }

// Name implements Model interface.
func (m *MockModel) Name() string { return m.name }

// Generate implements Model; prompts without a canned completion get a
// deterministic echo so examples stay runnable without credentials.
func (m *MockModel) Generate(ctx context.Context, prompt string) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, ok := m.responses[prompt]
	if !ok {
		text = fmt.Sprintf("Mock response to: %s", prompt)
	}

	promptTokens := len(strings.Fields(prompt))
	completionTokens := len(strings.Fields(text))

	return &Response{
		Text: text,
		Usage: Usage{
			PromptTokens:     promptTokens,
			CompletionTokens: completionTokens,
			TotalTokens:      promptTokens + completionTokens,
		},
	}, nil
}
