// Package llm wraps the generative text services used to refine curriculum
// summaries behind one Provider interface.
package llm

import "context"

// Provider generates text for a single-turn prompt.
type Provider interface {
	// Generate sends the request and returns the model's text output.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the single user turn.
	Prompt string

	// JSON asks providers with a native JSON output mode to use it. The
	// response text is still returned as-is.
	JSON bool

	MaxTokens   int
	Temperature float64
}

// Response holds the model's output.
type Response struct {
	Text  string
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

const defaultMaxTokens = 1024

func maxTokens(req Request) int {
	if req.MaxTokens > 0 {
		return req.MaxTokens
	}
	return defaultMaxTokens
}

// resolveModel maps a friendly model name to a provider model ID. Unknown
// names pass through so full model IDs can be configured directly.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
