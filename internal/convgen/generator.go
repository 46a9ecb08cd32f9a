package convgen

import "context"

// Generator produces practice questions for a conversation scenario.
type Generator interface {
	// Generate makes exactly one model call for req and returns its text.
	// Model failures are returned as *llm.TransportError or *llm.APIError.
	Generate(ctx context.Context, req Request) (*Content, error)
}
