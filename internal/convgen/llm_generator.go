package convgen

import (
	"context"
	"fmt"

	"github.com/abhisek/hoehwa/internal/llm"
)

// Purpose is the event-log purpose label for generation calls.
const Purpose = "conversation-gen"

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate builds both prompts and issues a single model call.
func (g *LLMGenerator) Generate(ctx context.Context, req Request) (*Content, error) {
	if !req.Language.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, string(req.Language))
	}

	system, err := SystemMessage(req.Language, req.Level, req.Formal)
	if err != nil {
		return nil, err
	}

	if llm.PurposeFrom(ctx) == "unknown" {
		ctx = llm.WithPurpose(ctx, Purpose)
	}

	resp, err := g.provider.Generate(ctx, llm.UserPrompt(system, UserQuery(req), g.config.MaxTokens, g.config.Temperature))
	if err != nil {
		return nil, err
	}

	return &Content{Text: resp.Text, Model: resp.Model}, nil
}
