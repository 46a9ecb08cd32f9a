package llm

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/hoehwa/internal/store"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "first", Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Text: "second"},
	)

	resp1, err := mock.Generate(context.Background(), UserPrompt("", "a", 10, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1.Text != "first" {
		t.Fatalf("expected 'first', got %q", resp1.Text)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}

	resp2, err := mock.Generate(context.Background(), UserPrompt("", "b", 10, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2.Text != "second" {
		t.Fatalf("expected 'second', got %q", resp2.Text)
	}
}

func TestMockProvider_EmptyQueue(t *testing.T) {
	strict := NewMockProvider()
	_, err := strict.Generate(context.Background(), Request{})
	var tErr *TransportError
	if !errors.As(err, &tErr) {
		t.Fatalf("expected TransportError from strict mock, got: %T", err)
	}

	lenient := NewMockProvider()
	lenient.Strict = false
	resp, err := lenient.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != MockFallbackText {
		t.Fatalf("expected fallback text, got %q", resp.Text)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "ok"})

	_, _ = mock.Generate(context.Background(), UserPrompt("sys", "hello", 3000, 0.7))

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	last, ok := mock.LastCall()
	if !ok {
		t.Fatal("expected a recorded call")
	}
	if last.System != "sys" || last.Messages[0].Content != "hello" || last.Messages[0].Role != RoleUser {
		t.Fatalf("unexpected recorded request: %+v", last)
	}
	if last.MaxTokens != 3000 || last.Temperature != 0.7 {
		t.Fatalf("unexpected params: %d %v", last.MaxTokens, last.Temperature)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &APIError{Provider: "mock", StatusCode: 400, Message: "bad request"}},
	)

	_, err := mock.Generate(context.Background(), Request{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got: %T", err)
	}
	if apiErr.StatusCode != 400 {
		t.Fatalf("expected status 400, got %d", apiErr.StatusCode)
	}
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}
	if id := InteractionFrom(ctx); id != "" {
		t.Fatalf("expected empty interaction, got %q", id)
	}

	ctx = WithPurpose(ctx, "conversation-gen")
	ctx = WithInteraction(ctx, "7f1c")
	if p := PurposeFrom(ctx); p != "conversation-gen" {
		t.Fatalf("expected 'conversation-gen', got %q", p)
	}
	if id := InteractionFrom(ctx); id != "7f1c" {
		t.Fatalf("expected '7f1c', got %q", id)
	}
}

func TestErrorMessages(t *testing.T) {
	inner := errors.New("connection refused")
	tErr := &TransportError{Provider: "anthropic", Err: inner}
	if !errors.Is(tErr, inner) {
		t.Error("TransportError should unwrap to its cause")
	}
	if !strings.Contains(tErr.Error(), "connection refused") {
		t.Errorf("unexpected message %q", tErr.Error())
	}

	apiErr := &APIError{Provider: "anthropic", StatusCode: 429, Message: "slow down"}
	if !strings.Contains(apiErr.Error(), "429") || !apiErr.RateLimited() {
		t.Errorf("unexpected APIError behavior: %q", apiErr.Error())
	}
	if apiErr.Unauthorized() {
		t.Error("429 is not unauthorized")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"openrouter with key", Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "sk-or"}}, false},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "unknown"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_APIKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Anthropic.APIKey = "a"
	cfg.OpenAI.APIKey = "o"
	if cfg.APIKey() != "a" {
		t.Fatalf("expected anthropic key, got %q", cfg.APIKey())
	}
	cfg.Provider = "openai"
	if cfg.APIKey() != "o" {
		t.Fatalf("expected openai key, got %q", cfg.APIKey())
	}
	cfg.Provider = "mock"
	if cfg.APIKey() != "" {
		t.Fatalf("expected no key for mock, got %q", cfg.APIKey())
	}
}

type recordingRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Text: "generated", Usage: Usage{InputTokens: 12, OutputTokens: 34}})
	p := WithLogging(mock, "mock", repo, zap.New(core))

	ctx := WithInteraction(WithPurpose(context.Background(), "conversation-gen"), "id-1")
	resp, err := p.Generate(ctx, UserPrompt("sys", "query", 3000, 0.7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "generated" {
		t.Fatalf("unexpected text %q", resp.Text)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if !ev.Success || ev.Purpose != "conversation-gen" || ev.InteractionID != "id-1" {
		t.Errorf("unexpected event: %+v", ev)
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 34 || ev.ResponseBody != "generated" {
		t.Errorf("unexpected usage in event: %+v", ev)
	}
	if !strings.Contains(ev.RequestBody, "[system]\nsys") || !strings.Contains(ev.RequestBody, "[user]\nquery") {
		t.Errorf("unexpected request body %q", ev.RequestBody)
	}

	if logs.FilterMessage("llm request completed").Len() != 1 {
		t.Errorf("expected one completion log entry, got %v", logs.All())
	}
}

func TestLoggingProvider_RecordsFailureAndIgnoresRepoErrors(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	repo := &recordingRepo{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Err: &APIError{Provider: "mock", StatusCode: 500, Message: "boom"}})
	p := WithLogging(mock, "mock", repo, zap.New(core))

	_, err := p.Generate(context.Background(), Request{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected the provider error to pass through, got %v", err)
	}
	if len(repo.events) != 1 || repo.events[0].Success {
		t.Fatalf("expected one failed event, got %+v", repo.events)
	}
	if repo.events[0].ErrorMessage == "" {
		t.Error("expected error message in event")
	}
	if logs.FilterMessage("llm request failed").Len() != 1 {
		t.Error("expected failure log entry")
	}
	if logs.FilterMessage("failed to record LLM request event").Len() != 1 {
		t.Error("expected repo failure to be logged")
	}
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != MockFallbackText {
		t.Fatalf("unexpected text %q", resp.Text)
	}
}

func TestNewProvider_MissingKey(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: "anthropic"}, nil, nil)
	if err == nil {
		t.Fatal("expected error for missing key")
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("claude-haiku")
	if c == nil {
		t.Fatal("expected pricing for friendly haiku name")
	}
	got := c.Cost(1_000_000, 1_000_000)
	if math.Abs(got-1.5) > 1e-9 {
		t.Fatalf("cost = %v, want 1.5", got)
	}
	if LookupCost("no-such-model") != nil {
		t.Fatal("expected nil for unknown model")
	}
}
