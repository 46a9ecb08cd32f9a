package llm

import "context"

type contextKey string

const (
	purposeKey     contextKey = "llm_purpose"
	interactionKey contextKey = "llm_interaction"
)

// WithPurpose attaches a purpose label to the context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// WithInteraction tags the context with the id of the form submission
// that triggered the call.
func WithInteraction(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, interactionKey, id)
}

// InteractionFrom returns the submission id, or "" when none is set.
func InteractionFrom(ctx context.Context) string {
	v, _ := ctx.Value(interactionKey).(string)
	return v
}
