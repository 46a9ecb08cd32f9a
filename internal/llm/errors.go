package llm

import (
	"fmt"
	"net/http"
)

// TransportError indicates the request could not complete: the network
// failed, the context ended, or the provider was unreachable.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s transport error: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s transport error", e.Provider)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError indicates the provider answered but rejected the request, or
// answered with nothing usable. StatusCode is zero when the provider
// returned a successful response without text content.
type APIError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s API error: %s", e.Provider, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// RateLimited reports whether the provider refused the request for quota
// or rate reasons.
func (e *APIError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// Unauthorized reports whether the API key was rejected.
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// emptyResponse is the APIError for a response without text content.
func emptyResponse(provider string) *APIError {
	return &APIError{
		Provider: provider,
		Message:  "response contained no text content",
	}
}
