package llmprovider

import (
	"errors"
	"fmt"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")
	// ErrInvalidRequest is returned for a request that carries no prompt text.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrEmptyContent marks an answer with no text. The manager retries it.
	ErrEmptyContent = errors.New("provider returned no content")
	// ErrMalformedJSON marks a JSONOutput answer holding no valid JSON value. The manager retries it.
	ErrMalformedJSON = errors.New("provider returned malformed JSON")
)

// ProviderError records why one provider gave up after its attempts.
type ProviderError struct {
	Provider string
	Attempts int
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Attempts > 1 {
		return fmt.Sprintf("provider %s (%d attempts): %v", e.Provider, e.Attempts, e.Err)
	}
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
