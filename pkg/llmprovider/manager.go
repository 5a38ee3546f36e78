package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"smart-task-manager/pkg/log"
)

// Manager sends a request to providers in priority order, retrying each one
// before falling back to the next.
type Manager struct {
	providers []Provider
	config    *Config
	l         log.Logger
}

// Config controls retries and fallback.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration // multiplied by the attempt number
	MaxTotalTimeout time.Duration // bounds the whole chain, zero means no bound
}

func NewManager(providers []Provider, config *Config, l log.Logger) *Manager {
	return &Manager{
		providers: providers,
		config:    config,
		l:         l,
	}
}

// GenerateContent returns the first usable answer. An answer is usable when
// it has text and, for JSONOutput requests, holds a valid JSON value; other
// answers count as failed attempts. When every provider fails the error wraps
// ErrAllProvidersFailed and one *ProviderError per provider tried.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if !hasPrompt(req) {
		return nil, ErrInvalidRequest
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var errs []error
	for _, p := range m.providers {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		resp, attempts, err := m.generateWithRetry(ctx, p, req)
		if err == nil {
			usage := resp.Usage
			if usage == nil {
				usage = &Usage{}
			}
			m.l.Infof(ctx, "llmprovider.Manager.GenerateContent: provider=%s model=%s attempts=%d input_tokens=%d output_tokens=%d",
				p.Name(), p.Model(), attempts, usage.InputTokens, usage.OutputTokens)
			return resp, nil
		}

		m.l.Warnf(ctx, "llmprovider.Manager.GenerateContent: provider=%s model=%s attempts=%d: %v", p.Name(), p.Model(), attempts, err)
		errs = append(errs, providerError(p.Name(), attempts, err))

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, errors.Join(errs...))
}

// generateWithRetry calls p up to RetryAttempts times with a linear backoff.
// Context errors stop retrying at once.
func (m *Manager) generateWithRetry(ctx context.Context, p Provider, req *Request) (*Response, int, error) {
	attempts := max(m.config.RetryAttempts, 1)

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(time.Duration(attempt-1) * m.config.RetryDelay):
			case <-ctx.Done():
				return nil, attempt - 1, ctx.Err()
			}
		}

		resp, err := p.GenerateContent(ctx, req)
		if err == nil {
			err = checkAnswer(resp, req.JSONOutput)
		}
		if err == nil {
			if resp.ProviderName == "" {
				resp.ProviderName = p.Name()
			}
			return resp, attempt, nil
		}

		lastErr = err
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, attempt, err
		}
	}
	return nil, attempts, lastErr
}

// providerError tags err with the provider, reusing the adapter's ProviderError when present.
func providerError(name string, attempts int, err error) *ProviderError {
	var pe *ProviderError
	if errors.As(err, &pe) && pe.Provider == name {
		return &ProviderError{Provider: name, Attempts: attempts, Err: pe.Err}
	}
	return &ProviderError{Provider: name, Attempts: attempts, Err: err}
}

func checkAnswer(resp *Response, wantJSON bool) error {
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return ErrEmptyContent
	}
	if wantJSON {
		if _, ok := ExtractJSON(text); !ok {
			return ErrMalformedJSON
		}
	}
	return nil
}

func hasPrompt(req *Request) bool {
	if req == nil {
		return false
	}
	for _, msg := range req.Messages {
		for _, part := range msg.Parts {
			if strings.TrimSpace(part.Text) != "" {
				return true
			}
		}
	}
	return false
}
