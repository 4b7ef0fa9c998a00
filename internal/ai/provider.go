// README: Provider contract for itinerary generation and the normalized failure taxonomy.
package ai

import (
	"context"
	"errors"
)

// Normalized provider outcomes. Each network-level or provider-level signal
// collapses into exactly one of these so callers can message the user
// without knowing which provider is configured.
var (
	// ErrRateLimited maps HTTP 429 (or the provider equivalent): the user
	// should retry shortly. The adapter itself never retries.
	ErrRateLimited = errors.New("generation provider rate limited")

	// ErrQuotaExhausted maps HTTP 402 / an explicit credit-exhaustion
	// signal: not retryable by the user.
	ErrQuotaExhausted = errors.New("generation provider quota exhausted")

	// ErrMalformedEnvelope means a 2xx response whose body lacks the
	// expected generated-text field: a provider contract violation.
	ErrMalformedEnvelope = errors.New("malformed provider response envelope")

	// ErrTransport wraps network failures and unexpected HTTP statuses:
	// the call never produced an interpretable response.
	ErrTransport = errors.New("generation provider transport failure")
)

// Request is the provider-agnostic generation envelope. Built fresh per run
// by BuildPrompt and never persisted.
type Request struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

// Provider performs exactly one generation call. Implementations translate
// their own wire signals into the sentinel errors above or a wrapped
// transport error, and must not leak credentials into error text.
type Provider interface {
	Generate(ctx context.Context, req Request) (string, error)
}
