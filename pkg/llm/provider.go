// Package llm defines the provider contract the engine consumes and the
// concrete clients for OpenAI, Anthropic, Gemini, and the gRPC sidecar.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// Request is a single generation request.
type Request struct {
	SystemMessage string
	Prompt        string
	Temperature   float64
	MaxTokens     int
}

// Result is a completed generation. Text may be empty; callers treat an empty
// text the same as an error.
type Result struct {
	Text           string
	TokenCount     int
	ResponseTimeMs int
}

// Provider is a stateless LLM client. Implementations must honor the context
// deadline and return a classified error on failure.
type Provider interface {
	Name() string
	Model() string
	Generate(ctx context.Context, req Request) (*Result, error)
}

// ErrNoCredential is returned when a project has no API key for the requested
// provider. Never retryable.
var ErrNoCredential = errors.New("no credential available for provider")

// Error is a classified provider failure.
type Error struct {
	Provider  string
	Kind      string // timeout, connection, auth, rate_limit, content_filter, api
	Message   string
	Retryable bool
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s error: %s", e.Provider, e.Kind, e.Message)
}

// Retryable reports whether an error from a Generate call is worth retrying:
// deadline exceeded, network/connection failures, and provider errors flagged
// retryable (rate limits, 5xx). Everything else is permanent.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Retryable
	}
	var nerr net.Error
	if errors.As(err, &nerr) {
		return true
	}
	return false
}

// elapsedMs is shared by the concrete clients for latency accounting.
func elapsedMs(start time.Time) int {
	return int(time.Since(start).Milliseconds())
}
