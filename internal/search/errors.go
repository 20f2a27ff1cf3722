package search

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrProviderUnavailable = errors.New("search provider unavailable")

// ProviderError is a non-success response from an upstream provider.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s (status=%d)", e.Provider, e.Message, e.StatusCode)
}

// Temporary reports whether retrying the call may succeed.
func (e *ProviderError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status=%d)", e.Provider, msg, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Provider, msg)
}

func AsProviderError(err error) (*ProviderError, bool) {
	var pErr *ProviderError
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}

func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// StatusCode maps a provider failure to the status a proxy route should return.
func StatusCode(err error) int {
	if _, ok := AsRateLimitError(err); ok {
		return http.StatusTooManyRequests
	}
	if pErr, ok := AsProviderError(err); ok && pErr.StatusCode > 0 {
		return pErr.StatusCode
	}
	return http.StatusInternalServerError
}

// Message returns the upstream message for err, or fallback.
func Message(err error, fallback string) string {
	if rlErr, ok := AsRateLimitError(err); ok && rlErr.Message != "" {
		return rlErr.Message
	}
	if pErr, ok := AsProviderError(err); ok && pErr.Message != "" {
		return pErr.Message
	}
	return fallback
}
