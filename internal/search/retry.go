package search

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	maxBackoff           = 5 * time.Second
)

// retryingProvider wraps a Provider with exponential backoff. Client
// errors other than rate limits are returned immediately.
type retryingProvider struct {
	inner       Provider
	logger      *slog.Logger
	maxAttempts int
	interval    time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner Provider, logger *slog.Logger, maxAttempts int, interval time.Duration) Provider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if interval <= 0 {
		interval = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		interval:    interval,
	}
}

func (r *retryingProvider) Search(ctx context.Context, q Query) (Result, error) {
	return retry(ctx, r, "search", func() (Result, error) {
		return r.inner.Search(ctx, q)
	})
}

func (r *retryingProvider) Chat(ctx context.Context, req ChatRequest) (json.RawMessage, error) {
	return retry(ctx, r, "chat", func() (json.RawMessage, error) {
		return r.inner.Chat(ctx, req)
	})
}

func (r *retryingProvider) policy(ctx context.Context) backoff.BackOffContext {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.interval
	b.MaxInterval = maxBackoff
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(r.maxAttempts-1)), ctx)
}

func retry[T any](ctx context.Context, r *retryingProvider, op string, call func() (T, error)) (T, error) {
	attempt := 0
	operation := func() (T, error) {
		attempt++
		res, err := call()
		if err != nil && !retryable(err) {
			return res, backoff.Permanent(err)
		}
		return res, err
	}
	notify := func(err error, wait time.Duration) {
		r.logWarn("provider call retry", "op", op, "attempt", attempt, "max_attempts", r.maxAttempts, "wait", wait, "err", err)
	}

	res, err := backoff.RetryNotifyWithData(operation, r.policy(ctx), notify)
	if err != nil {
		r.logWarn("provider call failed", "op", op, "attempts", attempt, "err", err)
	}
	return res, err
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if _, ok := AsRateLimitError(err); ok {
		return true
	}
	if pErr, ok := AsProviderError(err); ok {
		return pErr.Temporary()
	}
	return true
}

func (r *retryingProvider) logWarn(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Warn(msg, args...)
	}
}
