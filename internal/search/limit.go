package search

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// rateLimitedProvider enforces a minimum interval between upstream calls.
type rateLimitedProvider struct {
	next    Provider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a Provider that allows one call per
// interval. Calls block until a token is available or ctx is done.
func NewRateLimitedProvider(next Provider, interval time.Duration, logger *slog.Logger) Provider {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) Search(ctx context.Context, q Query) (Result, error) {
	if err := p.wait(ctx); err != nil {
		return Result{}, err
	}
	return p.next.Search(ctx, q)
}

func (p *rateLimitedProvider) Chat(ctx context.Context, req ChatRequest) (json.RawMessage, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.Chat(ctx, req)
}

func (p *rateLimitedProvider) wait(ctx context.Context) error {
	if p == nil || p.next == nil {
		return ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		if p.logger != nil {
			p.logger.Warn("rate-limited call canceled", slog.Any("err", err))
		}
		return err
	}
	return nil
}
