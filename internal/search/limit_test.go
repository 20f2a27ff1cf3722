package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitedProvider_SpacesCalls(t *testing.T) {
	inner := &stubProvider{}
	p := NewRateLimitedProvider(inner, 30*time.Millisecond, nil)

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := p.Search(context.Background(), Query{})
		require.NoError(t, err)
	}

	assert.GreaterOrEqual(t, time.Since(start), 55*time.Millisecond)
	assert.Equal(t, 3, inner.calls)
}

func TestRateLimitedProvider_ContextCanceled(t *testing.T) {
	inner := &stubProvider{}
	p := NewRateLimitedProvider(inner, time.Hour, nil)

	_, err := p.Search(context.Background(), Query{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Chat(ctx, ChatRequest{Message: "hi"})
	require.Error(t, err)
	assert.Equal(t, 1, inner.calls)
}

func TestRateLimitedProvider_NilNext(t *testing.T) {
	p := NewRateLimitedProvider(nil, time.Millisecond, nil)
	_, err := p.Search(context.Background(), Query{})
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}
