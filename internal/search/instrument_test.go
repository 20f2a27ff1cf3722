package search

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type call struct {
	provider string
	outcome  string
}

type fakeRecorder struct {
	calls []call
}

func (f *fakeRecorder) RecordProviderCall(provider, outcome string, _ time.Duration) {
	f.calls = append(f.calls, call{provider, outcome})
}

type stubGeocoder struct {
	err error
}

func (g stubGeocoder) Geocode(ctx context.Context, address string) (Location, error) {
	return Location{Lat: 1, Lng: 2}, g.err
}

func TestInstrumentedProvider(t *testing.T) {
	rec := &fakeRecorder{}
	inner := &stubProvider{errs: []error{nil, &RateLimitError{Provider: "yelp"}, errors.New("down")}}
	p := NewInstrumentedProvider(inner, "yelp", rec)

	_, _ = p.Search(context.Background(), Query{})
	_, _ = p.Search(context.Background(), Query{})
	_, _ = p.Chat(context.Background(), ChatRequest{Message: "hi"})

	assert.Equal(t, []call{
		{"yelp", outcomeSuccess},
		{"yelp", outcomeRateLimited},
		{"yelp_chat", outcomeError},
	}, rec.calls)
}

func TestInstrumentedGeocoder(t *testing.T) {
	rec := &fakeRecorder{}
	g := NewInstrumentedGeocoder(stubGeocoder{err: &ProviderError{StatusCode: http.StatusBadRequest}}, "google_geocode", rec)

	_, err := g.Geocode(context.Background(), "Seoul")
	assert.Error(t, err)
	assert.Equal(t, []call{{"google_geocode", outcomeError}}, rec.calls)
}

func TestNewInstrumentedProvider_NilRecorder(t *testing.T) {
	inner := &stubProvider{}
	assert.Same(t, inner, NewInstrumentedProvider(inner, "yelp", nil))
}

func TestStatusCodeAndMessage(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, StatusCode(&ProviderError{StatusCode: http.StatusUnauthorized}))
	assert.Equal(t, http.StatusTooManyRequests, StatusCode(&RateLimitError{}))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("dial tcp")))

	assert.Equal(t, "bad key", Message(&ProviderError{Message: "bad key"}, "fallback"))
	assert.Equal(t, "fallback", Message(&ProviderError{}, "fallback"))
	assert.Equal(t, "fallback", Message(errors.New("x"), "fallback"))
}
