package search

import (
	"context"
	"encoding/json"
	"time"
)

const (
	outcomeSuccess     = "success"
	outcomeError       = "error"
	outcomeRateLimited = "rate_limited"
)

// CallRecorder receives one observation per upstream call.
type CallRecorder interface {
	RecordProviderCall(provider, outcome string, duration time.Duration)
}

type instrumentedProvider struct {
	next     Provider
	name     string
	recorder CallRecorder
}

// NewInstrumentedProvider reports every call on next to recorder under name.
func NewInstrumentedProvider(next Provider, name string, recorder CallRecorder) Provider {
	if recorder == nil {
		return next
	}
	return &instrumentedProvider{next: next, name: name, recorder: recorder}
}

func (p *instrumentedProvider) Search(ctx context.Context, q Query) (Result, error) {
	start := time.Now()
	res, err := p.next.Search(ctx, q)
	p.recorder.RecordProviderCall(p.name, outcome(err), time.Since(start))
	return res, err
}

func (p *instrumentedProvider) Chat(ctx context.Context, req ChatRequest) (json.RawMessage, error) {
	start := time.Now()
	res, err := p.next.Chat(ctx, req)
	p.recorder.RecordProviderCall(p.name+"_chat", outcome(err), time.Since(start))
	return res, err
}

type instrumentedGeocoder struct {
	next     Geocoder
	name     string
	recorder CallRecorder
}

func NewInstrumentedGeocoder(next Geocoder, name string, recorder CallRecorder) Geocoder {
	if recorder == nil {
		return next
	}
	return &instrumentedGeocoder{next: next, name: name, recorder: recorder}
}

func (g *instrumentedGeocoder) Geocode(ctx context.Context, address string) (Location, error) {
	start := time.Now()
	loc, err := g.next.Geocode(ctx, address)
	g.recorder.RecordProviderCall(g.name, outcome(err), time.Since(start))
	return loc, err
}

func outcome(err error) string {
	if err == nil {
		return outcomeSuccess
	}
	if _, ok := AsRateLimitError(err); ok {
		return outcomeRateLimited
	}
	return outcomeError
}
