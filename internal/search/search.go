package search

import (
	"context"
	"encoding/json"
)

const (
	DefaultTerm  = "restaurants"
	DefaultLimit = 50
	MaxLimit     = 50
	MaxRadius    = 40000
)

// Query describes a business search around an origin.
type Query struct {
	Latitude  float64
	Longitude float64
	Term      string
	// Radius in meters. Zero leaves the radius to the provider.
	Radius int
	Limit  int
}

// Normalize fills defaults and clamps values to the provider's limits.
func (q Query) Normalize() Query {
	if q.Term == "" {
		q.Term = DefaultTerm
	}
	if q.Limit <= 0 || q.Limit > MaxLimit {
		q.Limit = DefaultLimit
	}
	if q.Radius < 0 {
		q.Radius = 0
	}
	if q.Radius > MaxRadius {
		q.Radius = MaxRadius
	}
	return q
}

// Business is a provider-neutral search hit.
type Business struct {
	ID          string
	Name        string
	Rating      float64
	ReviewCount int
	Categories  []string
	ImageURL    string
	Address     string
	URL         string
	Latitude    float64
	Longitude   float64
}

// Result carries the mapped businesses alongside the upstream body so the
// proxy routes can return it untouched.
type Result struct {
	Businesses []Business
	Raw        json.RawMessage
}

type ChatRequest struct {
	Message     string          `json:"message"`
	ChatHistory json.RawMessage `json:"chat_history,omitempty"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Provider is an upstream business search and chat service.
type Provider interface {
	Search(ctx context.Context, q Query) (Result, error)
	Chat(ctx context.Context, req ChatRequest) (json.RawMessage, error)
}

// Geocoder resolves a free-form address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Location, error)
}
