package search

import (
	"context"
	"fmt"
	"math"

	"github.com/AdamBeresnev/food-bracket/internal/bracket"
)

const earthRadiusMeters = 6371e3

// PoolBuilder turns a provider search into a tournament candidate pool.
type PoolBuilder struct {
	provider Provider
}

func NewPoolBuilder(provider Provider) *PoolBuilder {
	return &PoolBuilder{provider: provider}
}

// Build searches around q's origin and returns the candidates within
// q.Radius, in provider order, with duplicate ids dropped.
func (b *PoolBuilder) Build(ctx context.Context, q Query) ([]bracket.Candidate, error) {
	if b == nil || b.provider == nil {
		return nil, ErrProviderUnavailable
	}
	q = q.Normalize()

	res, err := b.provider.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("searching candidates: %w", err)
	}

	pool := make([]bracket.Candidate, 0, len(res.Businesses))
	seen := make(map[string]struct{}, len(res.Businesses))
	for _, biz := range res.Businesses {
		if _, dup := seen[biz.ID]; dup {
			continue
		}
		c := toCandidate(biz, q.Latitude, q.Longitude)
		if q.Radius > 0 && c.Distance > float64(q.Radius) {
			continue
		}
		seen[biz.ID] = struct{}{}
		pool = append(pool, c)
	}
	return pool, nil
}

func toCandidate(biz Business, originLat, originLng float64) bracket.Candidate {
	category := "N/A"
	if len(biz.Categories) > 0 && biz.Categories[0] != "" {
		category = biz.Categories[0]
	}
	var image *string
	if biz.ImageURL != "" {
		image = &biz.ImageURL
	}
	return bracket.Candidate{
		ID:          biz.ID,
		Name:        biz.Name,
		Category:    category,
		Rating:      biz.Rating,
		ReviewCount: biz.ReviewCount,
		ImageURL:    image,
		Distance:    Distance(originLat, originLng, biz.Latitude, biz.Longitude),
		Address:     biz.Address,
		URL:         biz.URL,
		Latitude:    biz.Latitude,
		Longitude:   biz.Longitude,
	}
}

// Distance returns the great-circle distance in meters between two points.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}

// AvailableSizes returns the bracket sizes a pool of n candidates can fill.
func AvailableSizes(n int) []int {
	sizes := make([]int, 0, len(bracket.SupportedSizes))
	for _, size := range bracket.SupportedSizes {
		if n >= size {
			sizes = append(sizes, size)
		}
	}
	return sizes
}
