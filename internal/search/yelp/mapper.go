package yelp

import (
	"fmt"
	"strings"

	"github.com/AdamBeresnev/food-bracket/internal/search"
)

func mapBusiness(b business) search.Business {
	categories := make([]string, 0, len(b.Categories))
	for _, c := range b.Categories {
		categories = append(categories, c.Title)
	}
	return search.Business{
		ID:          b.ID,
		Name:        b.Name,
		Rating:      b.Rating,
		ReviewCount: b.ReviewCount,
		Categories:  categories,
		ImageURL:    b.ImageURL,
		Address:     formatAddress(b.Location),
		URL:         b.URL,
		Latitude:    b.Coordinates.Latitude,
		Longitude:   b.Coordinates.Longitude,
	}
}

func formatAddress(loc location) string {
	if loc.Address1 != "" {
		return strings.TrimSpace(fmt.Sprintf("%s, %s, %s %s", loc.Address1, loc.City, loc.State, loc.ZipCode))
	}
	return strings.Join(loc.DisplayAddress, ", ")
}
