package mapembed

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/AdamBeresnev/food-bracket/internal/bracket"
)

type EmbedType int

const (
	EmbedTypeNone EmbedType = iota
	EmbedTypeCoordinates
	EmbedTypeSearch
)

type EmbedInfo struct {
	Type EmbedType
	URL  string
}

const (
	embedAPIURL   = "https://www.google.com/maps/embed/v1/place"
	keylessMapURL = "https://maps.google.com/maps"
	defaultZoom   = "16"
)

// ForCandidate returns a Google Maps iframe URL for c. Coordinates are
// preferred; otherwise the map searches for the name and address. With an
// empty apiKey the keyless output=embed form is used.
func ForCandidate(c bracket.Candidate, apiKey string) EmbedInfo {
	q, kind := query(c)
	if kind == EmbedTypeNone {
		return EmbedInfo{Type: EmbedTypeNone}
	}

	params := url.Values{}
	params.Set("q", q)

	if apiKey == "" {
		params.Set("z", defaultZoom)
		params.Set("output", "embed")
		return EmbedInfo{Type: kind, URL: keylessMapURL + "?" + params.Encode()}
	}

	params.Set("zoom", defaultZoom)
	params.Set("key", apiKey)
	return EmbedInfo{Type: kind, URL: embedAPIURL + "?" + params.Encode()}
}

func query(c bracket.Candidate) (string, EmbedType) {
	if c.Latitude != 0 || c.Longitude != 0 {
		return formatCoord(c.Latitude) + "," + formatCoord(c.Longitude), EmbedTypeCoordinates
	}

	parts := make([]string, 0, 2)
	for _, p := range []string{c.Name, c.Address} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "", EmbedTypeNone
	}
	return strings.Join(parts, ", "), EmbedTypeSearch
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
