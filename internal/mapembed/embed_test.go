package mapembed

import (
	"net/url"
	"testing"

	"github.com/AdamBeresnev/food-bracket/internal/bracket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForCandidate(t *testing.T) {
	tests := []struct {
		name      string
		candidate bracket.Candidate
		apiKey    string
		wantType  EmbedType
		wantBase  string
		wantQuery map[string]string
	}{
		{
			name:      "coordinates with key",
			candidate: bracket.Candidate{Name: "Tosokchon", Latitude: 37.578, Longitude: 126.9707},
			apiKey:    "maps-key",
			wantType:  EmbedTypeCoordinates,
			wantBase:  "https://www.google.com/maps/embed/v1/place",
			wantQuery: map[string]string{"q": "37.578000,126.970700", "key": "maps-key", "zoom": "16"},
		},
		{
			name:      "coordinates without key",
			candidate: bracket.Candidate{Latitude: -33.8688, Longitude: 151.2093},
			wantType:  EmbedTypeCoordinates,
			wantBase:  "https://maps.google.com/maps",
			wantQuery: map[string]string{"q": "-33.868800,151.209300", "output": "embed", "z": "16"},
		},
		{
			name:      "name and address search",
			candidate: bracket.Candidate{Name: "Tosokchon", Address: "5 Jahamun-ro 5-gil, Seoul"},
			apiKey:    "maps-key",
			wantType:  EmbedTypeSearch,
			wantBase:  "https://www.google.com/maps/embed/v1/place",
			wantQuery: map[string]string{"q": "Tosokchon, 5 Jahamun-ro 5-gil, Seoul", "key": "maps-key", "zoom": "16"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ForCandidate(tt.candidate, tt.apiKey)
			assert.Equal(t, tt.wantType, info.Type)

			u, err := url.Parse(info.URL)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBase, u.Scheme+"://"+u.Host+u.Path)

			got := map[string]string{}
			for k := range u.Query() {
				got[k] = u.Query().Get(k)
			}
			assert.Equal(t, tt.wantQuery, got)
		})
	}
}

func TestForCandidate_Nothing(t *testing.T) {
	info := ForCandidate(bracket.Candidate{ID: "x", Name: "  "}, "key")
	assert.Equal(t, EmbedInfo{Type: EmbedTypeNone}, info)
}
