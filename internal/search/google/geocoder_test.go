package google

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdamBeresnev/food-bracket/internal/search"
)

func TestGeocoder_Geocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Seoul Station", r.URL.Query().Get("address"))
		assert.Equal(t, "maps-key", r.URL.Query().Get("key"))
		_, _ = io.WriteString(w, `{
			"status": "OK",
			"results": [
				{"geometry": {"location": {"lat": 37.5547, "lng": 126.9707}}},
				{"geometry": {"location": {"lat": 0, "lng": 0}}}
			]
		}`)
	}))
	defer srv.Close()

	g := NewGeocoder(Config{GeocodeURL: srv.URL, APIKey: "maps-key"})
	loc, err := g.Geocode(context.Background(), "Seoul Station")
	require.NoError(t, err)
	assert.Equal(t, search.Location{Lat: 37.5547, Lng: 126.9707}, loc)
}

func TestGeocoder_NotOK(t *testing.T) {
	for _, body := range []string{
		`{"status": "ZERO_RESULTS", "results": []}`,
		`{"status": "OK", "results": []}`,
		`{"status": "REQUEST_DENIED"}`,
	} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, body)
		}))

		_, err := NewGeocoder(Config{GeocodeURL: srv.URL}).Geocode(context.Background(), "nowhere")
		srv.Close()

		require.Error(t, err, body)
		assert.Equal(t, http.StatusBadRequest, search.StatusCode(err))
		assert.Equal(t, "Failed to fetch geocoding data", search.Message(err, ""))
	}
}
