package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/AdamBeresnev/food-bracket/internal/search"
)

const (
	providerName      = "google_geocode"
	defaultGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"
	defaultTimeout    = 10 * time.Second
	statusOK          = "OK"
	failedMessage     = "Failed to fetch geocoding data"
)

type Config struct {
	GeocodeURL string
	APIKey     string
	HTTPClient *http.Client
}

// Geocoder resolves addresses with the Google Geocoding API.
type Geocoder struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

func NewGeocoder(cfg Config) *Geocoder {
	url := cfg.GeocodeURL
	if url == "" {
		url = defaultGeocodeURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Geocoder{url: url, apiKey: cfg.APIKey, httpClient: httpClient}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location search.Location `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode returns the location of the first result for address. Any
// status other than OK is reported as a 400 ProviderError.
func (g *Geocoder) Geocode(ctx context.Context, address string) (search.Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.url, nil)
	if err != nil {
		return search.Location{}, err
	}
	q := req.URL.Query()
	q.Set("address", address)
	q.Set("key", g.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return search.Location{}, fmt.Errorf("google geocode: %w", err)
	}
	defer resp.Body.Close()

	var payload geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return search.Location{}, fmt.Errorf("google geocode: decoding response: %w", err)
	}

	if payload.Status != statusOK || len(payload.Results) == 0 {
		return search.Location{}, &search.ProviderError{
			Provider:   providerName,
			StatusCode: http.StatusBadRequest,
			Message:    failedMessage,
		}
	}
	return payload.Results[0].Geometry.Location, nil
}
