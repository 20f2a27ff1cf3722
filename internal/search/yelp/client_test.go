package yelp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdamBeresnev/food-bracket/internal/search"
)

const searchBody = `{
	"businesses": [
		{
			"id": "biz-1",
			"name": "Gwangjang Bindaetteok",
			"rating": 4.5,
			"review_count": 321,
			"image_url": "https://img.example/1.jpg",
			"url": "https://yelp.example/biz-1",
			"categories": [{"alias": "korean", "title": "Korean"}, {"alias": "markets", "title": "Markets"}],
			"coordinates": {"latitude": 37.57, "longitude": 127.0},
			"location": {"address1": "88 Changgyeonggung-ro", "city": "Seoul", "state": "11", "zip_code": "03195"}
		},
		{
			"id": "biz-2",
			"name": "Plain",
			"rating": 3,
			"review_count": 0,
			"categories": [],
			"coordinates": {"latitude": 37.58, "longitude": 127.01},
			"location": {"display_address": ["1 Road", "Seoul"]}
		}
	],
	"total": 2
}`

func TestClient_Search(t *testing.T) {
	var gotAuth string
	var gotQuery map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, searchPath, r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, searchBody)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"})
	res, err := client.Search(context.Background(), search.Query{Latitude: 37.5665, Longitude: 126.978, Radius: 2000})
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, map[string]string{
		"latitude":  "37.5665",
		"longitude": "126.978",
		"term":      "restaurants",
		"limit":     "50",
		"radius":    "2000",
	}, gotQuery)

	require.Len(t, res.Businesses, 2)
	first := res.Businesses[0]
	assert.Equal(t, "biz-1", first.ID)
	assert.Equal(t, []string{"Korean", "Markets"}, first.Categories)
	assert.Equal(t, 321, first.ReviewCount)
	assert.Equal(t, "88 Changgyeonggung-ro, Seoul, 11 03195", first.Address)
	assert.Equal(t, 37.57, first.Latitude)
	assert.Equal(t, "1 Road, Seoul", res.Businesses[1].Address)
	assert.Empty(t, res.Businesses[1].Categories)

	assert.JSONEq(t, searchBody, string(res.Raw))
}

func TestClient_SearchErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		rateLimited bool
	}{
		{"described error", http.StatusBadRequest, `{"error":{"code":"VALIDATION_ERROR","description":"Please specify a location"}}`, "Please specify a location", false},
		{"undescribed error", http.StatusInternalServerError, `oops`, "", false},
		{"rate limited", http.StatusTooManyRequests, `{"error":{"code":"TOO_MANY_REQUESTS_PER_SECOND","description":"slow down"}}`, "slow down", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := NewClient(Config{BaseURL: srv.URL}).Search(context.Background(), search.Query{})
			require.Error(t, err)

			_, isRateLimit := search.AsRateLimitError(err)
			assert.Equal(t, tt.rateLimited, isRateLimit)
			assert.Equal(t, tt.status, search.StatusCode(err))
			assert.Equal(t, tt.wantMessage, search.Message(err, ""))
		})
	}
}

func TestClient_Chat(t *testing.T) {
	tests := []struct {
		name        string
		history     json.RawMessage
		wantHistory string
	}{
		{"no history", nil, `[]`},
		{"with history", json.RawMessage(`[{"role":"user","content":"hi"}]`), `[{"role":"user","content":"hi"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, chatPath, r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var payload struct {
					Message     string          `json:"message"`
					ChatHistory json.RawMessage `json:"chat_history"`
				}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
				assert.Equal(t, "where should I eat?", payload.Message)
				assert.JSONEq(t, tt.wantHistory, string(payload.ChatHistory))

				_, _ = io.WriteString(w, `{"response":{"text":"try bibimbap"},"chat_id":"c1"}`)
			}))
			defer srv.Close()

			body, err := NewClient(Config{BaseURL: srv.URL}).Chat(context.Background(), search.ChatRequest{
				Message:     "where should I eat?",
				ChatHistory: tt.history,
			})
			require.NoError(t, err)
			assert.JSONEq(t, `{"response":{"text":"try bibimbap"},"chat_id":"c1"}`, string(body))
		})
	}
}
