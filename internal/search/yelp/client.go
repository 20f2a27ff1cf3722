package yelp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/AdamBeresnev/food-bracket/internal/search"
)

const (
	providerName     = "yelp"
	defaultBaseURL   = "https://api.yelp.com"
	defaultTimeout   = 10 * time.Second
	searchPath       = "/v3/businesses/search"
	chatPath         = "/ai/chat/v1"
	maxErrorBodySize = 64 << 10
)

// Config controls how the Yelp client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client calls the Yelp Fusion search and AI chat endpoints.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}
}

// Search runs a business search and returns both the mapped businesses and
// the raw response body.
func (c *Client) Search(ctx context.Context, q search.Query) (search.Result, error) {
	q = q.Normalize()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+searchPath, nil)
	if err != nil {
		return search.Result{}, err
	}
	params := req.URL.Query()
	params.Set("latitude", strconv.FormatFloat(q.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(q.Longitude, 'f', -1, 64))
	params.Set("term", q.Term)
	params.Set("limit", strconv.Itoa(q.Limit))
	if q.Radius > 0 {
		params.Set("radius", strconv.Itoa(q.Radius))
	}
	req.URL.RawQuery = params.Encode()

	body, err := c.do(req)
	if err != nil {
		return search.Result{}, err
	}

	var payload searchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return search.Result{}, fmt.Errorf("yelp: decoding search response: %w", err)
	}

	businesses := make([]search.Business, 0, len(payload.Businesses))
	for _, b := range payload.Businesses {
		businesses = append(businesses, mapBusiness(b))
	}
	return search.Result{Businesses: businesses, Raw: body}, nil
}

// Chat forwards a message to the Yelp AI chat endpoint.
func (c *Client) Chat(ctx context.Context, chat search.ChatRequest) (json.RawMessage, error) {
	var history any = []any{}
	if len(chat.ChatHistory) > 0 && string(chat.ChatHistory) != "null" {
		history = chat.ChatHistory
	}
	encoded, err := json.Marshal(chatPayload{Message: chat.Message, ChatHistory: history})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatPath, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("yelp: chat response is not valid JSON")
	}
	return body, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yelp: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yelp: reading response: %w", err)
	}
	return body, nil
}

func statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

	var payload errorResponse
	description := ""
	if err := json.Unmarshal(raw, &payload); err == nil {
		description = payload.Error.Description
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return &search.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: retryAfter(resp.Header.Get("Retry-After")),
			Message:    description,
		}
	}
	return &search.ProviderError{
		Provider:   providerName,
		StatusCode: resp.StatusCode,
		Message:    description,
	}
}

func retryAfter(header string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
