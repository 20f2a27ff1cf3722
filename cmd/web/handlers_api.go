package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/AdamBeresnev/food-bracket/internal/httputil"
	"github.com/AdamBeresnev/food-bracket/internal/search"
)

const (
	msgCoordinatesRequired = "Latitude and longitude are required"
	msgSearchFailed        = "Failed to fetch Yelp API"
	msgChatFailed          = "Failed to fetch Yelp AI API"
	msgGeocodeFailed       = "Failed to fetch geocoding data"
)

// handleSearch proxies a business search and returns the upstream body.
func (app *application) handleSearch(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	if params.Get("latitude") == "" || params.Get("longitude") == "" {
		httputil.JSONError(w, http.StatusBadRequest, msgCoordinatesRequired, nil)
		return
	}

	latitude, errLat := strconv.ParseFloat(params.Get("latitude"), 64)
	longitude, errLng := strconv.ParseFloat(params.Get("longitude"), 64)
	if errLat != nil || errLng != nil {
		httputil.JSONError(w, http.StatusBadRequest, "Latitude and longitude must be numbers", nil)
		return
	}

	radius, err := optionalInt(params.Get("radius"))
	if err != nil {
		httputil.JSONError(w, http.StatusBadRequest, "radius must be an integer", err)
		return
	}
	limit, err := optionalInt(params.Get("limit"))
	if err != nil {
		httputil.JSONError(w, http.StatusBadRequest, "limit must be an integer", err)
		return
	}

	res, err := app.provider.Search(r.Context(), search.Query{
		Latitude:  latitude,
		Longitude: longitude,
		Term:      params.Get("term"),
		Radius:    radius,
		Limit:     limit,
	})
	if err != nil {
		httputil.JSONError(w, search.StatusCode(err), search.Message(err, msgSearchFailed), err)
		return
	}
	httputil.RawJSONResponse(w, http.StatusOK, res.Raw)
}

type chatRequest struct {
	Message     string          `json:"message"`
	ChatHistory json.RawMessage `json:"chat_history"`
}

func (app *application) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := httputil.ParseJSONBody(r, &req); err != nil {
		httputil.JSONError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}
	if req.Message == "" {
		httputil.JSONError(w, http.StatusBadRequest, "'message' is required", nil)
		return
	}

	body, err := app.provider.Chat(r.Context(), search.ChatRequest{
		Message:     req.Message,
		ChatHistory: req.ChatHistory,
	})
	if err != nil {
		httputil.JSONError(w, search.StatusCode(err), search.Message(err, msgChatFailed), err)
		return
	}
	httputil.RawJSONResponse(w, http.StatusOK, body)
}

func (app *application) handleGeocode(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	if location == "" {
		httputil.JSONError(w, http.StatusBadRequest, "Location is required", nil)
		return
	}

	loc, err := app.geocoder.Geocode(r.Context(), location)
	if err != nil {
		httputil.JSONError(w, search.StatusCode(err), search.Message(err, "Internal server error"), err)
		return
	}
	httputil.JSONResponse(w, http.StatusOK, loc)
}

func optionalInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
