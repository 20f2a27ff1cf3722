package main

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/AdamBeresnev/food-bracket/internal/bracket"
	"github.com/AdamBeresnev/food-bracket/internal/search"
	"github.com/AdamBeresnev/food-bracket/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("load: %w", sql.ErrNoRows), http.StatusNotFound},
		{"invalid selection", bracket.ErrInvalidSelection, http.StatusBadRequest},
		{"unsupported size", bracket.ErrUnsupportedSize, http.StatusBadRequest},
		{"complete", bracket.ErrTournamentComplete, http.StatusBadRequest},
		{"too few candidates", bracket.ErrInsufficientCandidates, http.StatusUnprocessableEntity},
		{"corrupt bracket", fmt.Errorf("%w: %q", bracket.ErrDuplicateCandidate, "biz-1"), http.StatusInternalServerError},
		{"malformed log", bracket.ErrMalformedSelectionLog, http.StatusInternalServerError},
		{"in progress", service.ErrTournamentInProgress, http.StatusConflict},
		{"conflict", service.ErrSelectionConflict, http.StatusConflict},
		{"not owner", service.ErrNotOwner, http.StatusForbidden},
		{"no user", service.ErrNoUserInContext, http.StatusUnauthorized},
		{"upstream", &search.ProviderError{Provider: "yelp", StatusCode: http.StatusBadGateway}, http.StatusBadGateway},
		{"rate limited", &search.RateLimitError{Provider: "yelp"}, http.StatusTooManyRequests},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
