package main

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/AdamBeresnev/food-bracket/internal/bracket"
	"github.com/AdamBeresnev/food-bracket/internal/httputil"
	"github.com/AdamBeresnev/food-bracket/internal/search"
	"github.com/AdamBeresnev/food-bracket/internal/service"
)

// statusFor maps domain errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return http.StatusNotFound
	case errors.Is(err, bracket.ErrInvalidSelection),
		errors.Is(err, bracket.ErrUnsupportedSize),
		errors.Is(err, bracket.ErrTournamentComplete):
		return http.StatusBadRequest
	case errors.Is(err, bracket.ErrInsufficientCandidates):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrTournamentInProgress),
		errors.Is(err, service.ErrSelectionConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNoUserInContext):
		return http.StatusUnauthorized
	}

	if isUpstream(err) {
		return search.StatusCode(err)
	}
	return http.StatusInternalServerError
}

func isUpstream(err error) bool {
	_, isProvider := search.AsProviderError(err)
	_, isRateLimit := search.AsRateLimitError(err)
	return isProvider || isRateLimit
}

// messageFor returns the upstream description for provider failures and
// fallback for 404s and server errors.
func messageFor(err error, status int, fallback string) string {
	if isUpstream(err) {
		return search.Message(err, fallback)
	}
	if status == http.StatusNotFound || status >= http.StatusInternalServerError {
		return fallback
	}
	return err.Error()
}

// respondError writes err as JSON or plain text depending on what the
// client asked for.
func respondError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := statusFor(err)
	msg := messageFor(err, status, fallback)
	if httputil.WantsJSON(r) {
		httputil.JSONError(w, status, msg, err)
		return
	}
	httputil.Error(w, status, msg, err)
}
