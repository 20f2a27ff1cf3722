package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/AdamBeresnev/food-bracket/internal/bracket"
	"github.com/AdamBeresnev/food-bracket/internal/httputil"
	"github.com/AdamBeresnev/food-bracket/internal/mapembed"
	"github.com/AdamBeresnev/food-bracket/internal/service"
	"github.com/AdamBeresnev/food-bracket/views"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type createTournamentRequest struct {
	Name      string   `json:"name"`
	Term      string   `json:"term"`
	Location  string   `json:"location"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Radius    int      `json:"radius"`
	Size      int      `json:"size"`
}

func parseCreateTournament(r *http.Request) (createTournamentRequest, error) {
	var req createTournamentRequest
	if httputil.IsJSON(r) {
		err := httputil.ParseJSONBody(r, &req)
		return req, err
	}

	if err := r.ParseForm(); err != nil {
		return req, err
	}
	req.Name = r.Form.Get("name")
	req.Term = r.Form.Get("term")
	req.Location = strings.TrimSpace(r.Form.Get("location"))

	var err error
	if req.Latitude, err = optionalFloat(r.Form.Get("latitude")); err != nil {
		return req, fmt.Errorf("invalid latitude: %w", err)
	}
	if req.Longitude, err = optionalFloat(r.Form.Get("longitude")); err != nil {
		return req, fmt.Errorf("invalid longitude: %w", err)
	}
	if req.Radius, err = optionalInt(r.Form.Get("radius")); err != nil {
		return req, fmt.Errorf("invalid radius: %w", err)
	}
	if req.Size, err = optionalInt(r.Form.Get("size")); err != nil {
		return req, fmt.Errorf("invalid size: %w", err)
	}
	return req, nil
}

func optionalFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (app *application) handleIndex(w http.ResponseWriter, r *http.Request) {
	tournaments, err := app.tournaments.GetTournamentsForUser(r.Context())
	if err != nil {
		httputil.InternalServerError(w, "Failed to get tournaments", err)
		return
	}
	views.Render(w, r, views.Index(tournaments))
}

func (app *application) handleCreateTournament(w http.ResponseWriter, r *http.Request) {
	req, err := parseCreateTournament(r)
	if err != nil {
		respondBadRequest(w, r, "Invalid tournament data", err)
		return
	}

	if req.Latitude == nil || req.Longitude == nil {
		if req.Location == "" {
			respondBadRequest(w, r, msgCoordinatesRequired, nil)
			return
		}
		loc, err := app.geocoder.Geocode(r.Context(), req.Location)
		if err != nil {
			respondError(w, r, err, msgGeocodeFailed)
			return
		}
		req.Latitude, req.Longitude = &loc.Lat, &loc.Lng
	}

	id, err := app.tournaments.StartTournament(r.Context(), service.StartInput{
		Name:      req.Name,
		Term:      req.Term,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Radius:    req.Radius,
		Size:      req.Size,
	})
	if err != nil {
		respondError(w, r, err, "Failed to create tournament")
		return
	}

	if httputil.WantsJSON(r) {
		httputil.JSONResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
		return
	}
	redirect(w, r, fmt.Sprintf("/tournaments/%s", id))
}

func (app *application) handleTournament(w http.ResponseWriter, r *http.Request) {
	id, ok := tournamentID(w, r)
	if !ok {
		return
	}

	data, err := app.tournaments.GetTournamentData(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "Tournament not found")
		return
	}

	history := views.PrepareBracketData(data.Entries, data.Selections)

	if data.State.Complete() {
		ranking := data.Ranking
		if topN := data.Tournament.TopN; topN > 0 && len(ranking) > topN {
			ranking = ranking[:topN]
		}
		views.Render(w, r, views.RankingView(data.Tournament, ranking, history))
		return
	}

	match, err := data.State.CurrentMatch()
	if err != nil {
		httputil.InternalServerError(w, "Failed to get current match", err)
		return
	}

	views.Render(w, r, views.MatchView(views.MatchPage{
		Tournament:       data.Tournament,
		Match:            match,
		MatchesInRound:   data.State.Bracket().MatchCount(),
		MatchesRemaining: data.State.MatchesRemaining(),
		TotalMatches:     data.State.TotalMatches(),
		Maps: [2]mapembed.EmbedInfo{
			mapembed.ForCandidate(match.Contestants[0], app.cfg.Google.MapsAPIKey),
			mapembed.ForCandidate(match.Contestants[1], app.cfg.Google.MapsAPIKey),
		},
		History: history,
	}))
}

func (app *application) handleCurrentMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := tournamentID(w, r)
	if !ok {
		return
	}

	data, err := app.matches.GetMatchViewData(r.Context(), id)
	if err != nil {
		httputil.JSONError(w, statusFor(err), messageFor(err, statusFor(err), "Tournament not found"), err)
		return
	}
	httputil.JSONResponse(w, http.StatusOK, data)
}

type chooseRequest struct {
	WinnerID string `json:"winner_id"`
}

type chooseResponse struct {
	Complete         bool `json:"complete"`
	RoundNumber      int  `json:"roundNumber"`
	MatchIndex       int  `json:"matchIndex"`
	MatchesRemaining int  `json:"matchesRemaining"`
}

func (app *application) handleChoose(w http.ResponseWriter, r *http.Request) {
	id, ok := tournamentID(w, r)
	if !ok {
		return
	}

	var req chooseRequest
	if httputil.IsJSON(r) {
		if err := httputil.ParseJSONBody(r, &req); err != nil {
			respondBadRequest(w, r, "Invalid JSON body", err)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			respondBadRequest(w, r, "Invalid form data", err)
			return
		}
		req.WinnerID = r.Form.Get("winner_id")
	}
	if req.WinnerID == "" {
		respondBadRequest(w, r, "winner_id is required", nil)
		return
	}

	state, err := app.matches.AdvanceWinner(r.Context(), id, req.WinnerID)
	if err != nil {
		respondError(w, r, err, "Tournament not found")
		return
	}

	if httputil.WantsJSON(r) {
		httputil.JSONResponse(w, http.StatusOK, chooseResponse{
			Complete:         state.Phase() == bracket.TournamentComplete,
			RoundNumber:      state.RoundNumber(),
			MatchIndex:       state.MatchIndex(),
			MatchesRemaining: state.MatchesRemaining(),
		})
		return
	}
	redirect(w, r, fmt.Sprintf("/tournaments/%s", id))
}

func (app *application) handleRanking(w http.ResponseWriter, r *http.Request) {
	id, ok := tournamentID(w, r)
	if !ok {
		return
	}

	ranking, err := app.tournaments.GetRanking(r.Context(), id)
	if err != nil {
		httputil.JSONError(w, statusFor(err), messageFor(err, statusFor(err), "Tournament not found"), err)
		return
	}
	httputil.JSONResponse(w, http.StatusOK, map[string]any{
		"tournamentId": id,
		"ranking":      ranking,
	})
}

func tournamentID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, r, "Invalid tournament ID", err)
		return uuid.Nil, false
	}
	return id, true
}

func respondBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if httputil.WantsJSON(r) {
		httputil.JSONError(w, http.StatusBadRequest, msg, err)
		return
	}
	httputil.BadRequest(w, msg, err)
}

// redirect sends htmx requests an HX-Redirect and everything else a 303.
func redirect(w http.ResponseWriter, r *http.Request, to string) {
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", to)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, to, http.StatusSeeOther)
}
