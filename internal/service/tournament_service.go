package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/AdamBeresnev/food-bracket/internal/bracket"
	"github.com/AdamBeresnev/food-bracket/internal/middleware"
	"github.com/AdamBeresnev/food-bracket/internal/search"
	"github.com/AdamBeresnev/food-bracket/internal/store"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// PoolSource builds a candidate pool for a search query.
type PoolSource interface {
	Build(ctx context.Context, q search.Query) ([]bracket.Candidate, error)
}

// Recorder receives tournament lifecycle events. *metrics.Recorder satisfies it.
type Recorder interface {
	RecordTournamentStarted(size int)
	RecordTournamentCompleted()
	RecordSelection()
}

type nopRecorder struct{}

func (nopRecorder) RecordTournamentStarted(int) {}
func (nopRecorder) RecordTournamentCompleted()  {}
func (nopRecorder) RecordSelection()            {}

func recorderOrNop(r Recorder) Recorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}

type TournamentService struct {
	db       *sqlx.DB
	store    *store.TournamentStore
	pools    PoolSource
	recorder Recorder
	topN     int
}

func NewTournamentService(db *sqlx.DB, store *store.TournamentStore, pools PoolSource, recorder Recorder, topN int) *TournamentService {
	return &TournamentService{
		db:       db,
		store:    store,
		pools:    pools,
		recorder: recorderOrNop(recorder),
		topN:     topN,
	}
}

// StartInput describes the search a tournament is drawn from.
type StartInput struct {
	Name      string
	Term      string
	Latitude  float64
	Longitude float64
	Radius    int
	Size      int
}

type TournamentData struct {
	Tournament *bracket.Tournament
	Entries    []bracket.Entry
	Selections []bracket.Selection
	State      bracket.State
	Ranking    []bracket.RankedEntry
}

// StartTournament builds a pool from the search, draws a bracket of the
// requested size and persists it for the user in the context.
func (s *TournamentService) StartTournament(ctx context.Context, input StartInput) (uuid.UUID, error) {
	if !bracket.IsSupportedSize(input.Size) {
		return uuid.Nil, fmt.Errorf("%w: %d", bracket.ErrUnsupportedSize, input.Size)
	}
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, ErrNoUserInContext
	}

	query := search.Query{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Term:      input.Term,
		Radius:    input.Radius,
	}.Normalize()

	pool, err := s.pools.Build(ctx, query)
	if err != nil {
		return uuid.Nil, err
	}

	state, err := bracket.Start(pool, input.Size, nil)
	if err != nil {
		return uuid.Nil, err
	}

	tournament := bracket.Tournament{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      tournamentName(input.Name, query.Term, input.Size),
		Status:    bracket.TournamentStarted,
		Size:      input.Size,
		TopN:      s.topN,
		Term:      query.Term,
		Latitude:  query.Latitude,
		Longitude: query.Longitude,
		Radius:    query.Radius,
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}
	defer tx.Rollback()

	if err := s.store.CreateTournament(ctx, tx, &tournament); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create tournament: %w", err)
	}

	drawn := state.Entries()
	entries := make([]bracket.Entry, len(drawn))
	for i, c := range drawn {
		entries[i] = bracket.Entry{TournamentID: tournament.ID, Position: i, Candidate: c}
	}
	if err := s.store.CreateEntries(ctx, tx, entries); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create entries: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, err
	}
	s.recorder.RecordTournamentStarted(input.Size)
	return tournament.ID, nil
}

func tournamentName(name, term string, size int) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return fmt.Sprintf("Top %d %s", size, term)
}

func (s *TournamentService) GetTournamentData(ctx context.Context, id uuid.UUID) (*TournamentData, error) {
	tournament, err := s.store.GetTournament(ctx, id)
	if err != nil {
		return nil, err
	}

	entries, err := s.store.GetEntries(ctx, id)
	if err != nil {
		return nil, err
	}

	selections, err := s.store.GetSelections(ctx, id)
	if err != nil {
		return nil, err
	}

	state, err := replay(entries, selections)
	if err != nil {
		return nil, err
	}

	data := &TournamentData{
		Tournament: tournament,
		Entries:    entries,
		Selections: selections,
		State:      state,
	}

	if tournament.Status == bracket.TournamentCompleted {
		data.Ranking, err = s.store.GetRanking(ctx, id)
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

func (s *TournamentService) GetTournamentsForUser(ctx context.Context) ([]bracket.Tournament, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNoUserInContext
	}
	return s.store.GetTournamentsByUserID(ctx, userID)
}

// GetRanking returns the stored ranking cut to the tournament's top N.
func (s *TournamentService) GetRanking(ctx context.Context, id uuid.UUID) ([]bracket.RankedEntry, error) {
	tournament, err := s.store.GetTournament(ctx, id)
	if err != nil {
		return nil, err
	}
	if tournament.Status != bracket.TournamentCompleted {
		return nil, ErrTournamentInProgress
	}

	ranking, err := s.store.GetRanking(ctx, id)
	if err != nil {
		return nil, err
	}
	if tournament.TopN > 0 && len(ranking) > tournament.TopN {
		ranking = ranking[:tournament.TopN]
	}
	return ranking, nil
}

// replay rebuilds the engine state from the stored bracket and selection log.
func replay(entries []bracket.Entry, selections []bracket.Selection) (bracket.State, error) {
	candidates := bracket.Candidates(entries)
	byID := make(map[string]bracket.Candidate, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
	}

	log := make([]bracket.Candidate, len(selections))
	for i, sel := range selections {
		c, ok := byID[sel.CandidateID]
		if !ok {
			return bracket.State{}, fmt.Errorf("%w: selection %d names unknown candidate %q", bracket.ErrMalformedSelectionLog, sel.Seq, sel.CandidateID)
		}
		log[i] = c
	}
	return bracket.Replay(candidates, log)
}
