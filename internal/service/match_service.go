package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AdamBeresnev/food-bracket/internal/bracket"
	"github.com/AdamBeresnev/food-bracket/internal/middleware"
	"github.com/AdamBeresnev/food-bracket/internal/store"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
)

type MatchService struct {
	db       *sqlx.DB
	store    *store.TournamentStore
	recorder Recorder
	now      func() time.Time
}

func NewMatchService(db *sqlx.DB, store *store.TournamentStore, recorder Recorder) *MatchService {
	return &MatchService{db: db, store: store, recorder: recorderOrNop(recorder), now: time.Now}
}

type MatchData struct {
	Tournament       *bracket.Tournament `json:"-"`
	Match            bracket.Match       `json:"match"`
	RoundNumber      int                 `json:"roundNumber"`
	MatchIndex       int                 `json:"matchIndex"`
	MatchesInRound   int                 `json:"matchesInRound"`
	MatchesRemaining int                 `json:"matchesRemaining"`
	TotalMatches     int                 `json:"totalMatches"`
}

func newMatchData(tournament *bracket.Tournament, state bracket.State) (*MatchData, error) {
	match, err := state.CurrentMatch()
	if err != nil {
		return nil, err
	}
	return &MatchData{
		Tournament:       tournament,
		Match:            match,
		RoundNumber:      state.RoundNumber(),
		MatchIndex:       state.MatchIndex(),
		MatchesInRound:   state.Bracket().MatchCount(),
		MatchesRemaining: state.MatchesRemaining(),
		TotalMatches:     state.TotalMatches(),
	}, nil
}

// GetMatchViewData returns the match awaiting a selection. A completed
// tournament yields bracket.ErrTournamentComplete.
func (s *MatchService) GetMatchViewData(ctx context.Context, tournamentID uuid.UUID) (*MatchData, error) {
	tournament, err := s.store.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	entries, err := s.store.GetEntries(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}

	selections, err := s.store.GetSelections(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get selections: %w", err)
	}

	state, err := replay(entries, selections)
	if err != nil {
		return nil, err
	}
	return newMatchData(tournament, state)
}

// AdvanceWinner records winnerID as the winner of the current match. The
// selection and, on the final match, the ranking and completion are
// written in one transaction.
func (s *MatchService) AdvanceWinner(ctx context.Context, tournamentID uuid.UUID, winnerID string) (bracket.State, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return bracket.State{}, ErrNoUserInContext
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return bracket.State{}, err
	}
	defer tx.Rollback()

	tournament, err := s.store.GetTournamentTx(ctx, tx, tournamentID)
	if err != nil {
		return bracket.State{}, err
	}
	if userID != tournament.OwnerID {
		return bracket.State{}, ErrNotOwner
	}
	if tournament.Status == bracket.TournamentCompleted {
		return bracket.State{}, bracket.ErrTournamentComplete
	}

	entries, err := s.store.GetEntriesTx(ctx, tx, tournamentID)
	if err != nil {
		return bracket.State{}, fmt.Errorf("failed to get entries: %w", err)
	}
	selections, err := s.store.GetSelectionsTx(ctx, tx, tournamentID)
	if err != nil {
		return bracket.State{}, fmt.Errorf("failed to get selections: %w", err)
	}

	state, err := replay(entries, selections)
	if err != nil {
		return bracket.State{}, err
	}
	match, err := state.CurrentMatch()
	if err != nil {
		return bracket.State{}, err
	}

	next, err := state.ChooseByID(winnerID)
	if err != nil {
		return bracket.State{}, err
	}

	selection := bracket.Selection{
		TournamentID: tournamentID,
		Seq:          len(selections),
		RoundNumber:  match.Round,
		MatchIndex:   match.Index,
		CandidateID:  winnerID,
	}
	if err := s.store.AppendSelectionTx(ctx, tx, &selection); err != nil {
		if isConstraintViolation(err) {
			return bracket.State{}, ErrSelectionConflict
		}
		return bracket.State{}, fmt.Errorf("failed to append selection: %w", err)
	}

	if next.Complete() {
		ranking, err := next.Ranking(0)
		if err != nil {
			return bracket.State{}, err
		}
		if err := s.store.CreateRankingTx(ctx, tx, tournamentID, ranking); err != nil {
			return bracket.State{}, fmt.Errorf("failed to store ranking: %w", err)
		}
		if err := s.store.CompleteTournamentTx(ctx, tx, tournamentID, s.now().UTC()); err != nil {
			return bracket.State{}, fmt.Errorf("failed to update tournament status: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		if isConstraintViolation(err) || isBusy(err) {
			return bracket.State{}, ErrSelectionConflict
		}
		return bracket.State{}, err
	}

	s.recorder.RecordSelection()
	if next.Complete() {
		s.recorder.RecordTournamentCompleted()
	}
	return next, nil
}

func isConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint
}

func isBusy(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked)
}
