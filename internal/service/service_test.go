package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/AdamBeresnev/food-bracket/internal/bracket"
	"github.com/AdamBeresnev/food-bracket/internal/db"
	"github.com/AdamBeresnev/food-bracket/internal/middleware"
	"github.com/AdamBeresnev/food-bracket/internal/search"
	"github.com/AdamBeresnev/food-bracket/internal/store"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database and applies migrations
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.InitMemoryDB()
	require.NoError(t, err, "Failed to set up in-memory DB")
	return database
}

type stubPool struct {
	pool      []bracket.Candidate
	err       error
	lastQuery search.Query
}

func (s *stubPool) Build(ctx context.Context, q search.Query) ([]bracket.Candidate, error) {
	s.lastQuery = q
	return s.pool, s.err
}

func candidatePool(n int) []bracket.Candidate {
	pool := make([]bracket.Candidate, n)
	for i := range pool {
		pool[i] = bracket.Candidate{
			ID:       fmt.Sprintf("biz-%d", i),
			Name:     fmt.Sprintf("Restaurant %d", i),
			Category: "Korean",
			Rating:   4.5,
			Distance: float64(100 * i),
		}
	}
	return pool
}

type countingRecorder struct {
	started   map[int]int
	completed int
	selected  int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{started: map[int]int{}}
}

func (c *countingRecorder) RecordTournamentStarted(size int) { c.started[size]++ }
func (c *countingRecorder) RecordTournamentCompleted()       { c.completed++ }
func (c *countingRecorder) RecordSelection()                 { c.selected++ }

type fixture struct {
	db          *sqlx.DB
	store       *store.TournamentStore
	tournaments *TournamentService
	matches     *MatchService
	pool        *stubPool
	recorder    *countingRecorder
	ctx         context.Context
}

func newFixture(t *testing.T, poolSize int) *fixture {
	t.Helper()
	return newFixtureWithTopN(t, poolSize, bracket.DefaultTopN)
}

func newFixtureWithTopN(t *testing.T, poolSize, topN int) *fixture {
	t.Helper()

	database := setupTestDB(t)
	t.Cleanup(func() { database.Close() })

	tournamentStore := store.NewTournamentStore(database)
	pool := &stubPool{pool: candidatePool(poolSize)}
	recorder := newCountingRecorder()

	return &fixture{
		db:          database,
		store:       tournamentStore,
		tournaments: NewTournamentService(database, tournamentStore, pool, recorder, topN),
		matches:     NewMatchService(database, tournamentStore, recorder),
		pool:        pool,
		recorder:    recorder,
		ctx:         middleware.WithUserID(context.Background(), uuid.MustParse(middleware.GuestUserID)),
	}
}

func (f *fixture) start(t *testing.T, size int) uuid.UUID {
	t.Helper()
	id, err := f.tournaments.StartTournament(f.ctx, StartInput{
		Name:      "Dinner",
		Term:      "bbq",
		Latitude:  37.5665,
		Longitude: 126.978,
		Radius:    2000,
		Size:      size,
	})
	require.NoError(t, err)
	return id
}

// playFirstContestant plays every match, always picking the first contestant.
func (f *fixture) playFirstContestant(t *testing.T, id uuid.UUID) {
	t.Helper()
	for {
		data, err := f.matches.GetMatchViewData(f.ctx, id)
		if errors.Is(err, bracket.ErrTournamentComplete) {
			return
		}
		require.NoError(t, err)
		_, err = f.matches.AdvanceWinner(f.ctx, id, data.Match.Contestants[0].ID)
		require.NoError(t, err)
	}
}
