package service

import (
	"context"
	"errors"
	"testing"

	"github.com/AdamBeresnev/food-bracket/internal/bracket"
	"github.com/AdamBeresnev/food-bracket/internal/middleware"
	"github.com/AdamBeresnev/food-bracket/internal/search"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartTournament(t *testing.T) {
	f := newFixture(t, 20)

	id := f.start(t, 16)

	tournament, err := f.store.GetTournament(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Dinner", tournament.Name)
	assert.Equal(t, bracket.TournamentStarted, tournament.Status)
	assert.Equal(t, 16, tournament.Size)
	assert.Equal(t, bracket.DefaultTopN, tournament.TopN)
	assert.Equal(t, "bbq", tournament.Term)
	assert.Equal(t, 2000, tournament.Radius)

	entries, err := f.store.GetEntries(f.ctx, id)
	require.NoError(t, err)
	require.Len(t, entries, 16)

	seen := map[string]bool{}
	for i, e := range entries {
		assert.Equal(t, i, e.Position)
		assert.False(t, seen[e.ID], "duplicate entry %s", e.ID)
		seen[e.ID] = true
	}

	assert.Equal(t, "bbq", f.pool.lastQuery.Term)
	assert.Equal(t, search.DefaultLimit, f.pool.lastQuery.Limit)
	assert.Equal(t, 1, f.recorder.started[16])
}

func TestStartTournament_DefaultName(t *testing.T) {
	f := newFixture(t, 8)

	id, err := f.tournaments.StartTournament(f.ctx, StartInput{Latitude: 1, Longitude: 2, Size: 8})
	require.NoError(t, err)

	tournament, err := f.store.GetTournament(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Top 8 restaurants", tournament.Name)
}

func TestStartTournament_Errors(t *testing.T) {
	tests := []struct {
		name     string
		poolSize int
		poolErr  error
		size     int
		ctx      func(f *fixture) context.Context
		wantErr  error
	}{
		{name: "unsupported size", poolSize: 20, size: 4, wantErr: bracket.ErrUnsupportedSize},
		{name: "insufficient candidates", poolSize: 7, size: 8, wantErr: bracket.ErrInsufficientCandidates},
		{name: "no user", poolSize: 20, size: 8, ctx: func(*fixture) context.Context { return context.Background() }, wantErr: ErrNoUserInContext},
		{name: "provider failure", poolSize: 20, size: 8, poolErr: search.ErrProviderUnavailable, wantErr: search.ErrProviderUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.poolSize)
			f.pool.err = tt.poolErr
			ctx := f.ctx
			if tt.ctx != nil {
				ctx = tt.ctx(f)
			}

			_, err := f.tournaments.StartTournament(ctx, StartInput{Size: tt.size})
			assert.ErrorIs(t, err, tt.wantErr)

			tournaments, err := f.store.GetTournamentsByUserID(context.Background(), uuid.MustParse(middleware.GuestUserID))
			require.NoError(t, err)
			assert.Empty(t, tournaments)
			assert.Empty(t, f.recorder.started)
		})
	}
}

func TestGetTournamentData(t *testing.T) {
	f := newFixture(t, 8)
	id := f.start(t, 8)

	data, err := f.tournaments.GetTournamentData(f.ctx, id)
	require.NoError(t, err)
	assert.Len(t, data.Entries, 8)
	assert.Empty(t, data.Selections)
	assert.Equal(t, bracket.AwaitingSelection, data.State.Phase())
	assert.Equal(t, 7, data.State.MatchesRemaining())
	assert.Nil(t, data.Ranking)

	_, err = f.tournaments.GetTournamentData(f.ctx, uuid.New())
	assert.Error(t, err)
}

func TestGetTournamentsForUser(t *testing.T) {
	f := newFixture(t, 8)
	first := f.start(t, 8)
	second := f.start(t, 8)

	tournaments, err := f.tournaments.GetTournamentsForUser(f.ctx)
	require.NoError(t, err)
	require.Len(t, tournaments, 2)
	assert.Equal(t, second, tournaments[0].ID)
	assert.Equal(t, first, tournaments[1].ID)

	_, err = f.tournaments.GetTournamentsForUser(context.Background())
	assert.True(t, errors.Is(err, ErrNoUserInContext))
}

func TestGetRanking_InProgress(t *testing.T) {
	f := newFixture(t, 8)
	id := f.start(t, 8)

	_, err := f.tournaments.GetRanking(f.ctx, id)
	assert.ErrorIs(t, err, ErrTournamentInProgress)
}

func TestGetRanking_TopN(t *testing.T) {
	tests := []struct {
		name string
		topN int
		want int
	}{
		{name: "cut to four", topN: 4, want: 4},
		{name: "zero keeps all", topN: 0, want: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixtureWithTopN(t, 16, tt.topN)
			id := f.start(t, 16)
			f.playFirstContestant(t, id)

			ranking, err := f.tournaments.GetRanking(f.ctx, id)
			require.NoError(t, err)
			assert.Len(t, ranking, tt.want)

			stored, err := f.store.GetRanking(f.ctx, id)
			require.NoError(t, err)
			assert.Len(t, stored, 16)
		})
	}
}
