package views

import (
	"bytes"
	"context"
	"testing"

	"github.com/AdamBeresnev/food-bracket/internal/bracket"
	"github.com/AdamBeresnev/food-bracket/internal/mapembed"
	users "github.com/AdamBeresnev/food-bracket/internal/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchView_Renders(t *testing.T) {
	entries := makeEntries(8)
	tournament := &bracket.Tournament{ID: uuid.New(), Name: "Dinner", Size: 8}
	state, err := bracket.FromBracket(bracket.Candidates(entries))
	require.NoError(t, err)
	match, err := state.CurrentMatch()
	require.NoError(t, err)

	page := MatchPage{
		Tournament:       tournament,
		Match:            match,
		MatchesInRound:   4,
		MatchesRemaining: 7,
		TotalMatches:     7,
		Maps: [2]mapembed.EmbedInfo{
			mapembed.ForCandidate(match.Contestants[0], ""),
			mapembed.ForCandidate(match.Contestants[1], ""),
		},
		History: PrepareBracketData(entries, nil),
	}

	var buf bytes.Buffer
	require.NoError(t, MatchView(page).Render(context.Background(), &buf))

	html := buf.String()
	assert.Contains(t, html, "<title>Dinner</title>")
	assert.Contains(t, html, "/tournaments/"+tournament.ID.String()+"/choose")
	assert.Contains(t, html, `value="c0"`)
	assert.Contains(t, html, `value="c1"`)
	assert.Contains(t, html, "0 of 7 played")
}

func TestRankingView_Renders(t *testing.T) {
	tournament := &bracket.Tournament{ID: uuid.New(), Name: "Lunch"}
	ranking := []bracket.RankedEntry{
		{Rank: 1, Candidate: bracket.Candidate{ID: "a", Name: "Alpha", Distance: 1500}},
		{Rank: 2, Candidate: bracket.Candidate{ID: "b", Name: "Beta", Distance: 300}},
	}

	var buf bytes.Buffer
	require.NoError(t, RankingView(tournament, ranking, BracketData{}).Render(context.Background(), &buf))

	html := buf.String()
	assert.Contains(t, html, "Lunch results")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Alpha")), bytes.Index(buf.Bytes(), []byte("Beta")))
	assert.Contains(t, html, "1.5 km")
	assert.Contains(t, html, "300 m")
}

func TestIndexAndLogin_Render(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Index(nil).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), `<option value="32">32</option>`)
	assert.Contains(t, buf.String(), "No brackets yet.")

	buf.Reset()
	require.NoError(t, LoginPage([]string{"discord"}).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), `href="/auth/discord"`)
}

func TestLayout_ShowsUser(t *testing.T) {
	ctx := context.WithValue(context.Background(), users.UserKey, &users.User{Username: "mina"})

	var buf bytes.Buffer
	require.NoError(t, Index(nil).Render(ctx, &buf))
	assert.Contains(t, buf.String(), "<span>mina</span>")
	assert.Contains(t, buf.String(), `hx-post="/logout"`)

	buf.Reset()
	require.NoError(t, Index(nil).Render(context.Background(), &buf))
	assert.NotContains(t, buf.String(), `hx-post="/logout"`)
}

func TestCandidateCard_EscapesProviderData(t *testing.T) {
	tournament := &bracket.Tournament{ID: uuid.New(), Name: "<b>Dinner</b>"}
	ranking := []bracket.RankedEntry{{Rank: 1, Candidate: bracket.Candidate{
		ID:      "x",
		Name:    `<script>alert("hi")</script>`,
		URL:     "javascript:alert(1)",
		Address: "1 Main St & 2nd",
	}}}

	var buf bytes.Buffer
	require.NoError(t, RankingView(tournament, ranking, BracketData{}).Render(context.Background(), &buf))

	html := buf.String()
	assert.NotContains(t, html, "<script>alert")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "&lt;b&gt;Dinner&lt;/b&gt; results")
	assert.Contains(t, html, "1 Main St &amp; 2nd")
	assert.NotContains(t, html, `href="javascript:`)
}

func TestIndex_ListsTournaments(t *testing.T) {
	id := uuid.New()
	tournaments := []bracket.Tournament{{ID: id, Name: "Brunch", Size: 16, Status: bracket.TournamentStarted}}

	var buf bytes.Buffer
	require.NoError(t, Index(tournaments).Render(context.Background(), &buf))

	html := buf.String()
	assert.Contains(t, html, `href="/tournaments/`+id.String()+`"`)
	assert.Contains(t, html, "Brunch")
	assert.Contains(t, html, "· 16 places · started")
	assert.NotContains(t, html, "No brackets yet.")
}

func TestTournamentURL(t *testing.T) {
	id := uuid.MustParse("6f1c2b1e-8a36-4b0e-9d55-0d4f3c2a1b00")
	assert.Equal(t, "/tournaments/6f1c2b1e-8a36-4b0e-9d55-0d4f3c2a1b00", string(tournamentURL(id)))
	assert.Equal(t, "/tournaments/6f1c2b1e-8a36-4b0e-9d55-0d4f3c2a1b00/choose", string(tournamentURL(id, "choose")))
}
