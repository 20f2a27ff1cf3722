package views

import (
	"fmt"

	"github.com/AdamBeresnev/food-bracket/internal/bracket"
	"github.com/AdamBeresnev/food-bracket/internal/mapembed"
)

// MatchPage is everything the match screen shows.
type MatchPage struct {
	Tournament       *bracket.Tournament
	Match            bracket.Match
	MatchesInRound   int
	MatchesRemaining int
	TotalMatches     int
	Maps             [2]mapembed.EmbedInfo
	History          BracketData
}

func (p MatchPage) Played() int {
	return p.TotalMatches - p.MatchesRemaining
}

func (p MatchPage) Progress() string {
	return fmt.Sprintf("Round %d · match %d of %d · %d of %d played",
		p.Match.Round, p.Match.Index+1, p.MatchesInRound, p.Played(), p.TotalMatches)
}
