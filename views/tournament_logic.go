package views

import (
	"github.com/AdamBeresnev/food-bracket/internal/bracket"
)

type BracketData struct {
	Rounds   []Round
	EntryMap map[string]bracket.Candidate
}

type Round struct {
	Number  int
	Matches []MatchResult
}

// MatchResult is one played or pending match. Winner is nil until decided.
type MatchResult struct {
	Index       int
	Contestants [2]bracket.Candidate
	Winner      *bracket.Candidate
}

// PrepareBracketData groups the selection log into rounds. A round of n
// entries holds the next n/2 selections; only rounds that have started are
// returned.
func PrepareBracketData(entries []bracket.Entry, log []bracket.Selection) BracketData {
	entryMap := make(map[string]bracket.Candidate, len(entries))
	current := make([]bracket.Candidate, len(entries))
	for i, e := range entries {
		entryMap[e.ID] = e.Candidate
		current[i] = e.Candidate
	}

	var rounds []Round
	next := 0
	for number := 1; len(current) >= 2; number++ {
		round := Round{Number: number, Matches: make([]MatchResult, len(current)/2)}
		winners := make([]bracket.Candidate, 0, len(current)/2)

		for i := range round.Matches {
			round.Matches[i] = MatchResult{
				Index:       i,
				Contestants: [2]bracket.Candidate{current[2*i], current[2*i+1]},
			}
			if next < len(log) {
				if winner, ok := entryMap[log[next].CandidateID]; ok {
					round.Matches[i].Winner = &winner
					winners = append(winners, winner)
				}
				next++
			}
		}

		rounds = append(rounds, round)
		if len(winners) < len(round.Matches) {
			break
		}
		current = winners
	}

	return BracketData{Rounds: rounds, EntryMap: entryMap}
}

// Champion returns the winner of the final, if it has been played.
func (d BracketData) Champion() *bracket.Candidate {
	if len(d.Rounds) == 0 {
		return nil
	}
	last := d.Rounds[len(d.Rounds)-1]
	if len(last.Matches) != 1 {
		return nil
	}
	return last.Matches[0].Winner
}
