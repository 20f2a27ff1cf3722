package bracket

import "slices"

// Bracket is the ordered list of candidates contesting one round.
type Bracket struct {
	Entries []Candidate
	Round   int
}

func (b Bracket) MatchCount() int {
	return len(b.Entries) / 2
}

// Match returns the pairing at index, entries[2i] against entries[2i+1].
func (b Bracket) Match(index int) (Match, bool) {
	if index < 0 || index >= b.MatchCount() {
		return Match{}, false
	}
	return Match{
		Round:       b.Round,
		Index:       index,
		Contestants: [2]Candidate{b.Entries[2*index], b.Entries[2*index+1]},
	}, true
}

func (b Bracket) clone() Bracket {
	return Bracket{Entries: slices.Clone(b.Entries), Round: b.Round}
}

type Match struct {
	Round       int          `json:"round"`
	Index       int          `json:"matchIndex"`
	Contestants [2]Candidate `json:"contestants"`
}

// Contestant returns the contestant with the given id, if it plays in this match.
func (m Match) Contestant(id string) (Candidate, bool) {
	for _, c := range m.Contestants {
		if c.ID == id {
			return c, true
		}
	}
	return Candidate{}, false
}
