package bracket

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// SupportedSizes are the bracket sizes a tournament can be started with.
var SupportedSizes = []int{8, 16, 32}

const DefaultTopN = 8

func IsSupportedSize(size int) bool {
	return slices.Contains(SupportedSizes, size)
}

type Phase string

const (
	AwaitingSelection  Phase = "awaiting_selection"
	TournamentComplete Phase = "complete"
)

// State is a snapshot of a running tournament. It is a value: Choose
// returns the next snapshot and never modifies the receiver, so a rejected
// selection leaves the caller's state exactly as it was.
type State struct {
	entries    []Candidate
	bracket    Bracket
	matchIndex int
	winners    []Candidate
	log        []Candidate
	complete   bool
}

// Start samples size candidates from pool with a uniform shuffle and
// returns the opening state. A nil rng uses the global source.
func Start(pool []Candidate, size int, rng *rand.Rand) (State, error) {
	if !IsSupportedSize(size) {
		return State{}, fmt.Errorf("%w: %d", ErrUnsupportedSize, size)
	}

	unique := dedupe(pool)
	if len(unique) < size {
		return State{}, fmt.Errorf("%w: found %d, need %d", ErrInsufficientCandidates, len(unique), size)
	}

	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(unique), func(i, j int) {
		unique[i], unique[j] = unique[j], unique[i]
	})

	return FromBracket(unique[:size:size])
}

// FromBracket builds the opening state for an already drawn bracket,
// keeping the given order.
func FromBracket(entries []Candidate) (State, error) {
	if !IsSupportedSize(len(entries)) {
		return State{}, fmt.Errorf("%w: %d", ErrUnsupportedSize, len(entries))
	}
	if id, ok := firstDuplicate(entries); ok {
		return State{}, fmt.Errorf("%w: %q", ErrDuplicateCandidate, id)
	}

	entries = slices.Clone(entries)
	return State{
		entries: entries,
		bracket: Bracket{Entries: entries, Round: 1},
	}, nil
}

// Replay rebuilds the state reached by applying log to the bracket in order.
func Replay(entries []Candidate, log []Candidate) (State, error) {
	state, err := FromBracket(entries)
	if err != nil {
		return State{}, err
	}
	for i, winner := range log {
		state, err = state.Choose(winner)
		if err != nil {
			return State{}, fmt.Errorf("%w: selection %d: %v", ErrMalformedSelectionLog, i, err)
		}
	}
	return state, nil
}

// Choose records winner for the current match and advances the tournament.
// When the last match of a round is decided the winners, in match order,
// become the next round's bracket.
func (s State) Choose(winner Candidate) (State, error) {
	if s.complete {
		return s, ErrTournamentComplete
	}

	match, ok := s.bracket.Match(s.matchIndex)
	if !ok {
		return s, fmt.Errorf("%w: no match at index %d", ErrInvalidSelection, s.matchIndex)
	}
	chosen, ok := match.Contestant(winner.ID)
	if !ok {
		return s, fmt.Errorf("%w: %q is not in round %d match %d", ErrInvalidSelection, winner.ID, match.Round, match.Index)
	}

	next := State{
		entries:    s.entries,
		bracket:    s.bracket,
		matchIndex: s.matchIndex + 1,
		winners:    append(slices.Clone(s.winners), chosen),
		log:        append(slices.Clone(s.log), chosen),
	}

	if next.matchIndex < s.bracket.MatchCount() {
		return next, nil
	}

	if len(next.winners) == 1 {
		next.complete = true
		return next, nil
	}

	next.bracket = Bracket{Entries: next.winners, Round: s.bracket.Round + 1}
	next.matchIndex = 0
	next.winners = nil
	return next, nil
}

// ChooseByID is Choose for callers that only hold the winner's id.
func (s State) ChooseByID(id string) (State, error) {
	return s.Choose(Candidate{ID: id})
}

func (s State) Phase() Phase {
	if s.complete {
		return TournamentComplete
	}
	return AwaitingSelection
}

func (s State) Complete() bool {
	return s.complete
}

// CurrentMatch returns the match awaiting a selection.
func (s State) CurrentMatch() (Match, error) {
	if s.complete {
		return Match{}, ErrTournamentComplete
	}
	match, _ := s.bracket.Match(s.matchIndex)
	return match, nil
}

func (s State) Size() int {
	return len(s.entries)
}

func (s State) RoundNumber() int {
	return s.bracket.Round
}

func (s State) MatchIndex() int {
	return s.matchIndex
}

func (s State) Bracket() Bracket {
	return s.bracket.clone()
}

// Entries returns the initial bracket in drawn order.
func (s State) Entries() []Candidate {
	return slices.Clone(s.entries)
}

// Log returns the selection log in chronological order.
func (s State) Log() []Candidate {
	return slices.Clone(s.log)
}

// TotalMatches is the number of matches a full tournament plays, size - 1.
func (s State) TotalMatches() int {
	if len(s.entries) == 0 {
		return 0
	}
	return len(s.entries) - 1
}

func (s State) MatchesRemaining() int {
	return s.TotalMatches() - len(s.log)
}

// Champion returns the winner of the final once the tournament is complete.
func (s State) Champion() (Candidate, bool) {
	if !s.complete {
		return Candidate{}, false
	}
	return s.log[len(s.log)-1], true
}

// Ranking resolves the final ranking of a completed tournament.
func (s State) Ranking(topN int) ([]Candidate, error) {
	if !s.complete {
		return nil, fmt.Errorf("%w: tournament still has %d matches to play", ErrMalformedSelectionLog, s.MatchesRemaining())
	}
	return ResolveRanking(s.log, s.entries, topN)
}
