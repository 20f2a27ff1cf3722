package bracket

import "fmt"

// ResolveRanking turns a completed selection log into a ranking.
//
// A candidate's last appearance in the log marks the furthest stage it
// reached, so winners are ordered by last appearance, latest first. Entries
// that never won a match follow in bracket order. topN <= 0 keeps every
// entry.
func ResolveRanking(log []Candidate, pool []Candidate, topN int) ([]Candidate, error) {
	if len(pool) < 2 || len(log) != len(pool)-1 {
		return nil, fmt.Errorf("%w: %d selections for a bracket of %d", ErrMalformedSelectionLog, len(log), len(pool))
	}

	inPool := make(map[string]struct{}, len(pool))
	for _, c := range pool {
		inPool[c.ID] = struct{}{}
	}

	last := make(map[string]int, len(log))
	for i, c := range log {
		if _, ok := inPool[c.ID]; !ok {
			return nil, fmt.Errorf("%w: %q is not in the bracket", ErrMalformedSelectionLog, c.ID)
		}
		last[c.ID] = i
	}

	ranking := make([]Candidate, 0, len(pool))
	for i := len(log) - 1; i >= 0; i-- {
		if last[log[i].ID] == i {
			ranking = append(ranking, log[i])
		}
	}
	for _, c := range pool {
		if _, won := last[c.ID]; !won {
			ranking = append(ranking, c)
		}
	}

	if topN > 0 && len(ranking) > topN {
		ranking = ranking[:topN]
	}
	return ranking, nil
}
