package bracket

import "github.com/google/uuid"

// Candidate is one restaurant eligible for a tournament. Candidates are
// never mutated once built by the pool builder.
type Candidate struct {
	ID          string  `db:"candidate_id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Category    string  `db:"category" json:"category"`
	Rating      float64 `db:"rating" json:"rating"`
	ReviewCount int     `db:"review_count" json:"reviewCount"`
	ImageURL    *string `db:"image_url" json:"imageUrl,omitempty"`
	Distance    float64 `db:"distance" json:"distance"`
	Address     string  `db:"address" json:"address,omitempty"`
	URL         string  `db:"url" json:"url,omitempty"`
	Latitude    float64 `db:"latitude" json:"latitude"`
	Longitude   float64 `db:"longitude" json:"longitude"`
}

// Entry is a Candidate persisted at its position in a tournament's initial bracket.
type Entry struct {
	TournamentID uuid.UUID `db:"tournament_id"`
	Position     int       `db:"position"`
	Candidate
}

func Candidates(entries []Entry) []Candidate {
	out := make([]Candidate, len(entries))
	for i, e := range entries {
		out[i] = e.Candidate
	}
	return out
}

// dedupe keeps the first occurrence of every id, preserving order.
func dedupe(pool []Candidate) []Candidate {
	seen := make(map[string]struct{}, len(pool))
	out := make([]Candidate, 0, len(pool))
	for _, c := range pool {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}
	return out
}

func firstDuplicate(entries []Candidate) (string, bool) {
	seen := make(map[string]struct{}, len(entries))
	for _, c := range entries {
		if _, ok := seen[c.ID]; ok {
			return c.ID, true
		}
		seen[c.ID] = struct{}{}
	}
	return "", false
}
