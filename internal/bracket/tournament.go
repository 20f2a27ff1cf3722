package bracket

import (
	"time"

	"github.com/google/uuid"
)

type TournamentStatus string

const (
	TournamentStarted   TournamentStatus = "started"
	TournamentCompleted TournamentStatus = "completed"
)

type Tournament struct {
	ID          uuid.UUID        `db:"id" json:"id"`
	OwnerID     uuid.UUID        `db:"owner_id" json:"ownerId"`
	Name        string           `db:"name" json:"name"`
	Status      TournamentStatus `db:"status" json:"status"`
	Size        int              `db:"size" json:"size"`
	TopN        int              `db:"top_n" json:"topN"`
	Term        string           `db:"term" json:"term"`
	Latitude    float64          `db:"latitude" json:"latitude"`
	Longitude   float64          `db:"longitude" json:"longitude"`
	Radius      int              `db:"radius" json:"radius"`
	CreatedAt   time.Time        `db:"created_at" json:"createdAt"`
	CompletedAt *time.Time       `db:"completed_at" json:"completedAt,omitempty"`
}

// Selection is one row of the persisted selection log.
type Selection struct {
	TournamentID uuid.UUID `db:"tournament_id"`
	Seq          int       `db:"seq"`
	RoundNumber  int       `db:"round_number"`
	MatchIndex   int       `db:"match_index"`
	CandidateID  string    `db:"candidate_id"`
	CreatedAt    time.Time `db:"created_at"`
}

type RankedEntry struct {
	Rank int `db:"rank" json:"rank"`
	Candidate
}
