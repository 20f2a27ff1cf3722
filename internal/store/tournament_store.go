package store

import (
	"context"
	"time"

	"github.com/AdamBeresnev/food-bracket/internal/bracket"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type TournamentStore struct {
	db *sqlx.DB
}

func NewTournamentStore(db *sqlx.DB) *TournamentStore {
	return &TournamentStore{db: db}
}

const (
	candidateColumns = `e.candidate_id, e.name, e.category, e.rating, e.review_count, e.image_url,
		e.distance, e.address, e.url, e.latitude, e.longitude`

	getRankingQuery = `SELECT r.rank, ` + candidateColumns + `
		FROM rankings r
		JOIN entries e ON e.tournament_id = r.tournament_id AND e.candidate_id = r.candidate_id
		WHERE r.tournament_id = ?
		ORDER BY r.rank ASC`
)

func (s *TournamentStore) CreateTournament(ctx context.Context, tx *sqlx.Tx, tournament *bracket.Tournament) error {
	_, err := tx.NamedExecContext(ctx, `INSERT INTO tournaments (id, owner_id, name, status, size, top_n, term, latitude, longitude, radius)
		VALUES (:id, :owner_id, :name, :status, :size, :top_n, :term, :latitude, :longitude, :radius)`, tournament)
	return err
}

func (s *TournamentStore) CreateEntries(ctx context.Context, tx *sqlx.Tx, entries []bracket.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	_, err := tx.NamedExecContext(ctx, `INSERT INTO entries (tournament_id, position, candidate_id, name, category, rating,
			review_count, image_url, distance, address, url, latitude, longitude)
		VALUES (:tournament_id, :position, :candidate_id, :name, :category, :rating,
			:review_count, :image_url, :distance, :address, :url, :latitude, :longitude)`, entries)
	return err
}

func (s *TournamentStore) GetTournament(ctx context.Context, id uuid.UUID) (*bracket.Tournament, error) {
	return getTournament(ctx, s.db, id)
}

func (s *TournamentStore) GetTournamentTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*bracket.Tournament, error) {
	return getTournament(ctx, tx, id)
}

func getTournament(ctx context.Context, q sqlx.QueryerContext, id uuid.UUID) (*bracket.Tournament, error) {
	var tournament bracket.Tournament
	if err := sqlx.GetContext(ctx, q, &tournament, "SELECT * FROM tournaments WHERE id = ?", id); err != nil {
		return nil, err
	}
	return &tournament, nil
}

func (s *TournamentStore) GetTournamentsByUserID(ctx context.Context, userID uuid.UUID) ([]bracket.Tournament, error) {
	var tournaments []bracket.Tournament
	err := s.db.SelectContext(ctx, &tournaments, "SELECT * FROM tournaments WHERE owner_id = ? ORDER BY created_at DESC, rowid DESC", userID)
	return tournaments, err
}

func (s *TournamentStore) GetEntries(ctx context.Context, tournamentID uuid.UUID) ([]bracket.Entry, error) {
	return getEntries(ctx, s.db, tournamentID)
}

func (s *TournamentStore) GetEntriesTx(ctx context.Context, tx *sqlx.Tx, tournamentID uuid.UUID) ([]bracket.Entry, error) {
	return getEntries(ctx, tx, tournamentID)
}

func getEntries(ctx context.Context, q sqlx.QueryerContext, tournamentID uuid.UUID) ([]bracket.Entry, error) {
	var entries []bracket.Entry
	err := sqlx.SelectContext(ctx, q, &entries, "SELECT * FROM entries WHERE tournament_id = ? ORDER BY position ASC", tournamentID)
	return entries, err
}

func (s *TournamentStore) GetSelections(ctx context.Context, tournamentID uuid.UUID) ([]bracket.Selection, error) {
	return getSelections(ctx, s.db, tournamentID)
}

func (s *TournamentStore) GetSelectionsTx(ctx context.Context, tx *sqlx.Tx, tournamentID uuid.UUID) ([]bracket.Selection, error) {
	return getSelections(ctx, tx, tournamentID)
}

func getSelections(ctx context.Context, q sqlx.QueryerContext, tournamentID uuid.UUID) ([]bracket.Selection, error) {
	var selections []bracket.Selection
	err := sqlx.SelectContext(ctx, q, &selections, "SELECT * FROM selections WHERE tournament_id = ? ORDER BY seq ASC", tournamentID)
	return selections, err
}

// AppendSelectionTx inserts the next row of the selection log. The primary
// key on (tournament_id, seq) rejects a second write for the same slot.
func (s *TournamentStore) AppendSelectionTx(ctx context.Context, tx *sqlx.Tx, selection *bracket.Selection) error {
	_, err := tx.NamedExecContext(ctx, `INSERT INTO selections (tournament_id, seq, round_number, match_index, candidate_id)
		VALUES (:tournament_id, :seq, :round_number, :match_index, :candidate_id)`, selection)
	return err
}

func (s *TournamentStore) CreateRankingTx(ctx context.Context, tx *sqlx.Tx, tournamentID uuid.UUID, ranking []bracket.Candidate) error {
	for i, c := range ranking {
		if _, err := tx.ExecContext(ctx, "INSERT INTO rankings (tournament_id, rank, candidate_id) VALUES (?, ?, ?)", tournamentID, i+1, c.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *TournamentStore) GetRanking(ctx context.Context, tournamentID uuid.UUID) ([]bracket.RankedEntry, error) {
	var ranking []bracket.RankedEntry
	err := s.db.SelectContext(ctx, &ranking, getRankingQuery, tournamentID)
	return ranking, err
}

func (s *TournamentStore) CompleteTournamentTx(ctx context.Context, tx *sqlx.Tx, tournamentID uuid.UUID, completedAt time.Time) error {
	_, err := tx.ExecContext(ctx, "UPDATE tournaments SET status = ?, completed_at = ? WHERE id = ?", bracket.TournamentCompleted, completedAt, tournamentID)
	return err
}
