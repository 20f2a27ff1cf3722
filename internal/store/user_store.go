package store

import (
	"context"

	users "github.com/AdamBeresnev/food-bracket/internal/user"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type UserStore struct {
	db *sqlx.DB
}

const userColumns = "id, email, username, provider, provider_id, avatar_url, created_at"

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) GetUserByProvider(ctx context.Context, provider string, providerID string) (*users.User, error) {
	return s.getUser(ctx, "SELECT "+userColumns+" FROM users WHERE provider = ? AND provider_id = ?", provider, providerID)
}

func (s *UserStore) GetUser(ctx context.Context, id uuid.UUID) (*users.User, error) {
	return s.getUser(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
}

func (s *UserStore) getUser(ctx context.Context, query string, args ...any) (*users.User, error) {
	var user users.User
	if err := s.db.GetContext(ctx, &user, query, args...); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) CreateUser(ctx context.Context, user *users.User) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO users (id, email, username, provider, provider_id, avatar_url)
		VALUES (:id, :email, :username, :provider, :provider_id, :avatar_url)`, user)
	return err
}

// UpdateUserNameAndAvatar refreshes the profile fields an OAuth provider
// may change between logins.
func (s *UserStore) UpdateUserNameAndAvatar(ctx context.Context, user *users.User) error {
	_, err := s.db.NamedExecContext(ctx, "UPDATE users SET username = :username, avatar_url = :avatar_url WHERE id = :id", user)
	return err
}
