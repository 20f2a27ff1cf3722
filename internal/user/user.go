package users

import (
	"time"

	"github.com/google/uuid"
)

type ContextKey string

const UserKey ContextKey = "user"

type User struct {
	ID         uuid.UUID `db:"id"`
	Email      string    `db:"email"`
	Username   string    `db:"username"`
	CreatedAt  time.Time `db:"created_at"`
	Provider   *string   `db:"provider"`
	ProviderID *string   `db:"provider_id"`
	AvatarURL  *string   `db:"avatar_url"`
}

// DisplayName is the name shown in the page header.
func (u *User) DisplayName() string {
	if u == nil {
		return "Guest"
	}
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}

func (u *User) IsGuest() bool {
	return u == nil || u.Provider == nil
}
