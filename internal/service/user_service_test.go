package service

import (
	"context"
	"testing"

	"github.com/AdamBeresnev/food-bracket/internal/middleware"
	"github.com/AdamBeresnev/food-bracket/internal/store"
	"github.com/AdamBeresnev/food-bracket/internal/utils"
	"github.com/google/uuid"
	"github.com/markbates/goth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOrCreateUserByProvider(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	userService := NewUserService(database, store.NewUserStore(database))
	ctx := context.Background()

	gothUser := goth.User{
		Provider:  "discord",
		UserID:    "1234",
		Email:     "mina@example.com",
		Name:      "Mina Park",
		NickName:  "mina",
		AvatarURL: "https://cdn.example/a.png",
	}

	created, err := userService.FindOrCreateUserByProvider(ctx, gothUser)
	require.NoError(t, err)
	assert.Equal(t, "mina", created.Username)
	assert.Equal(t, "https://cdn.example/a.png", utils.OrZero(created.AvatarURL))

	gothUser.NickName = "mina.p"
	gothUser.AvatarURL = ""
	updated, err := userService.FindOrCreateUserByProvider(ctx, gothUser)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "mina.p", updated.Username)
	assert.Nil(t, updated.AvatarURL)
}

func TestEnsureGuestUser(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	userService := NewUserService(database, store.NewUserStore(database))

	guest, err := userService.EnsureGuestUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uuid.MustParse(middleware.GuestUserID), guest.ID)
	assert.True(t, guest.IsGuest())
}
