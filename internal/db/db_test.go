package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMemoryDB(t *testing.T) {
	database, err := InitMemoryDB()
	require.NoError(t, err)
	defer database.Close()

	var tables []string
	err = database.Select(&tables, "SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name")
	require.NoError(t, err)

	for _, table := range []string{"entries", "rankings", "selections", "sessions", "tournaments", "users"} {
		assert.Contains(t, tables, table)
	}

	var guests int
	err = database.Get(&guests, "SELECT COUNT(*) FROM users WHERE id = '00000000-0000-0000-0000-000000000001'")
	require.NoError(t, err)
	assert.Equal(t, 1, guests)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	database, err := InitMemoryDB()
	require.NoError(t, err)
	defer database.Close()

	assert.NoError(t, RunMigrations(database.DB))
}
