package bracket

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTournament_JSONKeys(t *testing.T) {
	encoded, err := json.Marshal(Tournament{ID: uuid.New(), Name: "Dinner", Status: TournamentStarted, Size: 8, TopN: 8})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(encoded, &fields))

	for _, key := range []string{"id", "ownerId", "name", "status", "size", "topN", "term", "latitude", "longitude", "radius", "createdAt"} {
		assert.Contains(t, fields, key)
	}
	assert.NotContains(t, fields, "completedAt")
	assert.NotContains(t, fields, "Name")
	assert.Equal(t, "started", fields["status"])
}
