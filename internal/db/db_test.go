package db

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-roadmap/internal/types"
)

func TestSchemaStatements_CoverAllTables(t *testing.T) {
	joined := strings.Join(schemaStatements, "\n")
	for _, table := range []string{"parsed_resumes", "skill_levels", "roadmaps"} {
		assert.Contains(t, joined, "CREATE TABLE IF NOT EXISTS "+table)
	}
	for _, stmt := range schemaStatements {
		assert.Contains(t, stmt, "IF NOT EXISTS", "schema statements must be idempotent")
	}
}

func TestStoredRoadmap_JSON(t *testing.T) {
	sr := StoredRoadmap{
		ID:     uuid.New(),
		UserID: "u1",
		Roadmap: types.Roadmap{Skills: []types.SkillRoadmap{{
			Name:      "go",
			Level:     types.LevelBeginner,
			Resources: []types.RankedResource{{Title: "Go course", Platform: "Udemy"}},
		}}},
	}

	data, err := json.Marshal(sr)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"user_id":"u1"`)
	assert.Contains(t, string(data), `"name":"go"`)
	assert.NotContains(t, string(data), "popularity")
}

func TestParsedResume_FailedResultRoundTrip(t *testing.T) {
	data, err := json.Marshal(types.FailedParse("boom"))
	require.NoError(t, err)

	var got types.ParseResult
	require.NoError(t, json.Unmarshal(data, &got))
	assert.False(t, got.Success)
	assert.Equal(t, "boom", got.Error)
}
