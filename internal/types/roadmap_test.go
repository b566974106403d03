package types

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_Valid(t *testing.T) {
	assert.True(t, LevelBeginner.Valid())
	assert.True(t, LevelIntermediate.Valid())
	assert.True(t, LevelAdvanced.Valid())
	assert.False(t, Level("expert").Valid())
	assert.False(t, Level("").Valid())
}

func TestResource_PublicDropsRankingFields(t *testing.T) {
	r := Resource{
		Type:       ResourceVideo,
		Title:      "Go in 100 seconds",
		URL:        "https://example.com",
		Platform:   "YouTube",
		Difficulty: LevelBeginner,
		Popularity: 0.9,
	}

	data, err := json.Marshal(r.Public())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "popularity")
	assert.Contains(t, string(data), `"title":"Go in 100 seconds"`)
}

func TestSkillLevelsRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       SkillLevelsRequest
		wantField string
	}{
		{
			name: "valid",
			req:  SkillLevelsRequest{UserID: "u", SkillLevels: map[string]Level{"go": LevelAdvanced}},
		},
		{
			name: "empty map is allowed",
			req:  SkillLevelsRequest{SkillLevels: map[string]Level{}},
		},
		{
			name:      "missing map",
			req:       SkillLevelsRequest{},
			wantField: "skill_levels",
		},
		{
			name:      "unknown level",
			req:       SkillLevelsRequest{SkillLevels: map[string]Level{"go": "guru"}},
			wantField: "skill_levels[go]",
		},
		{
			name:      "empty skill name",
			req:       SkillLevelsRequest{SkillLevels: map[string]Level{"": LevelBeginner}},
			wantField: "skill_levels[]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs[0].Namespace(), tt.wantField)
		})
	}
}

func TestSkillLevelsRequest_UserIDOrAnonymous(t *testing.T) {
	assert.Equal(t, "anonymous", (&SkillLevelsRequest{}).UserIDOrAnonymous())
	assert.Equal(t, "u-1", (&SkillLevelsRequest{UserID: "u-1"}).UserIDOrAnonymous())
}

func TestRankRequest_Validate(t *testing.T) {
	ok := RankRequest{Skill: "go", Level: LevelBeginner, Resources: []Resource{{Title: "t", Popularity: 1}}}
	assert.NoError(t, ok.Validate())

	noTitle := ok
	noTitle.Resources = []Resource{{Popularity: 0.5}}
	assert.Error(t, noTitle.Validate())

	tooPopular := ok
	tooPopular.Resources = []Resource{{Title: "t", Popularity: 1.5}}
	assert.Error(t, tooPopular.Validate())

	noSkill := ok
	noSkill.Skill = ""
	assert.Error(t, noSkill.Validate())
}
