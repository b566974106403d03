package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-roadmap/internal/types"
)

func TestEmbeddedSchemas_Compile(t *testing.T) {
	for _, name := range []string{ParseResultSchema, ResourcesSchema, RoadmapSchema, SkillLevelsSchema} {
		t.Run(name, func(t *testing.T) {
			_, err := load(name)
			require.NoError(t, err)
		})
	}
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("nope.schema.json", []byte(`{}`))

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "nope.schema.json", loadErr.Path)
}

func TestValidateValue_ParseResult(t *testing.T) {
	ok := types.ParseResult{
		Success: true,
		Skills:  []string{"Docker"},
		Education: []types.EducationRecord{
			{Degree: types.StringPtr("bachelor of science"), Year: types.StringPtr("2015")},
		},
		Experience: []types.ExperienceRecord{
			{JobTitle: types.StringPtr("engineer"), Years: types.StringPtr("2016-present")},
		},
	}
	assert.NoError(t, ValidateValue(ParseResultSchema, ok))
	assert.NoError(t, ValidateValue(ParseResultSchema, types.FailedParse("boom")))

	ok.Experience = append(ok.Experience, types.ExperienceRecord{Years: types.StringPtr("2010 – 2012")})
	assert.NoError(t, ValidateValue(ParseResultSchema, ok))

	bad := ok
	bad.Experience = []types.ExperienceRecord{{Years: types.StringPtr("since 2016")}}
	assert.Error(t, ValidateValue(ParseResultSchema, bad))
}

func TestValidate_Roadmap(t *testing.T) {
	valid := `{"skills":[{"name":"go","level":"beginner","resources":[
		{"type":"video","title":"t","url":"u","platform":"YouTube","difficulty":"beginner"}]}]}`
	assert.NoError(t, Validate(RoadmapSchema, []byte(valid)))

	leaked := `{"skills":[{"name":"go","level":"beginner","resources":[
		{"type":"video","title":"t","url":"u","platform":"YouTube","difficulty":"beginner","popularity":0.9}]}]}`
	err := Validate(RoadmapSchema, []byte(leaked))
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidate_SkillLevels(t *testing.T) {
	assert.NoError(t, Validate(SkillLevelsSchema, []byte(`{"user_id":"u","skill_levels":{"go":"advanced"}}`)))
	assert.Error(t, Validate(SkillLevelsSchema, []byte(`{"skill_levels":{"go":"expert"}}`)))
	assert.Error(t, Validate(SkillLevelsSchema, []byte(`{"user_id":"u"}`)))
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resources.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"title":"Go","popularity":1.5}]`), 0644))

	err := ValidateFile(ResourcesSchema, path)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))

	err = ValidateFile(ResourcesSchema, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`

	assert.NoError(t, ValidateJSONString(schemaContent, `{"name": "test"}`))

	err := ValidateJSONString(schemaContent, `{"age": 30}`)
	require.Error(t, err)
	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "name")
	assert.Contains(t, errorMsg, "age")
}
