package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResult_MarshalFailure(t *testing.T) {
	data, err := json.Marshal(FailedParse("Could not extract sufficient text from the resume"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"Could not extract sufficient text from the resume"}`, string(data))
}

func TestParseResult_MarshalSuccessEmptyCollections(t *testing.T) {
	data, err := json.Marshal(ParseResult{Success: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"skills":[],"categorized_skills":{},"education":[],"experience":[]}`, string(data))
}

func TestParseResult_MarshalNullableFields(t *testing.T) {
	result := ParseResult{
		Success:    true,
		Skills:     []string{"Python"},
		Experience: []ExperienceRecord{{Company: StringPtr("globex")}},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), `{"job_title":null,"company":"globex","years":null}`)

	var back ParseResult
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Nil(t, back.Experience[0].JobTitle)
	assert.Equal(t, "globex", Deref(back.Experience[0].Company))
}

func TestDeref(t *testing.T) {
	assert.Equal(t, "", Deref(nil))
	assert.Equal(t, "x", Deref(StringPtr("x")))
}
