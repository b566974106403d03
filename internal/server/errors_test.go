package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-roadmap/internal/types"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "level", Message: "failed oneof"}
	assert.Equal(t, "validation error: level - failed oneof", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrNotFound(t *testing.T) {
	err := &ErrNotFound{Resource: "roadmap", UserID: "u-1"}
	assert.Equal(t, "roadmap not found for user: u-1", err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestErrPersistenceDisabled(t *testing.T) {
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(&ErrPersistenceDisabled{}))
}

func TestHTTPStatus_Default(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestValidationError_FromValidator(t *testing.T) {
	req := types.RankRequest{Skill: "go", Level: "guru"}
	err := validationError(req.Validate())

	var verr *ErrValidation
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "level", verr.Field)
	assert.Contains(t, verr.Message, "oneof")
}

func TestValidationError_Other(t *testing.T) {
	err := validationError(errors.New("weird"))

	var verr *ErrValidation
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "body", verr.Field)
}
