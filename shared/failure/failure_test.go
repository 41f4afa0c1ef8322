package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"tick/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestBadRequest(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))

	err := failure.BadRequest(errors.New("broken body"))
	assert.EqualError(t, err, "broken body")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestValidationCarriesFields(t *testing.T) {
	err := failure.Validation(map[string]string{
		"text":      "text is required",
		"completed": "completed must be a boolean",
	})

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	fields := failure.GetFields(err)
	assert.Equal(t, "text is required", fields["text"])
	assert.Equal(t, "completed must be a boolean", fields["completed"])
}

func TestUnauthenticated(t *testing.T) {
	err := failure.Unauthenticated()

	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	assert.Nil(t, failure.GetFields(err))
}

func TestNotFound(t *testing.T) {
	err := failure.NotFound("todo not found")

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.EqualError(t, err, "todo not found")
}

func TestGetCodeWrappedFailure(t *testing.T) {
	err := fmt.Errorf("handling request: %w", failure.NotFound("todo not found"))

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.True(t, failure.IsCode(err, http.StatusNotFound))
}

func TestGetCodeUnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("boom")))
	assert.Nil(t, failure.GetFields(errors.New("boom")))
}
