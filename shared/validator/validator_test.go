package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"tick/shared/failure"
	"tick/shared/validator"

	"github.com/stretchr/testify/assert"
)

type signupBody struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestValidateOK(t *testing.T) {
	body := strings.NewReader(`{"email":"a@example.com","password":"secret1"}`)

	var req signupBody
	err := validator.Validate(body, &req)

	assert.NoError(t, err)
	assert.Equal(t, "a@example.com", req.Email)
}

func TestValidateMalformedJSON(t *testing.T) {
	body := strings.NewReader(`{"email":`)

	var req signupBody
	err := validator.Validate(body, &req)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestValidateFieldMessagesUseJSONNames(t *testing.T) {
	body := strings.NewReader(`{"email":"not-an-email","password":"abc"}`)

	var req signupBody
	err := validator.Validate(body, &req)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	fields := failure.GetFields(err)
	assert.Equal(t, "email must be a valid email address", fields["email"])
	assert.Equal(t, "password must be greater than or equal to 6", fields["password"])
}

func TestValidateMissingRequired(t *testing.T) {
	body := strings.NewReader(`{}`)

	var req signupBody
	err := validator.Validate(body, &req)

	fields := failure.GetFields(err)
	assert.Equal(t, "email is required", fields["email"])
	assert.Equal(t, "password is required", fields["password"])
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("a@example.com", "required,email"))
	assert.Error(t, validator.ValidateVar("nope", "required,email"))
}
