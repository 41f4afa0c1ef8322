package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tick/internal/domains/auth/model/dto"
	userModel "tick/internal/domains/user/model"
)

func TestSignupRequest_ToUserModel(t *testing.T) {
	req := dto.SignupRequest{
		Email:    "  Test@Example.COM ",
		Password: "password",
	}

	user := req.ToUserModel("hashed-password")

	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "hashed-password", user.Password)
	assert.NotEmpty(t, user.ID)

	// A fresh account is its own audit actor.
	assert.Equal(t, user.ID, user.CreatedBy)
	assert.Equal(t, user.ID, user.ModifiedBy)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestAuthResponse_FromModel(t *testing.T) {
	user := userModel.User{
		ID:       "user-id-123",
		Email:    "test@example.com",
		Password: "hashed-password",
	}

	var response dto.AuthResponse
	response.FromModel(user, "signed-token")

	assert.Equal(t, user.ID, response.User.ID)
	assert.Equal(t, user.Email, response.User.Email)
	assert.Equal(t, "signed-token", response.Token)
}
