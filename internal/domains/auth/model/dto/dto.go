package dto

import (
	"strings"

	userModel "tick/internal/domains/user/model"
	userDto "tick/internal/domains/user/model/dto"
	"tick/shared/model"
	"tick/shared/timezone"

	"github.com/google/uuid"
)

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ToUserModel builds the persisted user from a signup request. The caller
// supplies the already-hashed password; the plaintext never reaches the
// model layer.
func (r SignupRequest) ToUserModel(hashedPassword string) userModel.User {
	id := uuid.NewString()
	now := timezone.Now()

	return userModel.User{
		ID:       id,
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: hashedPassword,
		Metadata: model.Metadata{
			CreatedAt:  now,
			CreatedBy:  id,
			ModifiedAt: now,
			ModifiedBy: id,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is the result of a successful signup or login. Only the user
// is rendered in the body; the token travels in the x-auth-token response
// header.
type AuthResponse struct {
	User  userDto.UserResponse `json:"user"`
	Token string               `json:"-"`
}

func (r *AuthResponse) FromModel(user userModel.User, token string) {
	r.User.FromModel(user)
	r.Token = token
}
