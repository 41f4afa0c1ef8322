package dto

import "tick/internal/domains/user/model"

// UserResponse is the public shape of a user: identity and email only.
// The password hash and the token list never leave the service.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
}

// UserEnvelope wraps a user for response bodies.
type UserEnvelope struct {
	User UserResponse `json:"user"`
}
