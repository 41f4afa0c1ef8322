package user_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tick/infras/otel/mocks"
	authMocks "tick/internal/domains/auth/mocks"
	"tick/internal/domains/auth/model/dto"
	userDto "tick/internal/domains/user/model/dto"
	"tick/internal/handlers/user"
	"tick/shared/failure"
)

func TestUserHandler_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := authMocks.NewMockAuth(ctrl)
	mockOtel := mocks.NewOtel()

	handler := user.New(mockAuth, nil, mockOtel)

	t.Run("returns the user and the token header", func(t *testing.T) {
		mockAuth.EXPECT().
			Signup(gomock.Any(), dto.SignupRequest{Email: "a@example.com", Password: "secret1"}).
			Return(dto.AuthResponse{
				User:  userDto.UserResponse{ID: "user-id-123", Email: "a@example.com"},
				Token: "signed-token",
			}, nil)

		request := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"email":"a@example.com","password":"secret1"}`))
		recorder := httptest.NewRecorder()

		handler.Signup(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "signed-token", recorder.Header().Get("x-auth-token"))
		assert.JSONEq(t, `{"user":{"id":"user-id-123","email":"a@example.com"}}`, recorder.Body.String())
		assert.NotContains(t, recorder.Body.String(), "password")
	})

	t.Run("validation failure sets no token header", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"email":"not-an-email","password":"secret1"}`))
		recorder := httptest.NewRecorder()

		handler.Signup(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Empty(t, recorder.Header().Get("x-auth-token"))
		assert.JSONEq(t, `{"errors":{"email":"email must be a valid email address"}}`, recorder.Body.String())
	})
}

func TestUserHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := authMocks.NewMockAuth(ctrl)
	mockOtel := mocks.NewOtel()

	handler := user.New(mockAuth, nil, mockOtel)

	t.Run("returns the user and the token header", func(t *testing.T) {
		mockAuth.EXPECT().
			Login(gomock.Any(), dto.LoginRequest{Email: "a@example.com", Password: "secret1"}).
			Return(dto.AuthResponse{
				User:  userDto.UserResponse{ID: "user-id-123", Email: "a@example.com"},
				Token: "signed-token",
			}, nil)

		request := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(`{"email":"a@example.com","password":"secret1"}`))
		recorder := httptest.NewRecorder()

		handler.Login(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "signed-token", recorder.Header().Get("x-auth-token"))
		assert.JSONEq(t, `{"user":{"id":"user-id-123","email":"a@example.com"}}`, recorder.Body.String())
		assert.NotContains(t, recorder.Body.String(), "password")
	})

	t.Run("invalid credentials set no token header", func(t *testing.T) {
		mockAuth.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(dto.AuthResponse{}, failure.BadRequestFromString("invalid email or password"))

		request := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(`{"email":"a@example.com","password":"wrong"}`))
		recorder := httptest.NewRecorder()

		handler.Login(recorder, request)

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Empty(t, recorder.Header().Get("x-auth-token"))
		assert.JSONEq(t, `{"error":"invalid email or password"}`, recorder.Body.String())
	})
}
