package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tick/infras/jwt"
	jwtMocks "tick/infras/jwt/mocks"
	"tick/infras/otel/mocks"
	tokenMocks "tick/internal/domains/token/mocks"
	userMocks "tick/internal/domains/user/mocks"
	userModel "tick/internal/domains/user/model"
	gDto "tick/shared/dto"
	"tick/transport/http/middleware"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockTokenRepo := tokenMocks.NewMockToken(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	auth := middleware.NewAuthMiddleware(mockJWT, mockTokenRepo, mockUserRepo, mockOtel)

	claims := &jwt.Claims{UserID: "user-id-123", Access: "auth"}

	user := userModel.User{
		ID:    "user-id-123",
		Email: "test@example.com",
	}

	tests := []struct {
		name       string
		token      string
		setupMock  func()
		wantStatus int
	}{
		{
			name:       "missing header",
			token:      "",
			setupMock:  func() {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:  "unverifiable token",
			token: "garbage",
			setupMock: func() {
				mockJWT.EXPECT().
					Verify("garbage").
					Return(nil, jwt.ErrInvalidToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:  "revoked token",
			token: "revoked-token",
			setupMock: func() {
				mockJWT.EXPECT().
					Verify("revoked-token").
					Return(claims, nil)

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockTokenRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:  "token list lookup failure",
			token: "signed-token",
			setupMock: func() {
				mockJWT.EXPECT().
					Verify("signed-token").
					Return(claims, nil)

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockTokenRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("connection refused"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:  "user no longer exists",
			token: "signed-token",
			setupMock: func() {
				mockJWT.EXPECT().
					Verify("signed-token").
					Return(claims, nil)

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:  "honored token",
			token: "signed-token",
			setupMock: func() {
				mockJWT.EXPECT().
					Verify("signed-token").
					Return(claims, nil)

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockTokenRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			var sess gDto.Session
			var sessOK bool

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				sess, sessOK = gDto.SessionFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			request := httptest.NewRequest(http.MethodGet, "/todos", nil)
			if tt.token != "" {
				request.Header.Set("x-auth-token", tt.token)
			}

			recorder := httptest.NewRecorder()
			auth.Auth(next).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusUnauthorized {
				assert.Empty(t, recorder.Body.String())

				return
			}

			require.True(t, sessOK)
			assert.Equal(t, "user-id-123", sess.UserID)
			assert.Equal(t, "test@example.com", sess.Email)
			assert.Equal(t, tt.token, sess.Token)
		})
	}
}
