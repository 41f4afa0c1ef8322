package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	jwtMocks "tick/infras/jwt/mocks"
	"tick/infras/otel/mocks"
	"tick/internal/domains/auth/model/dto"
	"tick/internal/domains/auth/service"
	tokenMocks "tick/internal/domains/token/mocks"
	userMocks "tick/internal/domains/user/mocks"
	userModel "tick/internal/domains/user/model"
	gDto "tick/shared/dto"
	"tick/shared/failure"
	gModel "tick/shared/model"
	"tick/shared/timezone"
)

// bcrypt hash of "password"
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

func TestAuthService_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockTokenRepo := tokenMocks.NewMockToken(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, mockTokenRepo, mockJWT, mockOtel)

	tests := []struct {
		name      string
		req       dto.SignupRequest
		setupMock func()
		wantErr   string
	}{
		{
			name: "successful signup",
			req: dto.SignupRequest{
				Email:    "New@Example.com",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockJWT.EXPECT().
					Issue(gomock.Any()).
					Return("signed-token", nil)

				mockTokenRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "email already registered",
			req: dto.SignupRequest{
				Email:    "taken@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: "email already registered",
		},
		{
			name: "concurrent signup loses the unique-index race",
			req: dto.SignupRequest{
				Email:    "raced@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505"})
			},
			wantErr: "email already registered",
		},
		{
			name: "store failure on lookup",
			req: dto.SignupRequest{
				Email:    "new@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("connection refused"))
			},
			wantErr: "failed to look up email: connection refused",
		},
		{
			name: "token persistence failure",
			req: dto.SignupRequest{
				Email:    "new@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockJWT.EXPECT().
					Issue(gomock.Any()).
					Return("signed-token", nil)

				mockTokenRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("connection refused"))
			},
			wantErr: "failed to persist token: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Signup(context.Background(), tt.req)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "signed-token", res.Token)
			assert.Equal(t, "new@example.com", res.User.Email)
			assert.NotEmpty(t, res.User.ID)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockTokenRepo := tokenMocks.NewMockToken(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, mockTokenRepo, mockJWT, mockOtel)

	validUser := userModel.User{
		ID:       "user-id-123",
		Email:    "test@example.com",
		Password: passwordHash,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "user-id-123",
			ModifiedBy: "user-id-123",
		},
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   string
	}{
		{
			name: "successful login",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validUser, nil)

				mockJWT.EXPECT().
					Issue(validUser.ID).
					Return("signed-token", nil)

				mockTokenRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unknown email",
			req: dto.LoginRequest{
				Email:    "nobody@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: "invalid email or password",
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "not-the-password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validUser, nil)
			},
			wantErr: "invalid email or password",
		},
		{
			name: "store failure",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, errors.New("connection refused"))
			},
			wantErr: "failed to look up email: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "signed-token", res.Token)
			assert.Equal(t, validUser.ID, res.User.ID)
			assert.Equal(t, validUser.Email, res.User.Email)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockTokenRepo := tokenMocks.NewMockToken(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, mockTokenRepo, mockJWT, mockOtel)

	sess := gDto.Session{
		UserID: "user-id-123",
		Email:  "test@example.com",
		Token:  "signed-token",
	}

	t.Run("revokes the session token", func(t *testing.T) {
		mockTokenRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Logout(context.Background(), sess)
		assert.NoError(t, err)
	})

	t.Run("store failure", func(t *testing.T) {
		mockTokenRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))

		err := svc.Logout(context.Background(), sess)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
