package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tick/infras/jwt"
	"tick/infras/otel"
	"tick/internal/domains/auth/model/dto"
	tokenModel "tick/internal/domains/token/model"
	tokenRepository "tick/internal/domains/token/repository"
	userModel "tick/internal/domains/user/model"
	userRepository "tick/internal/domains/user/repository"
	"tick/shared"
	"tick/shared/constant"
	gDto "tick/shared/dto"
	"tick/shared/failure"
	sharedModel "tick/shared/model"
	"tick/shared/password"
	"tick/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	msgEmailTaken        = "email already registered"
	msgBadCredentials    = "invalid email or password"
	msgFailedIssueToken  = "failed to issue token"
	msgFailedCreateUser  = "failed to create user"
	msgFailedLookupEmail = "failed to look up email"
)

// Auth owns the account lifecycle: signup, login and logout. Signup and
// login both end with a fresh persisted token; logout revokes exactly the
// token the request authenticated with.
type Auth interface {
	Signup(ctx context.Context, req dto.SignupRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
	Logout(ctx context.Context, sess gDto.Session) error
}

type serviceImpl struct {
	userRepo  userRepository.User
	tokenRepo tokenRepository.Token
	jwt       jwt.JWT
	otel      otel.Otel
}

func New(userRepo userRepository.User, tokenRepo tokenRepository.Token, jwt jwt.JWT, otel otel.Otel) Auth {
	return &serviceImpl{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		jwt:       jwt,
		otel:      otel,
	}
}

func (s *serviceImpl) Signup(ctx context.Context, req dto.SignupRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Signup")
	defer scope.End()
	defer scope.TraceIfError(err)

	email := strings.ToLower(strings.TrimSpace(req.Email))

	exist, err := s.userRepo.Exist(ctx, emailFilter(email))
	if err != nil {
		log.Error().Err(err).Msg(msgFailedLookupEmail)

		return res, failure.BadRequest(fmt.Errorf("%s: %w", msgFailedLookupEmail, err)) // nolint:wrapcheck
	}

	if exist {
		return res, failure.BadRequestFromString(msgEmailTaken) // nolint:wrapcheck
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, failure.BadRequest(fmt.Errorf("failed to hash password: %w", err)) // nolint:wrapcheck
	}

	user := req.ToUserModel(hashed)

	if err = s.userRepo.Insert(ctx, user); err != nil {
		// Concurrent signups with the same email race past the Exist check
		// and land on the unique index instead.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.BadRequestFromString(msgEmailTaken) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg(msgFailedCreateUser)

		return res, failure.BadRequest(fmt.Errorf("%s: %w", msgFailedCreateUser, err)) // nolint:wrapcheck
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return res, err
	}

	res.FromModel(user, token)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.Get(ctx, emailFilter(email))
	if err != nil {
		log.Error().Err(err).Msg(msgFailedLookupEmail)

		return res, failure.BadRequest(fmt.Errorf("%s: %w", msgFailedLookupEmail, err)) // nolint:wrapcheck
	}

	// An unknown email and a wrong password answer identically.
	if user.ID == "" {
		return res, failure.BadRequestFromString(msgBadCredentials) // nolint:wrapcheck
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		return res, failure.BadRequestFromString(msgBadCredentials) // nolint:wrapcheck
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return res, err
	}

	res.FromModel(user, token)

	return res, nil
}

// Logout deletes the persisted row for the session's own token. Deleting an
// already-revoked token is a no-op, so logout is idempotent.
func (s *serviceImpl) Logout(ctx context.Context, sess gDto.Session) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    tokenModel.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    sess.UserID,
				Table:    tokenModel.TableName,
			},
			gDto.Filter{
				Field:    tokenModel.FieldToken,
				Operator: gDto.FilterOperatorEq,
				Value:    sess.Token,
				Table:    tokenModel.TableName,
			},
		},
	}

	if err = s.tokenRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to revoke token")

		return failure.BadRequest(fmt.Errorf("failed to revoke token: %w", err)) // nolint:wrapcheck
	}

	return nil
}

// issueToken signs a fresh token for the user and persists it. The token is
// only honored while its row exists.
func (s *serviceImpl) issueToken(ctx context.Context, user userModel.User) (string, error) {
	signed, err := s.jwt.Issue(user.ID)
	if err != nil {
		log.Error().Err(err).Msg(msgFailedIssueToken)

		return "", failure.BadRequest(fmt.Errorf("%s: %w", msgFailedIssueToken, err)) // nolint:wrapcheck
	}

	now := timezone.Now()

	row := tokenModel.Token{
		ID:     uuid.NewString(),
		UserID: user.ID,
		Access: constant.TokenAccessAuth,
		Token:  signed,
		Metadata: sharedModel.Metadata{
			CreatedAt:  now,
			CreatedBy:  user.ID,
			ModifiedAt: now,
			ModifiedBy: user.ID,
		},
	}

	if err := s.tokenRepo.Insert(ctx, row); err != nil {
		log.Error().Err(err).Msg("failed to persist token")

		return "", failure.BadRequest(fmt.Errorf("failed to persist token: %w", err)) // nolint:wrapcheck
	}

	return signed, nil
}

func emailFilter(email string) gDto.FilterGroup {
	return shared.FilterByID(email, userModel.FieldEmail, userModel.TableName)
}
