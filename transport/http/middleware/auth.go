package middleware

import (
	"net/http"

	"tick/infras/jwt"
	"tick/infras/otel"
	tokenModel "tick/internal/domains/token/model"
	tokenRepository "tick/internal/domains/token/repository"
	userModel "tick/internal/domains/user/model"
	userRepository "tick/internal/domains/user/repository"
	"tick/shared"
	"tick/shared/constant"
	gDto "tick/shared/dto"
	"tick/shared/failure"
	"tick/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Auth resolves the x-auth-token header into a session. A token is honored
// only when its signature verifies AND the exact token string still exists
// in the user's persisted token list; a revoked token fails even while the
// signature is valid. Every failure answers 401 with an empty body.
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	tokenRepo  tokenRepository.Token
	userRepo   userRepository.User
	otel       otel.Otel
}

func NewAuthMiddleware(jwtService jwt.JWT, tokenRepo tokenRepository.Token, userRepo userRepository.User, otel otel.Otel) Auth {
	return &authImpl{
		jwtService: jwtService,
		tokenRepo:  tokenRepo,
		userRepo:   userRepo,
		otel:       otel,
	}
}

func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		tokenString := request.Header.Get(constant.RequestHeaderAuthToken)
		if tokenString == "" {
			m.reject(writer, scope)

			return
		}

		claims, err := m.jwtService.Verify(tokenString)
		if err != nil {
			m.reject(writer, scope)

			return
		}

		user, err := m.userRepo.Get(ctx, shared.FilterByID(claims.UserID, userModel.FieldID, userModel.TableName))
		if err != nil || user.ID == "" {
			m.reject(writer, scope)

			return
		}

		honored, err := m.tokenRepo.Exist(ctx, tokenFilter(user.ID, tokenString))
		if err != nil {
			log.Error().Err(err).Msg("failed to check token list")
			m.reject(writer, scope)

			return
		}

		if !honored {
			m.reject(writer, scope)

			return
		}

		sess := gDto.Session{
			UserID: user.ID,
			Email:  user.Email,
			Token:  tokenString,
		}

		next.ServeHTTP(writer, request.WithContext(gDto.NewSessionContext(ctx, sess)))
	})
}

func (m *authImpl) reject(writer http.ResponseWriter, scope otel.Scope) {
	err := failure.Unauthenticated()
	scope.TraceError(err)

	response.WithError(writer, err)
}

func tokenFilter(userID, token string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    tokenModel.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    tokenModel.TableName,
			},
			gDto.Filter{
				Field:    tokenModel.FieldToken,
				Operator: gDto.FilterOperatorEq,
				Value:    token,
				Table:    tokenModel.TableName,
			},
		},
	}
}
