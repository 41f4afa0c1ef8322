package user

import (
	"net/http"

	"tick/infras/otel"
	"tick/internal/domains/auth/model/dto"
	"tick/internal/domains/auth/service"
	userDto "tick/internal/domains/user/model/dto"
	"tick/shared/constant"
	gDto "tick/shared/dto"
	"tick/shared/failure"
	"tick/shared/validator"
	"tick/transport/http/middleware"
	"tick/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Auth
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Auth, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Signup)
		routerGroup.Post("/login", handler.Login)

		routerGroup.Group(func(authed chi.Router) {
			authed.Use(handler.middleware.Auth)
			authed.Get("/me", handler.Me)
			authed.Delete("/me/token", handler.Logout)
		})
	})
}

// Signup registers a new account and opens its first session. The fresh
// token is returned in the x-auth-token response header.
func (handler *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Signup")
	defer scope.End()

	req := dto.SignupRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Signup(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign up")

		response.WithError(w, err)

		return
	}

	w.Header().Set(constant.RequestHeaderAuthToken, res.Token)
	response.WithJSON(w, http.StatusOK, userDto.UserEnvelope{User: res.User})
}

// Login opens a new session for an existing account.
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to log in")

		response.WithError(w, err)

		return
	}

	w.Header().Set(constant.RequestHeaderAuthToken, res.Token)
	response.WithJSON(w, http.StatusOK, userDto.UserEnvelope{User: res.User})
}

// Me echoes back the identity the session token resolved to.
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	sess, ok := gDto.SessionFromContext(r.Context())
	if !ok {
		response.WithError(w, failure.Unauthenticated())

		return
	}

	response.WithJSON(w, http.StatusOK, userDto.UserEnvelope{
		User: userDto.UserResponse{
			ID:    sess.UserID,
			Email: sess.Email,
		},
	})
}

// Logout revokes the session token the request authenticated with.
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	sess, ok := gDto.SessionFromContext(r.Context())
	if !ok {
		response.WithError(w, failure.Unauthenticated())

		return
	}

	if err := handler.service.Logout(ctx, sess); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to log out")

		response.WithError(w, err)

		return
	}

	w.WriteHeader(http.StatusOK)
}
