//go:build wireinject
// +build wireinject

package di

import (
	"tick/config"
	"tick/infras/jwt"
	"tick/infras/otel"
	"tick/infras/postgres"
	"tick/infras/redis"
	"tick/shared/cache"
	"tick/transport/http"
	"tick/transport/http/middleware"
	"tick/transport/http/router"

	authService "tick/internal/domains/auth/service"
	todoRepository "tick/internal/domains/todo/repository"
	todoService "tick/internal/domains/todo/service"
	tokenRepository "tick/internal/domains/token/repository"
	userRepository "tick/internal/domains/user/repository"
	todoHandler "tick/internal/handlers/todo"
	userHandler "tick/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	tokenRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	todoDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	todoHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
