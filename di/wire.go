//go:build wireinject
// +build wireinject

package di

import (
	"tick/config"
	"tick/infras/jwt"
	"tick/infras/kafka"
	"tick/infras/otel"
	"tick/infras/postgres"
	"tick/infras/redis"
	todoHandler "tick/internal/handlers/todo"
	"tick/shared/cache"
	"tick/transport/http"
	"tick/transport/http/middleware"
	"tick/transport/http/router"

	todoEvent "tick/internal/domains/todo/event"
	todoRepository "tick/internal/domains/todo/repository"
	todoService "tick/internal/domains/todo/service"

	"github.com/google/wire"

	authService "tick/internal/domains/auth/service"
	userRepository "tick/internal/domains/user/repository"
	authHandler "tick/internal/handlers/auth"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
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
	todoEvent.New,
	todoService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	todoDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	todoHandler.New,
	authHandler.New,
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
