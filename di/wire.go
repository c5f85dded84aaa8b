//go:build wireinject
// +build wireinject

package di

import (
	"ourstory/config"
	"ourstory/infras/otel"
	"ourstory/infras/postgres"
	"ourstory/infras/redis"
	"ourstory/internal/domains/schema"
	"ourstory/shared/cache"
	"ourstory/transport/http"
	"ourstory/transport/http/middleware"
	"ourstory/transport/http/router"

	journalRepository "ourstory/internal/domains/journal/repository"
	journalService "ourstory/internal/domains/journal/service"
	snapshotService "ourstory/internal/domains/snapshot/service"
	taskRepository "ourstory/internal/domains/task/repository"
	taskService "ourstory/internal/domains/task/service"

	journalHandler "ourstory/internal/handlers/journal"
	snapshotHandler "ourstory/internal/handlers/snapshot"
	systemHandler "ourstory/internal/handlers/system"
	taskHandler "ourstory/internal/handlers/task"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.Transactor), new(*postgres.Connection)),
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var taskDomain = wire.NewSet(
	taskRepository.New,
	taskService.New,
)

var journalDomain = wire.NewSet(
	journalRepository.New,
	journalService.New,
)

var domains = wire.NewSet(
	taskDomain,
	journalDomain,
	snapshotService.New,
	schema.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	taskHandler.New,
	journalHandler.New,
	snapshotHandler.New,
	systemHandler.New,
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
