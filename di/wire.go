//go:build wireinject
// +build wireinject

package di

import (
	"aset/config"
	"aset/infras/jwt"
	"aset/infras/kafka"
	"aset/infras/otel"
	"aset/infras/postgres"
	"aset/infras/redis"
	"aset/infras/s3"
	"aset/internal/access"
	"aset/permissions"
	"aset/shared/cache"
	"aset/transport/http"
	"aset/transport/http/middleware"
	"aset/transport/http/router"

	assetRepository "aset/internal/domains/asset/repository"
	assetService "aset/internal/domains/asset/service"
	authService "aset/internal/domains/auth/service"
	locationRepository "aset/internal/domains/location/repository"
	locationService "aset/internal/domains/location/service"
	maintenanceRepository "aset/internal/domains/maintenance/repository"
	maintenanceService "aset/internal/domains/maintenance/service"
	propertyRepository "aset/internal/domains/property/repository"
	propertyService "aset/internal/domains/property/service"
	reportService "aset/internal/domains/report/service"
	userRepository "aset/internal/domains/user/repository"
	userService "aset/internal/domains/user/service"

	assetHandler "aset/internal/handlers/asset"
	authHandler "aset/internal/handlers/auth"
	locationHandler "aset/internal/handlers/location"
	maintenanceHandler "aset/internal/handlers/maintenance"
	propertyHandler "aset/internal/handlers/property"
	reportHandler "aset/internal/handlers/report"
	userHandler "aset/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	access.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
)

var locationDomain = wire.NewSet(
	locationRepository.New,
	locationService.New,
)

var assetDomain = wire.NewSet(
	assetRepository.New,
	assetService.New,
)

var maintenanceDomain = wire.NewSet(
	maintenanceRepository.New,
	maintenanceService.New,
)

var userDomain = wire.NewSet(
	userRepository.NewProfile,
	userRepository.NewAssignment,
	userService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var domains = wire.NewSet(
	authDomain,
	propertyDomain,
	locationDomain,
	assetDomain,
	maintenanceDomain,
	userDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	propertyHandler.New,
	locationHandler.New,
	assetHandler.New,
	maintenanceHandler.New,
	userHandler.New,
	reportHandler.New,
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
