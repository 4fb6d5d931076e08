//go:build wireinject
// +build wireinject

package di

import (
	"village/config"
	"village/infras/jwt"
	"village/infras/kafka"
	"village/infras/otel"
	"village/infras/postgres"
	"village/infras/redis"
	"village/permissions"
	"village/shared/cache"
	"village/transport/http"
	"village/transport/http/middleware"
	"village/transport/http/router"

	bookingRepository "village/internal/domains/booking/repository"
	bookingService "village/internal/domains/booking/service"
	profileRepository "village/internal/domains/profile/repository"
	requestRepository "village/internal/domains/request/repository"
	requestService "village/internal/domains/request/service"
	sellerRepository "village/internal/domains/seller/repository"
	sellerService "village/internal/domains/seller/service"
	serviceRepository "village/internal/domains/service/repository"
	serviceService "village/internal/domains/service/service"

	bookingHandler "village/internal/handlers/booking"
	catalogHandler "village/internal/handlers/catalog"
	requestHandler "village/internal/handlers/request"
	sellerHandler "village/internal/handlers/seller"

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
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	profileRepository.New,
	bookingService.New,
)

var serviceDomain = wire.NewSet(
	serviceRepository.New,
	serviceService.New,
)

var sellerDomain = wire.NewSet(
	sellerRepository.New,
	sellerService.New,
)

var requestDomain = wire.NewSet(
	requestRepository.New,
	requestService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	serviceDomain,
	sellerDomain,
	requestDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	catalogHandler.New,
	sellerHandler.New,
	requestHandler.New,
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
