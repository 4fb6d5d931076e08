// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"village/config"
	"village/infras/jwt"
	"village/infras/kafka"
	"village/infras/otel"
	"village/infras/postgres"
	"village/infras/redis"
	"village/internal/domains/booking/repository"
	"village/internal/domains/booking/service"
	repository3 "village/internal/domains/profile/repository"
	repository5 "village/internal/domains/request/repository"
	service4 "village/internal/domains/request/service"
	repository4 "village/internal/domains/seller/repository"
	service3 "village/internal/domains/seller/service"
	repository2 "village/internal/domains/service/repository"
	service2 "village/internal/domains/service/service"
	"village/internal/handlers/booking"
	"village/internal/handlers/catalog"
	"village/internal/handlers/request"
	"village/internal/handlers/seller"
	"village/permissions"
	"village/shared/cache"
	"village/transport/http"
	"village/transport/http/middleware"
	"village/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryBooking := repository.New(connection, otelOtel)
	repositoryService := repository2.New(connection, otelOtel)
	profile := repository3.New(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	kafkaClient := kafka.New(configConfig)
	serviceBooking := service.New(repositoryBooking, repositoryService, profile, configConfig, redisCache, kafkaClient, otelOtel)
	handler := booking.New(serviceBooking, otelOtel)
	serviceService := service2.New(repositoryService, configConfig, redisCache, otelOtel)
	catalogHandler := catalog.New(serviceService, otelOtel)
	repositorySeller := repository4.New(connection, otelOtel)
	serviceSeller := service3.New(repositorySeller, otelOtel)
	sellerHandler := seller.New(serviceSeller, serviceService, otelOtel)
	repositoryRequest := repository5.New(connection, otelOtel)
	serviceRequest := service4.New(repositoryRequest, otelOtel)
	requestHandler := request.New(serviceRequest, otelOtel)
	domainHandlers := router.DomainHandlers{
		Booking: handler,
		Catalog: catalogHandler,
		Seller:  sellerHandler,
		Request: requestHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	jwtJWT := jwt.New(configConfig)
	permissionData := permissions.Get()
	authRole := middleware.NewAuthRoleMiddleware(jwtJWT, otelOtel, permissionData, configConfig)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware, authRole)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get, permissions.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, kafka.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthRoleMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var bookingDomain = wire.NewSet(repository.New, repository3.New, service.New)

var serviceDomain = wire.NewSet(repository2.New, service2.New)

var sellerDomain = wire.NewSet(repository4.New, service3.New)

var requestDomain = wire.NewSet(repository5.New, service4.New)

var domains = wire.NewSet(
	bookingDomain,
	serviceDomain,
	sellerDomain,
	requestDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), booking.New, catalog.New, seller.New, request.New, router.New)
