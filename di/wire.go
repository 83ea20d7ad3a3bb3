//go:build wireinject
// +build wireinject

package di

import (
	"fieldservice/config"
	"fieldservice/infras/jwt"
	"fieldservice/infras/kafka"
	"fieldservice/infras/otel"
	"fieldservice/infras/postgres"
	"fieldservice/infras/redis"
	"fieldservice/infras/s3"
	"fieldservice/permissions"
	"fieldservice/shared/cache"
	"fieldservice/transport/http"
	"fieldservice/transport/http/middleware"
	"fieldservice/transport/http/router"
	"fieldservice/transport/scheduler"

	"github.com/google/wire"

	authService "fieldservice/internal/domains/auth/service"
	customerRepository "fieldservice/internal/domains/customer/repository"
	customerService "fieldservice/internal/domains/customer/service"
	notificationService "fieldservice/internal/domains/notification/service"
	paymentRepository "fieldservice/internal/domains/payment/repository"
	paymentService "fieldservice/internal/domains/payment/service"
	quoteRepository "fieldservice/internal/domains/quote/repository"
	quoteService "fieldservice/internal/domains/quote/service"
	requestRepository "fieldservice/internal/domains/servicerequest/repository"
	requestService "fieldservice/internal/domains/servicerequest/service"
	technicianRepository "fieldservice/internal/domains/technician/repository"
	technicianService "fieldservice/internal/domains/technician/service"
	userRepository "fieldservice/internal/domains/user/repository"
	userService "fieldservice/internal/domains/user/service"

	authHandler "fieldservice/internal/handlers/auth"
	customerHandler "fieldservice/internal/handlers/customer"
	paymentHandler "fieldservice/internal/handlers/payment"
	quoteHandler "fieldservice/internal/handlers/quote"
	requestHandler "fieldservice/internal/handlers/servicerequest"
	technicianHandler "fieldservice/internal/handlers/technician"
	userHandler "fieldservice/internal/handlers/user"
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
)

var repositories = wire.NewSet(
	userRepository.New,
	customerRepository.New,
	technicianRepository.New,
	requestRepository.New,
	quoteRepository.New,
	paymentRepository.New,
)

var domains = wire.NewSet(
	notificationService.New,
	authService.New,
	userService.New,
	customerService.New,
	technicianService.New,
	requestService.New,
	quoteService.New,
	paymentService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	customerHandler.New,
	technicianHandler.New,
	requestHandler.New,
	quoteHandler.New,
	paymentHandler.New,
	router.New,
)

func InitializeService() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		routing,
		http.New,
		scheduler.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
