//go:build wireinject
// +build wireinject

package di

import (
	"slotbook/config"
	"slotbook/infras/kafka"
	"slotbook/infras/otel"
	"slotbook/shared/cache"
	"slotbook/shared/timezone"
	"slotbook/transport/http"
	"slotbook/transport/http/middleware"
	"slotbook/transport/http/router"

	bookingRepository "slotbook/internal/domains/booking/repository"
	bookingService "slotbook/internal/domains/booking/service"
	notificationService "slotbook/internal/domains/notification/service"
	bookingHandler "slotbook/internal/handlers/booking"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	kafka.New,
	timezone.NewClock,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		bookingDomain,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}

func InitializeNotifier() notificationService.Notification {
	wire.Build(
		configurations,
		otel.New,
		kafka.New,
		notificationService.New,
	)

	return nil
}
