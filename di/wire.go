//go:build wireinject
// +build wireinject

package di

import (
	"riviera/config"
	"riviera/infras/jwt"
	"riviera/infras/kafka"
	"riviera/infras/mail"
	"riviera/infras/otel"
	"riviera/infras/postgres"
	"riviera/infras/redis"
	"riviera/infras/s3"
	"riviera/internal/domains/payment/gateway"
	"riviera/internal/events"
	"riviera/permissions"
	"riviera/shared/cache"
	"riviera/transport/http"
	"riviera/transport/http/middleware"
	"riviera/transport/http/router"

	bookingRepository "riviera/internal/domains/booking/repository"
	bookingService "riviera/internal/domains/booking/service"
	contactRepository "riviera/internal/domains/contact/repository"
	contactService "riviera/internal/domains/contact/service"
	draftService "riviera/internal/domains/draft/service"
	galleryRepository "riviera/internal/domains/gallery/repository"
	galleryService "riviera/internal/domains/gallery/service"
	notificationService "riviera/internal/domains/notification/service"
	paymentRepository "riviera/internal/domains/payment/repository"
	paymentService "riviera/internal/domains/payment/service"
	roomRepository "riviera/internal/domains/room/repository"
	roomService "riviera/internal/domains/room/service"
	unitRepository "riviera/internal/domains/unit/repository"
	unitService "riviera/internal/domains/unit/service"
	userRepository "riviera/internal/domains/user/repository"
	userService "riviera/internal/domains/user/service"

	authService "riviera/internal/domains/auth/service"
	authHandler "riviera/internal/handlers/auth"
	bookingHandler "riviera/internal/handlers/booking"
	contactHandler "riviera/internal/handlers/contact"
	draftHandler "riviera/internal/handlers/draft"
	galleryHandler "riviera/internal/handlers/gallery"
	healthHandler "riviera/internal/handlers/health"
	notificationHandler "riviera/internal/handlers/notification"
	paymentHandler "riviera/internal/handlers/payment"
	roomHandler "riviera/internal/handlers/room"
	unitHandler "riviera/internal/handlers/unit"
	userHandler "riviera/internal/handlers/user"

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
	mail.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var unitDomain = wire.NewSet(
	unitRepository.New,
	unitService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var draftDomain = wire.NewSet(
	draftService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	gateway.NewGateways,
	events.NewPublisher,
	paymentService.New,
)

var notificationDomain = wire.NewSet(
	notificationService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var galleryDomain = wire.NewSet(
	galleryRepository.New,
	galleryService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userRepository.NewProfile,
	userRepository.NewRole,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	roomDomain,
	unitDomain,
	bookingDomain,
	draftDomain,
	paymentDomain,
	notificationDomain,
	contactDomain,
	galleryDomain,
	userDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	contactHandler.New,
	draftHandler.New,
	galleryHandler.New,
	healthHandler.New,
	notificationHandler.New,
	paymentHandler.New,
	roomHandler.New,
	unitHandler.New,
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

func InitializeConsumer() *events.Consumer {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		redis.New,
		kafka.New,
		mail.New,
		cache.NewRedisCache,
		bookingRepository.New,
		roomRepository.New,
		notificationService.New,
		events.NewConsumer,
	)

	return &events.Consumer{}
}
