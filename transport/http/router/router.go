package router

import (
	_ "riviera/docs"
	"riviera/internal/handlers/auth"
	"riviera/internal/handlers/booking"
	"riviera/internal/handlers/contact"
	"riviera/internal/handlers/draft"
	"riviera/internal/handlers/gallery"
	"riviera/internal/handlers/health"
	"riviera/internal/handlers/notification"
	"riviera/internal/handlers/payment"
	"riviera/internal/handlers/room"
	"riviera/internal/handlers/unit"
	"riviera/internal/handlers/user"
	"riviera/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Booking      booking.Handler
	Contact      contact.Handler
	Draft        draft.Handler
	Gallery      gallery.Handler
	Health       health.Handler
	Notification notification.Handler
	Payment      payment.Handler
	Room         room.Handler
	Unit         unit.Handler
	User         user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Middleware.APIKey)
		routerGroup.Use(r.Middleware.Auth)
		routerGroup.Use(r.Middleware.RBAC)

		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Unit.Router(routerGroup)
		r.DomainHandlers.Gallery.Router(routerGroup)
		r.DomainHandlers.Draft.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     authRole,
	}
}
