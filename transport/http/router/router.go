package router

import (
	"village/internal/handlers/booking"
	"village/internal/handlers/catalog"
	"village/internal/handlers/request"
	"village/internal/handlers/seller"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Booking booking.Handler
	Catalog catalog.Handler
	Seller  seller.Handler
	Request request.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Seller.Router(routerGroup)
		r.DomainHandlers.Request.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
