package router

import (
	"fieldservice/internal/handlers/auth"
	"fieldservice/internal/handlers/customer"
	"fieldservice/internal/handlers/payment"
	"fieldservice/internal/handlers/quote"
	"fieldservice/internal/handlers/servicerequest"
	"fieldservice/internal/handlers/technician"
	"fieldservice/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth           auth.Handler
	User           user.Handler
	Customer       customer.Handler
	Technician     technician.Handler
	ServiceRequest servicerequest.Handler
	Quote          quote.Handler
	Payment        payment.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Technician.Router(routerGroup)
		r.DomainHandlers.ServiceRequest.Router(routerGroup)
		r.DomainHandlers.Quote.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
