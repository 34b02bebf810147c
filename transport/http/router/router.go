package router

import (
	_ "aset/docs"
	"aset/internal/handlers/asset"
	"aset/internal/handlers/auth"
	"aset/internal/handlers/location"
	"aset/internal/handlers/maintenance"
	"aset/internal/handlers/property"
	"aset/internal/handlers/report"
	"aset/internal/handlers/user"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Property    property.Handler
	Location    location.Handler
	Asset       asset.Handler
	Maintenance maintenance.Handler
	User        user.Handler
	Report      report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Property.Router(routerGroup)
		r.DomainHandlers.Location.Router(routerGroup)
		r.DomainHandlers.Asset.Router(routerGroup)
		r.DomainHandlers.Maintenance.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
