package router

import (
	"net/http"

	"github.com/freshai/laundryfront/internal/client"
	"github.com/freshai/laundryfront/internal/config"
	"github.com/freshai/laundryfront/internal/network/handlers"
	"github.com/freshai/laundryfront/internal/network/middleware"
	"github.com/freshai/laundryfront/internal/services"
	"github.com/freshai/laundryfront/internal/storage"
	"github.com/go-chi/chi/v5"

	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config   config.Config
	Sessions services.SessionsService
	Booking  services.BookingService
	Admin    services.AdminService
	Geocoder services.GeocoderService
}

func NewRouter(config config.Config, sessions storage.SessionsStorage) *Router {
	api := client.NewClient(config.Backend.BackendAddr, &http.Client{})
	return &Router{
		Config:   config,
		Sessions: services.NewSessions(config, api, sessions),
		Booking:  services.NewBooking(api),
		Admin:    services.NewAdmin(api),
		Geocoder: services.NewGeocoder(config.Geocode.GeocodeAddr),
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Sessions.GetTokenAuth()
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Post("/user/register", handlers.RegisterUserHandler(router.Sessions))
		r.Post("/user/login", handlers.AuthenticateUserHandler(router.Sessions))
		r.Get("/services", handlers.CatalogHandler())
		r.Get("/orders/quote", handlers.QuoteHandler(router.Booking))
		r.Get("/geocode", handlers.GeocodeHandler(router.Geocoder))
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(jwtauth.Authenticator(ja))
			r.Post("/user/logout", handlers.LogoutUserHandler(router.Sessions))
			r.Get("/user/me", handlers.CurrentUserHandler(router.Sessions))
			r.Post("/orders", handlers.NewOrderHandler(router.Sessions, router.Booking))
			r.Get("/orders", handlers.GetOrdersHandler(router.Sessions, router.Booking))
			r.Get("/orders/{id}", handlers.GetOrderHandler(router.Sessions, router.Booking))
			r.Route("/admin", func(r chi.Router) {
				r.Get("/orders", handlers.GetAllOrdersHandler(router.Sessions, router.Admin))
				r.Patch("/orders/{id}/status", handlers.UpdateOrderStatusHandler(router.Sessions, router.Admin))
			})
		})
	})
	return r
}
