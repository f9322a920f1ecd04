package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/BradenHooton/gardenbook/internal/auth"
	"github.com/BradenHooton/gardenbook/internal/handlers"
	"github.com/BradenHooton/gardenbook/internal/middleware"
	"github.com/BradenHooton/gardenbook/internal/models"
)

// Handlers groups the HTTP handlers mounted by RegisterRoutes.
type Handlers struct {
	Auth  *handlers.AuthHandler
	Users *handlers.UserHandler

	Drainage   *handlers.DrainageHandler
	Energy     *handlers.EnergyHandler
	Fertilizer *handlers.FertilizerHandler
	Food       *handlers.FoodHandler
	Oil        *handlers.OilHandler
	Remont     *handlers.RemontHandler
	Tax        *handlers.TaxHandler
	Transport  *handlers.TransportHandler
	Worker     *handlers.WorkerHandler
}

// RegisterRoutes registers all application routes
func RegisterRoutes(router chi.Router, h Handlers, tokens auth.TokenValidator, authLimit middleware.RateLimitConfig) {
	router.Route("/auth", func(r chi.Router) {
		// Public routes, rate limited per client IP
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimitByIP(authLimit))
			r.Post("/register", h.Auth.Register)
			r.Post("/verify-email", h.Auth.VerifyEmail)
			r.Post("/resend-code", h.Auth.ResendCode)
			r.Post("/login", h.Auth.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(tokens))
			r.Get("/me", h.Auth.Me)

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(models.RoleAdmin))
				r.Get("/users", h.Users.ListUsers)
				r.Delete("/users/{id}", h.Users.DeleteUser)
			})
		})
	})

	// Record modules, any authenticated user
	router.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware(tokens))
		h.Drainage.RegisterRoutes(r, "/drainage")
		h.Energy.RegisterRoutes(r, "/energy")
		h.Fertilizer.RegisterRoutes(r, "/fertilizer")
		h.Food.RegisterRoutes(r, "/food")
		h.Oil.RegisterRoutes(r, "/oil")
		h.Remont.RegisterRoutes(r, "/remont")
		h.Tax.RegisterRoutes(r, "/tax")
		h.Transport.RegisterRoutes(r, "/transport")
		h.Worker.RegisterRoutes(r, "/worker")
	})
}
