package http

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spec-kit/account-service/internal/api/http/handlers"
	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Auth    *handlers.AuthHandler
	Users   *handlers.UsersHandler
	Gate    *auth.Middleware
	Metrics *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Metrics.Registry(), promhttp.HandlerOpts{})))

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/register", cfg.Auth.Register)

	users := app.Group("/users", cfg.Gate.Authenticate)
	users.Get("/me", auth.RequireTier(auth.TierAuthenticated), cfg.Users.GetSelf)
	users.Patch("/me", auth.RequireTier(auth.TierAuthenticated), cfg.Users.UpdateSelf)
	users.Get("/", auth.RequireTier(auth.TierAdmin), cfg.Users.List)
	users.Get("/:id", auth.RequireTier(auth.TierAdmin), cfg.Users.Get)
	users.Patch("/:id", auth.RequireTier(auth.TierAdmin), cfg.Users.Update)
}
