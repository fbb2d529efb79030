package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillbase/skillbase-api/internal/config"
	"github.com/skillbase/skillbase-api/internal/handler"
	"github.com/skillbase/skillbase-api/internal/middleware"
	"github.com/skillbase/skillbase-api/internal/observability"
	"github.com/skillbase/skillbase-api/internal/service"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AnalyticsHandler *handler.AnalyticsHandler
	JWTMiddleware    fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.AnalyticsHandler != nil {
		analytics := api.Group("/analytics", jwtMiddleware, middleware.RequireRole(service.RoleAdmin, service.RoleManager))
		deps.AnalyticsHandler.Register(analytics)
	}
}
