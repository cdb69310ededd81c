package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careerpilot/backend/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	catalog *handlers.CatalogHandler,
	profile *handlers.ProfileHandler,
	recommendation *handlers.RecommendationHandler,
	demo *handlers.DemoHandler,
	health *handlers.HealthHandler,
	authMW fiber.Handler,
) {
	// Probes for monitoring, outside the public API prefix
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	api := app.Group("/api")

	// Public endpoints
	api.Get("/ping", health.Ping)
	api.Get("/roles", catalog.Roles)
	api.Post("/signup", auth.Signup)
	api.Post("/login", auth.Login)
	api.Post("/setup-demo", demo.Setup)

	// Protected endpoints
	api.Get("/me", authMW, profile.Me)
	api.Post("/role/save", authMW, profile.SaveRole)
	api.Post("/progress/update", authMW, profile.UpdateProgress)
	api.Get("/progress/history", authMW, profile.History)
	api.Get("/recommendation", authMW, recommendation.Recommend)
	api.Get("/resources", authMW, catalog.Resources)
}
