package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cahayaphone/crm-backend/internal/api/http/handlers"
	apperrors "github.com/cahayaphone/crm-backend/pkg/util"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Customers *handlers.CustomersHandler
	Admin     *handlers.AdminHandler
}

// RegisterRoutes wires HTTP routes. The trailing catch-all keeps the
// error-mapping total: unmatched routes get the fixed 404 payload.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Live)

	api := app.Group("/api")
	api.Post("/customers", cfg.Customers.Create)
	api.Get("/customers", cfg.Customers.List)
	api.Put("/customers/:id/status", cfg.Customers.UpdateStatus)
	api.Post("/customers/:id/messages", cfg.Customers.AddMessage)
	api.Get("/customers/:id/messages", cfg.Customers.ListMessages)

	api.Post("/admin/login", cfg.Admin.Login)
	api.Get("/admin/stats", cfg.Admin.Stats)

	app.Use(func(c *fiber.Ctx) error {
		return apperrors.NewRouteNotFound()
	})
}
