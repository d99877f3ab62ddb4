package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler responds to the root liveness probe.
type HealthHandler struct {
	serviceName string
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName}
}

// Live handles GET /.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "OK",
		"message":   h.serviceName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
