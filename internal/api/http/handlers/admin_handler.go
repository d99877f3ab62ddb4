package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cahayaphone/crm-backend/internal/api/dto"
	"github.com/cahayaphone/crm-backend/internal/service"
	apperrors "github.com/cahayaphone/crm-backend/pkg/util"
)

// AdminHandler exposes administrator endpoints.
type AdminHandler struct {
	auth     *service.AuthService
	customer *service.CustomerService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(authService *service.AuthService, customerService *service.CustomerService) *AdminHandler {
	return &AdminHandler{auth: authService, customer: customerService}
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}

	admin, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"admin": dto.AdminResponse{
			ID:       admin.ID,
			Username: admin.Username,
			Email:    admin.Email,
			FullName: admin.FullName,
			Role:     admin.Role,
		},
	})
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.customer.Stats(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": dto.StatsResponse{
			Total:     stats.Total,
			New:       stats.New,
			Contacted: stats.Contacted,
			Qualified: stats.Qualified,
			Old:       stats.Old,
		},
	})
}
