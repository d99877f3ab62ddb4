package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cahayaphone/crm-backend/internal/api/dto"
	"github.com/cahayaphone/crm-backend/internal/domain"
	"github.com/cahayaphone/crm-backend/internal/service"
	apperrors "github.com/cahayaphone/crm-backend/pkg/util"
)

// CustomersHandler exposes the lead endpoints.
type CustomersHandler struct {
	service *service.CustomerService
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(customerService *service.CustomerService) *CustomersHandler {
	return &CustomersHandler{service: customerService}
}

// Create handles POST /api/customers.
func (h *CustomersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}

	id, err := h.service.Create(c.UserContext(), service.CustomerCreateInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Notes:   req.Notes,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"message":    "Customer created successfully",
		"customerId": id,
	})
}

// List handles GET /api/customers. The full result set is returned; there is
// no pagination, which only holds up while the dataset stays small.
func (h *CustomersHandler) List(c *fiber.Ctx) error {
	customers, err := h.service.List(c.UserContext(), c.Query("status"), c.Query("search"))
	if err != nil {
		return err
	}

	items := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		items = append(items, customerResponse(&customers[i]))
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
		"count":   len(items),
	})
}

// UpdateStatus handles PUT /api/customers/:id/status.
func (h *CustomersHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseCustomerID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}

	if err := h.service.UpdateStatus(c.UserContext(), id, req.Status); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Status updated successfully",
	})
}

// AddMessage handles POST /api/customers/:id/messages.
func (h *CustomersHandler) AddMessage(c *fiber.Ctx) error {
	id, err := parseCustomerID(c)
	if err != nil {
		return err
	}

	var req dto.CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}

	messageID, err := h.service.AddMessage(c.UserContext(), id, req.Message, domain.MessageType(req.Type))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success":   true,
		"message":   "Message recorded successfully",
		"messageId": messageID,
	})
}

// ListMessages handles GET /api/customers/:id/messages.
func (h *CustomersHandler) ListMessages(c *fiber.Ctx) error {
	id, err := parseCustomerID(c)
	if err != nil {
		return err
	}

	messages, err := h.service.ListMessages(c.UserContext(), id)
	if err != nil {
		return err
	}

	items := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		items = append(items, messageResponse(&messages[i]))
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
		"count":   len(items),
	})
}

func parseCustomerID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("Invalid customer id", nil)
	}
	return id, nil
}

func customerResponse(customer *domain.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Phone:     customer.Phone,
		Email:     customer.Email,
		Address:   customer.Address,
		Notes:     customer.Notes,
		Status:    string(customer.Status),
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}

func messageResponse(message *domain.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:         message.ID,
		CustomerID: message.CustomerID,
		Message:    message.Body,
		Type:       string(message.Type),
		Status:     message.Status,
		CreatedAt:  message.CreatedAt,
	}
}
