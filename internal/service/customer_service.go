package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/cahayaphone/crm-backend/internal/domain"
	"github.com/cahayaphone/crm-backend/internal/repository"
	apperrors "github.com/cahayaphone/crm-backend/pkg/util"
)

// CustomerCreateInput carries lead-submission fields.
type CustomerCreateInput struct {
	Name    string
	Phone   string
	Email   *string
	Address *string
	Notes   *string
}

// CustomerService coordinates lead creation, listing, status transitions,
// statistics and the per-customer message log.
type CustomerService struct {
	customers repository.CustomerRepository
	messages  repository.MessageRepository
}

// NewCustomerService builds the service.
func NewCustomerService(customers repository.CustomerRepository, messages repository.MessageRepository) *CustomerService {
	return &CustomerService{customers: customers, messages: messages}
}

// Create inserts a new lead with status fixed to New and returns its id.
// A duplicate phone maps to a conflict, not a generic failure.
func (s *CustomerService) Create(ctx context.Context, input CustomerCreateInput) (int64, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Phone) == "" {
		return 0, apperrors.NewValidationError("Name and phone are required", nil)
	}

	customer := &domain.Customer{
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
		Notes:   input.Notes,
		Status:  domain.StatusNew,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return 0, apperrors.NewConflict("Phone number already exists")
		}
		return 0, apperrors.NewInternalError(err)
	}
	return customer.ID, nil
}

// List returns leads newest first, optionally narrowed by an exact status
// match and a case-insensitive substring over name, phone and email.
// The full result set is returned; pagination is a known scaling gap.
func (s *CustomerService) List(ctx context.Context, status, search string) ([]domain.Customer, error) {
	filter := repository.CustomerFilter{}
	if status != "" {
		filter.Status = &status
	}
	if search != "" {
		filter.Search = &search
	}

	customers, err := s.customers.List(ctx, filter)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return customers, nil
}

// UpdateStatus moves a lead to any of the recognized statuses. There is no
// transition graph; any status may follow any other.
func (s *CustomerService) UpdateStatus(ctx context.Context, id int64, status string) error {
	target := domain.CustomerStatus(status)
	if !target.IsValid() {
		return apperrors.NewValidationError("Invalid status", nil)
	}

	if err := s.customers.UpdateStatus(ctx, id, target); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Customer not found")
		}
		return apperrors.NewInternalError(err)
	}
	return nil
}

// Stats reports the total lead count and the per-status breakdown from a
// single consistent snapshot.
func (s *CustomerService) Stats(ctx context.Context) (domain.CustomerStats, error) {
	stats, err := s.customers.Stats(ctx)
	if err != nil {
		return domain.CustomerStats{}, apperrors.NewInternalError(err)
	}
	return stats, nil
}

// AddMessage records a message against an existing lead.
func (s *CustomerService) AddMessage(ctx context.Context, customerID int64, body string, messageType domain.MessageType) (int64, error) {
	if strings.TrimSpace(body) == "" {
		return 0, apperrors.NewValidationError("Message is required", nil)
	}
	if messageType == "" {
		messageType = domain.MessageTypeIncoming
	}
	if !messageType.IsValid() {
		return 0, apperrors.NewValidationError("Invalid message type", nil)
	}

	message := &domain.Message{
		CustomerID: customerID,
		Body:       body,
		Type:       messageType,
		Status:     "unread",
	}
	if err := s.messages.Create(ctx, message); err != nil {
		if apperrors.IsForeignKeyViolation(err) {
			return 0, apperrors.NewNotFound("Customer not found")
		}
		return 0, apperrors.NewInternalError(err)
	}
	return message.ID, nil
}

// ListMessages returns a lead's messages in conversation order.
func (s *CustomerService) ListMessages(ctx context.Context, customerID int64) ([]domain.Message, error) {
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Customer not found")
		}
		return nil, apperrors.NewInternalError(err)
	}

	messages, err := s.messages.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return messages, nil
}
