package dto

import "time"

// CreateCustomerRequest payload for lead submission.
type CreateCustomerRequest struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// UpdateStatusRequest payload for a status transition.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CustomerResponse is the wire shape of a lead.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email"`
	Address   *string   `json:"address"`
	Notes     *string   `json:"notes"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateMessageRequest payload for recording a customer message.
type CreateMessageRequest struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// MessageResponse is the wire shape of a customer message.
type MessageResponse struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
