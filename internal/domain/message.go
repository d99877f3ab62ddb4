package domain

import "time"

// MessageType classifies the direction of a customer message.
type MessageType string

const (
	MessageTypeIncoming MessageType = "incoming"
	MessageTypeOutgoing MessageType = "outgoing"
)

// IsValid reports whether t is a recognized message type.
func (t MessageType) IsValid() bool {
	return t == MessageTypeIncoming || t == MessageTypeOutgoing
}

// Message belongs to exactly one customer and is removed with it.
type Message struct {
	ID         int64
	CustomerID int64
	Body       string
	Type       MessageType
	Status     string
	CreatedAt  time.Time
}
