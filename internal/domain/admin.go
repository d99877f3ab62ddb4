package domain

import "time"

// Admin is a privileged user able to authenticate and manage leads.
// PasswordHash is never exposed through the API.
type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
	Email        *string
	FullName     *string
	Role         string
	CreatedAt    time.Time
	LastLogin    *time.Time
}
