package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cahayaphone/crm-backend/internal/domain"
)

// MessageRepository encapsulates customer message persistence.
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Message, error)
}

type messageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository returns a Postgres-backed implementation.
func NewMessageRepository(pool *pgxpool.Pool) MessageRepository {
	return &messageRepository{pool: pool}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	const query = `
        INSERT INTO messages (customer_id, message, type, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		message.CustomerID,
		message.Body,
		message.Type,
		message.Status,
	).Scan(&message.ID, &message.CreatedAt)
}

// ListByCustomer returns messages in conversation order, oldest first.
func (r *messageRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Message, error) {
	const query = `
        SELECT id, customer_id, message, type, status, created_at
        FROM messages WHERE customer_id=$1
        ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

func scanMessages(rows pgx.Rows) ([]domain.Message, error) {
	var result []domain.Message
	for rows.Next() {
		var message domain.Message
		if err := rows.Scan(
			&message.ID,
			&message.CustomerID,
			&message.Body,
			&message.Type,
			&message.Status,
			&message.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, message)
	}
	return result, rows.Err()
}
