package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/cahayaphone/crm-backend/internal/auth"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
	defaultAdminFullName = "Administrator"
	defaultAdminEmail    = "admin@cahayaphone.com"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL UNIQUE,
		email TEXT,
		address TEXT,
		status TEXT NOT NULL DEFAULT 'New',
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_customers_status ON customers (status)`,
	`CREATE TABLE IF NOT EXISTS admins (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		email TEXT,
		full_name TEXT,
		role TEXT NOT NULL DEFAULT 'admin',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		last_login TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_admins_username ON admins (username)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id BIGSERIAL PRIMARY KEY,
		customer_id BIGINT NOT NULL REFERENCES customers (id) ON DELETE CASCADE,
		message TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT 'incoming',
		status TEXT NOT NULL DEFAULT 'unread',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_customer ON messages (customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_created ON messages (created_at)`,
}

// ProvisionSchema idempotently creates the customers, admins and messages
// tables and seeds a default administrator when none exists. The seeded
// credential must be rotated after deployment.
func ProvisionSchema(ctx context.Context, pool *pgxpool.Pool, bcryptCost int, logger *zap.Logger) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("provision schema: %w", err)
		}
	}
	logger.Info("schema provisioned", zap.Int("statements", len(schemaStatements)))

	var adminCount int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&adminCount); err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if adminCount > 0 {
		return nil
	}

	hash, err := auth.HashPassword(defaultAdminPassword, bcryptCost)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	const insert = `
        INSERT INTO admins (username, password, full_name, email)
        VALUES ($1, $2, $3, $4)`
	if _, err := pool.Exec(ctx, insert, defaultAdminUsername, hash, defaultAdminFullName, defaultAdminEmail); err != nil {
		return fmt.Errorf("seed default admin: %w", err)
	}

	logger.Warn("default admin seeded; rotate this credential",
		zap.String("username", defaultAdminUsername),
	)
	return nil
}
