package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cahayaphone/crm-backend/internal/domain"
)

// AdminRepository defines persistence access for administrators.
type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
	TouchLastLogin(ctx context.Context, id int64) error
}

type adminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository returns a Postgres-backed implementation.
func NewAdminRepository(pool *pgxpool.Pool) AdminRepository {
	return &adminRepository{pool: pool}
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	const query = `
        SELECT id, username, password, email, full_name, role, created_at, last_login
        FROM admins WHERE username=$1`

	var admin domain.Admin
	if err := r.pool.QueryRow(ctx, query, username).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.Email,
		&admin.FullName,
		&admin.Role,
		&admin.CreatedAt,
		&admin.LastLogin,
	); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) TouchLastLogin(ctx context.Context, id int64) error {
	const query = `UPDATE admins SET last_login=NOW() WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
