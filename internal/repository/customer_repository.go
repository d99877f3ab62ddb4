package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cahayaphone/crm-backend/internal/domain"
)

// CustomerFilter captures optional list parameters. An unrecognized status
// value is not rejected; it simply matches no rows.
type CustomerFilter struct {
	Status *string
	Search *string
}

// CustomerRepository encapsulates customer persistence.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context, filter CustomerFilter) ([]domain.Customer, error)
	UpdateStatus(ctx context.Context, id int64, status domain.CustomerStatus) error
	Stats(ctx context.Context) (domain.CustomerStats, error)
}

type customerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository returns a Postgres-backed implementation.
func NewCustomerRepository(pool *pgxpool.Pool) CustomerRepository {
	return &customerRepository{pool: pool}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	const query = `
        INSERT INTO customers (name, phone, email, address, notes, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.Address,
		customer.Notes,
		customer.Status,
	).Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	const query = `
        SELECT id, name, phone, email, address, notes, status, created_at, updated_at
        FROM customers WHERE id=$1`

	var customer domain.Customer
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Phone,
		&customer.Email,
		&customer.Address,
		&customer.Notes,
		&customer.Status,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) List(ctx context.Context, filter CustomerFilter) ([]domain.Customer, error) {
	base := `SELECT id, name, phone, email, address, notes, status, created_at, updated_at
             FROM customers`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Status != nil && *filter.Status != "" {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		args = append(args, "%"+strings.TrimSpace(*filter.Search)+"%")
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf(
			"(name ILIKE %s OR phone ILIKE %s OR email ILIKE %s)",
			placeholder, placeholder, placeholder))
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY created_at DESC`, base, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCustomers(rows)
}

func (r *customerRepository) UpdateStatus(ctx context.Context, id int64, status domain.CustomerStatus) error {
	const query = `
        UPDATE customers SET status=$1, updated_at=NOW()
        WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Stats computes the total and per-status counts in one statement so every
// figure comes from the same snapshot.
func (r *customerRepository) Stats(ctx context.Context) (domain.CustomerStats, error) {
	const query = `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE status='New'),
               COUNT(*) FILTER (WHERE status='Contacted'),
               COUNT(*) FILTER (WHERE status='Qualified'),
               COUNT(*) FILTER (WHERE status='Old')
        FROM customers`

	var stats domain.CustomerStats
	if err := r.pool.QueryRow(ctx, query).Scan(
		&stats.Total,
		&stats.New,
		&stats.Contacted,
		&stats.Qualified,
		&stats.Old,
	); err != nil {
		return domain.CustomerStats{}, err
	}
	return stats, nil
}

func scanCustomers(rows pgx.Rows) ([]domain.Customer, error) {
	var result []domain.Customer
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Phone,
			&customer.Email,
			&customer.Address,
			&customer.Notes,
			&customer.Status,
			&customer.CreatedAt,
			&customer.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, customer)
	}
	return result, rows.Err()
}
