package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	httptransport "github.com/cahayaphone/crm-backend/internal/api/http"
	"github.com/cahayaphone/crm-backend/internal/api/http/handlers"
	"github.com/cahayaphone/crm-backend/internal/auth"
	"github.com/cahayaphone/crm-backend/internal/config"
	"github.com/cahayaphone/crm-backend/internal/domain"
	"github.com/cahayaphone/crm-backend/internal/observability"
	"github.com/cahayaphone/crm-backend/internal/repository"
	"github.com/cahayaphone/crm-backend/internal/service"
)

// In-memory repositories backing the full HTTP stack under test, in place of
// the pgx implementations.

type memCustomerRepo struct {
	customers map[int64]*domain.Customer
	order     []int64
	nextID    int64
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: map[int64]*domain.Customer{}, nextID: 0}
}

func (m *memCustomerRepo) Create(_ context.Context, customer *domain.Customer) error {
	for _, existing := range m.customers {
		if existing.Phone == customer.Phone {
			return &pgconn.PgError{Code: "23505", ConstraintName: "customers_phone_key"}
		}
	}
	m.nextID++
	customer.ID = m.nextID
	customer.CreatedAt = time.Now().Add(time.Duration(m.nextID) * time.Second)
	customer.UpdatedAt = customer.CreatedAt
	stored := *customer
	m.customers[customer.ID] = &stored
	m.order = append(m.order, customer.ID)
	return nil
}

func (m *memCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	customer, ok := m.customers[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return customer, nil
}

// List mimics the SQL: newest created_at first, exact status match,
// case-insensitive substring search over name, phone and email.
func (m *memCustomerRepo) List(_ context.Context, filter repository.CustomerFilter) ([]domain.Customer, error) {
	var result []domain.Customer
	for i := len(m.order) - 1; i >= 0; i-- {
		customer := m.customers[m.order[i]]
		if filter.Status != nil && string(customer.Status) != *filter.Status {
			continue
		}
		if filter.Search != nil && !matchesSearch(customer, *filter.Search) {
			continue
		}
		result = append(result, *customer)
	}
	return result, nil
}

func matchesSearch(customer *domain.Customer, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if strings.Contains(strings.ToLower(customer.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(customer.Phone), term) {
		return true
	}
	return customer.Email != nil && strings.Contains(strings.ToLower(*customer.Email), term)
}

func (m *memCustomerRepo) UpdateStatus(_ context.Context, id int64, status domain.CustomerStatus) error {
	customer, ok := m.customers[id]
	if !ok {
		return pgx.ErrNoRows
	}
	customer.Status = status
	customer.UpdatedAt = time.Now()
	return nil
}

func (m *memCustomerRepo) Stats(_ context.Context) (domain.CustomerStats, error) {
	var stats domain.CustomerStats
	for _, customer := range m.customers {
		stats.Total++
		switch customer.Status {
		case domain.StatusNew:
			stats.New++
		case domain.StatusContacted:
			stats.Contacted++
		case domain.StatusQualified:
			stats.Qualified++
		case domain.StatusOld:
			stats.Old++
		}
	}
	return stats, nil
}

type memMessageRepo struct {
	customers *memCustomerRepo
	messages  []domain.Message
	nextID    int64
}

func (m *memMessageRepo) Create(_ context.Context, message *domain.Message) error {
	if _, ok := m.customers.customers[message.CustomerID]; !ok {
		return &pgconn.PgError{Code: "23503", ConstraintName: "messages_customer_id_fkey"}
	}
	m.nextID++
	message.ID = m.nextID
	message.CreatedAt = time.Now()
	m.messages = append(m.messages, *message)
	return nil
}

func (m *memMessageRepo) ListByCustomer(_ context.Context, customerID int64) ([]domain.Message, error) {
	var result []domain.Message
	for _, message := range m.messages {
		if message.CustomerID == customerID {
			result = append(result, message)
		}
	}
	return result, nil
}

type memAdminRepo struct {
	admins map[string]*domain.Admin
}

func (m *memAdminRepo) GetByUsername(_ context.Context, username string) (*domain.Admin, error) {
	admin, ok := m.admins[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return admin, nil
}

func (m *memAdminRepo) TouchLastLogin(_ context.Context, id int64) error {
	now := time.Now()
	for _, admin := range m.admins {
		if admin.ID == id {
			admin.LastLogin = &now
			return nil
		}
	}
	return pgx.ErrNoRows
}

type testEnv struct {
	app       *fiber.App
	customers *memCustomerRepo
	admins    *memAdminRepo
	metrics   *observability.Metrics
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	customerRepo := newMemCustomerRepo()
	messageRepo := &memMessageRepo{customers: customerRepo}

	hash, err := auth.HashPassword("admin123", bcrypt.MinCost)
	require.NoError(t, err)
	adminRepo := &memAdminRepo{admins: map[string]*domain.Admin{
		"admin": {ID: 1, Username: "admin", PasswordHash: hash, Role: "admin"},
	}}

	customerService := service.NewCustomerService(customerRepo, messageRepo)
	authService := service.NewAuthService(adminRepo)

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), metrics, config.CORSConfig{AllowUnknownOrigins: true}, 5*time.Second)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler("Cahaya Phone CRM API"),
		Customers: handlers.NewCustomersHandler(customerService),
		Admin:     handlers.NewAdminHandler(authService, customerService),
	})

	return &testEnv{app: app, customers: customerRepo, admins: adminRepo, metrics: metrics}
}

func (e *testEnv) request(t *testing.T, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)

	payload := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(raw, &payload))
	return resp, payload
}
