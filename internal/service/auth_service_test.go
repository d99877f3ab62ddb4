package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cahayaphone/crm-backend/internal/auth"
	"github.com/cahayaphone/crm-backend/internal/domain"
)

type fakeAdminRepo struct {
	admins     map[string]*domain.Admin
	lastTouch  int64
	touchCount int
}

func (f *fakeAdminRepo) GetByUsername(_ context.Context, username string) (*domain.Admin, error) {
	admin, ok := f.admins[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return admin, nil
}

func (f *fakeAdminRepo) TouchLastLogin(_ context.Context, id int64) error {
	f.lastTouch = id
	f.touchCount++
	now := time.Now()
	for _, admin := range f.admins {
		if admin.ID == id {
			admin.LastLogin = &now
		}
	}
	return nil
}

func seededAdminRepo(t *testing.T, username, password string) *fakeAdminRepo {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return &fakeAdminRepo{admins: map[string]*domain.Admin{
		username: {ID: 7, Username: username, PasswordHash: hash, Role: "admin"},
	}}
}

func TestLoginRequiresCredentials(t *testing.T) {
	svc := NewAuthService(&fakeAdminRepo{admins: map[string]*domain.Admin{}})

	for _, tc := range []struct{ username, password string }{
		{"", "secret"},
		{"admin", ""},
		{"", ""},
	} {
		_, err := svc.Login(context.Background(), tc.username, tc.password)
		de := domainErr(t, err)
		assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
		assert.Equal(t, "Username and password are required", de.Message)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := seededAdminRepo(t, "admin", "admin123")
	svc := NewAuthService(repo)

	_, unknownUserErr := svc.Login(context.Background(), "nobody", "admin123")
	_, wrongPasswordErr := svc.Login(context.Background(), "admin", "wrong")

	assert.Equal(t, unknownUserErr, wrongPasswordErr, "no user-enumeration signal allowed")

	de := domainErr(t, wrongPasswordErr)
	assert.Equal(t, http.StatusUnauthorized, de.HTTPStatus)
	assert.Equal(t, "Invalid credentials", de.Message)
	assert.Zero(t, repo.touchCount)
}

func TestLoginSuccessTouchesLastLogin(t *testing.T) {
	repo := seededAdminRepo(t, "admin", "admin123")
	svc := NewAuthService(repo)

	admin, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, int64(7), admin.ID)
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, int64(7), repo.lastTouch)
	assert.Equal(t, 1, repo.touchCount)
	require.NotNil(t, repo.admins["admin"].LastLogin)
}
