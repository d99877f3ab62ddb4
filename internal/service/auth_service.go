package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/cahayaphone/crm-backend/internal/auth"
	"github.com/cahayaphone/crm-backend/internal/domain"
	"github.com/cahayaphone/crm-backend/internal/repository"
	apperrors "github.com/cahayaphone/crm-backend/pkg/util"
)

// AuthService coordinates administrator login.
type AuthService struct {
	admins repository.AdminRepository
}

// NewAuthService builds the service.
func NewAuthService(admins repository.AdminRepository) *AuthService {
	return &AuthService{admins: admins}
}

// Login authenticates an administrator by username and password. Unknown
// usernames and wrong passwords produce the identical error so callers
// cannot enumerate accounts. On success last_login is refreshed and the
// returned record carries no password hash downstream.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Admin, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, apperrors.NewValidationError("Username and password are required", nil)
	}

	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("Invalid credentials")
		}
		return nil, apperrors.NewInternalError(err)
	}

	if err := auth.ComparePassword(admin.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("Invalid credentials")
	}

	if err := s.admins.TouchLastLogin(ctx, admin.ID); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return admin, nil
}
