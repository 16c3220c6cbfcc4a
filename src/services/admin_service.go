package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/formworks/survey-server/src/models"
	"github.com/formworks/survey-server/src/repositories"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AdminService handles admin account operations
type AdminService struct {
	repo   repositories.AdminRepository
	hasher *PasswordHasher
}

// NewAdminService creates a new admin service
func NewAdminService(repo repositories.AdminRepository, hasher *PasswordHasher) *AdminService {
	return &AdminService{repo: repo, hasher: hasher}
}

// Authenticate verifies username and password. Unknown username and wrong
// password are indistinguishable to the caller: both return
// ErrInvalidCredentials.
func (as *AdminService) Authenticate(ctx context.Context, username, password string) (*models.AdminUser, error) {
	admin, err := as.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if !as.hasher.Verify(password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	// Update last_login best-effort; a failure here must not fail the login
	now := time.Now()
	if err := as.repo.UpdateLastLogin(ctx, admin.ID); err != nil {
		log.Warn().Err(err).Str("username", admin.Username).Msg("failed to update last_login")
	}
	admin.LastLogin = &now

	return admin, nil
}

// EnsureAdmin creates an admin account if one with the username does not
// already exist. Existing accounts are left untouched, so a password is
// only ever hashed when the credential is first created.
func (as *AdminService) EnsureAdmin(ctx context.Context, username, password string) (*models.AdminUser, bool, error) {
	if username == "" {
		return nil, false, errors.New("username is required")
	}
	if len(password) < 8 {
		return nil, false, errors.New("password must be at least 8 characters")
	}

	existing, err := as.repo.GetByUsername(ctx, username)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up admin: %w", err)
	}

	hash, err := as.hasher.Hash(password)
	if err != nil {
		return nil, false, err
	}

	admin := &models.AdminUser{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := as.repo.Create(ctx, admin); err != nil {
		return nil, false, fmt.Errorf("failed to create admin user: %w", err)
	}

	return admin, true, nil
}

// HasAdmins reports whether any admin accounts exist.
func (as *AdminService) HasAdmins(ctx context.Context) (bool, error) {
	count, err := as.repo.Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
