package repositories

import (
	"context"

	"github.com/formworks/survey-server/src/models"
	"github.com/google/uuid"
)

// AdminRepository defines the interface for admin account data access
type AdminRepository interface {
	Create(ctx context.Context, admin *models.AdminUser) error
	GetByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	UpdateLastLogin(ctx context.Context, adminID uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

// SurveyRepository defines the interface for survey submission data access
type SurveyRepository interface {
	Create(ctx context.Context, survey *models.Survey) error

	// ListAll returns every submission, newest first.
	ListAll(ctx context.Context) ([]models.Survey, error)
}
