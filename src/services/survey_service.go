package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/formworks/survey-server/src/models"
	"github.com/formworks/survey-server/src/repositories"
	"github.com/formworks/survey-server/src/validation"
	"github.com/google/uuid"
)

// SurveyService handles survey submissions
type SurveyService struct {
	repo repositories.SurveyRepository
}

// NewSurveyService creates a new survey service
func NewSurveyService(repo repositories.SurveyRepository) *SurveyService {
	return &SurveyService{repo: repo}
}

// Create validates and persists one submission. Field values are stored
// verbatim except gender, which is normalized to lowercase. Persistence is
// a single store call, so there are no partial writes.
func (ss *SurveyService) Create(ctx context.Context, in validation.SurveyInput) (*models.Survey, error) {
	if err := validation.ValidateSurvey(in); err != nil {
		return nil, err
	}

	survey := &models.Survey{
		ID:          uuid.New(),
		Name:        in.Name,
		Gender:      strings.ToLower(in.Gender),
		Nationality: in.Nationality,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		Message:     in.Message,
		CreatedAt:   time.Now().UTC(),
	}

	if err := ss.repo.Create(ctx, survey); err != nil {
		return nil, fmt.Errorf("failed to store survey: %w", err)
	}

	return survey, nil
}

// ListAll returns every submission ordered by creation time descending.
// The repository already orders its result; the sort here keeps the
// contract independent of the store.
func (ss *SurveyService) ListAll(ctx context.Context) ([]models.Survey, error) {
	surveys, err := ss.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list surveys: %w", err)
	}

	sort.SliceStable(surveys, func(i, j int) bool {
		return surveys[i].CreatedAt.After(surveys[j].CreatedAt)
	})

	return surveys, nil
}
