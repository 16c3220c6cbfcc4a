package mock

import (
	"context"

	"github.com/formworks/survey-server/src/models"
	"github.com/formworks/survey-server/src/repositories"
)

// SurveyRepository is a mock implementation of repositories.SurveyRepository
type SurveyRepository struct {
	CreateFunc  func(ctx context.Context, survey *models.Survey) error
	ListAllFunc func(ctx context.Context) ([]models.Survey, error)

	// Call tracking
	Calls map[string][]interface{}
}

// NewSurveyRepository creates a new mock survey repository
func NewSurveyRepository() *SurveyRepository {
	return &SurveyRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *SurveyRepository) Create(ctx context.Context, survey *models.Survey) error {
	m.Calls["Create"] = append(m.Calls["Create"], survey)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, survey)
	}
	return nil
}

func (m *SurveyRepository) ListAll(ctx context.Context) ([]models.Survey, error) {
	m.Calls["ListAll"] = append(m.Calls["ListAll"], nil)
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return []models.Survey{}, nil
}

// Ensure SurveyRepository implements the interface
var _ repositories.SurveyRepository = (*SurveyRepository)(nil)
