package repositories

import (
	"context"
	"fmt"

	"github.com/formworks/survey-server/src/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSurveyRepository is the pgx-backed SurveyRepository
type PostgresSurveyRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSurveyRepository creates a new survey repository
func NewPostgresSurveyRepository(pool *pgxpool.Pool) *PostgresSurveyRepository {
	return &PostgresSurveyRepository{pool: pool}
}

func (r *PostgresSurveyRepository) Create(ctx context.Context, survey *models.Survey) error {
	query := `
		INSERT INTO surveys (id, name, gender, nationality, email, phone, address, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		survey.ID, survey.Name, survey.Gender, survey.Nationality,
		survey.Email, survey.Phone, survey.Address, survey.Message, survey.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create survey: %w", err)
	}
	return nil
}

func (r *PostgresSurveyRepository) ListAll(ctx context.Context) ([]models.Survey, error) {
	query := `
		SELECT id, name, gender, nationality, email, phone, address, message, created_at
		FROM surveys
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list surveys: %w", err)
	}
	defer rows.Close()

	surveys := []models.Survey{}
	for rows.Next() {
		var s models.Survey
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Gender, &s.Nationality,
			&s.Email, &s.Phone, &s.Address, &s.Message, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan survey: %w", err)
		}
		surveys = append(surveys, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read surveys: %w", err)
	}

	return surveys, nil
}

// Ensure PostgresSurveyRepository implements the interface
var _ SurveyRepository = (*PostgresSurveyRepository)(nil)
