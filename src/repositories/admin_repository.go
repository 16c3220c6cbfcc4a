package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/formworks/survey-server/src/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates the requested record does not exist
var ErrNotFound = errors.New("record not found")

// PostgresAdminRepository is the pgx-backed AdminRepository
type PostgresAdminRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAdminRepository creates a new admin repository
func NewPostgresAdminRepository(pool *pgxpool.Pool) *PostgresAdminRepository {
	return &PostgresAdminRepository{pool: pool}
}

func (r *PostgresAdminRepository) Create(ctx context.Context, admin *models.AdminUser) error {
	query := `
		INSERT INTO admin_users (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.pool.Exec(ctx, query, admin.ID, admin.Username, admin.PasswordHash, admin.CreatedAt); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}

func (r *PostgresAdminRepository) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	query := `
		SELECT id, username, password_hash, created_at, last_login
		FROM admin_users
		WHERE username = $1
	`
	admin := &models.AdminUser{}
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&admin.ID, &admin.Username, &admin.PasswordHash, &admin.CreatedAt, &admin.LastLogin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}
	return admin, nil
}

func (r *PostgresAdminRepository) UpdateLastLogin(ctx context.Context, adminID uuid.UUID) error {
	query := `UPDATE admin_users SET last_login = $1 WHERE id = $2`
	if _, err := r.pool.Exec(ctx, query, time.Now(), adminID); err != nil {
		return fmt.Errorf("failed to update last_login: %w", err)
	}
	return nil
}

func (r *PostgresAdminRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM admin_users").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count admin users: %w", err)
	}
	return count, nil
}

// Ensure PostgresAdminRepository implements the interface
var _ AdminRepository = (*PostgresAdminRepository)(nil)
