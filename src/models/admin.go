package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser represents an admin account. Accounts are created by seeding
// tooling, never through the public API.
type AdminUser struct {
	ID           uuid.UUID  `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"` // never expose
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"`
}
