// File: internal/domain/repository/user_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Zargham-Waheed/medicalCareBackend/internal/domain/models"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create persists a new user. Returns domainErrors.ErrEmailExists when the
	// email uniqueness constraint is violated.
	Create(ctx context.Context, user *models.User) error

	// FindByEmail retrieves a user by exact email match.
	// Returns domainErrors.ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindByID retrieves a user by ID.
	// Returns domainErrors.ErrUserNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// MarkVerified sets is_verified to true. Idempotent.
	MarkVerified(ctx context.Context, id uuid.UUID) error

	// UpdatePasswordHash replaces the stored password hash.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}
