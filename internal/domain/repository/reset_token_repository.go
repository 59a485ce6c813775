// File: internal/domain/repository/reset_token_repository.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Zargham-Waheed/medicalCareBackend/internal/domain/models"
)

// ResetTokenRepository defines persistence operations for password reset tokens.
type ResetTokenRepository interface {
	// Replace atomically deletes every existing token for the email and inserts
	// a new one, so at most one token is live per email at any time.
	Replace(ctx context.Context, email, token string, expiresAt time.Time) error

	// FindActive retrieves an unused token by exact match. Expired-but-unused
	// tokens are returned; expiry is checked by the caller.
	// Returns domainErrors.ErrNotFound when absent or already used.
	FindActive(ctx context.Context, token string) (*models.PasswordResetToken, error)

	// Delete removes a token record.
	Delete(ctx context.Context, id uuid.UUID) error

	// MarkUsed flags a token as consumed. The row is kept as an audit trace.
	MarkUsed(ctx context.Context, id uuid.UUID) error
}
