// File: internal/domain/repository/otp_repository.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Zargham-Waheed/medicalCareBackend/internal/domain/models"
)

// OTPRepository defines persistence operations for one-time verification codes.
type OTPRepository interface {
	// Replace atomically deletes every existing code for the email and inserts
	// a new one, so at most one code is live per email at any time.
	Replace(ctx context.Context, email, code string, expiresAt time.Time) error

	// Find retrieves a code by exact match on email and code.
	// Expiry is not checked here; the caller decides what expired means.
	// Returns domainErrors.ErrNotFound when absent.
	Find(ctx context.Context, email, code string) (*models.OTPVerification, error)

	// Delete removes a code record.
	Delete(ctx context.Context, id uuid.UUID) error
}
