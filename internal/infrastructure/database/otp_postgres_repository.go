// File: internal/infrastructure/database/otp_postgres_repository.go
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/Zargham-Waheed/medicalCareBackend/internal/domain/errors"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/domain/models"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/domain/repository"
)

// pgxOTPRepository implements repository.OTPRepository using pgx.
type pgxOTPRepository struct {
	db *pgxpool.Pool
}

// NewPgxOTPRepository creates a new instance of pgxOTPRepository.
func NewPgxOTPRepository(db *pgxpool.Pool) repository.OTPRepository {
	return &pgxOTPRepository{db: db}
}

// Replace deletes all existing codes for the email and inserts the new one in
// a single transaction, so concurrent issuers never leave two live codes.
func (r *pgxOTPRepository) Replace(ctx context.Context, email, code string, expiresAt time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM otp_verifications WHERE email = $1`, email); err != nil {
		return fmt.Errorf("failed to delete existing OTP codes: %w", err)
	}

	query := `
		INSERT INTO otp_verifications (id, email, otp, expires_at, created_at)
		VALUES ($1, $2, $3, $4, NOW())`
	if _, err := tx.Exec(ctx, query, uuid.New(), email, code, expiresAt); err != nil {
		return fmt.Errorf("failed to insert OTP code: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit OTP replacement: %w", err)
	}
	return nil
}

// Find retrieves a code by exact match on email and code. Expiry is not
// filtered here; the service layer owns that decision.
func (r *pgxOTPRepository) Find(ctx context.Context, email, code string) (*models.OTPVerification, error) {
	query := `
		SELECT id, email, otp, expires_at, created_at
		FROM otp_verifications
		WHERE email = $1 AND otp = $2`

	otp := &models.OTPVerification{}
	err := r.db.QueryRow(ctx, query, email, code).Scan(
		&otp.ID, &otp.Email, &otp.OTP, &otp.ExpiresAt, &otp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find OTP code: %w", err)
	}
	return otp, nil
}

// Delete removes a code record.
func (r *pgxOTPRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM otp_verifications WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete OTP code: %w", err)
	}
	return nil
}
