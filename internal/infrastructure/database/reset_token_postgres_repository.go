// File: internal/infrastructure/database/reset_token_postgres_repository.go
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

// pgxResetTokenRepository implements repository.ResetTokenRepository using pgx.
type pgxResetTokenRepository struct {
	db *pgxpool.Pool
}

// NewPgxResetTokenRepository creates a new instance of pgxResetTokenRepository.
func NewPgxResetTokenRepository(db *pgxpool.Pool) repository.ResetTokenRepository {
	return &pgxResetTokenRepository{db: db}
}

// Replace deletes all existing tokens for the email and inserts the new one in
// a single transaction.
func (r *pgxResetTokenRepository) Replace(ctx context.Context, email, token string, expiresAt time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM password_reset_tokens WHERE email = $1`, email); err != nil {
		return fmt.Errorf("failed to delete existing reset tokens: %w", err)
	}

	query := `
		INSERT INTO password_reset_tokens (id, email, token, expires_at, used, created_at)
		VALUES ($1, $2, $3, $4, FALSE, NOW())`
	if _, err := tx.Exec(ctx, query, uuid.New(), email, token, expiresAt); err != nil {
		return fmt.Errorf("failed to insert reset token: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit reset token replacement: %w", err)
	}
	return nil
}

// FindActive retrieves an unused token by exact match. Expired rows are still
// returned; the service layer deletes them on sight.
func (r *pgxResetTokenRepository) FindActive(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	query := `
		SELECT id, email, token, expires_at, used, created_at
		FROM password_reset_tokens
		WHERE token = $1 AND used = FALSE`

	rt := &models.PasswordResetToken{}
	err := r.db.QueryRow(ctx, query, token).Scan(
		&rt.ID, &rt.Email, &rt.Token, &rt.ExpiresAt, &rt.Used, &rt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reset token: %w", err)
	}
	return rt, nil
}

// Delete removes a token record.
func (r *pgxResetTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM password_reset_tokens WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete reset token: %w", err)
	}
	return nil
}

// MarkUsed flags the token as consumed, keeping the row as an audit trace.
func (r *pgxResetTokenRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `UPDATE password_reset_tokens SET used = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark reset token used: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
