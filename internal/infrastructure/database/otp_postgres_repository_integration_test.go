// File: internal/infrastructure/database/otp_postgres_repository_integration_test.go
package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/Zargham-Waheed/medicalCareBackend/internal/domain/errors"
)

func countOTPRows(t *testing.T, email string) int {
	t.Helper()
	var n int
	err := testDB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM otp_verifications WHERE email = $1`, email).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestOTPRepository_ReplaceLeavesOneRow(t *testing.T) {
	requireTestDB(t)
	ctx := context.Background()
	clearAuthTables(t)
	repo := NewPgxOTPRepository(testDB)

	email := "otp_replace@example.com"
	expiry := time.Now().Add(10 * time.Minute)

	require.NoError(t, repo.Replace(ctx, email, "111111", expiry))
	require.NoError(t, repo.Replace(ctx, email, "222222", expiry))
	require.NoError(t, repo.Replace(ctx, email, "333333", expiry))

	assert.Equal(t, 1, countOTPRows(t, email))

	// Живым остается только последний код
	_, err := repo.Find(ctx, email, "111111")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)

	rec, err := repo.Find(ctx, email, "333333")
	require.NoError(t, err)
	assert.Equal(t, email, rec.Email)
	assert.Equal(t, "333333", rec.OTP)
	assert.WithinDuration(t, expiry, rec.ExpiresAt, time.Second)
}

func TestOTPRepository_ReplaceDoesNotTouchOtherEmails(t *testing.T) {
	requireTestDB(t)
	ctx := context.Background()
	clearAuthTables(t)
	repo := NewPgxOTPRepository(testDB)

	expiry := time.Now().Add(10 * time.Minute)
	require.NoError(t, repo.Replace(ctx, "first@example.com", "111111", expiry))
	require.NoError(t, repo.Replace(ctx, "second@example.com", "222222", expiry))

	_, err := repo.Find(ctx, "first@example.com", "111111")
	assert.NoError(t, err)
	_, err = repo.Find(ctx, "second@example.com", "222222")
	assert.NoError(t, err)
}

func TestOTPRepository_FindExactMatchOnly(t *testing.T) {
	requireTestDB(t)
	ctx := context.Background()
	clearAuthTables(t)
	repo := NewPgxOTPRepository(testDB)

	email := "otp_find@example.com"
	require.NoError(t, repo.Replace(ctx, email, "654321", time.Now().Add(10*time.Minute)))

	_, err := repo.Find(ctx, email, "000000")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)

	_, err = repo.Find(ctx, "other@example.com", "654321")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestOTPRepository_FindReturnsExpiredRows(t *testing.T) {
	requireTestDB(t)
	ctx := context.Background()
	clearAuthTables(t)
	repo := NewPgxOTPRepository(testDB)

	// Фильтрация по сроку действия принадлежит сервисному слою
	email := "otp_expired@example.com"
	require.NoError(t, repo.Replace(ctx, email, "999999", time.Now().Add(-time.Minute)))

	rec, err := repo.Find(ctx, email, "999999")
	require.NoError(t, err)
	assert.True(t, rec.ExpiresAt.Before(time.Now()))
}

func TestOTPRepository_Delete(t *testing.T) {
	requireTestDB(t)
	ctx := context.Background()
	clearAuthTables(t)
	repo := NewPgxOTPRepository(testDB)

	email := "otp_delete@example.com"
	require.NoError(t, repo.Replace(ctx, email, "123456", time.Now().Add(10*time.Minute)))

	rec, err := repo.Find(ctx, email, "123456")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, rec.ID))

	_, err = repo.Find(ctx, email, "123456")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
	assert.Equal(t, 0, countOTPRows(t, email))
}
