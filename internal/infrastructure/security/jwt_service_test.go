// File: internal/infrastructure/security/jwt_service_test.go
package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zargham-Waheed/medicalCareBackend/internal/config"
	domainErrors "github.com/Zargham-Waheed/medicalCareBackend/internal/domain/errors"
)

func newTestJWTService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService(config.JWTConfig{SecretKey: "test-secret-key", ExpiryMinutes: 60})
	require.NoError(t, err)
	return svc
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	_, err := NewJWTService(config.JWTConfig{SecretKey: "", ExpiryMinutes: 60})
	assert.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, "john@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "john@example.com", claims.Email)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(config.JWTConfig{SecretKey: "test-secret-key", ExpiryMinutes: -1})
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(uuid.New(), "john@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.ErrorIs(t, err, domainErrors.ErrExpiredToken)
}

func TestJWTService_TamperedSignature(t *testing.T) {
	svc := newTestJWTService(t)
	other, err := NewJWTService(config.JWTConfig{SecretKey: "another-secret", ExpiryMinutes: 60})
	require.NoError(t, err)

	token, err := other.GenerateAccessToken(uuid.New(), "john@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.ErrorIs(t, err, domainErrors.ErrInvalidToken)
}

func TestJWTService_RejectsUnsignedAlg(t *testing.T) {
	svc := newTestJWTService(t)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: uuid.New().String(),
		Email:  "john@example.com",
	}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.ErrorIs(t, err, domainErrors.ErrInvalidToken)
}

func TestJWTService_GarbageInput(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.ValidateAccessToken("not-a-token")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidToken)
}
