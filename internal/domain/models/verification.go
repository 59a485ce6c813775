// File: internal/domain/models/verification.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// OTPVerification is an ephemeral proof of email ownership. At most one live
// record exists per email: issuing a new code replaces any earlier ones.
type OTPVerification struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	OTP       string    `json:"otp" db:"otp"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IsExpired reports whether the code is past its expiry at the given instant.
func (o *OTPVerification) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// PasswordResetToken authorizes exactly one password change. Successful resets
// mark the row used instead of deleting it, keeping an audit trace.
type PasswordResetToken struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Token     string    `json:"token" db:"token"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	Used      bool      `json:"used" db:"used"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IsExpired reports whether the token is past its expiry at the given instant.
func (t *PasswordResetToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
