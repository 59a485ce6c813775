// File: internal/domain/models/user.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account record. The password hash is never serialized.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	FullName     string    `json:"full_name" db:"full_name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsVerified   bool      `json:"is_verified" db:"is_verified"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// UserProfileResponse is the public projection of a User.
type UserProfileResponse struct {
	ID         uuid.UUID `json:"id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	IsVerified bool      `json:"is_verified"`
}

// ToProfileResponse converts a User to its public representation.
func (u *User) ToProfileResponse() UserProfileResponse {
	return UserProfileResponse{
		ID:         u.ID,
		FullName:   u.FullName,
		Email:      u.Email,
		IsVerified: u.IsVerified,
	}
}
