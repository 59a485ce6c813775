// File: internal/domain/errors/errors.go
package errors

import (
	"errors"
)

// Определение типов ошибок
var (
	// Общие ошибки
	ErrNotFound = errors.New("resource not found")

	// Ошибки пользователей
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrEmailNotVerified = errors.New("email not verified")

	// Ошибки аутентификации
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
	ErrUnauthorized       = errors.New("unauthorized")

	// Ошибки OTP и сброса пароля
	ErrInvalidOTP        = errors.New("invalid OTP")
	ErrOTPExpired        = errors.New("OTP has expired")
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)

// IsNotFound проверяет, является ли ошибка ошибкой "не найдено"
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsUnauthorized проверяет, является ли ошибка ошибкой "не авторизован"
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken)
}
