// File: internal/domain/models/auth_dtos.go
package models

// SignupRequest is the payload for POST /auth/signup.
type SignupRequest struct {
	FullName string `json:"full_name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,strongpassword"`
}

// VerifyOTPRequest is the payload for POST /auth/verify-otp.
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest is the payload for POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest is the payload for POST /auth/reset-password.
// ConfirmPassword is optional; when present it must match NewPassword.
type ResetPasswordRequest struct {
	Token           string `json:"token" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,strongpassword"`
	ConfirmPassword string `json:"confirm_password" binding:"omitempty,eqfield=NewPassword"`
}

// TokenResponse carries an issued bearer token. Username is the account email.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
	FullName    string `json:"full_name"`
}

// MessageResponse is a generic success message.
type MessageResponse struct {
	Message string `json:"message"`
}
