// File: internal/handler/http/auth_handler.go
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domainErrors "github.com/Zargham-Waheed/medicalCareBackend/internal/domain/errors"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/domain/models"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/handler/http/middleware"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/utils/metrics"
)

// AuthService is the service contract this handler depends on.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) error
	VerifyOTP(ctx context.Context, email, code string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	Profile(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	logger      *zap.Logger
	authService AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(logger *zap.Logger, authService AuthService) *AuthHandler {
	return &AuthHandler{
		logger:      logger.Named("auth_handler"),
		authService: authService,
	}
}

// Signup handles user registration.
// POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", h.logger)
		return
	}

	if err := h.authService.Signup(c.Request.Context(), req); err != nil {
		if errors.Is(err, domainErrors.ErrEmailExists) {
			metrics.SignupAttemptsTotal.WithLabelValues("conflict").Inc()
			RespondWithError(c, http.StatusBadRequest, "Email already registered", h.logger)
			return
		}
		metrics.SignupAttemptsTotal.WithLabelValues("error").Inc()
		h.logger.Error("Signup: service error", zap.Error(err))
		RespondWithError(c, http.StatusInternalServerError, "Failed to register user", h.logger)
		return
	}

	metrics.SignupAttemptsTotal.WithLabelValues("success").Inc()
	RespondWithMessage(c, http.StatusOK, "OTP sent to your email for verification")
}

// VerifyOTP handles email OTP verification.
// POST /auth/verify-otp
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", h.logger)
		return
	}

	user, token, err := h.authService.VerifyOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidOTP):
			metrics.OTPVerificationsTotal.WithLabelValues("invalid").Inc()
			RespondWithError(c, http.StatusBadRequest, "Invalid OTP", h.logger)
		case errors.Is(err, domainErrors.ErrOTPExpired):
			metrics.OTPVerificationsTotal.WithLabelValues("expired").Inc()
			RespondWithError(c, http.StatusBadRequest, "OTP has expired", h.logger)
		case errors.Is(err, domainErrors.ErrUserNotFound):
			metrics.OTPVerificationsTotal.WithLabelValues("error").Inc()
			RespondWithError(c, http.StatusNotFound, "User not found", h.logger)
		default:
			metrics.OTPVerificationsTotal.WithLabelValues("error").Inc()
			h.logger.Error("VerifyOTP: service error", zap.Error(err))
			RespondWithError(c, http.StatusInternalServerError, "Failed to verify OTP", h.logger)
		}
		return
	}

	metrics.OTPVerificationsTotal.WithLabelValues("success").Inc()
	RespondWithData(c, http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Username:    user.Email,
		FullName:    user.FullName,
	})
}

// Login handles user login.
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", h.logger)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
			RespondWithError(c, http.StatusUnauthorized, "Invalid credentials", h.logger)
		case errors.Is(err, domainErrors.ErrEmailNotVerified):
			metrics.LoginAttemptsTotal.WithLabelValues("unverified").Inc()
			RespondWithError(c, http.StatusUnauthorized, "Email not verified. Please verify your email first.", h.logger)
		default:
			metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
			h.logger.Error("Login: service error", zap.Error(err))
			RespondWithError(c, http.StatusInternalServerError, "Login failed", h.logger)
		}
		return
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	RespondWithData(c, http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Username:    user.Email,
		FullName:    user.FullName,
	})
}

// ForgotPassword handles password reset requests. The response is identical
// whether or not the email is registered.
// POST /auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", h.logger)
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		h.logger.Error("ForgotPassword: service error", zap.Error(err))
		RespondWithError(c, http.StatusInternalServerError, "Failed to process request", h.logger)
		return
	}

	RespondWithMessage(c, http.StatusOK, "Password reset link sent to your email")
}

// ResetPassword handles the password change authorized by a reset token.
// POST /auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", h.logger)
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidResetToken):
			metrics.PasswordResetsTotal.WithLabelValues("invalid").Inc()
			RespondWithError(c, http.StatusBadRequest, "Invalid or expired reset token", h.logger)
		case errors.Is(err, domainErrors.ErrUserNotFound):
			metrics.PasswordResetsTotal.WithLabelValues("error").Inc()
			RespondWithError(c, http.StatusNotFound, "User not found", h.logger)
		default:
			metrics.PasswordResetsTotal.WithLabelValues("error").Inc()
			h.logger.Error("ResetPassword: service error", zap.Error(err))
			RespondWithError(c, http.StatusInternalServerError, "Failed to reset password", h.logger)
		}
		return
	}

	metrics.PasswordResetsTotal.WithLabelValues("success").Inc()
	RespondWithMessage(c, http.StatusOK, "Password reset successfully. Please log in again.")
}

// GetProfile returns the authenticated user's profile.
// GET /auth/user/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token", h.logger)
		return
	}

	user, err := h.authService.Profile(c.Request.Context(), userID)
	if err != nil {
		if domainErrors.IsNotFound(err) {
			RespondWithError(c, http.StatusNotFound, "User not found", h.logger)
			return
		}
		h.logger.Error("GetProfile: service error", zap.Error(err))
		RespondWithError(c, http.StatusInternalServerError, "Failed to load profile", h.logger)
		return
	}

	RespondWithData(c, http.StatusOK, user.ToProfileResponse())
}
