// File: internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Zargham-Waheed/medicalCareBackend/internal/config"
	domainErrors "github.com/Zargham-Waheed/medicalCareBackend/internal/domain/errors"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/domain/models"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/domain/repository"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/infrastructure/security"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/utils/email"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/utils/password"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/utils/random"
)

const (
	otpCodeLength   = 6
	resetTokenBytes = 32

	// emailSendTimeout bounds the background delivery attempt; the request
	// that triggered it has already returned by then.
	emailSendTimeout = 15 * time.Second
)

// AuthService orchestrates the account lifecycle flows. It holds no state
// across requests; all shared state lives in the repositories.
type AuthService struct {
	users  repository.UserRepository
	otps   repository.OTPRepository
	resets repository.ResetTokenRepository
	tokens *security.JWTService
	sender email.Sender
	cfg    *config.Config
	logger *zap.Logger

	// now is swappable in tests
	now func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	users repository.UserRepository,
	otps repository.OTPRepository,
	resets repository.ResetTokenRepository,
	tokens *security.JWTService,
	sender email.Sender,
	cfg *config.Config,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		users:  users,
		otps:   otps,
		resets: resets,
		tokens: tokens,
		sender: sender,
		cfg:    cfg,
		logger: logger.Named("auth_service"),
		now:    time.Now,
	}
}

// Signup registers a new unverified user and issues a fresh OTP for the email.
// Returns domainErrors.ErrEmailExists when the email is already registered.
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) error {
	_, err := s.users.FindByEmail(ctx, req.Email)
	if err == nil {
		return domainErrors.ErrEmailExists
	}
	if !errors.Is(err, domainErrors.ErrUserNotFound) {
		return fmt.Errorf("signup lookup failed: %w", err)
	}

	hash, err := password.Hash(req.Password, nil)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	user := &models.User{
		ID:           uuid.New(),
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent signup for the same email loses here on the unique
		// constraint and surfaces the same error as the pre-check.
		return err
	}

	code, err := random.GenerateRandomDigits(otpCodeLength)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}
	expiry := now.Add(time.Duration(s.cfg.OTP.ExpiryMinutes) * time.Minute)
	if err := s.otps.Replace(ctx, req.Email, code, expiry); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	s.dispatchEmail("otp", func(ctx context.Context) error {
		return s.sender.SendOTPEmail(ctx, req.Email, code)
	})

	s.logger.Info("User signed up", zap.String("user_id", user.ID.String()))
	return nil
}

// VerifyOTP checks the code issued at signup, marks the user verified and
// issues an access token. The code is consumed on success and removed on an
// expired attempt.
func (s *AuthService) VerifyOTP(ctx context.Context, emailAddr, code string) (*models.User, string, error) {
	rec, err := s.otps.Find(ctx, emailAddr, code)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidOTP
		}
		return nil, "", fmt.Errorf("OTP lookup failed: %w", err)
	}

	if rec.IsExpired(s.now()) {
		if err := s.otps.Delete(ctx, rec.ID); err != nil {
			s.logger.Error("Failed to delete expired OTP", zap.Error(err))
		}
		return nil, "", domainErrors.ErrOTPExpired
	}

	user, err := s.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		// Should not happen: an OTP implies a signup created the user.
		return nil, "", err
	}

	if err := s.users.MarkVerified(ctx, user.ID); err != nil {
		return nil, "", fmt.Errorf("failed to mark user verified: %w", err)
	}
	if err := s.otps.Delete(ctx, rec.ID); err != nil {
		return nil, "", fmt.Errorf("failed to consume OTP: %w", err)
	}
	user.IsVerified = true

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("User verified", zap.String("user_id", user.ID.String()))
	return user, token, nil
}

// Login authenticates a verified user and issues an access token. A missing
// account and a wrong password are reported identically to deny enumeration.
func (s *AuthService) Login(ctx context.Context, emailAddr, plainPassword string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domainErrors.ErrUserNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("login lookup failed: %w", err)
	}

	if !user.IsVerified {
		return nil, "", domainErrors.ErrEmailNotVerified
	}

	match, err := password.Verify(plainPassword, user.PasswordHash)
	if err != nil && !errors.Is(err, password.ErrMismatchedPassword) {
		return nil, "", fmt.Errorf("password verification failed: %w", err)
	}
	if !match {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID.String()))
	return user, token, nil
}

// ForgotPassword issues a single-use reset token and mails it. For unknown
// emails it silently succeeds without creating anything, so the response is
// indistinguishable from the registered case.
func (s *AuthService) ForgotPassword(ctx context.Context, emailAddr string) error {
	user, err := s.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domainErrors.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("forgot-password lookup failed: %w", err)
	}

	token, err := random.GenerateSecureToken(resetTokenBytes)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	expiry := s.now().Add(time.Duration(s.cfg.OTP.ResetTokenExpiryMinutes) * time.Minute)
	if err := s.resets.Replace(ctx, user.Email, token, expiry); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	s.dispatchEmail("password_reset", func(ctx context.Context) error {
		return s.sender.SendPasswordResetEmail(ctx, user.Email, token)
	})

	s.logger.Info("Password reset requested", zap.String("user_id", user.ID.String()))
	return nil
}

// ResetPassword consumes a reset token and stores a new password hash.
// Absent, used and expired tokens all surface the same error.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	rec, err := s.resets.FindActive(ctx, token)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.ErrInvalidResetToken
		}
		return fmt.Errorf("reset token lookup failed: %w", err)
	}

	if rec.IsExpired(s.now()) {
		if err := s.resets.Delete(ctx, rec.ID); err != nil {
			s.logger.Error("Failed to delete expired reset token", zap.Error(err))
		}
		return domainErrors.ErrInvalidResetToken
	}

	user, err := s.users.FindByEmail(ctx, rec.Email)
	if err != nil {
		return err
	}

	hash, err := password.Hash(newPassword, nil)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	if err := s.users.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if err := s.resets.MarkUsed(ctx, rec.ID); err != nil {
		return fmt.Errorf("failed to mark reset token used: %w", err)
	}

	// Access tokens issued before the reset stay valid until their own expiry.
	s.logger.Info("Password reset completed", zap.String("user_id", user.ID.String()))
	return nil
}

// Profile returns the account for the given ID.
func (s *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.users.FindByID(ctx, userID)
}

// dispatchEmail sends a notification on a background goroutine. Delivery
// failures are logged and never fail the request that triggered them.
func (s *AuthService) dispatchEmail(kind string, send func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), emailSendTimeout)
		defer cancel()
		if err := send(ctx); err != nil {
			s.logger.Error("Failed to send email", zap.String("kind", kind), zap.Error(err))
		}
	}()
}
