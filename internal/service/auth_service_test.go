// File: internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Zargham-Waheed/medicalCareBackend/internal/config"
	domainErrors "github.com/Zargham-Waheed/medicalCareBackend/internal/domain/errors"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/domain/models"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/domain/repository/mocks"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/infrastructure/security"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/utils/password"
)

// stubSender записывает отправленные письма, чтобы тест мог дождаться
// фоновой горутины
type stubSender struct {
	otpSent   chan string
	resetSent chan string
}

func newStubSender() *stubSender {
	return &stubSender{
		otpSent:   make(chan string, 1),
		resetSent: make(chan string, 1),
	}
}

func (s *stubSender) SendOTPEmail(_ context.Context, _, otp string) error {
	s.otpSent <- otp
	return nil
}

func (s *stubSender) SendPasswordResetEmail(_ context.Context, _, token string) error {
	s.resetSent <- token
	return nil
}

type serviceFixture struct {
	users  *mocks.MockUserRepository
	otps   *mocks.MockOTPRepository
	resets *mocks.MockResetTokenRepository
	sender *stubSender
	svc    *AuthService
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	cfg := &config.Config{
		JWT: config.JWTConfig{SecretKey: "test-secret-key", ExpiryMinutes: 60},
		OTP: config.OTPConfig{ExpiryMinutes: 10, ResetTokenExpiryMinutes: 15},
	}
	tokens, err := security.NewJWTService(cfg.JWT)
	require.NoError(t, err)

	f := &serviceFixture{
		users:  new(mocks.MockUserRepository),
		otps:   new(mocks.MockOTPRepository),
		resets: new(mocks.MockResetTokenRepository),
		sender: newStubSender(),
	}
	f.svc = NewAuthService(f.users, f.otps, f.resets, tokens, f.sender, cfg, zap.NewNop())
	return f
}

func waitFor(t *testing.T, ch chan string) string {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("expected email dispatch, got none")
		return ""
	}
}

func TestSignup_Success(t *testing.T) {
	f := newServiceFixture(t)
	req := models.SignupRequest{FullName: "John Doe", Email: "john@example.com", Password: "Password1"}

	f.users.On("FindByEmail", mock.Anything, req.Email).Return(nil, domainErrors.ErrUserNotFound)
	f.users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == req.Email && u.FullName == req.FullName && !u.IsVerified && u.PasswordHash != req.Password
	})).Return(nil)
	f.otps.On("Replace", mock.Anything, req.Email, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)

	err := f.svc.Signup(context.Background(), req)
	require.NoError(t, err)

	otp := waitFor(t, f.sender.otpSent)
	assert.Len(t, otp, 6)

	f.users.AssertExpectations(t)
	f.otps.AssertExpectations(t)
}

func TestSignup_EmailAlreadyRegistered(t *testing.T) {
	f := newServiceFixture(t)
	req := models.SignupRequest{FullName: "John Doe", Email: "john@example.com", Password: "Password1"}

	f.users.On("FindByEmail", mock.Anything, req.Email).Return(&models.User{ID: uuid.New(), Email: req.Email}, nil)

	err := f.svc.Signup(context.Background(), req)
	assert.ErrorIs(t, err, domainErrors.ErrEmailExists)
	f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVerifyOTP_Success(t *testing.T) {
	f := newServiceFixture(t)
	userID := uuid.New()
	rec := &models.OTPVerification{
		ID:        uuid.New(),
		Email:     "john@example.com",
		OTP:       "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	f.otps.On("Find", mock.Anything, rec.Email, "123456").Return(rec, nil)
	f.users.On("FindByEmail", mock.Anything, rec.Email).Return(&models.User{ID: userID, Email: rec.Email, FullName: "John Doe"}, nil)
	f.users.On("MarkVerified", mock.Anything, userID).Return(nil)
	f.otps.On("Delete", mock.Anything, rec.ID).Return(nil)

	user, token, err := f.svc.VerifyOTP(context.Background(), rec.Email, "123456")
	require.NoError(t, err)
	assert.True(t, user.IsVerified)
	assert.NotEmpty(t, token)
	f.otps.AssertExpectations(t)
	f.users.AssertExpectations(t)
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	f := newServiceFixture(t)
	f.otps.On("Find", mock.Anything, "john@example.com", "000000").Return(nil, domainErrors.ErrNotFound)

	_, _, err := f.svc.VerifyOTP(context.Background(), "john@example.com", "000000")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidOTP)
}

func TestVerifyOTP_ExpiredCodeIsDeleted(t *testing.T) {
	f := newServiceFixture(t)
	rec := &models.OTPVerification{
		ID:        uuid.New(),
		Email:     "john@example.com",
		OTP:       "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	f.otps.On("Find", mock.Anything, rec.Email, "123456").Return(rec, nil)
	f.otps.On("Delete", mock.Anything, rec.ID).Return(nil)

	_, _, err := f.svc.VerifyOTP(context.Background(), rec.Email, "123456")
	assert.ErrorIs(t, err, domainErrors.ErrOTPExpired)
	f.otps.AssertCalled(t, "Delete", mock.Anything, rec.ID)
	f.users.AssertNotCalled(t, "MarkVerified", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	f := newServiceFixture(t)
	hash, err := password.Hash("Password1", nil)
	require.NoError(t, err)
	user := &models.User{ID: uuid.New(), Email: "john@example.com", PasswordHash: hash, IsVerified: true}

	f.users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

	got, token, err := f.svc.Login(context.Background(), user.Email, "Password1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.NotEmpty(t, token)
}

func TestLogin_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	f := newServiceFixture(t)
	hash, err := password.Hash("Password1", nil)
	require.NoError(t, err)
	user := &models.User{ID: uuid.New(), Email: "john@example.com", PasswordHash: hash, IsVerified: true}

	f.users.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, domainErrors.ErrUserNotFound)
	f.users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

	_, _, errAbsent := f.svc.Login(context.Background(), "ghost@example.com", "Password1")
	_, _, errWrong := f.svc.Login(context.Background(), user.Email, "WrongPass1")

	assert.ErrorIs(t, errAbsent, domainErrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, domainErrors.ErrInvalidCredentials)
}

func TestLogin_UnverifiedEmail(t *testing.T) {
	f := newServiceFixture(t)
	hash, err := password.Hash("Password1", nil)
	require.NoError(t, err)
	user := &models.User{ID: uuid.New(), Email: "john@example.com", PasswordHash: hash, IsVerified: false}

	f.users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

	_, _, err = f.svc.Login(context.Background(), user.Email, "Password1")
	assert.ErrorIs(t, err, domainErrors.ErrEmailNotVerified)
}

func TestForgotPassword_KnownEmailIssuesToken(t *testing.T) {
	f := newServiceFixture(t)
	user := &models.User{ID: uuid.New(), Email: "john@example.com", IsVerified: true}

	f.users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	f.resets.On("Replace", mock.Anything, user.Email, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)

	err := f.svc.ForgotPassword(context.Background(), user.Email)
	require.NoError(t, err)

	token := waitFor(t, f.sender.resetSent)
	assert.NotEmpty(t, token)
	f.resets.AssertExpectations(t)
}

func TestForgotPassword_UnknownEmailSilentlySucceeds(t *testing.T) {
	f := newServiceFixture(t)
	f.users.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, domainErrors.ErrUserNotFound)

	err := f.svc.ForgotPassword(context.Background(), "ghost@example.com")
	assert.NoError(t, err)
	f.resets.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResetPassword_Success(t *testing.T) {
	f := newServiceFixture(t)
	user := &models.User{ID: uuid.New(), Email: "john@example.com", PasswordHash: "old-hash", IsVerified: true}
	rec := &models.PasswordResetToken{
		ID:        uuid.New(),
		Email:     user.Email,
		Token:     "reset-token",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	f.resets.On("FindActive", mock.Anything, rec.Token).Return(rec, nil)
	f.users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	f.users.On("UpdatePasswordHash", mock.Anything, user.ID, mock.MatchedBy(func(h string) bool {
		return h != "" && h != "old-hash"
	})).Return(nil)
	f.resets.On("MarkUsed", mock.Anything, rec.ID).Return(nil)

	err := f.svc.ResetPassword(context.Background(), rec.Token, "NewPassword1")
	require.NoError(t, err)
	f.resets.AssertExpectations(t)
	f.users.AssertExpectations(t)
}

func TestResetPassword_UnknownToken(t *testing.T) {
	f := newServiceFixture(t)
	f.resets.On("FindActive", mock.Anything, "missing").Return(nil, domainErrors.ErrNotFound)

	err := f.svc.ResetPassword(context.Background(), "missing", "NewPassword1")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidResetToken)
}

func TestResetPassword_ExpiredTokenIsDeleted(t *testing.T) {
	f := newServiceFixture(t)
	rec := &models.PasswordResetToken{
		ID:        uuid.New(),
		Email:     "john@example.com",
		Token:     "stale-token",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	f.resets.On("FindActive", mock.Anything, rec.Token).Return(rec, nil)
	f.resets.On("Delete", mock.Anything, rec.ID).Return(nil)

	err := f.svc.ResetPassword(context.Background(), rec.Token, "NewPassword1")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidResetToken)
	f.resets.AssertCalled(t, "Delete", mock.Anything, rec.ID)
	f.users.AssertNotCalled(t, "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfile(t *testing.T) {
	f := newServiceFixture(t)
	user := &models.User{ID: uuid.New(), Email: "john@example.com", FullName: "John Doe", IsVerified: true}

	f.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	got, err := f.svc.Profile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)
}
