// File: internal/utils/email/email_test.go
package email

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Zargham-Waheed/medicalCareBackend/internal/config"
)

func newTestClient() *Client {
	cfg := &config.Config{
		App: config.AppConfig{FrontendURL: "http://localhost:3000"},
		SMTP: config.SMTPConfig{
			// TEST-NET-3, гарантированно немаршрутизируемый адрес
			Host: "203.0.113.1",
			Port: 25,
			From: "noreply@example.com",
		},
		OTP: config.OTPConfig{ExpiryMinutes: 10, ResetTokenExpiryMinutes: 15},
	}
	return NewClient(cfg, zap.NewNop())
}

func TestSend_CancelledContextFailsFast(t *testing.T) {
	c := newTestClient()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := c.SendOTPEmail(ctx, "to@example.com", "123456")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestSend_DeadlineBoundsConnection(t *testing.T) {
	c := newTestClient()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := c.SendPasswordResetEmail(ctx, "to@example.com", "reset-token")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}
