// File: internal/utils/email/email.go

package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"time"

	"go.uber.org/zap"

	"github.com/Zargham-Waheed/medicalCareBackend/internal/config"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/utils/metrics"
)

// Sender is the notification contract the auth flows depend on.
type Sender interface {
	SendOTPEmail(ctx context.Context, to, otp string) error
	SendPasswordResetEmail(ctx context.Context, to, token string) error
}

// Client представляет клиент для отправки email
type Client struct {
	smtp        config.SMTPConfig
	otp         config.OTPConfig
	frontendURL string
	logger      *zap.Logger
}

// NewClient создает новый клиент для отправки email
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		smtp:        cfg.SMTP,
		otp:         cfg.OTP,
		frontendURL: cfg.App.FrontendURL,
		logger:      logger.Named("email_client"),
	}
}

var otpTemplate = template.Must(template.New("otp").Parse(`
<!DOCTYPE html>
<html>
    <body>
        <h2>Email Verification</h2>
        <p>Your verification code is: <strong>{{.OTP}}</strong></p>
        <p>This code will expire in {{.ExpiryMinutes}} minutes.</p>
        <p>If you did not request this code, please ignore this email.</p>
    </body>
</html>
`))

var passwordResetTemplate = template.Must(template.New("reset").Parse(`
<!DOCTYPE html>
<html>
    <body>
        <h2>Password Reset</h2>
        <p>You requested to reset your password.</p>
        <p>Click the link below to reset your password:</p>
        <p><a href="{{.ResetLink}}">Reset Password</a></p>
        <p>This link will expire in {{.ExpiryMinutes}} minutes.</p>
        <p>If you did not request this reset, please ignore this email.</p>
    </body>
</html>
`))

// SendOTPEmail отправляет письмо с кодом подтверждения
func (c *Client) SendOTPEmail(ctx context.Context, to, otp string) error {
	var body bytes.Buffer
	if err := otpTemplate.Execute(&body, map[string]interface{}{
		"OTP":           otp,
		"ExpiryMinutes": c.otp.ExpiryMinutes,
	}); err != nil {
		return fmt.Errorf("failed to render OTP email: %w", err)
	}

	if err := c.send(ctx, to, "Your Verification Code", body.String()); err != nil {
		metrics.EmailsSentTotal.WithLabelValues("otp", "error").Inc()
		return err
	}
	metrics.EmailsSentTotal.WithLabelValues("otp", "success").Inc()
	return nil
}

// SendPasswordResetEmail отправляет письмо со ссылкой для сброса пароля
func (c *Client) SendPasswordResetEmail(ctx context.Context, to, token string) error {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", c.frontendURL, token)

	var body bytes.Buffer
	if err := passwordResetTemplate.Execute(&body, map[string]interface{}{
		"ResetLink":     template.URL(resetLink),
		"ExpiryMinutes": c.otp.ResetTokenExpiryMinutes,
	}); err != nil {
		return fmt.Errorf("failed to render password reset email: %w", err)
	}

	if err := c.send(ctx, to, "Password Reset Request", body.String()); err != nil {
		metrics.EmailsSentTotal.WithLabelValues("password_reset", "error").Inc()
		return err
	}
	metrics.EmailsSentTotal.WithLabelValues("password_reset", "success").Inc()
	return nil
}

// send отправляет email через SMTP с использованием STARTTLS.
// Дедлайн контекста распространяется на соединение, иначе зависший
// SMTP сервер держал бы горутину до таймаута TCP.
func (c *Client) send(ctx context.Context, to, subject, body string) error {
	// Формируем заголовки email
	headers := map[string]string{
		"From":         c.smtp.From,
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
		"Date":         time.Now().Format(time.RFC1123Z),
	}

	var message bytes.Buffer
	for k, v := range headers {
		message.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	message.WriteString("\r\n")
	message.WriteString(body)

	addr := fmt.Sprintf("%s:%d", c.smtp.Host, c.smtp.Port)
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			conn.Close()
			return fmt.Errorf("failed to set connection deadline: %w", err)
		}
	}

	client, err := smtp.NewClient(conn, c.smtp.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: c.smtp.Host}); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	auth := smtp.PlainAuth("", c.smtp.Username, c.smtp.Password, c.smtp.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	if err := client.Mail(c.smtp.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err := w.Write(message.Bytes()); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	if err := client.Quit(); err != nil {
		return fmt.Errorf("failed to quit SMTP session: %w", err)
	}

	c.logger.Info("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

var _ Sender = (*Client)(nil)
