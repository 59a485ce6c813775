// File: internal/utils/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics содержит метрики для мониторинга сервиса
var (
	// RequestsTotal счетчик общего количества запросов
	RequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auth_backend_requests_total",
		Help: "The total number of requests",
	})

	// ResponsesTotal счетчик ответов по статусам
	ResponsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_backend_responses_total",
		Help: "The total number of responses by status code",
	}, []string{"status"})

	// RequestDuration гистограмма времени обработки запросов
	RequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "auth_backend_request_duration_seconds",
		Help:    "The request duration in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// RequestDurationByPath гистограмма времени обработки по методу и пути
	RequestDurationByPath = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "auth_backend_request_duration_by_path_seconds",
		Help:    "The request duration in seconds by method and path",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// SignupAttemptsTotal счетчик попыток регистрации
	SignupAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_backend_signup_attempts_total",
		Help: "The total number of signup attempts",
	}, []string{"status"})

	// LoginAttemptsTotal счетчик попыток входа
	LoginAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_backend_login_attempts_total",
		Help: "The total number of login attempts",
	}, []string{"status"})

	// OTPVerificationsTotal счетчик проверок OTP
	OTPVerificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_backend_otp_verifications_total",
		Help: "The total number of OTP verification attempts",
	}, []string{"status"})

	// PasswordResetsTotal счетчик сбросов пароля
	PasswordResetsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_backend_password_resets_total",
		Help: "The total number of password reset attempts",
	}, []string{"status"})

	// EmailsSentTotal счетчик отправленных писем
	EmailsSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_backend_emails_sent_total",
		Help: "The total number of emails sent",
	}, []string{"kind", "status"})
)
