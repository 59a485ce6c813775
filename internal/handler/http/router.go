// File: internal/handler/http/router.go

package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Zargham-Waheed/medicalCareBackend/internal/config"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/handler/http/middleware"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/infrastructure/security"
)

// SetupRouter настраивает маршрутизацию HTTP
func SetupRouter(
	authService AuthService,
	tokenService *security.JWTService,
	cfg *config.Config,
	logger *zap.Logger,
) *gin.Engine {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Создание роутера
	router := gin.New()

	// Применение middleware
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.CorsMiddleware(cfg.App.FrontendURL))
	router.Use(middleware.MetricsMiddleware())

	// Создание обработчиков
	authHandler := NewAuthHandler(logger, authService)

	// Настройка маршрутов для метрик и проверки работоспособности
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Authentication API is running"})
	})

	// Маршруты аутентификации (публичные)
	auth := router.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/verify-otp", authHandler.VerifyOTP)
		auth.POST("/login", authHandler.Login)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.POST("/reset-password", authHandler.ResetPassword)
	}

	// Защищенные маршруты (требуют аутентификации)
	user := router.Group("/auth/user")
	user.Use(middleware.AuthMiddleware(tokenService, logger))
	{
		user.GET("/profile", authHandler.GetProfile)
	}

	return router
}
