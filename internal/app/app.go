// File: internal/app/app.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"github.com/Zargham-Waheed/medicalCareBackend/internal/config"
	httpHandler "github.com/Zargham-Waheed/medicalCareBackend/internal/handler/http"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/infrastructure/database"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/infrastructure/database/postgres"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/infrastructure/security"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/service"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/utils/email"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/utils/validator"
)

// Run собирает все зависимости и запускает HTTP сервер.
// Блокируется до получения SIGINT/SIGTERM, после чего выполняет graceful shutdown.
func Run(cfg *config.Config, logger *zap.Logger) error {
	// Применение миграций
	if cfg.Database.AutoMigrate {
		if err := runMigrations(cfg, logger); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
	}

	// Инициализация подключения к PostgreSQL
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbPool, err := postgres.NewDBPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("postgres connection failed: %w", err)
	}
	defer dbPool.Close()

	// Инициализация репозиториев
	userRepo := database.NewPgxUserRepository(dbPool)
	otpRepo := database.NewPgxOTPRepository(dbPool)
	resetRepo := database.NewPgxResetTokenRepository(dbPool)

	// Инициализация сервисов
	jwtService, err := security.NewJWTService(cfg.JWT)
	if err != nil {
		return fmt.Errorf("jwt service init failed: %w", err)
	}

	emailClient := email.NewClient(cfg, logger)

	authService := service.NewAuthService(
		userRepo,
		otpRepo,
		resetRepo,
		jwtService,
		emailClient,
		cfg,
		logger,
	)

	// Регистрация кастомных валидаторов запросов
	if err := validator.RegisterCustomValidators(); err != nil {
		return fmt.Errorf("validator registration failed: %w", err)
	}

	// Инициализация HTTP сервера
	router := httpHandler.SetupRouter(authService, jwtService, cfg, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Запуск HTTP сервера в отдельной горутине
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.Int("port", cfg.Server.Port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Ожидание сигнала для graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("http server failed: %w", err)
	case sig := <-quit:
		logger.Info("Shutting down server", zap.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Info("Server exited properly")
	return nil
}

// runMigrations применяет миграции базы данных
func runMigrations(cfg *config.Config, logger *zap.Logger) error {
	logger.Info("Running database migrations", zap.String("path", cfg.Database.MigrationsPath))

	migrationURL := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Database.User, cfg.Database.Password, cfg.Database.Host, cfg.Database.Port,
		cfg.Database.DBName, cfg.Database.SSLMode)

	m, err := migrate.New("file://"+cfg.Database.MigrationsPath, migrationURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}

	logger.Info("Migrations applied successfully")
	return nil
}
