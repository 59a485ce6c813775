// File: cmd/auth-service/main.go
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Zargham-Waheed/medicalCareBackend/internal/app"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/config"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/utils/logger"
)

func main() {
	// .env нужен только для локальной разработки, в проде переменные
	// приходят из окружения
	_ = godotenv.Load()

	// Инициализация конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера
	log, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := app.Run(cfg, log); err != nil {
		log.Fatal("Application terminated", zap.Error(err))
	}
}
