// Package main implements the entry point for the classroom assistant API
// server, which serves lesson planning, trend analysis and voice assistant
// features backed by a retrying text-generation client.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/phrazzld/classroom-assist/internal/config"
	"github.com/phrazzld/classroom-assist/internal/platform/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := loadAppConfig()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		appLogger.Error("Server terminated with error", "error", err)
		os.Exit(1)
	}
}

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"max_attempts", cfg.LLM.MaxAttempts)
	slog.Debug("LLM configuration", "api_key_present", cfg.LLM.GeminiAPIKey != "")

	return cfg, nil
}
