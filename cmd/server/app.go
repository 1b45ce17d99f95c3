package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/classroom-assist/internal/config"
	"github.com/phrazzld/classroom-assist/internal/domain"
	"github.com/phrazzld/classroom-assist/internal/generation"
	"github.com/phrazzld/classroom-assist/internal/platform/gemini"
	"github.com/phrazzld/classroom-assist/internal/platform/metrics"
	"github.com/phrazzld/classroom-assist/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	// registry is nil when metrics are disabled.
	registry *prometheus.Registry

	client    *generation.Client
	assistant service.AssistantService
}

// newApplication wires the generation client, catalog, session and assistant
// service. A missing or rejected API key is not fatal: the client starts in
// its unavailable state and every generation request returns the
// configuration hint instead of failing.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{config: cfg, logger: logger}

	opts := []generation.Option{generation.WithBackoff(cfg.LLM.RetryBackoff)}
	if cfg.Metrics.Enabled {
		app.registry = prometheus.NewRegistry()
		app.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		opts = append(opts, generation.WithObserver(metrics.NewRecorder(app.registry)))
	}

	app.client = generation.NewClient(logger, newSubmitter(ctx, logger, cfg.LLM), opts...)

	assistant, err := service.NewAssistantService(
		app.client,
		domain.NewCatalog(domain.SampleTrends(), domain.SampleUpdates()),
		domain.NewSession(cfg.Session.Username, cfg.Session.Role),
		logger,
		service.WithMaxAttempts(cfg.LLM.MaxAttempts),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create assistant service: %w", err)
	}
	app.assistant = assistant

	return app, nil
}

// newSubmitter returns the Gemini submitter, or an untyped nil when it cannot
// be built so the client reports itself unavailable.
func newSubmitter(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) generation.Submitter {
	submitter, err := gemini.NewSubmitter(ctx, logger, cfg)
	if err != nil {
		logger.Warn("Text generation unavailable", "error", err)
		return nil
	}
	return submitter
}

// cleanup releases application resources on shutdown.
func (app *application) cleanup() {
	app.logger.Info("Application resources released")
}
