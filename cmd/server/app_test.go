package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/classroom-assist/internal/api"
	"github.com/phrazzld/classroom-assist/internal/api/shared"
	"github.com/phrazzld/classroom-assist/internal/config"
	"github.com/phrazzld/classroom-assist/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(metricsEnabled bool) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "info"},
		LLM: config.LLMConfig{
			ModelName:    "gemini-1.5-flash",
			MaxAttempts:  3,
			RetryBackoff: time.Second,
		},
		Session: config.SessionConfig{Username: "teacher1", Role: "Teacher"},
		Metrics: config.MetricsConfig{Enabled: metricsEnabled},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewApplication_WithoutAPIKeyIsUnavailable(t *testing.T) {
	app, err := newApplication(context.Background(), testConfig(true), testLogger())

	require.NoError(t, err)
	assert.False(t, app.client.Available())
	assert.NotNil(t, app.registry)
	assert.Equal(t, "teacher1", app.assistant.Session().Username)
}

func TestNewApplication_WithAPIKeyIsAvailable(t *testing.T) {
	cfg := testConfig(false)
	cfg.LLM.GeminiAPIKey = "test-api-key"

	app, err := newApplication(context.Background(), cfg, testLogger())

	require.NoError(t, err)
	assert.True(t, app.client.Available())
	assert.Nil(t, app.registry)
}

func TestRouter_HealthAndUnavailableGeneration(t *testing.T) {
	app, err := newApplication(context.Background(), testConfig(true), testLogger())
	require.NoError(t, err)
	router := app.setupRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","generation_available":false}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(shared.TraceIDHeader))

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/generate",
		strings.NewReader(`{"prompt":"Summarize the water cycle in one sentence."}`)))
	require.Equal(t, http.StatusOK, rr.Code)
	var resp api.GenerateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, generation.UnavailableMessage, resp.Text)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `generation_outcomes_total{outcome="service_unavailable"} 1`)
}

func TestRouter_MetricsDisabled(t *testing.T) {
	app, err := newApplication(context.Background(), testConfig(false), testLogger())
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	app.setupRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestStartHTTPServer_StopsOnContextCancel(t *testing.T) {
	cfg := testConfig(false)
	cfg.Server.Port = 0
	app, err := newApplication(context.Background(), cfg, testLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.startHTTPServer(ctx, app.setupRouter()) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down after context cancellation")
	}
}
