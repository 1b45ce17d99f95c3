package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm" validate:"required"`
	Session SessionConfig `mapstructure:"session" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all text-generation related settings.
//
// GeminiAPIKey is deliberately optional: without it the generation client
// runs in its unavailable state instead of refusing to start.
type LLMConfig struct {
	GeminiAPIKey string        `mapstructure:"gemini_api_key"`
	ModelName    string        `mapstructure:"model_name" validate:"required"`
	MaxAttempts  int           `mapstructure:"max_attempts" validate:"gte=1,lte=10"`
	RetryBackoff time.Duration `mapstructure:"retry_backoff" validate:"gte=0"`
}

// SessionConfig seeds the single in-process teacher session.
type SessionConfig struct {
	Username string `mapstructure:"username" validate:"required"`
	Role     string `mapstructure:"role" validate:"required"`
}

// MetricsConfig toggles Prometheus instrumentation.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
