// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, an optional YAML file). It
// provides type-safe access to the settings needed by the logger, the
// generation client and the session bootstrap, keeping configuration details
// separate from business logic.
package config
