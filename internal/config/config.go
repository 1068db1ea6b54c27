// Package config provides configuration loading and validation for the
// service.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the runtime settings for the service. All values come from
// the environment (a .env file is loaded by the CLI before this runs).
type Config struct {
	// Port the HTTP server listens on.
	Port int

	// GeminiAPIKey enables the NLP parse strategy and embedding-based
	// contextual scoring. Empty disables both; the service degrades to the
	// pattern-based strategies and keyword overlap.
	GeminiAPIKey string

	// DatabaseURL enables the PostgreSQL job store. Empty selects the
	// in-memory store.
	DatabaseURL string

	// MaxUploadBytes caps resume and job uploads.
	MaxUploadBytes int64
}

const (
	defaultPort        = 8080
	defaultMaxUploadMB = 10
)

// FromEnv builds a Config from environment variables.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:           defaultPort,
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MaxUploadBytes: defaultMaxUploadMB << 20,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
		}
		cfg.Port = port
	}

	if mbStr := os.Getenv("MAX_UPLOAD_MB"); mbStr != "" {
		mb, err := strconv.ParseInt(mbStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_MB %q: %w", mbStr, err)
		}
		cfg.MaxUploadBytes = mb << 20
	}

	return cfg, cfg.Validate()
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("config error: max upload size must be positive")
	}
	return nil
}
