// Package common provides shared utilities for smx-mcp
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for smx-mcp
type Config struct {
	Environment string                `toml:"environment"`
	Server      ServerConfig          `toml:"server"`
	API         StandardMetricsConfig `toml:"api"`
	Logging     LoggingConfig         `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StandardMetricsConfig holds Standard Metrics API configuration
type StandardMetricsConfig struct {
	BaseURL   string `toml:"base_url"`
	APIKey    string `toml:"api_key"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *StandardMetricsConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "localhost",
			Port: 8000,
		},
		API: StandardMetricsConfig{
			BaseURL:   "https://api.standardmetrics.com",
			RateLimit: 10,
			Timeout:   "30s",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Resolution order: defaults, then each config file in turn, then a .env
// file if present, then process environment variables.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// A .env file fills in unset process env vars; already-set vars win
	_ = godotenv.Load()

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("SMX_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("SMX_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("SMX_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if key := os.Getenv("STANDARD_METRICS_API_KEY"); key != "" {
		config.API.APIKey = key
	} else if key := os.Getenv("SMX_API_KEY"); key != "" {
		config.API.APIKey = key
	}

	if baseURL := os.Getenv("STANDARD_METRICS_BASE_URL"); baseURL != "" {
		config.API.BaseURL = baseURL
	} else if baseURL := os.Getenv("SMX_BASE_URL"); baseURL != "" {
		config.API.BaseURL = baseURL
	}

	if timeout := os.Getenv("SMX_TIMEOUT"); timeout != "" {
		config.API.Timeout = timeout
	}

	if limit := os.Getenv("SMX_RATE_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			config.API.RateLimit = n
		}
	}

	if level := os.Getenv("SMX_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// Validate checks that the configuration is usable. A missing API key is a
// startup error, not something to discover on the first tool call.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.APIKey) == "" {
		return fmt.Errorf("Standard Metrics API key not configured: set STANDARD_METRICS_API_KEY")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
