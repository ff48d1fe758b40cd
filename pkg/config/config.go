package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port           string
	Env            string
	AllowedOrigins []string
	TrustProxy     bool // honour X-Forwarded-For and X-Real-IP from a fronting proxy

	// Network selection
	Network            string
	NetworksConfigPath string

	// Explorer API configuration
	ExplorerAPIURL    string // overrides the network's explorer_api_url when set
	ExplorerAPIKey    string
	ExplorerRateLimit float64 // outbound requests per second

	// Redis configuration
	RedisURL      string
	RedisPassword string
	CacheTTL      time.Duration

	// Database configuration (optional, enables the dapp registry table)
	DatabaseURL string
}

// Load loads configuration from an optional .env file and environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		AllowedOrigins:     getEnvAsList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		TrustProxy:         getEnvAsBool("TRUST_PROXY", false),
		Network:            getEnv("NETWORK", "mainnet"),
		NetworksConfigPath: getEnv("NETWORKS_CONFIG_PATH", "config/networks.yaml"),
		ExplorerAPIURL:     getEnv("EXPLORER_API_URL", ""),
		ExplorerAPIKey:     getEnv("EXPLORER_API_KEY", ""),
		ExplorerRateLimit:  getEnvAsFloat("EXPLORER_RATE_LIMIT", 5),
		RedisURL:           getEnv("REDIS_URL", "localhost:6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		CacheTTL:           getEnvAsDuration("CACHE_TTL", 60*time.Second),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures the configuration is usable
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}

	switch c.Env {
	case "development", "production", "test":
	default:
		return fmt.Errorf("ENV must be one of development, production, test, got %q", c.Env)
	}

	if c.Network == "" {
		return fmt.Errorf("NETWORK is required")
	}

	if c.ExplorerRateLimit <= 0 {
		return fmt.Errorf("EXPLORER_RATE_LIMIT must be positive")
	}

	if c.CacheTTL < 0 {
		return fmt.Errorf("CACHE_TTL must not be negative")
	}

	// The public explorer API throttles anonymous clients hard
	if c.ExplorerAPIKey == "" && c.IsProduction() {
		return fmt.Errorf("EXPLORER_API_KEY is required in production")
	}

	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// HasDatabase reports whether the optional PostgreSQL dapp registry is configured
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsFloat gets an environment variable as a float with a default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as a bool with a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvAsDuration gets an environment variable as a time.Duration with a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated environment variable
func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
