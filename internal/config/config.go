package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	Port int // HTTP server port

	// History persistence; empty means the in-memory store
	DatabaseURL string

	// Batch processing
	BatchWorkers int // concurrent assessments per batch request

	// Logging
	LogLevel string // "info" or "debug"
}

// Load reads configuration from environment variables with defaults
// applied.
func Load() *Config {
	return &Config{
		Port:         getEnvAsInt("PORT", 8080),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		BatchWorkers: getEnvAsInt("BATCH_WORKERS", 4),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as an integer. If the
// variable doesn't exist or can't be parsed, returns the default.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
