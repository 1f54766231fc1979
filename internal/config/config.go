package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	// Snapshot persistence. Backend is "postgres" or "memory".
	SnapshotBackend string
	DBUser          string
	DBPassword      string
	DBHost          string
	DBPort          string
	DBName          string

	// DataDir holds the built-in quote pack JSON files.
	DataDir string

	// ArtServiceURL points at the external image-generation service.
	// Empty means placeholder images only.
	ArtServiceURL string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		Environment:     getEnv("ENVIRONMENT", "dev"),
		ServiceName:     getEnv("SERVICE_NAME", "scriptorium"),
		Version:         getEnv("VERSION", "dev"),
		SnapshotBackend: getEnv("SNAPSHOT_BACKEND", "memory"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBName:          getEnv("DB_NAME", "scriptorium"),
		DataDir:         getEnv("DATA_DIR", "data"),
		ArtServiceURL:   getEnv("ART_SERVICE_URL", ""),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.SnapshotBackend != "postgres" && cfg.SnapshotBackend != "memory" {
		return nil, fmt.Errorf("invalid SNAPSHOT_BACKEND value: %q", cfg.SnapshotBackend)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
