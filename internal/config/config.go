// Package config loads process configuration from the environment.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. It is built once
// in main and passed down explicitly; there is no package-level state.
type Config struct {
	// Addr is the HTTP listen address (e.g., ":5000").
	Addr string

	// DBPath is the SQLite database file path. Parent directories are
	// created on startup if missing.
	DBPath string

	// CORSOrigin is the Access-Control-Allow-Origin value.
	CORSOrigin string

	// MetricsEnabled exposes /metrics when true.
	MetricsEnabled bool
}

// Load reads an optional .env file, then the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return Config{
		Addr:           ":" + getEnv("PORT", "5000"),
		DBPath:         getEnv("DB_PATH", "./data/cwsms.db"),
		CORSOrigin:     getEnv("CORS_ORIGIN", "*"),
		MetricsEnabled: getEnv("METRICS_ENABLED", "true") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
