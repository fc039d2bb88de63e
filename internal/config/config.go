package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/hrut/journal/internal/logger"
)

// Config holds server settings.
type Config struct {
	Addr string
	Seed bool
}

// Load reads configuration from a .env file when present, falling back
// to system environment variables and defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Info(".env not loaded: %v", err)
	}

	return &Config{
		Addr: getEnv("JOURNAL_ADDR", ":8000"),
		Seed: getEnv("JOURNAL_SEED", "") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
