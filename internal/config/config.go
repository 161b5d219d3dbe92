package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment. It is
// built once in main and handed to whoever needs it; nothing else in the
// codebase touches os.Getenv for these values.
type Config struct {
	DatabaseURL string
	APIKey      string
	Port        string
}

var (
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")
	ErrMissingAPIKey      = errors.New("API_KEY is not set")
)

// Load reads .env if present, then the environment. A missing
// DATABASE_URL or API_KEY is a hard error: running without a secret
// would silently open every endpoint.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		APIKey:      strings.TrimSpace(os.Getenv("API_KEY")),
		Port:        getEnv("PORT", "8080"),
	}

	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultVal
}
