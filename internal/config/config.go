package config

import (
	"os"
	"strconv"
)

// Config holds runtime settings read from the environment
type Config struct {
	// Port the HTTP server listens on
	Port int
	// DatabasePath is the sqlite file location
	DatabasePath string
	// DatabaseURL selects a postgres backend when set, overriding DatabasePath
	DatabaseURL string
	// Env is "dev" or "release"
	Env string
}

// Load builds the configuration from environment variables with defaults
func Load() *Config {
	cfg := &Config{
		Port:         5001,
		DatabasePath: "data/sentences.db",
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		Env:          "release",
	}

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("SENTENCE_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Env = v
	}

	return cfg
}

// IsDev reports whether the app runs in development mode
func (c *Config) IsDev() bool {
	return c.Env == "dev"
}
