// Package config reads the settings of rnt from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Gemini credentials, GeminiAPIKey wins when both are set.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GoogleAPIKey string `env:"GOOGLE_API_KEY"`

	Model   string        `env:"RNT_MODEL" envDefault:"gemini-2.5-flash"`
	Timeout time.Duration `env:"RNT_TIMEOUT" envDefault:"60s"`

	// Store is a file path, or "sqlite:<path>" for a SQLite database.
	Store    string `env:"RNT_STORE" envDefault:"properties.json"`
	Currency string `env:"RNT_CURRENCY" envDefault:"BRL"`
	Addr     string `env:"RNT_ADDR" envDefault:"127.0.0.1:8080"`
	Verbose  bool   `env:"RNT_VERBOSE"`
}

// Load reads the optional env files, then the environment. Variables already
// set in the environment win over the files. Missing files are ignored.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not load %s: %w", f, err)
		}
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("invalid environment: RNT_TIMEOUT must be positive, got %s", cfg.Timeout)
	}
	return cfg, nil
}

// APIKey returns the Gemini credential, or "" when none is set.
func (c *Config) APIKey() string {
	if c.GeminiAPIKey != "" {
		return c.GeminiAPIKey
	}
	return c.GoogleAPIKey
}

// Level is the log level matching Verbose.
func (c *Config) Level() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
