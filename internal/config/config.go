// Package config loads the CLI's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"pkg.jsn.cam/levelup/pkg/storage"
)

// Prefix is the environment variable prefix, e.g. LEVELUP_STORE_PATH.
const Prefix = "LEVELUP"

// Config holds settings read from LEVELUP_* variables.
type Config struct {
	StoreBackend string `envconfig:"STORE_BACKEND" default:"bbolt"`
	StorePath    string `envconfig:"STORE_PATH" default:"var/levelup.db"`
	StoreBucket  string `envconfig:"STORE_BUCKET" default:"localStorage"`

	Seed int32 `envconfig:"SEED" default:"42"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// AssumeYes skips confirmation prompts for destructive operations.
	AssumeYes bool `envconfig:"ASSUME_YES" default:"false"`
}

// Load reads envFiles (missing files are ignored) and then the environment.
// Variables already set in the environment win over file values.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreBackend {
	case storage.KindMemory, storage.KindBbolt, storage.KindSQLite:
	default:
		return fmt.Errorf("%w: %q", storage.ErrUnknownBackend, c.StoreBackend)
	}
	if c.StoreBucket == "" {
		return errors.New("STORE_BUCKET must not be empty")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

// Level is the parsed log level. Validate has already rejected bad values.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
