// Package config loads application configuration from environment
// variables. A .env file in the working directory is read first when
// present; explicit environment variables always win.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable; defaults keep the tool usable with no
// environment at all.
type Config struct {
	Env            string `env:"APP_ENV" envDefault:"dev"`             // application environment (dev/test/prod)
	CinemaName     string `env:"CINEMA_NAME" envDefault:"Kinoteka"`    // name of the cinema aggregate
	SnapshotPath   string `env:"SNAPSHOT_PATH" envDefault:"cinema.json"` // where the JSON snapshot lives
	SnapshotBackup bool   `env:"SNAPSHOT_BACKUP" envDefault:"true"`    // back up the previous snapshot before overwrite
}

// Load reads a .env file when one exists and parses the environment into a
// Config. A missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
