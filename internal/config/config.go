// Package config loads tool settings from an optional YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Driver names accepted for the storage backend.
const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
)

// Config holds the tool settings.
type Config struct {
	Env    string `yaml:"env" env:"KEYGATE_ENV" env-default:"local"`
	DBPath string `yaml:"db_path" env:"KEYGATE_DB" env-default:"keygate.db"`
	Driver string `yaml:"driver" env:"KEYGATE_DRIVER" env-default:"bolt"`
}

// Load reads the config file at path, then applies env overrides.
// An empty path skips the file and uses defaults plus environment only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read environment: %w", err)
		}
	}

	if cfg.Driver != DriverBolt && cfg.Driver != DriverSQLite {
		return nil, fmt.Errorf("unknown storage driver %q (want %s or %s)", cfg.Driver, DriverBolt, DriverSQLite)
	}

	return &cfg, nil
}
