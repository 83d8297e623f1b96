package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Load reads .env (when present) into the process environment and parses it.
func Load() (*Config, error) {
	// missing .env is fine outside development
	_ = godotenv.Load()

	return Parse(env.Options{})
}

// Parse parses the configuration with the given options. Tests pass an
// explicit Environment map instead of touching os.Environ.
func Parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
