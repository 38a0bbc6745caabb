package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Application
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
}

func New() (*Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
