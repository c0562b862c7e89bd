package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime settings of the lending demo.
type Config struct {
	LogLevel        string `env:"LENDING_LOG_LEVEL" envDefault:"info"`
	LogFormat       string `env:"LENDING_LOG_FORMAT" envDefault:"text"`
	SeedFile        string `env:"LENDING_SEED_FILE"`
	MetricsDump     bool   `env:"LENDING_METRICS_DUMP" envDefault:"false"`
	DemoAdvanceDays int    `env:"LENDING_DEMO_ADVANCE_DAYS" envDefault:"20"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
