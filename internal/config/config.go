// Package config loads process configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config drives the dashboard process: where the raw collections come
// from and the initial session state.
type Config struct {
	// Source selects the data backend: "file", "http" or "sqlite".
	Source string `env:"SOURCE" envDefault:"file"`

	// DataDir holds the JSON documents for the file source.
	DataDir string `env:"DATA_DIR" envDefault:"./data"`

	// BaseURL and RatesURL configure the http source.
	BaseURL  string `env:"BASE_URL"`
	RatesURL string `env:"RATES_URL"`

	// DBPath is the database file for the sqlite source.
	DBPath string `env:"DB_PATH" envDefault:"./data/orders.db"`

	// Currency is the initial display currency.
	Currency string `env:"CURRENCY" envDefault:"USD"`

	// Filter and OrderBy seed the session state at startup.
	Filter  string `env:"FILTER"`
	OrderBy string `env:"ORDER_BY"`

	// Debounce is the filter quiet period.
	Debounce time.Duration `env:"DEBOUNCE" envDefault:"100ms"`

	// MetricsAddr exposes prometheus metrics when non-empty,
	// e.g. ":9090".
	MetricsAddr string `env:"METRICS_ADDR"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.Source {
	case "file", "http", "sqlite":
	default:
		return Config{}, fmt.Errorf("unknown SOURCE %q (want file, http or sqlite)", cfg.Source)
	}
	return cfg, nil
}
