// Package config loads runtime settings from the environment. Flags set on
// the command line override whatever the environment provided.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full runtime configuration.
type Config struct {
	// URL is the posts endpoint.
	URL string `env:"POSTDECK_URL" envDefault:"https://jsonplaceholder.typicode.com/posts"`

	// Timeout bounds each fetch end to end.
	Timeout time.Duration `env:"POSTDECK_TIMEOUT" envDefault:"10s"`

	// LogFile receives structured logs; empty disables logging entirely
	// (stdout belongs to the TUI).
	LogFile string `env:"POSTDECK_LOG"`

	// Verbose lowers the log level to debug, including per-transition
	// state logs.
	Verbose bool `env:"POSTDECK_VERBOSE"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
