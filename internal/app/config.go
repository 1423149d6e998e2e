package app

import (
	"errors"
	"fmt"
)

// Config holds everything the CLI hands to an App instance.
type Config struct {
	// ConfigPath is the HCL or JSON configuration document.
	ConfigPath string

	// DryRun allocates and prints the table without writing artifacts.
	DryRun bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
	}
	switch cfg.LogFormat {
	case "console", "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'console', 'text' or 'json'", cfg.LogFormat)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
