package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Version is the application version reported by /api/info and the API docs.
const Version = "1.0.0"

// Flag is a boolean that parses any case-insensitive "true" as true;
// every other value is false. Deployments set DEBUG with inconsistent
// casing, so a strict bool parse would reject values like "True".
type Flag bool

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Flag) UnmarshalText(text []byte) error {
	*f = Flag(strings.EqualFold(string(text), "true"))
	return nil
}

// Config holds all application configuration. It is loaded once at
// startup and passed to the handlers; values never change during a
// process's lifetime.
type Config struct {
	// Identity. Both fields read APP_NAME: Title is the name the server
	// and the API docs announce themselves with, AppName is the value
	// echoed in response payloads when the variable is unset.
	AppName string `env:"APP_NAME" envDefault:"Unknown"`
	Title   string `env:"APP_NAME" envDefault:"168cap LLM App"`

	// Server
	Port        int    `env:"PORT" envDefault:"8000"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       Flag   `env:"DEBUG" envDefault:"false"`

	// Chat
	ModelName string `env:"MODEL_NAME" envDefault:"unknown"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Lifecycle
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Addr returns the HTTP server listen address, bound on all interfaces.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
