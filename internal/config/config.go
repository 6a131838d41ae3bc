package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"locket-admin/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the console HTTP server. Environment
	// variables prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	Backend configs.Backend `envPrefix:"BACKEND_"`
	Demo    configs.Demo    `envPrefix:"DEMO_"`
	Session configs.Session `envPrefix:"SESSION_"`
}

// Load reads a .env file from the working directory when one exists, then
// parses environment variables into a Config. Variables already present in
// the environment win over the file.
func Load() (Config, error) {
	var cfg Config
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Backend.DeleteMode {
	case configs.DeleteModePause, configs.DeleteModeHard:
	default:
		return fmt.Errorf("BACKEND_DELETE_MODE must be %q or %q", configs.DeleteModePause, configs.DeleteModeHard)
	}
	switch c.Demo.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("DEMO_DRIVER must be sqlite or postgres, got %q", c.Demo.Driver)
	}
	switch c.Session.Store {
	case "memory", "postgres":
	default:
		return fmt.Errorf("SESSION_STORE must be memory or postgres, got %q", c.Session.Store)
	}
	return nil
}

// NeedsPostgres reports whether any enabled component is backed by
// PostgreSQL.
func (c Config) NeedsPostgres() bool {
	return c.Session.Store == "postgres" || (c.Demo.Enabled && c.Demo.Driver == "postgres")
}
