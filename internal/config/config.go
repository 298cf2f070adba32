package config

import (
	"github.com/caarlos0/env/v11"

	"airdrop-platform/internal/config/configs"
)

// Config aggregates all configuration sections of the airdrop platform.
// Fields are populated from environment variables via caarlos0/env; nested
// structs carry an envPrefix so their fields parse under that prefix. Use
// Load to construct one.
type Config struct {
	// Env names the deployment environment (prod, dev). Informational.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP configures the HTTP server, under HTTP_.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger, under LOG_.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection, under PSQL_.
	Psql configs.Postgres `envPrefix:"PSQL_"`
}

// Load reads configuration from the environment, applying the defaults
// declared on each field.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
