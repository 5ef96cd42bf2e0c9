package server

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the dev-server configuration, read from the environment.
type Config struct {
	Port     int    `env:"ISOCITY_PORT" envDefault:"3000"`
	SavePath string `env:"ISOCITY_SAVE"`
}

// ConfigFromEnv parses the server configuration from environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing server env: %w", err)
	}
	return cfg, nil
}
