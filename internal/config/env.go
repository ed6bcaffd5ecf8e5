package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process settings read from the environment.
type Env struct {
	ConfigPath     string   `env:"STAKEWARS_CONFIG" envDefault:"./stakewars_config.json"`
	DatabasePath   string   `env:"STAKEWARS_DB" envDefault:"./data/stakewars.db"`
	SessionSecret  string   `env:"SESSION_SECRET"`
	SecureCookie   bool     `env:"SESSION_SECURE_COOKIE"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	HealthcheckURL string   `env:"HEALTHCHECK_URL" envDefault:"http://127.0.0.1:8080/api/version"`
	// Browser origins allowed to open room websockets. Empty allows only
	// same-host origins.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
