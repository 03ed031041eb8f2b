// Package config loads server settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings.
type Config struct {
	Addr         string `env:"AVATAR_MARKET_ADDR" envDefault:":8080"`
	CatalogPath  string `env:"AVATAR_MARKET_CATALOG"`
	TemplatesDir string `env:"AVATAR_MARKET_TEMPLATES" envDefault:"templates"`
	// SecureCookies marks the session cookie Secure; disable for plain-HTTP
	// local development.
	SecureCookies bool `env:"AVATAR_MARKET_SECURE_COOKIES" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the server configuration.
func Load() (Config, error) {
	var c Config
	if err := ParseEnv(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
