package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"
)

var knownWeakSecrets = []string{
	"change-me", "change-this-secret-key", "secret", "admin", "password",
}

// Config holds all environment-driven settings. The admin credential and
// reset code defaults match the development deployment and must be
// overridden anywhere real.
type Config struct {
	Port              int    `env:"PORT" envDefault:"3000"`
	DatabaseURL       string `env:"DATABASE_URL,required"`
	RedisURL          string `env:"REDIS_URL,required"`
	AdminUser         string `env:"ADMIN_USER" envDefault:"admin"`
	AdminPassword     string `env:"ADMIN_PASS" envDefault:"password123"`
	ResetCode         string `env:"ADMIN_RESET_CODE" envDefault:"resetme123"`
	SessionSecret     string `env:"SESSION_SECRET" envDefault:"change-this-secret-key"`
	SessionTTLMinutes int    `env:"SESSION_TTL_MINUTES" envDefault:"60"`
	StaticDir         string `env:"STATIC_DIR" envDefault:"static"`
	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) Validate(isProduction bool) error {
	if isProduction {
		if c.AdminPassword == "password123" {
			return fmt.Errorf("ADMIN_PASS is the shipped default; set a real password in production")
		}
		if c.ResetCode == "resetme123" {
			return fmt.Errorf("ADMIN_RESET_CODE is the shipped default; set a real reset code in production")
		}
		if err := validateSecret("SESSION_SECRET", c.SessionSecret); err != nil {
			return err
		}
		if strings.HasPrefix(c.RedisURL, "redis://") {
			log.Warn().Msg("REDIS_URL uses redis:// (not TLS) in production: consider using rediss://")
		}
	}

	return nil
}

func validateSecret(name, value string) error {
	if len(value) < 32 {
		return fmt.Errorf("%s must be at least 32 characters in production (generate with: openssl rand -base64 32)", name)
	}
	for _, weak := range knownWeakSecrets {
		if value == weak {
			return fmt.Errorf("%s is a known weak default; set a strong secret in production", name)
		}
	}
	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
