package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigMethods(t *testing.T) {
	t.Run("Addr returns formatted port", func(t *testing.T) {
		cfg := &Config{Port: 3000}
		assert.Equal(t, ":3000", cfg.Addr())
	})

	t.Run("SessionTTL converts minutes to duration", func(t *testing.T) {
		cfg := &Config{SessionTTLMinutes: 60}
		assert.Equal(t, time.Hour, cfg.SessionTTL())
	})
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/signup")
		t.Setenv("REDIS_URL", "redis://localhost:6379")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "admin", cfg.AdminUser)
		assert.Equal(t, "password123", cfg.AdminPassword)
		assert.Equal(t, "resetme123", cfg.ResetCode)
		assert.Equal(t, 60, cfg.SessionTTLMinutes)
		assert.Equal(t, "static", cfg.StaticDir)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("reads overrides from environment", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/signup")
		t.Setenv("REDIS_URL", "redis://localhost:6379")
		t.Setenv("PORT", "8080")
		t.Setenv("ADMIN_USER", "root")
		t.Setenv("SESSION_TTL_MINUTES", "15")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "root", cfg.AdminUser)
		assert.Equal(t, 15*time.Minute, cfg.SessionTTL())
	})

	t.Run("fails when DATABASE_URL is missing", func(t *testing.T) {
		t.Setenv("REDIS_URL", "redis://localhost:6379")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	strongSecret := "0123456789abcdef0123456789abcdef"

	t.Run("accepts defaults outside production", func(t *testing.T) {
		cfg := &Config{
			AdminPassword: "password123",
			ResetCode:     "resetme123",
			SessionSecret: "change-this-secret-key",
		}
		assert.NoError(t, cfg.Validate(false))
	})

	t.Run("rejects default admin password in production", func(t *testing.T) {
		cfg := &Config{
			AdminPassword: "password123",
			ResetCode:     "something-else",
			SessionSecret: strongSecret,
		}
		err := cfg.Validate(true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ADMIN_PASS")
	})

	t.Run("rejects default reset code in production", func(t *testing.T) {
		cfg := &Config{
			AdminPassword: "real-password",
			ResetCode:     "resetme123",
			SessionSecret: strongSecret,
		}
		err := cfg.Validate(true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ADMIN_RESET_CODE")
	})

	t.Run("rejects short session secret in production", func(t *testing.T) {
		cfg := &Config{
			AdminPassword: "real-password",
			ResetCode:     "real-code",
			SessionSecret: "short",
		}
		err := cfg.Validate(true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SESSION_SECRET")
	})

	t.Run("accepts strong settings in production", func(t *testing.T) {
		cfg := &Config{
			AdminPassword: "real-password",
			ResetCode:     "real-code",
			SessionSecret: strongSecret,
			RedisURL:      "rediss://prod:6379",
		}
		assert.NoError(t, cfg.Validate(true))
	})
}
