package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_URL", "postgres://localhost:5432/auth")
	t.Setenv("JWT_ACCESS_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg := Load()
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres://localhost:5432/auth", cfg.DBURL)
	assert.Equal(t, 15, cfg.AccessExpiryMin)
	assert.Equal(t, 10080, cfg.RefreshExpiryMin)
	assert.Equal(t, 5, cfg.MaxFailedAttempts)
	assert.Equal(t, 30, cfg.LockoutMinutes)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 300, cfg.CacheTTLSec)
	assert.Empty(t, cfg.SMTPHost)
	assert.Empty(t, cfg.SentryDSN)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_ACCESS_EXPIRY_MIN", "5")
	t.Setenv("MAX_FAILED_ATTEMPTS", "3")
	t.Setenv("LOCKOUT_MINUTES", "60")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg := Load()
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5, cfg.AccessExpiryMin)
	assert.Equal(t, 3, cfg.MaxFailedAttempts)
	assert.Equal(t, 60, cfg.LockoutMinutes)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
}

func TestLoad_InvalidIntFallsBackToDefault(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_ACCESS_EXPIRY_MIN", "not-a-number")

	cfg := Load()
	assert.Equal(t, 15, cfg.AccessExpiryMin)
}
