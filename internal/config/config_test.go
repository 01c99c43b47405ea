package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "account-service", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL())
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("AUTH_TOKEN_TTL_MINUTES", "60")
	t.Setenv("AUTH_JWT_SECRET", "prod-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.App.Addr())
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL())
	assert.Equal(t, "prod-secret", cfg.Auth.JWTSecret)
}

func TestTokenTTLFallsBackForInvalidValues(t *testing.T) {
	assert.Equal(t, 12*time.Hour, AuthConfig{TokenTTLMinutes: 0}.TokenTTL())
	assert.Equal(t, 12*time.Hour, AuthConfig{TokenTTLMinutes: -5}.TokenTTL())
}

func TestRequestTimeoutDisabledWhenZero(t *testing.T) {
	assert.Equal(t, time.Duration(0), AppConfig{RequestTimeoutSeconds: 0}.RequestTimeout())
	assert.Equal(t, 30*time.Second, AppConfig{RequestTimeoutSeconds: 30}.RequestTimeout())
}
