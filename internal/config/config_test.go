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

	assert.Equal(t, "placement-service", cfg.App.Name)
	assert.False(t, cfg.App.IsProduction())
	assert.Equal(t, 60, cfg.Auth.AccessTokenTTLMinutes)
	assert.Equal(t, 20*time.Second, cfg.Auth.IdentityLookupTimeout())
	assert.Equal(t, 5*time.Minute, cfg.Auth.LoginRateLimitWindow())
	assert.NotEmpty(t, cfg.Auth.JWTSecret)
}

func TestLoadProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", EnvProduction)
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_JWT_SECRET")
}

func TestLoadProductionWithSecret(t *testing.T) {
	t.Setenv("APP_ENV", EnvProduction)
	t.Setenv("AUTH_JWT_SECRET", "super-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, "super-secret", cfg.Auth.JWTSecret)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("AUTH_IDENTITY_LOOKUP_TIMEOUT_SECONDS", "5")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "30")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Auth.IdentityLookupTimeout())
	assert.Equal(t, 30, cfg.Auth.AccessTokenTTLMinutes)
}

func TestAddr(t *testing.T) {
	app := AppConfig{Host: "127.0.0.1", Port: "9000"}
	assert.Equal(t, "127.0.0.1:9000", app.Addr())
}
