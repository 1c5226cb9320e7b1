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

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 60, cfg.Forecast.Lookback)
	assert.Equal(t, 400, cfg.Forecast.MaxGraphPoints)
	assert.Equal(t, "./data/models", cfg.Models.Dir)
	assert.Equal(t, 12, cfg.Security.BcryptCost)
	assert.True(t, cfg.Database.Enabled)
	assert.Contains(t, cfg.Server.AllowedOrigins, "http://localhost:3000")
}

func TestCacheTTL(t *testing.T) {
	cfg := ForecastConfig{GraphCacheTTL: "90s"}
	assert.Equal(t, 90*time.Second, cfg.CacheTTL())

	empty := ForecastConfig{}
	assert.Equal(t, 5*time.Minute, empty.CacheTTL())

	bad := ForecastConfig{GraphCacheTTL: "soon"}
	assert.Equal(t, 5*time.Minute, bad.CacheTTL())
}

func TestJWTExpiryDuration(t *testing.T) {
	cfg := SecurityConfig{JWTExpiry: "2h"}
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiryDuration())

	empty := SecurityConfig{}
	assert.Equal(t, 24*time.Hour, empty.JWTExpiryDuration())
}
