package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)

	assert.False(t, cfg.Market.Simulated)
	assert.InDelta(t, 0.02, cfg.Market.Jitter, 1e-9)
	assert.Nil(t, cfg.Market.Prices)

	assert.Equal(t, 5, cfg.Limits.RequestsPerSecond)
	assert.Equal(t, 10, cfg.Limits.Burst)

	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_ENV", "testing")
	t.Setenv("SERVER_READ_TIMEOUT", "5s")
	t.Setenv("MARKET_SIMULATED", "true")
	t.Setenv("MARKET_JITTER", "0.1")
	t.Setenv("RATE_LIMIT_PER_SECOND", "50")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsTesting())
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.True(t, cfg.Market.Simulated)
	assert.InDelta(t, 0.1, cfg.Market.Jitter, 1e-9)
	assert.Equal(t, 50, cfg.Limits.RequestsPerSecond)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
}

func TestLoad_MarketPrices(t *testing.T) {
	t.Setenv("MARKET_PRICES", "AAPL=155.25,msft=410")

	cfg, err := Load()
	require.NoError(t, err)

	require.Len(t, cfg.Market.Prices, 2)
	assert.True(t, cfg.Market.Prices["AAPL"].Equal(decimal.RequireFromString("155.25")))
	assert.True(t, cfg.Market.Prices["MSFT"].Equal(decimal.RequireFromString("410")))
}

func TestLoad_MalformedMarketPrices(t *testing.T) {
	t.Setenv("MARKET_PRICES", "AAPL=not-a-price")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MARKET_PRICES")
}

func TestServerConfig_Address(t *testing.T) {
	cfg := ServerConfig{Host: "0.0.0.0", Port: "8080"}
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_SECOND", "many")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")
	t.Setenv("MARKET_SIMULATED", "perhaps")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Limits.RequestsPerSecond)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.False(t, cfg.Market.Simulated)
}
