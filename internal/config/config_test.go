package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apm-labs/portfolio-service/internal/config"
	"github.com/apm-labs/portfolio-service/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceConfig_Defaults(t *testing.T) {
	var cfg config.ServiceConfig
	require.NoError(t, cfg.ValidateAndSetup())

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, config.MarketEngine, cfg.Quotes.Provider)
	assert.Equal(t, "http://localhost:5000", cfg.Quotes.MarketEngine.Address)
	assert.Equal(t, 500, cfg.Quotes.MarketEngine.RatePerMinute)
	assert.Equal(t, "USD", cfg.Portfolio.Currency)
	assert.Equal(t, logger.Info, cfg.LoggerLevel())
}

func TestServiceConfig_UnknownProvider(t *testing.T) {
	cfg := config.ServiceConfig{}
	cfg.Quotes.Provider = "bloomberg"

	assert.Error(t, cfg.ValidateAndSetup())
}

func TestLoadServiceConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	input := []byte(`
server:
  port: "9090"
quotes:
  provider: static
portfolio:
  currency: EUR
log_level: debug
`)
	require.NoError(t, os.WriteFile(path, input, 0o600))

	cfg, err := config.LoadServiceConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, config.Static, cfg.Quotes.Provider)
	assert.Equal(t, "EUR", cfg.Portfolio.Currency)
	assert.Equal(t, logger.Debug, cfg.LoggerLevel())
}

func TestLoadServiceConfig_MissingFile(t *testing.T) {
	_, err := config.LoadServiceConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
