package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/apm-labs/portfolio-service/internal/logger"
	"gopkg.in/yaml.v3"
)

type QuoteProvider string

const (
	MarketEngine QuoteProvider = "market-engine"
	TInvest      QuoteProvider = "t-invest"
	Static       QuoteProvider = "static"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type MarketEngineConfig struct {
	Address       string `yaml:"address"`
	RatePerMinute int    `yaml:"rate_per_minute"`
}

type QuotesConfig struct {
	Provider     QuoteProvider      `yaml:"provider"`
	MarketEngine MarketEngineConfig `yaml:"market_engine"`
}

type PortfolioConfig struct {
	Currency string `yaml:"currency"`
}

type ServiceConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Quotes    QuotesConfig    `yaml:"quotes"`
	Portfolio PortfolioConfig `yaml:"portfolio"`
	LogLevel  string          `yaml:"log_level"`
}

const (
	_portDefault          = "8080"
	_providerDefault      = MarketEngine
	_marketEngineDefault  = "http://localhost:5000"
	_ratePerMinuteDefault = 500
	_currencyDefault      = "USD"
)

func (c *ServiceConfig) ValidateAndSetup() error {
	if c.Server.Port == "" {
		c.Server.Port = _portDefault
	}

	if c.Quotes.Provider == "" {
		c.Quotes.Provider = _providerDefault
	}
	switch c.Quotes.Provider {
	case MarketEngine, TInvest, Static:
	default:
		return fmt.Errorf("unknown quote provider %q", c.Quotes.Provider)
	}

	if c.Quotes.MarketEngine.Address == "" {
		c.Quotes.MarketEngine.Address = _marketEngineDefault
	}
	if _, err := url.Parse(c.Quotes.MarketEngine.Address); err != nil {
		return fmt.Errorf("%w: invalid market engine address", err)
	}
	if c.Quotes.MarketEngine.RatePerMinute <= 0 {
		c.Quotes.MarketEngine.RatePerMinute = _ratePerMinuteDefault
	}

	if c.Portfolio.Currency == "" {
		c.Portfolio.Currency = _currencyDefault
	}

	return nil
}

func (c *ServiceConfig) LoggerLevel() logger.LogLevel {
	switch c.LogLevel {
	case "debug":
		return logger.Debug
	case "warn":
		return logger.Warn
	case "error":
		return logger.Error
	default:
		return logger.Info
	}
}

func LoadServiceConfig(filename string) (ServiceConfig, error) {
	var cfg ServiceConfig
	input, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("%w: can't read file", err)
	}

	if err := yaml.Unmarshal(input, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: can't unmarshal config", err)
	}

	if err := cfg.ValidateAndSetup(); err != nil {
		return cfg, fmt.Errorf("%w: can't setup cfg", err)
	}

	return cfg, nil
}
