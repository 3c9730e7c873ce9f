package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"

	"github.com/simaogato/networth-backend/internal/domain"
)

// Config represents the application configuration.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Portfolio PortfolioConfig `toml:"portfolio"`
	Logging   LoggingConfig   `toml:"logging"`
}

// ServerConfig contains gRPC and HTTP listener settings.
type ServerConfig struct {
	GRPCPort string `toml:"grpc_port"`
	HTTPPort string `toml:"http_port"`
	APIToken string `toml:"api_token"`
}

// DatabaseConfig selects the storage driver.
type DatabaseConfig struct {
	Driver string `toml:"driver"` // "sqlite" or "postgres"
	DSN    string `toml:"dsn"`
}

// PortfolioConfig holds the figures used when no settings were saved yet.
type PortfolioConfig struct {
	DefaultExchangeRate decimal.Decimal `toml:"default_exchange_rate"` // MYR per USD
	FireTarget          decimal.Decimal `toml:"fire_target"`
	FireTargetLiquid    decimal.Decimal `toml:"fire_target_liquid"`
	SavingTarget        decimal.Decimal `toml:"saving_target"`
	RebalanceThreshold  decimal.Decimal `toml:"rebalance_threshold"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Load loads configuration with priority: defaults -> .env -> file1 -> file2 -> ... -> env.
// Later files override earlier files. A missing .env file is ignored.
func Load(paths ...string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnvOverrides applies NETWORTH_* environment variable overrides to config.
// Numeric overrides that do not parse are an error.
func applyEnvOverrides(config *Config) error {
	if port := os.Getenv("NETWORTH_GRPC_PORT"); port != "" {
		config.Server.GRPCPort = port
	}
	if port := os.Getenv("NETWORTH_HTTP_PORT"); port != "" {
		config.Server.HTTPPort = port
	}
	if token := os.Getenv("NETWORTH_API_TOKEN"); token != "" {
		config.Server.APIToken = token
	}
	if driver := os.Getenv("NETWORTH_DB_DRIVER"); driver != "" {
		config.Database.Driver = driver
	}
	if dsn := os.Getenv("NETWORTH_DB_DSN"); dsn != "" {
		config.Database.DSN = dsn
	}
	if rate := os.Getenv("NETWORTH_EXCHANGE_RATE"); rate != "" {
		r, err := decimal.NewFromString(rate)
		if err != nil {
			return fmt.Errorf("invalid NETWORTH_EXCHANGE_RATE %q: %w", rate, err)
		}
		config.Portfolio.DefaultExchangeRate = r
	}
	if target := os.Getenv("NETWORTH_FIRE_TARGET"); target != "" {
		t, err := decimal.NewFromString(target)
		if err != nil {
			return fmt.Errorf("invalid NETWORTH_FIRE_TARGET %q: %w", target, err)
		}
		config.Portfolio.FireTarget = t
	}
	if level := os.Getenv("NETWORTH_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("NETWORTH_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
	return nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if !c.Portfolio.DefaultExchangeRate.IsPositive() {
		return fmt.Errorf("portfolio.default_exchange_rate must be greater than 0, got %s", c.Portfolio.DefaultExchangeRate)
	}
	if c.Database.Driver != "sqlite" && c.Database.Driver != "postgres" {
		return fmt.Errorf("database.driver must be sqlite or postgres, got %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("database.dsn is required")
	}
	return nil
}

// DefaultSettings converts the portfolio section into domain settings.
func (c *Config) DefaultSettings() domain.Settings {
	return domain.Settings{
		ExchangeRate:       c.Portfolio.DefaultExchangeRate,
		FireTarget:         c.Portfolio.FireTarget,
		FireTargetLiquid:   c.Portfolio.FireTargetLiquid,
		SavingTarget:       c.Portfolio.SavingTarget,
		RebalanceThreshold: c.Portfolio.RebalanceThreshold,
	}
}
