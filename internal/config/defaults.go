package config

import "github.com/shopspring/decimal"

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			GRPCPort: ":8080",
			HTTPPort: ":8081",
			APIToken: "dev-token",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "./data/networth.db",
		},
		Portfolio: PortfolioConfig{
			DefaultExchangeRate: decimal.RequireFromString("4.40"),
			FireTarget:          decimal.NewFromInt(1000000),
			FireTargetLiquid:    decimal.NewFromInt(800000),
			SavingTarget:        decimal.NewFromInt(50000),
			RebalanceThreshold:  decimal.NewFromInt(50),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
