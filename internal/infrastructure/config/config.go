package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	Ledger   LedgerConfig
	Registry RegistryConfig
}

type LedgerConfig struct {
	// Buckets is the ledger hash-bucket count. Values below 2 fall back to
	// the built-in default.
	Buckets int `env:"LEDGER_BUCKETS, default=128"`
}

type RegistryConfig struct {
	MaxParks int `env:"MAX_PARKS, default=20"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
