package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration, loaded from the environment.
type Config struct {
	Bank  BankConfig
	Store StoreConfig
	HTTP  HTTPConfig
	JWT   JWTConfig
	Log   LogConfig
}

// BankConfig identifies the issuing institution.
type BankConfig struct {
	Name string `env:"BANK_NAME" envDefault:"Banco del Caribe"`
}

// StoreConfig configures the account snapshot file.
type StoreConfig struct {
	Path string `env:"STORE_PATH" envDefault:"accounts.json"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Port         int           `env:"HTTP_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
}

// JWTConfig configures token issuance. An empty secret makes the server
// generate an ephemeral one at startup.
type JWTConfig struct {
	Secret     string        `env:"JWT_SECRET" envDefault:""`
	Expiration time.Duration `env:"JWT_EXPIRATION" envDefault:"24h"`
}

// LogConfig configures logging output.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
