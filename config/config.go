// Package config defines the server configuration and its loading rules:
// built-in defaults, an optional TOML file, then ORDERBOOK_* environment
// variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is the root configuration structure.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Store   StoreConfig   `toml:"store"`
	Logging LoggingConfig `toml:"logging"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// StoreConfig selects the ledger backend.
type StoreConfig struct {
	// Backend is "memory" or "sqlite".
	Backend string `toml:"backend"`
	// DSN is the SQLite path when Backend is "sqlite". ":memory:" keeps
	// the ledger volatile.
	DSN string `toml:"dsn"`
}

// LoggingConfig holds zerolog settings.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Server:  ServerConfig{Addr: ":8080"},
		Store:   StoreConfig{Backend: "memory", DSN: ":memory:"},
		Logging: LoggingConfig{Level: "info", Pretty: false},
	}
}

// Load merges a TOML file at path (skipped when path is empty) on top of the
// defaults, then applies ORDERBOOK_* environment variable overrides. The
// returned Config has not been validated; call Validate after Load.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	// Load .env if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// Validate checks the configuration for values the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	switch c.Store.Backend {
	case "memory":
	case "sqlite":
		if c.Store.DSN == "" {
			return fmt.Errorf("store.dsn must be set for the sqlite backend")
		}
	default:
		return fmt.Errorf("store.backend must be memory or sqlite, got %q", c.Store.Backend)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	setStr(&cfg.Server.Addr, "ORDERBOOK_ADDR")
	setStr(&cfg.Store.Backend, "ORDERBOOK_STORE_BACKEND")
	setStr(&cfg.Store.DSN, "ORDERBOOK_STORE_DSN")
	setStr(&cfg.Logging.Level, "ORDERBOOK_LOG_LEVEL")
	setBool(&cfg.Logging.Pretty, "ORDERBOOK_LOG_PRETTY")
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
