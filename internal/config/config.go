// Package config loads the application configuration from an optional YAML
// file and CBB_-prefixed environment variables.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Feeds   FeedsConfig   `mapstructure:"feeds"`
	Storage StorageConfig `mapstructure:"storage"`
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// FeedsConfig holds the upstream feed host settings.
type FeedsConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// StorageConfig selects and configures the storage backend.
type StorageConfig struct {
	// Backend is "sqlite" or "clickhouse".
	Backend string           `mapstructure:"backend"`
	SQLite  SQLiteConfig     `mapstructure:"sqlite"`
	CH      ClickHouseConfig `mapstructure:"clickhouse"`
}

// SQLiteConfig holds the embedded database settings.
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// ClickHouseConfig holds the column-store connection settings.
type ClickHouseConfig struct {
	Addr     string `mapstructure:"addr"`
	Database string `mapstructure:"database"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// ServerConfig holds the API server settings.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from the given file (optional; empty path uses
// defaults) and from the environment.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("CBB")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("feeds.base_url", "https://barttorvik.com")

	v.SetDefault("storage.backend", "sqlite")
	v.SetDefault("storage.sqlite.path", "cbbmetrics.db")
	v.SetDefault("storage.clickhouse.addr", "localhost:9000")
	v.SetDefault("storage.clickhouse.database", "default")
	v.SetDefault("storage.clickhouse.username", "default")
	v.SetDefault("storage.clickhouse.password", "")

	v.SetDefault("server.addr", ":8080")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks that all configuration values are usable.
func (c *Config) Validate() error {
	if c.Feeds.BaseURL == "" {
		return fmt.Errorf("feeds.base_url is required")
	}

	switch c.Storage.Backend {
	case "sqlite":
		if c.Storage.SQLite.Path == "" {
			return fmt.Errorf("storage.sqlite.path is required")
		}
	case "clickhouse":
		if c.Storage.CH.Addr == "" {
			return fmt.Errorf("storage.clickhouse.addr is required")
		}
	default:
		return fmt.Errorf("storage.backend must be one of: sqlite, clickhouse")
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}
	return nil
}
