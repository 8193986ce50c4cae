package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for trackveil.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Privacy  PrivacyConfig  `mapstructure:"privacy"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// PrivacyConfig holds pseudonymization settings.
type PrivacyConfig struct {
	// Salt feeds the anonymized-id derivation. Changing it changes every
	// derived id, so it must stay stable for the lifetime of a database.
	Salt string `mapstructure:"salt"`
}

// String masks the salt; it must not leak into logs.
func (c PrivacyConfig) String() string {
	return fmt.Sprintf("PrivacyConfig{Salt:*** (%d chars)}", len(c.Salt))
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(homeDir(), ".trackveil", "trackveil.db"))
	v.SetDefault("privacy.salt", "trackveil-v1")
	v.SetDefault("logging.level", "info")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(homeDir(), ".trackveil"))
	v.AddConfigPath(".")

	v.SetEnvPrefix("TRACKVEIL")
	v.AutomaticEnv()

	_ = v.BindEnv("database.path", "TRACKVEIL_DATABASE_PATH")
	_ = v.BindEnv("privacy.salt", "TRACKVEIL_PRIVACY_SALT")
	_ = v.BindEnv("logging.level", "TRACKVEIL_LOGGING_LEVEL")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK, defaults + env vars apply
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that required configuration fields are set.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Privacy.Salt == "" {
		return fmt.Errorf("privacy.salt must not be empty")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}
	return nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
