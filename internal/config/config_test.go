package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/trackveil/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(cfg.Database.Path, "trackveil.db"))
	assert.Equal(t, "trackveil-v1", cfg.Privacy.Salt)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TRACKVEIL_DATABASE_PATH", "/tmp/custom.db")
	t.Setenv("TRACKVEIL_PRIVACY_SALT", "rotated-salt")
	t.Setenv("TRACKVEIL_LOGGING_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.db", cfg.Database.Path)
	assert.Equal(t, "rotated-salt", cfg.Privacy.Salt)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TRACKVEIL_LOGGING_LEVEL", "verbose")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestValidateRequiresSalt(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{Path: "x.db"},
		Logging:  config.LoggingConfig{Level: "info"},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "privacy.salt")
}

func TestPrivacyConfigStringMasksSalt(t *testing.T) {
	c := config.PrivacyConfig{Salt: "super-secret"}
	s := c.String()
	assert.NotContains(t, s, "super-secret")
	assert.Contains(t, s, "12 chars")
}
