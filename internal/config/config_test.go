package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())

	assert.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.App.Host)
	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.Equal(t, "127.0.0.1:8080", cfg.App.Addr())
	assert.Equal(t, "laserwave", cfg.Docs.Theme)
	assert.Equal(t, "user-account-service API", cfg.Docs.Title)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App:  AppConfig{Host: "127.0.0.1", HTTPPort: "8080", ShutdownTimeoutSeconds: 10},
			Docs: DocsConfig{Title: "user-account-service API", Version: "1.0.0", Theme: "laserwave"},
		}
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("Empty Host", func(t *testing.T) {
		cfg := valid()
		cfg.App.Host = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("Empty Port", func(t *testing.T) {
		cfg := valid()
		cfg.App.HTTPPort = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("Non-Numeric Port", func(t *testing.T) {
		cfg := valid()
		cfg.App.HTTPPort = "http"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Zero Shutdown Timeout", func(t *testing.T) {
		cfg := valid()
		cfg.App.ShutdownTimeoutSeconds = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("Empty Theme", func(t *testing.T) {
		cfg := valid()
		cfg.Docs.Theme = ""
		assert.Error(t, cfg.Validate())
	})
}
