package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "data/verbs.json", cfg.CatalogPath)
	assert.Equal(t, 24*time.Hour, cfg.GameIdleTimeout)
	assert.Equal(t, time.Hour, cfg.ReapInterval)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("PORT", "9100")
	t.Setenv("GAME_IDLE_TIMEOUT", "30m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.GameIdleTimeout)
}
