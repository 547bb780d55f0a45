package config

import (
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds the process configuration, read from a .env file and the
// environment. All keys have workable defaults for local play.
type Config struct {
	Port            string        `mapstructure:"PORT"`
	CatalogPath     string        `mapstructure:"CATALOG_PATH"`
	GameIdleTimeout time.Duration `mapstructure:"GAME_IDLE_TIMEOUT"`
	ReapInterval    time.Duration `mapstructure:"REAP_INTERVAL"`
}

// LoadConfig reads the configuration. Only a broken .env file is worth a
// warning; a missing one just means everything comes from the environment
// or the defaults.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("PORT", "8000")
	viper.SetDefault("CATALOG_PATH", "data/verbs.json")
	viper.SetDefault("GAME_IDLE_TIMEOUT", "24h")
	viper.SetDefault("REAP_INTERVAL", "1h")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		zap.L().Info(".env file not found, using environment variables and defaults")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
