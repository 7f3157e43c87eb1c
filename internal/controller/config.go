package controller

// #region imports
import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// #endregion

// #region config

// Config is the environment-driven configuration for controller binaries.
type Config struct {
	UserID       string        `env:"ADAPT_USER_ID" envDefault:"local"`
	DBPath       string        `env:"ADAPT_DB" envDefault:"adaptive_trainer.db"`
	TickInterval time.Duration `env:"ADAPT_TICK_INTERVAL" envDefault:"30s"`
	Debug        bool          `env:"ADAPT_DEBUG" envDefault:"false"`
}

// ParseConfig loads configuration from environment variables.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// #endregion config
