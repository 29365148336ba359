package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/lk16/reversi/internal/models"
)

// PlayConfig holds the settings of an interactive game, loaded from environment variables.
type PlayConfig struct {
	// OpponentAI makes the second player an AI
	OpponentAI bool `env:"REVERSI_OPPONENT_AI" envDefault:"true"`

	// AIDelay is the pause before each AI move
	AIDelay time.Duration `env:"REVERSI_AI_DELAY" envDefault:"500ms"`

	// HumanColor is the color of the human player when playing against the AI
	HumanColor string `env:"REVERSI_HUMAN_COLOR" envDefault:"black"`
}

// LoadPlayConfig loads the play configuration from environment variables.
func LoadPlayConfig() (*PlayConfig, error) {
	var cfg PlayConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values that env.Parse cannot check.
func (c *PlayConfig) Validate() error {
	if c.AIDelay < 0 {
		return fmt.Errorf("invalid AI delay: %s", c.AIDelay)
	}

	if _, err := models.ParseColor(c.HumanColor); err != nil {
		return fmt.Errorf("invalid human color: %w", err)
	}

	return nil
}

// Human returns the color of the human player.
func (c *PlayConfig) Human() models.Color {
	color, err := models.ParseColor(c.HumanColor)
	if err != nil {
		return models.Black
	}
	return color
}
