package snake

import (
	"fmt"

	"github.com/vovakirdan/snake-arcade/internal/config"
)

// SettingsFromConfig converts a loaded configuration into game settings.
func SettingsFromConfig(cfg config.SnakeConfig) (Settings, error) {
	if err := cfg.Validate(); err != nil {
		return Settings{}, fmt.Errorf("snake settings: %w", err)
	}
	policy, err := ParseFoodPolicy(cfg.Food.Policy)
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		Grid:    cfg.Board(),
		Start:   cfg.StartCells(),
		Heading: cfg.StartHeading(),
		Food:    cfg.StartFood(),
		Policy:  policy,
	}, nil
}
