package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			CanvasSize: 400,
			CellSize:   20,
		},
		Timing: TimingConfig{
			TickMS: 100,
		},
		Input: InputConfig{
			SwipeThreshold: 30,
		},
		Food: FoodConfig{
			Policy: "unguarded",
		},
		Start: StartConfig{
			Snake:   [][2]int{{10, 10}, {9, 10}, {8, 10}},
			Heading: "right",
			Food:    [2]int{15, 15},
		},
		Audio: AudioConfig{
			Enabled:      true,
			Muted:        false,
			MasterVolume: 1.0,
			MusicVolume:  1.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
