// Package config provides YAML-based configuration loading for the snake
// game: board geometry, timing, input tuning, start layout and audio.
package config

import (
	"time"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Input  InputConfig  `yaml:"input"`
	Food   FoodConfig   `yaml:"food"`
	Start  StartConfig  `yaml:"start"`
	Audio  AudioConfig  `yaml:"audio"`
}

// GridConfig defines the board. The tile count per side is
// CanvasSize / CellSize.
type GridConfig struct {
	CanvasSize int `yaml:"canvas_size"`
	CellSize   int `yaml:"cell_size"`
}

// TimingConfig defines the tick clock.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// InputConfig defines input tuning.
type InputConfig struct {
	SwipeThreshold float64 `yaml:"swipe_threshold"`
}

// FoodConfig defines how food respawns: "unguarded" or "guarded".
type FoodConfig struct {
	Policy string `yaml:"policy"`
}

// StartConfig defines the layout of a fresh session.
type StartConfig struct {
	Snake   [][2]int `yaml:"snake"` // Head first
	Heading string   `yaml:"heading"`
	Food    [2]int   `yaml:"food"`
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Muted        bool    `yaml:"muted"`
	MasterVolume float64 `yaml:"master_volume"`
	MusicVolume  float64 `yaml:"music_volume"`
}

// Board returns the board geometry.
func (c SnakeConfig) Board() core.Grid {
	return core.NewGrid(c.Grid.CanvasSize, c.Grid.CellSize)
}

// StartCells returns the starting snake, head first.
func (c SnakeConfig) StartCells() []core.Cell {
	cells := make([]core.Cell, len(c.Start.Snake))
	for i, p := range c.Start.Snake {
		cells[i] = core.Cell{X: p[0], Y: p[1]}
	}
	return cells
}

// StartHeading returns the starting heading, or right if the name is unknown.
func (c SnakeConfig) StartHeading() core.Heading {
	h, ok := core.ParseHeading(c.Start.Heading)
	if !ok {
		return core.HeadingRight
	}
	return h
}

// StartFood returns the first food cell.
func (c SnakeConfig) StartFood() core.Cell {
	return core.Cell{X: c.Start.Food[0], Y: c.Start.Food[1]}
}

// TickPeriod returns the tick clock period.
func (c SnakeConfig) TickPeriod() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}
