package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

const snakeFile = "snake.yaml"

// LoadSnake loads the snake configuration. Values missing from the file
// keep their defaults.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(snakeFile), filepath.Join("configs", snakeFile)} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable, malformed or invalid
// files are skipped.
func tryLoad(path string) (SnakeConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SnakeConfig{}, false
	}
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}

// Validation errors.
var (
	ErrGridSize    = errors.New("grid sizes must be positive and hold at least one cell")
	ErrTickPeriod  = errors.New("tick period must be positive")
	ErrSwipe       = errors.New("swipe threshold must be positive")
	ErrFoodPolicy  = errors.New("unknown food policy")
	ErrHeading     = errors.New("unknown start heading")
	ErrStartSnake  = errors.New("invalid start snake")
	ErrStartFood   = errors.New("start food is off the board")
	ErrAudioVolume = errors.New("audio volumes must be between 0 and 1")
)

// Validate checks that the configuration describes a playable board.
func (c SnakeConfig) Validate() error {
	if c.Grid.CanvasSize <= 0 || c.Grid.CellSize <= 0 || c.Grid.CanvasSize < c.Grid.CellSize {
		return fmt.Errorf("%w: canvas %d, cell %d", ErrGridSize, c.Grid.CanvasSize, c.Grid.CellSize)
	}
	if c.Timing.TickMS <= 0 {
		return fmt.Errorf("%w: %d ms", ErrTickPeriod, c.Timing.TickMS)
	}
	if c.Input.SwipeThreshold <= 0 {
		return fmt.Errorf("%w: %g", ErrSwipe, c.Input.SwipeThreshold)
	}
	switch c.Food.Policy {
	case "", "unguarded", "guarded":
	default:
		return fmt.Errorf("%w: %q", ErrFoodPolicy, c.Food.Policy)
	}

	heading, ok := core.ParseHeading(c.Start.Heading)
	if !ok {
		return fmt.Errorf("%w: %q", ErrHeading, c.Start.Heading)
	}

	grid := c.Board()
	cells := c.StartCells()
	if len(cells) == 0 {
		return fmt.Errorf("%w: no cells", ErrStartSnake)
	}
	seen := make(map[[2]int]bool, len(cells))
	for i, cell := range cells {
		if !grid.Contains(cell) {
			return fmt.Errorf("%w: cell %d (%d,%d) is off the board", ErrStartSnake, i, cell.X, cell.Y)
		}
		key := [2]int{cell.X, cell.Y}
		if seen[key] {
			return fmt.Errorf("%w: cell %d (%d,%d) repeats", ErrStartSnake, i, cell.X, cell.Y)
		}
		seen[key] = true
		if i > 0 {
			prev := cells[i-1]
			if core.Abs(prev.X-cell.X)+core.Abs(prev.Y-cell.Y) != 1 {
				return fmt.Errorf("%w: cells %d and %d are not adjacent", ErrStartSnake, i-1, i)
			}
		}
	}
	if len(cells) > 1 && cells[0].Add(heading) == cells[1] {
		return fmt.Errorf("%w: heading %s points into the body", ErrStartSnake, c.Start.Heading)
	}

	if !grid.Contains(c.StartFood()) {
		return fmt.Errorf("%w: (%d,%d)", ErrStartFood, c.Start.Food[0], c.Start.Food[1])
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 || c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 {
		return fmt.Errorf("%w: master %g, music %g", ErrAudioVolume, c.Audio.MasterVolume, c.Audio.MusicVolume)
	}
	return nil
}
