package snake

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
)

func TestSettingsFromDefaultConfig(t *testing.T) {
	s, err := SettingsFromConfig(config.DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("SettingsFromConfig() error = %v", err)
	}
	if !reflect.DeepEqual(s, DefaultSettings()) {
		t.Errorf("settings = %+v, expected %+v", s, DefaultSettings())
	}
}

func TestSettingsFromConfigCustom(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid.CanvasSize = 200
	cfg.Grid.CellSize = 10
	cfg.Start.Snake = [][2]int{{3, 3}, {3, 4}}
	cfg.Start.Heading = "up"
	cfg.Start.Food = [2]int{0, 0}
	cfg.Food.Policy = "guarded"

	s, err := SettingsFromConfig(cfg)
	if err != nil {
		t.Fatalf("SettingsFromConfig() error = %v", err)
	}
	if s.Grid.Size != 20 || s.Heading != core.HeadingUp || s.Policy != FoodGuarded {
		t.Errorf("settings = %+v", s)
	}

	g := NewWithSettings("custom", "Custom", s)
	g.Reset(core.RuntimeConfig{Seed: 1})
	g.Tick()
	if g.session.Body.Head() != (core.Cell{X: 3, Y: 2}) {
		t.Errorf("head = %v, expected (3,2)", g.session.Body.Head())
	}
}

func TestSettingsFromInvalidConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Timing.TickMS = -5
	if _, err := SettingsFromConfig(cfg); err == nil {
		t.Error("invalid config should be rejected")
	}
}
