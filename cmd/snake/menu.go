package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu and play in the terminal",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After quitting a game, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Q            - Quit

Examples:
  snake menu
  snake menu --config ./configs/snake.yaml`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	w, closeLog, err := openLogFile()
	if err != nil {
		return err
	}
	defer closeLog()
	logger := newLogger(w)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = tw, th
	}
	rc := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickPeriod: cfg.TickPeriod(),
		Seed:       flagSeed,
	}

	sound := newAudio(cfg, logger)
	defer sound.Close()

	for {
		result, err := tui.RunMenu(rc)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		rc = result.Config
		if result.Quit || result.GameID == "" {
			return nil
		}

		game, err := createGame([]string{result.GameID})
		if err != nil {
			return err
		}
		logger.Info("starting", "game", game.ID(), "policy", game.Settings().Policy, "tick", rc.TickPeriod)
		if err := tui.Run(game, tui.Options{Config: rc, Audio: sound, Logger: logger}); err != nil {
			return fmt.Errorf("terminal game: %w", err)
		}
		sound.StopMusic()
	}
}
