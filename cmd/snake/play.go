package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Arrows/WASD  - Steer
  Space/R      - Restart (after game over)
  P/Esc        - Pause
  M            - Mute
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play snake_guarded
  snake play --log-file snake.log --debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
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
	game, err := createGame(args)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = tw, th
	}

	sound := newAudio(cfg, logger)
	defer sound.Close()

	logger.Info("starting", "game", game.ID(), "policy", game.Settings().Policy, "tick", cfg.TickPeriod())
	if err := tui.Run(game, tui.Options{
		Config: core.RuntimeConfig{
			ScreenW:    width,
			ScreenH:    height,
			TickPeriod: cfg.TickPeriod(),
			Seed:       flagSeed,
		},
		Audio:  sound,
		Logger: logger,
	}); err != nil {
		return fmt.Errorf("terminal game: %w", err)
	}
	return nil
}
