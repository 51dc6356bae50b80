package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/platform/web"
)

var webCmd = &cobra.Command{
	Use:   "web [variant]",
	Short: "Play in a graphical window",
	Long: `Start the game on an Ebiten canvas. The same frontend runs in the
browser when built with GOOS=js GOARCH=wasm.

Controls:
  Arrows/WASD, on-screen pad or swipe  - Steer
  Space/R or Restart button            - Restart (after game over)
  P/Esc                                - Pause
  M or Sound button                    - Mute
  Q                                    - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWeb,
}

func runWeb(cmd *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	game, err := createGame(args)
	if err != nil {
		return err
	}

	sound := newAudio(cfg, logger)
	defer sound.Close()

	logger.Info("starting", "game", game.ID(), "policy", game.Settings().Policy, "tick", cfg.TickPeriod())
	return web.Run(game, web.Options{
		Config: core.RuntimeConfig{
			TickPeriod: cfg.TickPeriod(),
			Seed:       flagSeed,
		},
		SwipeThreshold: cfg.Input.SwipeThreshold,
		Audio:          sound,
		Logger:         logger,
	})
}
