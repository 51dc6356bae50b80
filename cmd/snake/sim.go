package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
	"github.com/vovakirdan/snake-arcade/internal/scheduler"
)

var (
	flagTicks  int
	flagPeriod time.Duration
)

var simCmd = &cobra.Command{
	Use:   "sim [variant]",
	Short: "Run a headless autopilot session",
	Long: `Plays one session with a greedy autopilot and no display, then prints
the final snapshot as YAML. With the same --seed the result is identical.

Examples:
  snake sim --seed 42
  snake sim --ticks 200 --period 100ms`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Maximum number of ticks")
	simCmd.Flags().DurationVar(&flagPeriod, "period", 0, "Tick period (0 = as fast as possible)")
}

func runSim(cmd *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr)

	if _, err := loadConfig(); err != nil {
		return err
	}
	game, err := createGame(args)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game.SetHooks(snake.Hooks{
		Renderer: snake.RendererFunc(func(f snake.Frame) {
			logger.Debug("tick", "head", f.Head, "len", len(f.Snake), "score", f.Score)
		}),
	})
	game.Reset(core.RuntimeConfig{Seed: seed, TickPeriod: flagPeriod})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pilot := snake.NewAutopilot(game)
	ticks := 0
	err = scheduler.Run(ctx, flagPeriod, func() bool {
		game.Steer(pilot.Next())
		game.Tick()
		ticks++
		return !game.Over() && ticks < flagTicks
	})
	if err != nil {
		logger.Warn("simulation interrupted", "error", err, "ticks", ticks)
	}
	logger.Debug("final state\n" + game.DebugState())

	out, err := yaml.Marshal(struct {
		Seed     int64          `yaml:"seed"`
		Snapshot snake.Snapshot `yaml:"snapshot"`
	}{seed, game.Snapshot()})
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
