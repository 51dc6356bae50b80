// snake is the classic snake game for the terminal and the browser canvas.
//
// Usage:
//
//	snake list              - List game variants
//	snake play [variant]    - Play in the terminal
//	snake web [variant]     - Play in an Ebiten window (or the browser, built for wasm)
//	snake sim               - Run a headless autopilot session and print the result
//
// Global flags:
//
//	--config <path>    - Custom snake.yaml
//	--seed <value>     - RNG seed for reproducible food placement
//	--log-file <path>  - Log file for the terminal game
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/snake-arcade/internal/games/snake"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game",
	Long: `Snake on a 20x20 board: steer the snake to the food, grow by one cell
per item and avoid the walls and your own body.

Available commands:
  list     - Show game variants
  play     - Play in the terminal
  web      - Play in a graphical window
  sim      - Run a headless autopilot session

Examples:
  snake play
  snake play snake_guarded
  snake web --config ./my-snake.yaml
  snake sim --seed 42 --ticks 500`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal game only)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
