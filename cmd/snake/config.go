package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in snake.yaml. Save it to ~/.snake/configs/snake.yaml
or pass an edited copy with --config.

Examples:
  snake config > ~/.snake/configs/snake.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML())
		return err
	},
}
