package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagDumpFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the game configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration",
	Long: `Resolve the configuration the same way 'play' does and print it.
The output can be saved and edited as a custom config file.

Examples:
  flappy config dump > ~/.flappy/configs/flappy.yaml
  flappy config dump --format toml --config ./tuned.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfigDump,
}

func init() {
	configDumpCmd.Flags().StringVar(&flagDumpFormat, "format", config.FormatYAML, "Output format: yaml or toml")
	configCmd.AddCommand(configDumpCmd)
}

func runConfigDump(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return config.Encode(os.Stdout, cfg, flagDumpFormat)
}
