// flappy is a Flappy Bird-style game for the terminal.
//
// Usage:
//
//	flappy list              - List available games
//	flappy play [game]       - Play a game (default: flappy)
//	flappy serve             - Start SSH server for remote play
//	flappy config dump       - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--config <path>   - Load game tuning from a YAML or TOML file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - dodge obstacles in your terminal",
	Long: `Flappy is a terminal Flappy Bird. Flap to stay airborne and keep clear
of the obstacles scrolling in from the right.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  serve    - Start SSH server for remote play
  config   - Inspect the game configuration

Examples:
  flappy play
  flappy play --config ./my-flappy.toml
  flappy serve --ssh :2222
  flappy config dump --format toml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
