// rockdodge is a terminal game: slide left and right to dodge falling rocks.
//
// Usage:
//
//	rockdodge play [game]    - Play a game (default: dodge)
//	rockdodge sim            - Run a game headless and print a summary
//	rockdodge config         - Print the effective configuration as YAML
//	rockdodge list           - List available games
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/rockdodge/internal/games/dodge"
)

const defaultGame = "dodge"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string

	// Game config flags shared by play, sim and config
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rockdodge",
	Short: "Rock Dodge - dodge falling rocks in your terminal",
	Long: `Rock Dodge is a terminal game. Rocks of random size and speed fall
from the sky; slide left and right to stay clear of them.

Available commands:
  play     - Play the game
  sim      - Run the game headless
  config   - Print the effective configuration
  list     - Show all available games

Examples:
  rockdodge play
  rockdodge play --difficulty hard
  rockdodge sim --ticks 3600 --autopilot --seed 42
  rockdodge config --config ./my-dodge.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}

// addGameConfigFlags registers --config and --difficulty on cmd.
func addGameConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}
