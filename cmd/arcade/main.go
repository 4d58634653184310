// arcade runs Maze Chase and any other registered game in the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play [game]       - Play a game (default: mazechase)
//	arcade sim               - Run Maze Chase headless and print a summary
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/mazechase/internal/games/mazechase"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Maze Chase - a maze-chase arcade game for your terminal",
	Long: `Maze Chase puts you in a maze full of dots with four ghosts on your
trail. Eat every dot to clear the level; power pellets turn the tables.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  sim      - Run a headless simulation

Examples:
  arcade play
  arcade play mazechase --difficulty hard
  arcade sim --ticks 3600 --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
}
