package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase"
	"github.com/vovakirdan/mazechase/internal/platform/tui"
	"github.com/vovakirdan/mazechase/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (Maze Chase when omitted).

Controls:
  Arrows/WASD - Steer
  Enter/Space - Start, next level
  P/Esc       - Pause
  R           - Restart (after game over)
  ?           - Show all keys
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower ghosts, longer power pellets, 5 lives
  normal - Classic speeds, 3 lives
  hard   - Faster ghosts, shorter power pellets, 2 lives

Logs are discarded while playing unless --log-file is set.

Examples:
  arcade play
  arcade play mazechase --difficulty easy
  arcade play mazechase --config ./my-maze.yaml --log-file arcade.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := mazechase.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// The alternate screen owns stdout, so logs only go to a file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Set config path and difficulty for games before creation
	switch gameID {
	case mazechase.ID:
		if err := mazechase.SetDifficultyPreset(flagDifficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		mazechase.SetConfigPath(flagConfig)
		mazechase.SetLogger(logger)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting", "game", gameID, "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH), "fps", flagFPS)
	if err := tui.Run(game, cfg); err != nil {
		logger.Error("game stopped", "error", err)
		closeLog() //nolint:errcheck // Exiting anyway
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
	logger.Info("finished", "game", gameID, "score", game.State().Score)
}

// addGameFlags registers the game config flags shared by play and sim.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}
