package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/engine"
)

var (
	flagTicks     int
	flagScript    string
	flagTurnEvery int
	flagScreen    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run Maze Chase without a terminal UI",
	Long: `Runs Maze Chase headless for a fixed number of ticks and prints a
summary. Game time advances one tick per frame, so a run is fully
determined by --seed, --fps, the config and the player input.

The player follows --script when given: a comma-separated list of
directions (up, right, down, left or u, r, d, l), one taken every
--turn-every ticks and repeated. Without a script an autopilot
wanders the maze preferring cells with dots.

Events are logged to stderr; use --log-level debug to see every dot.

Examples:
  arcade sim --seed 42
  arcade sim --ticks 600 --script left,up,right,down --turn-every 45
  arcade sim --seed 7 --difficulty hard --screen`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of frames to simulate")
	simCmd.Flags().StringVar(&flagScript, "script", "", "Comma-separated player directions")
	simCmd.Flags().IntVar(&flagTurnEvery, "turn-every", 30, "Ticks between scripted turns")
	simCmd.Flags().BoolVar(&flagScreen, "screen", false, "Print the final frame")
	addGameFlags(simCmd)
}

// simOptions configures one headless run.
type simOptions struct {
	Ticks     int
	Seed      int64
	TickRate  int
	Script    []engine.Direction
	TurnEvery int
	Width     int
	Height    int
}

// simSummary is the outcome of a headless run.
type simSummary struct {
	RunID    string
	Seed     int64
	Frames   int
	Tick     uint64
	State    core.GameState
	DotsLeft int
	Events   map[string]int
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}
	if err := mazechase.SetDifficultyPreset(flagDifficulty); err != nil {
		return err
	}
	mazechase.SetConfigPath(flagConfig)
	script, err := parseScript(flagScript)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := simOptions{
		Ticks:     flagTicks,
		Seed:      seed,
		TickRate:  flagFPS,
		Script:    script,
		TurnEvery: flagTurnEvery,
		Width:     80,
		Height:    40,
	}

	g, sum, err := simulate(opts, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printSummary(out, sum)
	if flagScreen {
		s := core.NewScreen(opts.Width, opts.Height)
		g.Render(s)
		fmt.Fprintln(out)
		fmt.Fprintln(out, s.String())
	}
	return nil
}

// simulate plays one run and returns the game in its final state.
func simulate(opts simOptions, logger *log.Logger) (*mazechase.Game, simSummary, error) {
	g := mazechase.New(mazechase.WithLogger(logger))
	g.Reset(core.RuntimeConfig{
		ScreenW:  opts.Width,
		ScreenH:  opts.Height,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	})
	if err := g.Err(); err != nil {
		return nil, simSummary{}, fmt.Errorf("mazechase: %w", err)
	}

	p := newPilot(opts.Seed, opts.Script, opts.TurnEvery)
	sum := simSummary{Seed: opts.Seed, Events: make(map[string]int)}
	for sum.Frames < opts.Ticks {
		res := g.Step(p.next(g.Snapshot()))
		sum.Frames++
		for _, ev := range res.Events {
			sum.Events[ev]++
		}
		if res.State.GameOver {
			break
		}
	}

	snap := g.Snapshot()
	sum.RunID = g.RunID()
	sum.Tick = snap.Tick
	sum.State = g.State()
	sum.DotsLeft = snap.DotsLeft
	return g, sum, nil
}

func printSummary(w io.Writer, s simSummary) {
	fmt.Fprintf(w, "run:        %s\n", s.RunID)
	fmt.Fprintf(w, "seed:       %d\n", s.Seed)
	fmt.Fprintf(w, "frames:     %d (%d simulated)\n", s.Frames, s.Tick)
	fmt.Fprintf(w, "state:      %s\n", s.State.Phase)
	fmt.Fprintf(w, "score:      %d\n", s.State.Score)
	fmt.Fprintf(w, "lives:      %d\n", s.State.Lives)
	fmt.Fprintf(w, "level:      %d\n", s.State.Level)
	fmt.Fprintf(w, "dots left:  %d\n", s.DotsLeft)

	names := make([]string, 0, len(s.Events))
	for name := range s.Events {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-16s %d\n", name, s.Events[name])
	}
}

// parseScript reads a comma-separated direction list.
func parseScript(s string) ([]engine.Direction, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var dirs []engine.Direction
	for _, part := range strings.Split(s, ",") {
		d, ok := engine.ParseDirection(part)
		if !ok {
			return nil, fmt.Errorf("invalid direction %q in --script", strings.TrimSpace(part))
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

// pilot produces player input for headless runs.
type pilot struct {
	rng     *rand.Rand
	script  []engine.Direction
	every   int
	running int

	last    engine.Cell
	hasLast bool
}

func newPilot(seed int64, script []engine.Direction, every int) *pilot {
	if every < 1 {
		every = 1
	}
	return &pilot{
		rng:    rand.New(rand.NewSource(seed)),
		script: script,
		every:  every,
	}
}

// next returns the input for the coming frame. It starts runs and levels
// by itself.
func (p *pilot) next(snap mazechase.Snapshot) core.InputFrame {
	f := core.NewInputFrame()
	switch snap.State {
	case engine.StateIdle, engine.StateLevelComplete:
		f.Set(core.ActionConfirm)
		return f
	case engine.StateGameOver:
		return f
	}

	d, ok := p.scripted()
	if p.script == nil {
		d, ok = p.wander(snap)
	}
	if ok {
		f.Set(actionFor(d))
	}
	p.running++
	return f
}

func (p *pilot) scripted() (engine.Direction, bool) {
	if len(p.script) == 0 || p.running%p.every != 0 {
		return engine.DirUp, false
	}
	return p.script[(p.running/p.every)%len(p.script)], true
}

// wander picks a new heading each time the player enters a cell: never a
// wall, not a reversal unless it is a dead end, dots first.
func (p *pilot) wander(snap mazechase.Snapshot) (engine.Direction, bool) {
	cell := engine.Position{X: snap.Player.X, Y: snap.Player.Y}.Cell()
	if p.hasLast && cell == p.last {
		return engine.DirUp, false
	}
	p.last, p.hasLast = cell, true

	var open, tasty []engine.Direction
	for _, d := range engine.Directions() {
		n := cell.Neighbor(d)
		if n.Row < 0 || n.Row >= snap.Rows || n.Col < 0 || n.Col >= snap.Cols {
			continue
		}
		tile := snap.Cells[n.Row][n.Col]
		if tile == engine.TileWall {
			continue
		}
		if d == snap.Player.Dir.Opposite() {
			continue
		}
		open = append(open, d)
		if tile.Consumable() {
			tasty = append(tasty, d)
		}
	}

	switch {
	case len(tasty) > 0:
		return tasty[p.rng.Intn(len(tasty))], true
	case len(open) > 0:
		return open[p.rng.Intn(len(open))], true
	}
	return snap.Player.Dir.Opposite(), true
}

func actionFor(d engine.Direction) core.Action {
	switch d {
	case engine.DirUp:
		return core.ActionUp
	case engine.DirRight:
		return core.ActionRight
	case engine.DirDown:
		return core.ActionDown
	default:
		return core.ActionLeft
	}
}
