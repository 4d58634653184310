// Package mazechase plugs the maze-chase engine into the arcade platform:
// configuration, input mapping, pause, logging and terminal rendering.
package mazechase

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/engine"
	"github.com/vovakirdan/mazechase/internal/registry"
)

// ID is the registry identifier.
const ID = "mazechase"

const defaultTickRate = 60

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset = config.DifficultyNormal

// logger receives run and event logs; discarded unless SetLogger is called.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. The empty string selects
// normal; unknown names return an error and keep the current preset.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Option customizes a Game.
type Option func(*Game)

// WithClock replaces the game clock that drives frightened timing.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// WithLogger overrides the package logger for one game.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.log = l }
}

// Game implements registry.Game for Maze Chase.
type Game struct {
	cfg     config.MazeChaseConfig
	source  string
	runtime core.RuntimeConfig
	eng     *engine.Engine
	err     error

	log   *log.Logger
	runID string

	// Game time only advances on simulated ticks, so pausing also freezes
	// the frightened countdown.
	now      func() time.Time
	epoch    time.Time
	simTicks int64
	interval time.Duration

	paused   bool
	tooSmall bool
}

// New creates a Maze Chase game. Call Reset before use.
func New(opts ...Option) *Game {
	g := &Game{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Maze Chase" }

// Reset loads configuration and builds a fresh engine in the idle state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = defaultTickRate
	}
	g.runtime = runtime
	if g.log == nil {
		g.log = logger
	}

	cfg, source, err := config.LoadMazeChase(configPath)
	if err != nil {
		g.log.Warn("config load failed, using defaults", "path", configPath, "error", err)
		cfg, source = config.DefaultMazeChaseConfig(), config.SourceBuiltin
	}
	config.ApplyMazeChasePreset(&cfg, difficultyPreset)
	g.cfg = cfg
	g.source = source

	g.epoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	g.simTicks = 0
	g.interval = time.Second / time.Duration(runtime.TickRate)
	g.paused = false
	g.runID = uuid.NewString()

	g.eng, g.err = engine.New(g.engineConfig())
	if g.err != nil {
		g.log.Error("engine setup failed", "source", source, "error", g.err)
		return
	}
	g.checkScreen()

	g.log.Info("game ready",
		"run", g.runID,
		"source", source,
		"difficulty", string(difficultyPreset),
		"seed", runtime.Seed,
		"dots", g.eng.Maze().DotsLeft(),
	)
}

// engineConfig translates the YAML configuration into engine terms.
func (g *Game) engineConfig() engine.Config {
	c := g.cfg
	ec := engine.DefaultConfig()

	ec.Cols, ec.Rows, ec.TunnelRow = c.Maze.Cols, c.Maze.Rows, c.Maze.TunnelRow
	ec.TileSize = c.Maze.TileSize
	if len(c.Maze.Layout) > 0 {
		ec.Layout = c.Maze.Layout
	}

	ec.PlayerSpawn = engine.Cell{Col: c.Player.Spawn.Col, Row: c.Player.Spawn.Row}
	ec.PlayerSpeed = c.Player.Speed
	ec.MouthStep = c.Player.MouthStep

	ec.Ghosts = make([]engine.GhostSpec, len(c.Ghosts.Roster))
	for i, gh := range c.Ghosts.Roster {
		ec.Ghosts[i] = engine.GhostSpec{
			Name:  gh.Name,
			Color: gh.Color,
			Spawn: engine.Cell{Col: gh.Spawn.Col, Row: gh.Spawn.Row},
		}
	}
	ec.GhostSpeed = c.Ghosts.Speed
	ec.CenterEpsilon = c.Ghosts.CenterEpsilon
	ec.FrightenedDuration = time.Duration(c.Ghosts.FrightenedMS) * time.Millisecond

	ec.StartingLives = c.Gameplay.Lives
	ec.CollisionThreshold = c.Gameplay.CollisionThreshold
	ec.RespawnPauseTicks = c.Gameplay.RespawnPauseTicks

	ec.Scoring = engine.Scoring{Dot: c.Scoring.Dot, Power: c.Scoring.Power, Ghost: c.Scoring.Ghost}

	ec.Seed = g.runtime.Seed
	ec.Rand = rand.New(rand.NewSource(g.runtime.Seed))
	ec.Clock = g.clock
	return ec
}

// clock returns the game time used by the engine.
func (g *Game) clock() time.Time {
	if g.now != nil {
		return g.now()
	}
	return g.epoch.Add(time.Duration(g.simTicks) * g.interval)
}

// Step handles one frame of input and advances the engine unless paused.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.eng == nil {
		return core.StepResult{State: g.State()}
	}

	state := g.eng.State()
	switch {
	case in.Has(core.ActionRestart) && state == engine.StateGameOver,
		in.Has(core.ActionConfirm) && (state == engine.StateIdle || state == engine.StateGameOver):
		g.start()
	case in.Has(core.ActionConfirm) && state == engine.StateLevelComplete:
		g.eng.AdvanceLevel()
		g.log.Info("level started", "run", g.runID, "level", g.eng.Level())
	case in.Has(core.ActionPause) && state == engine.StateRunning:
		g.paused = !g.paused
	}

	if d, ok := directionFor(in); ok {
		g.eng.SetPlayerIntendedDirection(d)
	}

	if g.paused || g.tooSmall || g.eng.State() != engine.StateRunning {
		return core.StepResult{State: g.State()}
	}

	res := g.eng.Tick()
	g.simTicks++

	names := make([]string, 0, len(res.Events))
	for _, ev := range res.Events {
		names = append(names, ev.Kind.String())
		g.logEvent(ev)
	}
	return core.StepResult{State: g.State(), Events: names}
}

func (g *Game) start() {
	g.eng.Start()
	g.paused = false
	g.runID = uuid.NewString()
	g.log.Info("run started", "run", g.runID, "lives", g.eng.Lives())
}

// directionFor picks the steering action of a frame. When several are
// pressed at once the first in up, right, down, left order wins.
func directionFor(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.DirUp, true
	case in.Has(core.ActionRight):
		return engine.DirRight, true
	case in.Has(core.ActionDown):
		return engine.DirDown, true
	case in.Has(core.ActionLeft):
		return engine.DirLeft, true
	}
	return engine.DirUp, false
}

func (g *Game) logEvent(ev engine.Event) {
	switch ev.Kind {
	case engine.EventDotEaten:
		g.log.Debug("dot", "run", g.runID, "col", ev.Cell.Col, "row", ev.Cell.Row)
	case engine.EventPowerPellet:
		g.log.Debug("power pellet", "run", g.runID, "col", ev.Cell.Col, "row", ev.Cell.Row)
	case engine.EventGhostEaten:
		g.log.Info("ghost eaten", "run", g.runID, "ghost", g.ghostName(ev.GhostID), "score", g.eng.Score())
	case engine.EventLifeLost:
		g.log.Info("life lost", "run", g.runID, "ghost", g.ghostName(ev.GhostID), "lives", g.eng.Lives())
	case engine.EventLevelComplete:
		g.log.Info("level complete", "run", g.runID, "level", g.eng.Level(), "score", g.eng.Score())
	case engine.EventGameOver:
		g.log.Info("game over", "run", g.runID, "score", g.eng.Score(), "level", g.eng.Level())
	}
}

func (g *Game) ghostName(id int) string {
	ghosts := g.eng.Ghosts()
	if id < 0 || id >= len(ghosts) {
		return fmt.Sprintf("ghost-%d", id)
	}
	return ghosts[id].Name
}

// State returns the platform view of the game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{Phase: "error"}
	}
	st := g.eng.State()
	return core.GameState{
		Score:    g.eng.Score(),
		Lives:    g.eng.Lives(),
		Level:    g.eng.Level(),
		GameOver: st == engine.StateGameOver,
		Paused:   g.paused,
		Phase:    st.String(),
	}
}

// Err reports why the engine could not be built, if it could not.
func (g *Game) Err() error { return g.err }

// RunID identifies the current run in logs.
func (g *Game) RunID() string { return g.runID }

// ConfigSource names where the configuration was loaded from.
func (g *Game) ConfigSource() string { return g.source }
