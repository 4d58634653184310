// Package engine is the maze-chase simulation core: maze model, agent motion,
// ghost decisions, collision and scoring, and the game state machine.
//
// It has no rendering, input or timer code. A driver calls Tick once per
// frame and reads Snapshot for display. An Engine is not safe for concurrent
// use.
package engine

import (
	"fmt"
	"time"
)

// Engine owns all mutable game state for one run.
type Engine struct {
	cfg    Config
	clock  func() time.Time
	policy Policy

	maze   *Maze
	player Player
	ghosts []Ghost

	state           State
	score           int
	lives           int
	level           int
	frightenedUntil time.Time
	respawnPause    int
	tick            uint64
}

// New validates cfg and returns an engine in StateIdle with the maze built
// and agents on their spawn cells.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	e := &Engine{
		cfg:    cfg,
		clock:  cfg.Clock,
		policy: cfg.Policy,
		state:  StateIdle,
		lives:  cfg.StartingLives,
		level:  1,
	}
	e.buildMaze()

	if !e.maze.IsPassable(cfg.PlayerSpawn.Col, cfg.PlayerSpawn.Row) {
		return nil, fmt.Errorf("%w: player spawn %v is a wall", ErrInvalidConfig, cfg.PlayerSpawn)
	}
	for _, g := range cfg.Ghosts {
		if !e.maze.IsPassable(g.Spawn.Col, g.Spawn.Row) {
			return nil, fmt.Errorf("%w: ghost %q spawn %v is a wall", ErrInvalidConfig, g.Name, g.Spawn)
		}
	}

	e.resetAgents()
	return e, nil
}

func (e *Engine) buildMaze() {
	e.maze = NewMaze(e.cfg.Cols, e.cfg.Rows, e.cfg.TunnelRow, e.cfg.Layout, e.cfg.Scoring)
}

// resetAgents returns every agent to spawn and ends frightened mode.
func (e *Engine) resetAgents() {
	e.player = newPlayer(e.cfg.PlayerSpawn)
	e.ghosts = newGhosts(e.cfg.Ghosts)
	e.frightenedUntil = time.Time{}
}

// Start begins a fresh run. Valid from StateIdle and StateGameOver only.
func (e *Engine) Start() {
	if e.state != StateIdle && e.state != StateGameOver {
		return
	}
	e.score = 0
	e.lives = e.cfg.StartingLives
	e.level = 1
	e.tick = 0
	e.respawnPause = 0
	e.buildMaze()
	e.resetAgents()
	e.state = StateRunning
}

// AdvanceLevel moves to the next level with a fresh maze, keeping score and
// lives. Valid from StateLevelComplete only.
func (e *Engine) AdvanceLevel() {
	if e.state != StateLevelComplete {
		return
	}
	e.level++
	e.respawnPause = 0
	e.buildMaze()
	e.resetAgents()
	e.state = StateRunning
}

// SetPlayerIntendedDirection queues a turn. It is taken on the first tick the
// turn is passable. Invalid directions are ignored.
func (e *Engine) SetPlayerIntendedDirection(d Direction) {
	if !d.Valid() {
		return
	}
	e.player.NextDir = d
}

// Tick advances the simulation by one frame. Outside StateRunning it does
// nothing.
//
// Order: player motion, consumption, level-complete check, ghost motion,
// ghost collision.
func (e *Engine) Tick() TickResult {
	if e.state != StateRunning {
		return TickResult{State: e.state}
	}
	e.tick++

	var res TickResult
	if e.respawnPause > 0 {
		e.respawnPause--
		res.State = e.state
		return res
	}

	e.movePlayer()
	e.consumeUnderPlayer(&res)

	if e.maze.DotsLeft() <= 0 {
		e.state = StateLevelComplete
		res.add(Event{Kind: EventLevelComplete, Cell: e.player.Pos.Cell()})
		res.State = e.state
		return res
	}

	frightened := e.frightened()
	for i := range e.ghosts {
		e.moveGhost(&e.ghosts[i], frightened)
	}
	e.checkGhostCollisions(&res)

	res.State = e.state
	return res
}

// State returns the current state machine position.
func (e *Engine) State() State { return e.state }

// Score returns the points earned this run.
func (e *Engine) Score() int { return e.score }

// Lives returns the remaining lives.
func (e *Engine) Lives() int { return e.lives }

// Level returns the 1-based level number.
func (e *Engine) Level() int { return e.level }

// Maze exposes the live maze.
func (e *Engine) Maze() *Maze { return e.maze }

// Frightened reports whether ghosts are fleeing right now.
func (e *Engine) Frightened() bool { return e.frightened() }

// FrightenedUntil returns the frightened deadline; zero when never set.
func (e *Engine) FrightenedUntil() time.Time { return e.frightenedUntil }

// Player returns a copy of the player agent.
func (e *Engine) Player() Player { return e.player }

// Ghosts returns a copy of the ghost agents.
func (e *Engine) Ghosts() []Ghost {
	out := make([]Ghost, len(e.ghosts))
	copy(out, e.ghosts)
	return out
}

// Config returns the effective configuration.
func (e *Engine) Config() Config { return e.cfg }
