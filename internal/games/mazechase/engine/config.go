package engine

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// GhostCount is the fixed number of ghosts in a game.
const GhostCount = 4

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("mazechase: invalid config")

// Scoring holds the points awarded per event.
type Scoring struct {
	Dot   int
	Power int
	Ghost int
}

// GhostSpec describes one ghost's identity and spawn cell.
type GhostSpec struct {
	Name  string
	Color string // hex, e.g. "#ff0000"
	Spawn Cell
}

// Rand is the random source used by the flee heuristic.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Config is fixed at construction; the engine never reconfigures itself.
type Config struct {
	Cols      int
	Rows      int
	TunnelRow int
	Layout    []string
	TileSize  int // presentation only: screen units per cell

	PlayerSpawn Cell
	Ghosts      []GhostSpec

	PlayerSpeed        float64 // cells per tick
	GhostSpeed         float64 // cells per tick
	MouthStep          float64 // animation phase advance per tick
	CenterEpsilon      float64
	CollisionThreshold float64 // manhattan distance, in cells
	FrightenedDuration time.Duration
	Scoring            Scoring
	StartingLives      int
	RespawnPauseTicks  int

	// Seed feeds the default random source when Rand is nil.
	Seed int64
	Rand Rand
	// Clock returns the current wall-clock time; time.Now when nil.
	Clock func() time.Time
	// Policy chooses ghost directions; GreedyPolicy when nil.
	Policy Policy
}

// DefaultConfig returns the classic 28×31 setup.
func DefaultConfig() Config {
	return Config{
		Cols:        DefaultCols,
		Rows:        DefaultRows,
		TunnelRow:   DefaultTunnelRow,
		Layout:      DefaultLayout(),
		TileSize:    2,
		PlayerSpawn: Cell{Col: 14, Row: 24},
		Ghosts: []GhostSpec{
			{Name: "blinky", Color: "#ff0000", Spawn: Cell{Col: 10, Row: 14}},
			{Name: "pinky", Color: "#ffb8ff", Spawn: Cell{Col: 11, Row: 14}},
			{Name: "inky", Color: "#00ffff", Spawn: Cell{Col: 12, Row: 14}},
			{Name: "clyde", Color: "#ffb852", Spawn: Cell{Col: 15, Row: 14}},
		},
		PlayerSpeed:        0.25,
		GhostSpeed:         0.2,
		MouthStep:          0.15,
		CenterEpsilon:      0.05,
		CollisionThreshold: 0.6,
		FrightenedDuration: 8 * time.Second,
		Scoring:            Scoring{Dot: 10, Power: 50, Ghost: 200},
		StartingLives:      3,
		RespawnPauseTicks:  60,
	}
}

// Validate checks the structural fields. Spawn passability is checked by New
// once the maze exists.
func (c Config) Validate() error {
	switch {
	case c.Cols <= 0 || c.Rows <= 0:
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Cols, c.Rows)
	case c.TunnelRow < 0 || c.TunnelRow >= c.Rows:
		return fmt.Errorf("%w: tunnel row %d outside [0,%d)", ErrInvalidConfig, c.TunnelRow, c.Rows)
	case c.PlayerSpeed <= 0 || c.PlayerSpeed >= 1:
		return fmt.Errorf("%w: player speed %v outside (0,1)", ErrInvalidConfig, c.PlayerSpeed)
	case c.GhostSpeed <= 0 || c.GhostSpeed >= 1:
		return fmt.Errorf("%w: ghost speed %v outside (0,1)", ErrInvalidConfig, c.GhostSpeed)
	case !OnCellLattice(c.GhostSpeed):
		return fmt.Errorf("%w: ghost speed %v does not divide a cell evenly", ErrInvalidConfig, c.GhostSpeed)
	case c.CollisionThreshold <= 0:
		return fmt.Errorf("%w: collision threshold must be positive", ErrInvalidConfig)
	case c.CenterEpsilon <= 0:
		return fmt.Errorf("%w: centre epsilon must be positive", ErrInvalidConfig)
	case c.StartingLives <= 0:
		return fmt.Errorf("%w: starting lives must be positive", ErrInvalidConfig)
	case c.RespawnPauseTicks < 0:
		return fmt.Errorf("%w: respawn pause must not be negative", ErrInvalidConfig)
	case len(c.Ghosts) != GhostCount:
		return fmt.Errorf("%w: need exactly %d ghosts, got %d", ErrInvalidConfig, GhostCount, len(c.Ghosts))
	}
	return nil
}

// latticeTolerance bounds how far a cell's worth of ghost steps may end from
// the next centre.
const latticeTolerance = 1e-9

// OnCellLattice reports whether a whole number of steps of the given speed
// covers exactly one cell. Ghosts only turn at cell centres, so their speed
// must land on every centre they pass.
func OnCellLattice(speed float64) bool {
	if speed <= 0 {
		return false
	}
	n := math.Round(1 / speed)
	return n >= 1 && math.Abs(n*speed-1) < latticeTolerance
}

func (c Config) withDefaults() Config {
	if c.Clock == nil {
		c.Clock = time.Now
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(c.Seed))
	}
	if c.Policy == nil {
		c.Policy = GreedyPolicy{Rand: c.Rand}
	}
	if c.Layout == nil {
		c.Layout = DefaultLayout()
	}
	return c
}
