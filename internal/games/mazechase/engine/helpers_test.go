package engine

import (
	"testing"
	"time"
)

// testLayout is a ring corridor with two vertical links:
//
//	#########
//	#.......#
//	#.#####.#
//	#.......#
//	#########
var testLayout = []string{
	"#########",
	"#.......#",
	"#.#####.#",
	"#.......#",
	"#########",
}

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// seqRand replays a fixed sequence of values, modulo n.
type seqRand struct {
	vals  []int
	i     int
	calls int
}

func (r *seqRand) Intn(n int) int {
	r.calls++
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

// fixedPolicy always answers the same direction.
type fixedPolicy Direction

func (p fixedPolicy) Choose(DecisionView) Direction { return Direction(p) }

// countingPolicy records how often ghosts asked for a decision.
type countingPolicy struct {
	calls int
}

func (p *countingPolicy) Choose(v DecisionView) Direction {
	p.calls++
	return v.Current
}

// testConfig parks the ghosts under the top wall with a policy that keeps
// them facing it, so they never move unless a test places them.
func testConfig(clk *fakeClock) Config {
	cfg := DefaultConfig()
	cfg.Cols, cfg.Rows, cfg.TunnelRow = 9, 5, 2
	cfg.Layout = testLayout
	cfg.PlayerSpawn = Cell{Col: 3, Row: 3}
	cfg.Ghosts = []GhostSpec{
		{Name: "a", Color: "#ff0000", Spawn: Cell{Col: 3, Row: 1}},
		{Name: "b", Color: "#ffb8ff", Spawn: Cell{Col: 4, Row: 1}},
		{Name: "c", Color: "#00ffff", Spawn: Cell{Col: 5, Row: 1}},
		{Name: "d", Color: "#ffb852", Spawn: Cell{Col: 6, Row: 1}},
	}
	cfg.RespawnPauseTicks = 0
	cfg.Policy = fixedPolicy(DirUp)
	cfg.Clock = clk.Now
	return cfg
}

// newRunningEngine builds and starts an engine, then clears the tile under
// the player so the first tick eats nothing.
func newRunningEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.Start()
	e.maze.set(cfg.PlayerSpawn.Col, cfg.PlayerSpawn.Row, TileEmpty)
	return e
}

// set overwrites one tile and recounts the consumables.
func (m *Maze) set(col, row int, t Tile) {
	m.cells[m.index(col, row)] = t
	m.dotsLeft = m.CountConsumables()
}

// clear empties every consumable tile.
func (m *Maze) clear() {
	for i, t := range m.cells {
		if t.Consumable() {
			m.cells[i] = TileEmpty
		}
	}
	m.dotsLeft = 0
}
