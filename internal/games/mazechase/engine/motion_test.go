package engine

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestPositionCellRoundsHalfUp(t *testing.T) {
	tests := []struct {
		x, y float64
		want Cell
	}{
		{3.49, 2, Cell{3, 2}},
		{3.5, 2, Cell{4, 2}},
		{-0.5, 0, Cell{0, 0}},
		{-0.51, 0, Cell{-1, 0}},
		{2, 6.75, Cell{2, 7}},
	}
	for _, tt := range tests {
		if got := (Position{X: tt.x, Y: tt.y}).Cell(); got != tt.want {
			t.Errorf("Position{%v,%v}.Cell() = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPlayerTakesQueuedTurnWhenPassable(t *testing.T) {
	clk := newFakeClock()
	cfg := testConfig(clk)
	cfg.PlayerSpawn = Cell{Col: 6, Row: 3}
	e := newRunningEngine(t, cfg)
	e.player.Dir = DirRight
	e.SetPlayerIntendedDirection(DirUp)

	// Up is blocked until the player reaches column 7.
	for i := 0; i < 4; i++ {
		e.Tick()
		if e.player.Dir != DirRight {
			t.Fatalf("tick %d: turned %v before the opening", i+1, e.player.Dir)
		}
	}
	if !near(e.player.Pos.X, 7) || !near(e.player.Pos.Y, 3) {
		t.Fatalf("expected player at (7,3), got %+v", e.player.Pos)
	}

	e.Tick()
	if e.player.Dir != DirUp {
		t.Errorf("Dir = %v, want up", e.player.Dir)
	}
	if !near(e.player.Pos.Y, 2.75) {
		t.Errorf("Y = %v, want 2.75", e.player.Pos.Y)
	}
}

func TestBlockedPlayerStaysPut(t *testing.T) {
	clk := newFakeClock()
	e := newRunningEngine(t, testConfig(clk))
	start := e.player.Pos

	// Spawn (3,3) has a wall above and the player faces up.
	for i := 0; i < 5; i++ {
		e.Tick()
	}
	if e.player.Pos != start {
		t.Errorf("blocked player moved from %+v to %+v", start, e.player.Pos)
	}
}

func TestMouthPhaseWraps(t *testing.T) {
	clk := newFakeClock()
	e := newRunningEngine(t, testConfig(clk))
	for i := 0; i < 20; i++ {
		e.Tick()
		if e.player.Phase < 0 || e.player.Phase >= 1 {
			t.Fatalf("tick %d: phase %v outside [0,1)", i+1, e.player.Phase)
		}
	}
}

func tunnelEngine() *Engine {
	cfg := DefaultConfig()
	cfg.Cols, cfg.Rows, cfg.TunnelRow = 5, 3, 1
	return &Engine{
		cfg:  cfg,
		maze: NewMaze(5, 3, 1, []string{"#####", ".....", "#####"}, cfg.Scoring),
	}
}

func TestPlayerWrapsThroughTunnel(t *testing.T) {
	e := tunnelEngine()

	e.player = Player{Pos: Position{X: 0, Y: 1}, Dir: DirLeft, NextDir: DirLeft}
	e.movePlayer()
	if !near(e.player.Pos.X, 4.5) {
		t.Errorf("left exit: X = %v, want 4.5", e.player.Pos.X)
	}
	e.movePlayer()
	if !near(e.player.Pos.X, 4.25) {
		t.Errorf("after re-entry: X = %v, want 4.25", e.player.Pos.X)
	}

	e.player = Player{Pos: Position{X: 4.75, Y: 1}, Dir: DirRight, NextDir: DirRight}
	e.movePlayer()
	if !near(e.player.Pos.X, 0.5) {
		t.Errorf("right exit: X = %v, want 0.5", e.player.Pos.X)
	}
}

func TestWrapOnlyOnTunnelRow(t *testing.T) {
	e := tunnelEngine()
	p := e.wrap(Position{X: -0.25, Y: 0})
	if p.X != -0.25 {
		t.Errorf("wrap moved an agent off the tunnel row: %+v", p)
	}
}

func TestGhostWrapsThroughTunnel(t *testing.T) {
	e := tunnelEngine()
	e.policy = fixedPolicy(DirLeft)
	g := Ghost{Pos: Position{X: 0, Y: 1}, Dir: DirLeft}

	e.moveGhost(&g, false)
	if !near(g.Pos.X, 4.8) {
		t.Fatalf("left exit: X = %v, want 4.8", g.Pos.X)
	}
	for range 4 {
		e.moveGhost(&g, false)
	}
	if !near(g.Pos.X, 4) || !g.Pos.NearCenter(e.cfg.CenterEpsilon) {
		t.Errorf("ghost X = %v after re-entry, want the centre of column 4", g.Pos.X)
	}

	e.policy = fixedPolicy(DirRight)
	g = Ghost{Pos: Position{X: 4, Y: 1}, Dir: DirRight}
	for range 5 {
		e.moveGhost(&g, false)
	}
	if !near(g.Pos.X, 0) {
		t.Errorf("right exit: X = %v, want 0", g.Pos.X)
	}
}

func TestGhostDecidesOnlyAtCentreOrWhenBlocked(t *testing.T) {
	e := tunnelEngine()
	p := &countingPolicy{}
	e.policy = p
	g := Ghost{Pos: Position{X: 2, Y: 1}, Dir: DirRight}

	e.moveGhost(&g, false) // at centre
	if p.calls != 1 {
		t.Fatalf("calls = %d after centre tick, want 1", p.calls)
	}
	e.moveGhost(&g, false) // x = 2.2, between centres
	if p.calls != 1 {
		t.Errorf("calls = %d between centres, want 1", p.calls)
	}
	if !near(g.Pos.X, 2.4) {
		t.Errorf("X = %v, want 2.4", g.Pos.X)
	}
}
