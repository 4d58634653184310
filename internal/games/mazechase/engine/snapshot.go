package engine

// PlayerView is the player part of a Snapshot.
type PlayerView struct {
	X, Y    float64
	Dir     Direction
	NextDir Direction
	Phase   float64
}

// GhostView is one ghost in a Snapshot.
type GhostView struct {
	ID         int
	Name       string
	Color      string
	X, Y       float64
	Dir        Direction
	Frightened bool // draw as vulnerable
}

// Snapshot is a read-only copy of everything a presentation layer needs.
// Mutating it never affects the engine.
type Snapshot struct {
	Tick         uint64
	State        State
	Score        int
	Lives        int
	Level        int
	DotsLeft     int
	Frightened   bool
	RespawnPause int
	Cols         int
	Rows         int
	TunnelRow    int
	Cells        [][]Tile // [row][col]
	Player       PlayerView
	Ghosts       []GhostView
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	frightened := e.frightened()

	ghosts := make([]GhostView, len(e.ghosts))
	for i, g := range e.ghosts {
		ghosts[i] = GhostView{
			ID:         g.ID,
			Name:       g.Name,
			Color:      g.Color,
			X:          g.Pos.X,
			Y:          g.Pos.Y,
			Dir:        g.Dir,
			Frightened: frightened,
		}
	}

	return Snapshot{
		Tick:         e.tick,
		State:        e.state,
		Score:        e.score,
		Lives:        e.lives,
		Level:        e.level,
		DotsLeft:     e.maze.DotsLeft(),
		Frightened:   frightened,
		RespawnPause: e.respawnPause,
		Cols:         e.maze.Cols(),
		Rows:         e.maze.Rows(),
		TunnelRow:    e.maze.TunnelRow(),
		Cells:        e.maze.Cells(),
		Player: PlayerView{
			X:       e.player.Pos.X,
			Y:       e.player.Pos.Y,
			Dir:     e.player.Dir,
			NextDir: e.player.NextDir,
			Phase:   e.player.Phase,
		},
		Ghosts: ghosts,
	}
}
