package engine

import "math"

// Cell addresses one grid cell.
type Cell struct {
	Col int
	Row int
}

// Center returns the continuous position of the cell centre.
func (c Cell) Center() Position {
	return Position{X: float64(c.Col), Y: float64(c.Row)}
}

// Neighbor returns the adjacent cell in direction d.
func (c Cell) Neighbor(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{Col: c.Col + dx, Row: c.Row + dy}
}

// Position is a continuous location in cell units. Integer values are cell
// centres.
type Position struct {
	X float64
	Y float64
}

// Cell returns the nearest cell, rounding halves up (so -0.5 maps to 0).
func (p Position) Cell() Cell {
	return Cell{Col: roundHalfUp(p.X), Row: roundHalfUp(p.Y)}
}

// Floor returns the cell whose area contains the point.
func (p Position) Floor() Cell {
	return Cell{Col: int(math.Floor(p.X)), Row: int(math.Floor(p.Y))}
}

// Step returns the position moved dist cells along d.
func (p Position) Step(d Direction, dist float64) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + float64(dx)*dist, Y: p.Y + float64(dy)*dist}
}

// Manhattan returns |dx| + |dy| between two positions.
func (p Position) Manhattan(o Position) float64 {
	return math.Abs(p.X-o.X) + math.Abs(p.Y-o.Y)
}

// NearCenter reports whether p lies within eps of its rounded cell centre
// on both axes.
func (p Position) NearCenter(eps float64) bool {
	c := p.Cell()
	return math.Abs(p.X-float64(c.Col)) < eps && math.Abs(p.Y-float64(c.Row)) < eps
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Player is the agent steered by external input.
type Player struct {
	Pos     Position
	Dir     Direction
	NextDir Direction // queued; taken at the first passable opportunity
	Phase   float64   // mouth animation phase in [0,1)
}

// Ghost is a pursuing agent.
type Ghost struct {
	ID    int
	Name  string
	Color string
	Pos   Position
	Dir   Direction
	Spawn Cell
}

func newPlayer(spawn Cell) Player {
	return Player{Pos: spawn.Center(), Dir: DirUp, NextDir: DirUp}
}

func newGhosts(specs []GhostSpec) []Ghost {
	ghosts := make([]Ghost, len(specs))
	for i, s := range specs {
		ghosts[i] = Ghost{
			ID:    i,
			Name:  s.Name,
			Color: s.Color,
			Pos:   s.Spawn.Center(),
			Dir:   DirUp,
			Spawn: s.Spawn,
		}
	}
	return ghosts
}

// respawn puts the ghost back on its spawn cell facing up.
func (g *Ghost) respawn() {
	g.Pos = g.Spawn.Center()
	g.Dir = DirUp
}
