package engine

import "math"

// canEnter reports whether an agent may move to p. Passability is decided by
// the cell containing the destination point.
func (e *Engine) canEnter(p Position) bool {
	c := p.Floor()
	return e.maze.IsPassable(c.Col, c.Row)
}

// wrap teleports the player when it leaves the grid through the tunnel row,
// landing half a cell inside the opposite edge. The check uses the agent's
// own rounded row.
func (e *Engine) wrap(p Position) Position {
	if p.Cell().Row != e.maze.TunnelRow() {
		return p
	}
	cols := float64(e.maze.Cols())
	switch {
	case p.X < 0:
		p.X = cols - 0.5
	case p.X >= cols:
		p.X = 0.5
	}
	return p
}

// wrapGhost teleports a ghost through the tunnel by a whole maze width, so its
// offset from the cell centres is kept and it still meets every centre.
func (e *Engine) wrapGhost(p Position) Position {
	if p.Cell().Row != e.maze.TunnelRow() {
		return p
	}
	cols := float64(e.maze.Cols())
	switch {
	case p.X < 0:
		p.X += cols
	case p.X >= cols:
		p.X -= cols
	}
	return p
}

// movePlayer tries the queued direction first, then the current one.
// A blocked player stays put for this tick.
func (e *Engine) movePlayer() {
	p := &e.player
	for _, d := range [2]Direction{p.NextDir, p.Dir} {
		next := p.Pos.Step(d, e.cfg.PlayerSpeed)
		if e.canEnter(next) {
			p.Pos = next
			p.Dir = d
			break
		}
	}

	p.Phase = math.Mod(p.Phase+e.cfg.MouthStep, 1)
	p.Pos = e.wrap(p.Pos)
}

// moveGhost re-decides the heading at cell centres or when blocked, then
// steps along it if possible.
func (e *Engine) moveGhost(g *Ghost, frightened bool) {
	step := e.cfg.GhostSpeed
	blocked := !e.canEnter(g.Pos.Step(g.Dir, step))

	if blocked || g.Pos.NearCenter(e.cfg.CenterEpsilon) {
		g.Dir = e.policy.Choose(DecisionView{
			Grid:       e.maze,
			From:       g.Pos.Cell(),
			Current:    g.Dir,
			Target:     e.player.Pos,
			Frightened: frightened,
		})
	}

	if next := g.Pos.Step(g.Dir, step); e.canEnter(next) {
		g.Pos = e.wrapGhost(next)
	}
}
