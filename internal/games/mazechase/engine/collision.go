package engine

// frightened reports whether ghosts are currently fleeing.
func (e *Engine) frightened() bool {
	return e.clock().Before(e.frightenedUntil)
}

// consumeUnderPlayer eats whatever lies in the player's nearest cell.
func (e *Engine) consumeUnderPlayer(res *TickResult) {
	cell := e.player.Pos.Cell()
	got := e.maze.ConsumeAt(cell.Col, cell.Row)
	if !got.Consumed() {
		return
	}

	e.score += got.Points
	kind := EventDotEaten
	if got.Frightened {
		kind = EventPowerPellet
		e.frightenedUntil = e.clock().Add(e.cfg.FrightenedDuration)
	}
	res.add(Event{Kind: kind, Cell: cell, Points: got.Points})
}

// checkGhostCollisions resolves player/ghost contact after ghosts moved.
//
// While frightened every touching ghost is eaten. Otherwise the first
// touching ghost costs a life and the scan stops: either the game is over or
// every agent has been sent back to spawn.
func (e *Engine) checkGhostCollisions(res *TickResult) {
	threshold := e.cfg.CollisionThreshold

	if e.frightened() {
		for i := range e.ghosts {
			g := &e.ghosts[i]
			if e.player.Pos.Manhattan(g.Pos) >= threshold {
				continue
			}
			at := g.Pos.Cell()
			g.respawn()
			e.score += e.cfg.Scoring.Ghost
			res.add(Event{Kind: EventGhostEaten, Cell: at, GhostID: g.ID, Points: e.cfg.Scoring.Ghost})
		}
		return
	}

	for i := range e.ghosts {
		g := &e.ghosts[i]
		if e.player.Pos.Manhattan(g.Pos) >= threshold {
			continue
		}
		e.loseLife(g, res)
		return
	}
}

func (e *Engine) loseLife(by *Ghost, res *TickResult) {
	e.lives--
	res.add(Event{Kind: EventLifeLost, Cell: e.player.Pos.Cell(), GhostID: by.ID})

	if e.lives <= 0 {
		e.lives = 0
		e.state = StateGameOver
		res.add(Event{Kind: EventGameOver, Cell: e.player.Pos.Cell()})
		return
	}

	e.resetAgents()
	e.respawnPause = e.cfg.RespawnPauseTicks
}
