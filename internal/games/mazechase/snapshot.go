package mazechase

import "github.com/vovakirdan/mazechase/internal/games/mazechase/engine"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	engine.Snapshot
	Paused   bool
	TooSmall bool
}

// Snapshot returns the current game snapshot. It is the zero value when the
// engine could not be built.
func (g *Game) Snapshot() Snapshot {
	if g.eng == nil {
		return Snapshot{}
	}
	return Snapshot{
		Snapshot: g.eng.Snapshot(),
		Paused:   g.paused,
		TooSmall: g.tooSmall,
	}
}
