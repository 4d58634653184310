package engine

// State is the game state machine position.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateLevelComplete
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateLevelComplete:
		return "level_complete"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Terminal reports whether the simulation is frozen waiting for a command.
func (s State) Terminal() bool {
	return s == StateLevelComplete || s == StateGameOver
}

// EventKind classifies what happened during a tick.
type EventKind int

const (
	EventDotEaten EventKind = iota + 1
	EventPowerPellet
	EventGhostEaten
	EventLifeLost
	EventLevelComplete
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventDotEaten:
		return "dot_eaten"
	case EventPowerPellet:
		return "power_pellet"
	case EventGhostEaten:
		return "ghost_eaten"
	case EventLifeLost:
		return "life_lost"
	case EventLevelComplete:
		return "level_complete"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is one scoring or state change produced by a tick.
type Event struct {
	Kind    EventKind
	Cell    Cell // where it happened
	GhostID int  // EventGhostEaten and EventLifeLost only
	Points  int
}

// TickResult reports the events of one tick and the state after it.
type TickResult struct {
	State  State
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r TickResult) Has(kind EventKind) bool {
	for _, ev := range r.Events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

func (r *TickResult) add(ev Event) {
	r.Events = append(r.Events, ev)
}
