package engine

// Grid is the read-only maze view a Policy needs.
type Grid interface {
	IsPassable(col, row int) bool
}

// DecisionView is everything a ghost knows at a decision point.
type DecisionView struct {
	Grid       Grid
	From       Cell      // ghost position rounded to the nearest cell
	Current    Direction // heading kept when no move is possible
	Target     Position  // the player's continuous position
	Frightened bool
}

// Policy picks a ghost's next heading.
type Policy interface {
	Choose(v DecisionView) Direction
}

// GreedyPolicy is a one-step lookahead with no path search.
//
// In pursuit it takes the neighbour closest (manhattan) to the target, ties
// going to the earliest direction in up, right, down, left order. When
// frightened it picks a passable neighbour uniformly at random.
type GreedyPolicy struct {
	Rand Rand
}

// Choose implements Policy.
func (p GreedyPolicy) Choose(v DecisionView) Direction {
	options := Candidates(v.Grid, v.From)
	if len(options) == 0 {
		return v.Current
	}

	if v.Frightened {
		if p.Rand == nil {
			return options[0]
		}
		return options[p.Rand.Intn(len(options))]
	}

	best := options[0]
	bestDist := -1.0
	for _, d := range options {
		dist := v.From.Neighbor(d).Center().Manhattan(v.Target)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}

// Candidates lists the directions whose adjacent cell is passable, in
// enumeration order.
func Candidates(g Grid, from Cell) []Direction {
	out := make([]Direction, 0, 4)
	for _, d := range directionOrder {
		n := from.Neighbor(d)
		if g.IsPassable(n.Col, n.Row) {
			out = append(out, d)
		}
	}
	return out
}
