package engine

import "testing"

// openGrid is passable everywhere except the listed cells.
type openGrid map[Cell]bool

func (g openGrid) IsPassable(col, row int) bool {
	return !g[Cell{Col: col, Row: row}]
}

func TestCandidatesOrder(t *testing.T) {
	g := openGrid{{Col: 5, Row: 4}: true}
	got := Candidates(g, Cell{Col: 5, Row: 5})
	want := []Direction{DirRight, DirDown, DirLeft}
	if len(got) != len(want) {
		t.Fatalf("Candidates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Candidates[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGreedyPursuit(t *testing.T) {
	p := GreedyPolicy{}
	from := Cell{Col: 5, Row: 5}

	tests := []struct {
		name   string
		grid   openGrid
		target Position
		want   Direction
	}{
		{"target right", openGrid{}, Position{X: 9, Y: 5}, DirRight},
		{"target below", openGrid{}, Position{X: 5, Y: 9}, DirDown},
		{"target left", openGrid{}, Position{X: 1, Y: 5}, DirLeft},
		{"tie goes to up", openGrid{}, Position{X: 5, Y: 5}, DirUp},
		{"tie right before down", openGrid{}, Position{X: 7, Y: 7}, DirRight},
		{"best blocked", openGrid{{Col: 6, Row: 5}: true}, Position{X: 9, Y: 5}, DirUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Choose(DecisionView{Grid: tt.grid, From: from, Current: DirLeft, Target: tt.target})
			if got != tt.want {
				t.Errorf("Choose = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGreedyPursuitIsDeterministic(t *testing.T) {
	m := NewMaze(DefaultCols, DefaultRows, DefaultTunnelRow, DefaultLayout(), testScoring)
	v := DecisionView{Grid: m, From: Cell{Col: 12, Row: 14}, Current: DirUp, Target: Position{X: 14, Y: 24}}
	first := GreedyPolicy{}.Choose(v)
	for i := 0; i < 50; i++ {
		if got := (GreedyPolicy{}).Choose(v); got != first {
			t.Fatalf("call %d: Choose = %v, first was %v", i, got, first)
		}
	}
}

func TestFrightenedUsesRand(t *testing.T) {
	r := &seqRand{vals: []int{2, 0}}
	p := GreedyPolicy{Rand: r}
	v := DecisionView{Grid: openGrid{}, From: Cell{Col: 5, Row: 5}, Current: DirUp, Target: Position{X: 9, Y: 5}, Frightened: true}

	if got := p.Choose(v); got != DirDown {
		t.Errorf("first flee = %v, want down", got)
	}
	if got := p.Choose(v); got != DirUp {
		t.Errorf("second flee = %v, want up", got)
	}
	if r.calls != 2 {
		t.Errorf("Rand called %d times, want 2", r.calls)
	}
}

func TestPursuitIgnoresRand(t *testing.T) {
	r := &seqRand{vals: []int{3}}
	p := GreedyPolicy{Rand: r}
	p.Choose(DecisionView{Grid: openGrid{}, From: Cell{Col: 5, Row: 5}, Target: Position{X: 9, Y: 5}})
	if r.calls != 0 {
		t.Errorf("pursuit consumed %d random values", r.calls)
	}
}

func TestNoCandidatesKeepsHeading(t *testing.T) {
	from := Cell{Col: 5, Row: 5}
	g := openGrid{}
	for _, d := range Directions() {
		g[from.Neighbor(d)] = true
	}
	for _, frightened := range []bool{false, true} {
		got := GreedyPolicy{Rand: &seqRand{vals: []int{1}}}.Choose(DecisionView{
			Grid: g, From: from, Current: DirLeft, Frightened: frightened,
		})
		if got != DirLeft {
			t.Errorf("frightened=%v: Choose = %v, want left", frightened, got)
		}
	}
}
