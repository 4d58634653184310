package engine

// Tile is the content of one maze cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
	TileDot
	TilePower
)

func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileDot:
		return "dot"
	case TilePower:
		return "power"
	default:
		return "unknown"
	}
}

// Consumable reports whether the tile is a dot or a power pellet.
func (t Tile) Consumable() bool {
	return t == TileDot || t == TilePower
}

// Consumption describes the outcome of ConsumeAt.
// The zero value means nothing was eaten.
type Consumption struct {
	Tile       Tile // TileDot or TilePower when something was eaten
	Points     int
	Frightened bool // a power pellet asks for frightened mode
}

// Consumed reports whether the call ate anything.
func (c Consumption) Consumed() bool {
	return c.Tile.Consumable()
}

// Maze is the cell grid plus its consumable counter.
// Cells are stored in row-major order: index = row*cols + col.
type Maze struct {
	cols      int
	rows      int
	tunnelRow int
	cells     []Tile
	dotsLeft  int
	scoring   Scoring
}

// NewMaze parses layout rows into a cols×rows grid.
//
// Short rows and missing rows are padded with walls, extra symbols are
// dropped. Every open cell becomes a dot; the four corner-adjacent cells are
// promoted to power pellets when they hold a dot.
func NewMaze(cols, rows, tunnelRow int, layout []string, scoring Scoring) *Maze {
	m := &Maze{
		cols:      cols,
		rows:      rows,
		tunnelRow: tunnelRow,
		cells:     make([]Tile, cols*rows),
		scoring:   scoring,
	}

	for row := 0; row < rows; row++ {
		var symbols []rune
		if row < len(layout) {
			symbols = []rune(layout[row])
		}
		for col := 0; col < cols; col++ {
			tile := TileWall
			if col < len(symbols) {
				tile = tileFromSymbol(symbols[col])
			}
			m.cells[m.index(col, row)] = tile
		}
	}

	corners := [4][2]int{{1, 1}, {cols - 2, 1}, {1, rows - 2}, {cols - 2, rows - 2}}
	for _, c := range corners {
		if m.inBounds(c[0], c[1]) && m.cells[m.index(c[0], c[1])] == TileDot {
			m.cells[m.index(c[0], c[1])] = TilePower
		}
	}

	m.dotsLeft = m.CountConsumables()
	return m
}

func tileFromSymbol(r rune) Tile {
	switch r {
	case SymbolDot, SymbolOpen:
		return TileDot
	case SymbolPower:
		return TilePower
	default:
		return TileWall
	}
}

func (m *Maze) index(col, row int) int {
	return row*m.cols + col
}

func (m *Maze) inBounds(col, row int) bool {
	return col >= 0 && col < m.cols && row >= 0 && row < m.rows
}

// Cols returns the grid width.
func (m *Maze) Cols() int { return m.cols }

// Rows returns the grid height.
func (m *Maze) Rows() int { return m.rows }

// TunnelRow returns the row whose horizontal edges wrap.
func (m *Maze) TunnelRow() int { return m.tunnelRow }

// DotsLeft returns the number of dots and power pellets still on the board.
func (m *Maze) DotsLeft() int { return m.dotsLeft }

// TileAt returns the tile at (col, row).
//
// Rows outside the grid are walls. On the tunnel row, columns outside the
// grid are empty so agents can pass through the side tunnel; on every other
// row they are walls.
func (m *Maze) TileAt(col, row int) Tile {
	if row < 0 || row >= m.rows {
		return TileWall
	}
	if col < 0 || col >= m.cols {
		if row == m.tunnelRow {
			return TileEmpty
		}
		return TileWall
	}
	return m.cells[m.index(col, row)]
}

// IsPassable reports whether an agent may occupy (col, row).
func (m *Maze) IsPassable(col, row int) bool {
	return m.TileAt(col, row) != TileWall
}

// ConsumeAt eats the dot or power pellet at (col, row), if any.
// Calling it on an empty, wall or out-of-grid cell is a no-op.
func (m *Maze) ConsumeAt(col, row int) Consumption {
	if !m.inBounds(col, row) {
		return Consumption{}
	}
	i := m.index(col, row)
	switch m.cells[i] {
	case TileDot:
		m.cells[i] = TileEmpty
		m.dotsLeft--
		return Consumption{Tile: TileDot, Points: m.scoring.Dot}
	case TilePower:
		m.cells[i] = TileEmpty
		m.dotsLeft--
		return Consumption{Tile: TilePower, Points: m.scoring.Power, Frightened: true}
	}
	return Consumption{}
}

// CountConsumables recounts dots and power pellets from the grid itself.
func (m *Maze) CountConsumables() int {
	n := 0
	for _, t := range m.cells {
		if t.Consumable() {
			n++
		}
	}
	return n
}

// Cells returns a deep copy of the grid, indexed [row][col].
func (m *Maze) Cells() [][]Tile {
	out := make([][]Tile, m.rows)
	for row := range out {
		out[row] = make([]Tile, m.cols)
		copy(out[row], m.cells[row*m.cols:(row+1)*m.cols])
	}
	return out
}
