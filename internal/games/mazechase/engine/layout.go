package engine

// Layout symbols.
const (
	SymbolWall  = '#'
	SymbolDot   = '.'
	SymbolOpen  = ' '
	SymbolPower = 'o'
)

// Default grid geometry for the compiled-in maze.
const (
	DefaultCols      = 28
	DefaultRows      = 31
	DefaultTunnelRow = 12
)

// defaultLayout is the single pre-authored level. It is shorter than
// DefaultRows on purpose; NewMaze pads the missing rows with walls.
var defaultLayout = []string{
	"############################",
	"#............##............#",
	"#.##########.##.##########.#",
	"#.##...................###.#",
	"#.#.########.##.#######.##.#",
	"#..........................#",
	"#.######.#########.#######.#",
	"#.######.#########.#######.#",
	"#............##............#",
	"#######.####.##.####.#######",
	"      #.#..........##.#     ",
	"#######.#.###  ###.##.######",
	"       ...###  ###...       ",
	"#######.#.########.##.######",
	"#............##............#",
	"#.######.#########.#######.#",
	"#.######.#########.#######.#",
	"#....#...............#.....#",
	"#.##.##.####.##.####.##.##.#",
	"#............##............#",
	"#.##########.##.##########.#",
	"#.##...................###.#",
	"#...####.#########.###.....#",
	"#.#.####.#########.##.####.#",
	"#..........................#",
	"#.##########.##.##########.#",
	"#.##...................###.#",
	"#..........................#",
	"############################",
}

// DefaultLayout returns a copy of the compiled-in maze rows.
func DefaultLayout() []string {
	rows := make([]string, len(defaultLayout))
	copy(rows, defaultLayout)
	return rows
}
