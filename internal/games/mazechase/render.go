package mazechase

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/engine"
)

const (
	hudHeight   = 2 // status line + separator
	minViewRows = 11
)

// Colors from the classic palette.
var (
	wallColor       = core.ColorFromHex("#2121de", core.ColorBlue)
	dotColor        = core.ColorFromHex("#ffb897", core.ColorPeach)
	powerColor      = core.ColorFromHex("#ffffff", core.ColorBrightWhite)
	playerColor     = core.ColorFromHex("#ffff00", core.ColorBrightYellow)
	frightenedColor = core.ColorFromHex("#2121ff", core.ColorBrightBlue)
)

const (
	wallRune  = '█'
	dotRune   = '·'
	powerRune = '●'
	ghostRune = 'Ѧ'
)

// viewport maps maze coordinates onto the screen. When the terminal is
// shorter than the maze, rows scroll to keep the player in view.
type viewport struct {
	x0, y0 int // screen position of maze cell (0, row0)
	row0   int // first visible maze row
	rows   int // visible maze rows
	tile   int // screen columns per cell
}

func (v viewport) screenX(x float64) int {
	return v.x0 + int(math.Floor(x*float64(v.tile)+0.5))
}

func (v viewport) screenY(y float64) (int, bool) {
	row := int(math.Floor(y+0.5)) - v.row0
	return v.y0 + row, row >= 0 && row < v.rows
}

func (g *Game) tileSize() int {
	if g.cfg.Maze.TileSize < 1 {
		return 1
	}
	return g.cfg.Maze.TileSize
}

// Resize adapts to a new terminal size without restarting the run.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.checkScreen()
}

func (g *Game) checkScreen() {
	if g.eng == nil {
		return
	}
	needW := g.eng.Maze().Cols() * g.tileSize()
	g.tooSmall = g.runtime.ScreenW < needW || g.runtime.ScreenH < hudHeight+minViewRows
}

func (g *Game) viewport(dst *core.Screen, snap engine.Snapshot) viewport {
	tile := g.tileSize()
	rows := core.Min(snap.Rows, dst.Height()-hudHeight)
	playerRow := int(math.Floor(snap.Player.Y + 0.5))
	return viewport{
		x0:   (dst.Width() - snap.Cols*tile) / 2,
		y0:   hudHeight,
		row0: core.Clamp(playerRow-rows/2, 0, snap.Rows-rows),
		rows: rows,
		tile: tile,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.eng == nil {
		renderOverlay(dst, "Cannot start Maze Chase", errorLine(g.err))
		return
	}

	snap := g.eng.Snapshot()
	g.renderHUD(dst, snap)

	if g.tooSmall {
		needW := snap.Cols * g.tileSize()
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need at least %dx%d", needW, hudHeight+minViewRows))
		return
	}

	v := g.viewport(dst, snap)
	renderMaze(dst, snap, v)
	renderGhosts(dst, snap, v)
	renderPlayer(dst, snap.Player, v)

	switch {
	case snap.State == engine.StateIdle:
		renderOverlay(dst, "MAZE CHASE", "Press Enter to start")
	case snap.State == engine.StateLevelComplete:
		renderOverlay(dst, fmt.Sprintf("Level %d complete!", snap.Level),
			fmt.Sprintf("Score: %d  Press Enter for next level", snap.Score))
	case snap.State == engine.StateGameOver:
		renderOverlay(dst, "Game Over",
			fmt.Sprintf("Final score: %d  Press R or Enter to restart", snap.Score))
	case g.paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	case snap.RespawnPause > 0:
		dst.DrawTextCentered(v.y0+v.rows/2, " READY! ", playerColor)
	}
}

func (g *Game) renderHUD(dst *core.Screen, snap engine.Snapshot) {
	hud := fmt.Sprintf(" Maze Chase  Score: %d  Level: %d  Lives: ", snap.Score, snap.Level)
	dst.DrawText(0, 0, hud)

	x := len(hud)
	lives := strings.Repeat(string(powerRune), snap.Lives)
	dst.DrawTextColored(x, 0, lives, playerColor)
	x += snap.Lives + 2

	if snap.Frightened {
		dst.DrawTextColored(x, 0, "POWER!", frightenedColor)
	}

	for i := range dst.Width() {
		dst.Set(i, 1, '─')
	}
}

func renderMaze(dst *core.Screen, snap engine.Snapshot, v viewport) {
	for i := 0; i < v.rows; i++ {
		row := v.row0 + i
		y := v.y0 + i
		for col, tile := range snap.Cells[row] {
			x := v.x0 + col*v.tile
			switch tile {
			case engine.TileWall:
				for dx := 0; dx < v.tile; dx++ {
					dst.SetColored(x+dx, y, wallRune, wallColor)
				}
			case engine.TileDot:
				dst.SetColored(x, y, dotRune, dotColor)
			case engine.TilePower:
				dst.SetColored(x, y, powerRune, powerColor)
			}
		}
	}
}

func renderGhosts(dst *core.Screen, snap engine.Snapshot, v viewport) {
	for _, gh := range snap.Ghosts {
		y, ok := v.screenY(gh.Y)
		if !ok {
			continue
		}
		color := core.ColorFromHex(gh.Color, core.ColorWhite)
		if gh.Frightened {
			color = frightenedColor
		}
		dst.SetColored(v.screenX(gh.X), y, ghostRune, color)
	}
}

// playerRune returns the glyph for the player: a mouth opening towards the
// heading during the first half of the animation cycle.
func playerRune(p engine.PlayerView) rune {
	if p.Phase >= 0.5 {
		return '●'
	}
	switch p.Dir {
	case engine.DirUp:
		return 'ᗢ'
	case engine.DirDown:
		return 'ᗣ'
	case engine.DirLeft:
		return 'ᗤ'
	default:
		return 'ᗧ'
	}
}

func renderPlayer(dst *core.Screen, p engine.PlayerView, v viewport) {
	y, ok := v.screenY(p.Y)
	if !ok {
		return
	}
	dst.SetColored(v.screenX(p.X), y, playerRune(p), playerColor)
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w := core.Max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.CenteredRect(dst.Bounds(), w, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}

func errorLine(err error) string {
	if err == nil {
		return "unknown error"
	}
	msg := []rune(err.Error())
	if len(msg) > 60 {
		return string(msg[:57]) + "..."
	}
	return string(msg)
}
