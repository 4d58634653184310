// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// MazeChaseConfig contains all configuration for the Maze Chase game.
type MazeChaseConfig struct {
	Maze     MazeChaseMaze     `yaml:"maze"`
	Player   MazeChasePlayer   `yaml:"player"`
	Ghosts   MazeChaseGhosts   `yaml:"ghosts"`
	Gameplay MazeChaseGameplay `yaml:"gameplay"`
	Scoring  MazeChaseScoring  `yaml:"scoring"`
}

// MazeChaseMaze defines the grid. An empty Layout selects the built-in maze.
type MazeChaseMaze struct {
	Cols      int      `yaml:"cols"`
	Rows      int      `yaml:"rows"`
	TunnelRow int      `yaml:"tunnel_row"`
	TileSize  int      `yaml:"tile_size"` // screen columns per cell
	Layout    []string `yaml:"layout,omitempty"`
}

// GridCell is a (col, row) pair in YAML.
type GridCell struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// MazeChasePlayer defines player parameters.
type MazeChasePlayer struct {
	Spawn     GridCell `yaml:"spawn"`
	Speed     float64  `yaml:"speed"`      // cells per tick
	MouthStep float64  `yaml:"mouth_step"` // animation phase per tick
}

// MazeChaseGhosts defines the ghost roster and shared movement parameters.
type MazeChaseGhosts struct {
	Speed         float64          `yaml:"speed"`
	CenterEpsilon float64          `yaml:"center_epsilon"`
	FrightenedMS  int              `yaml:"frightened_ms"`
	Roster        []MazeChaseGhost `yaml:"roster"`
}

// MazeChaseGhost is one ghost entry.
type MazeChaseGhost struct {
	Name  string   `yaml:"name"`
	Color string   `yaml:"color"`
	Spawn GridCell `yaml:"spawn"`
}

// MazeChaseGameplay defines lives and contact rules.
type MazeChaseGameplay struct {
	Lives              int     `yaml:"lives"`
	CollisionThreshold float64 `yaml:"collision_threshold"`
	RespawnPauseTicks  int     `yaml:"respawn_pause_ticks"`
}

// MazeChaseScoring defines points per event.
type MazeChaseScoring struct {
	Dot   int `yaml:"dot"`
	Power int `yaml:"power"`
	Ghost int `yaml:"ghost"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
