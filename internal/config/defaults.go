package config

import (
	_ "embed"
)

//go:embed defaults/mazechase.yaml
var defaultMazeChaseYAML []byte

// DefaultMazeChaseConfig returns the default Maze Chase configuration.
// It must stay in sync with defaults/mazechase.yaml.
func DefaultMazeChaseConfig() MazeChaseConfig {
	return MazeChaseConfig{
		Maze: MazeChaseMaze{
			Cols:      28,
			Rows:      31,
			TunnelRow: 12,
			TileSize:  2,
		},
		Player: MazeChasePlayer{
			Spawn:     GridCell{Col: 14, Row: 24},
			Speed:     0.25,
			MouthStep: 0.15,
		},
		Ghosts: MazeChaseGhosts{
			Speed:         0.2,
			CenterEpsilon: 0.05,
			FrightenedMS:  8000,
			Roster: []MazeChaseGhost{
				{Name: "blinky", Color: "#ff0000", Spawn: GridCell{Col: 10, Row: 14}},
				{Name: "pinky", Color: "#ffb8ff", Spawn: GridCell{Col: 11, Row: 14}},
				{Name: "inky", Color: "#00ffff", Spawn: GridCell{Col: 12, Row: 14}},
				{Name: "clyde", Color: "#ffb852", Spawn: GridCell{Col: 15, Row: 14}},
			},
		},
		Gameplay: MazeChaseGameplay{
			Lives:              3,
			CollisionThreshold: 0.6,
			RespawnPauseTicks:  60,
		},
		Scoring: MazeChaseScoring{
			Dot:   10,
			Power: 50,
			Ghost: 200,
		},
	}
}
