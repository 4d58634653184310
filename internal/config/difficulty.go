package config

import (
	"fmt"
	"math"
	"strings"
)

// ParseDifficultyPreset converts a flag value to a preset.
// The empty string selects DifficultyNormal.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// presetScaling holds the multipliers a preset applies on top of the loaded
// configuration.
type presetScaling struct {
	ghostSpeed float64
	frightened float64
	lives      int // absolute; 0 keeps the configured value
}

// With the default 0.2 ghost speed, easy gives 0.125 and hard 0.25.
var presets = map[DifficultyPreset]presetScaling{
	DifficultyEasy:   {ghostSpeed: 0.625, frightened: 1.25, lives: 5},
	DifficultyNormal: {ghostSpeed: 1, frightened: 1},
	DifficultyHard:   {ghostSpeed: 1.25, frightened: 0.625, lives: 2},
}

// minStepsPerCell caps scaled ghost speed at half a cell per tick.
const minStepsPerCell = 2

// alignSpeed snaps a ghost speed to the nearest 1/n cells per tick, so ghosts
// keep landing on cell centres where they turn.
func alignSpeed(speed float64) float64 {
	if speed <= 0 {
		return speed
	}
	n := math.Max(math.Round(1/speed), minStepsPerCell)
	return 1 / n
}

// ApplyMazeChasePreset modifies the config based on a difficulty preset.
// Unknown presets leave cfg untouched.
func ApplyMazeChasePreset(cfg *MazeChaseConfig, preset DifficultyPreset) {
	p, ok := presets[preset]
	if !ok {
		return
	}

	if p.ghostSpeed != 1 {
		cfg.Ghosts.Speed = alignSpeed(cfg.Ghosts.Speed * p.ghostSpeed)
	}
	cfg.Ghosts.FrightenedMS = int(math.Round(float64(cfg.Ghosts.FrightenedMS) * p.frightened))
	if p.lives > 0 {
		cfg.Gameplay.Lives = p.lives
	}
}
