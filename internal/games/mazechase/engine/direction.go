package engine

import "strings"

// Direction is one of the four cardinal headings an agent can face.
// The numeric order is also the tie-break order used by ghost pursuit.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// directionOrder is the fixed enumeration order: up, right, down, left.
var directionOrder = [4]Direction{DirUp, DirRight, DirDown, DirLeft}

// Directions returns all cardinal directions in enumeration order.
func Directions() [4]Direction {
	return directionOrder
}

// Valid reports whether d is one of the four cardinal values.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirLeft
}

// Delta returns the unit grid offset for the direction.
// Invalid directions return (0, 0).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// ParseDirection converts a name ("up", "r", "Left", ...) to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, true
	case "right", "r":
		return DirRight, true
	case "down", "d":
		return DirDown, true
	case "left", "l":
		return DirLeft, true
	}
	return DirUp, false
}
