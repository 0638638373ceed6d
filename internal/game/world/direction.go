// Package world provides the table-top geometry: compass directions,
// table bounds, and the scenario loader.
package world

import "strings"

// Direction represents a compass facing. The zero value is Invalid,
// meaning "never placed" or "unparseable token".
type Direction string

// The four compass directions.
const (
	Invalid Direction = ""
	North   Direction = "north"
	East    Direction = "east"
	South   Direction = "south"
	West    Direction = "west"
)

// Directions contains the four valid compass directions.
var Directions = []Direction{North, East, South, West}

// IsValid reports whether d is one of the four compass directions.
func (d Direction) IsValid() bool {
	switch d {
	case North, East, South, West:
		return true
	default:
		return false
	}
}

// Left returns the direction 90 degrees counter-clockwise.
// For Invalid, it returns Invalid.
func (d Direction) Left() Direction {
	switch d {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	case East:
		return North
	default:
		return Invalid
	}
}

// Right returns the direction 90 degrees clockwise.
// For Invalid, it returns Invalid.
func (d Direction) Right() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	default:
		return Invalid
	}
}

// Offset returns the one-cell displacement for moving in direction d.
//
// Precondition: d should be a valid direction; Invalid yields (0, 0).
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// String returns the lowercase direction name, or "invalid".
func (d Direction) String() string {
	if !d.IsValid() {
		return "invalid"
	}
	return string(d)
}

// ParseDirection resolves a direction token. It accepts the full name
// or the single-letter abbreviation, case-insensitively.
//
// Postcondition: Returns (direction, true) for a recognized token, or
// (Invalid, false) otherwise.
func ParseDirection(token string) (Direction, bool) {
	switch strings.ToLower(token) {
	case "n", "north":
		return North, true
	case "e", "east":
		return East, true
	case "s", "south":
		return South, true
	case "w", "west":
		return West, true
	default:
		return Invalid, false
	}
}
