// Package world provides the compass directions a warband can travel in.
package world

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection is returned for anything other than a compass
// direction or its one-letter alias.
var ErrInvalidDirection = errors.New("invalid direction")

// Direction represents a compass direction.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions returns every direction.
func Directions() []Direction {
	return []Direction{North, South, East, West}
}

// String returns the full direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Alias returns the one-letter shorthand.
func (d Direction) Alias() rune {
	switch d {
	case North:
		return 'n'
	case South:
		return 's'
	case East:
		return 'e'
	case West:
		return 'w'
	default:
		return '?'
	}
}

// ParseDirection accepts "north", "N", " west " and so on.
func ParseDirection(s string) (Direction, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Directions() {
		if in == d.String() || in == string(d.Alias()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}
