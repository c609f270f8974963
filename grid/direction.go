// SPDX-License-Identifier: MIT
// Package: cellgrid/grid
//
// direction.go — the Direction value type and the named unit offsets.
//
// Coordinate convention: x grows to the right (East), y grows downward
// (South), so "top" is (0,-1). Any non-zero integer pair is a valid
// Direction; the named values below are conveniences, not a closed set.

package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction is an immutable, non-zero 2D integer offset labelling an edge.
// Two Directions are equal iff both components match, so Direction is
// comparable with == and usable as a map key.
//
// The zero value Direction{} is NOT a valid direction; every consumer in this
// module (Connect, navigator.New) rejects it with ErrInvalidDirection.
type Direction struct {
	x, y int
}

// Named unit offsets (screen coordinates, y down).
var (
	East      = Direction{x: 1, y: 0}
	West      = Direction{x: -1, y: 0}
	North     = Direction{x: 0, y: -1}
	South     = Direction{x: 0, y: 1}
	NorthEast = Direction{x: 1, y: -1}
	NorthWest = Direction{x: -1, y: -1}
	SouthEast = Direction{x: 1, y: 1}
	SouthWest = Direction{x: -1, y: 1}
)

// NewDirection validates (x,y) and returns the corresponding Direction.
// Returns ErrInvalidDirection when both components are zero.
// Complexity: O(1).
func NewDirection(x, y int) (Direction, error) {
	if x == 0 && y == 0 {
		return Direction{}, ErrInvalidDirection
	}

	return Direction{x: x, y: y}, nil
}

// MustDirection is like NewDirection but panics on the zero vector.
// Intended for package-level literals and tests.
func MustDirection(x, y int) Direction {
	d, err := NewDirection(x, y)
	if err != nil {
		panic(fmt.Sprintf("grid: MustDirection(%d,%d): %v", x, y, err))
	}

	return d
}

// namedDirections maps lowercase names and compass abbreviations to offsets.
var namedDirections = map[string]Direction{
	"east": East, "e": East, "right": East,
	"west": West, "w": West, "left": West,
	"north": North, "n": North, "up": North,
	"south": South, "s": South, "down": South,
	"northeast": NorthEast, "ne": NorthEast,
	"northwest": NorthWest, "nw": NorthWest,
	"southeast": SouthEast, "se": SouthEast,
	"southwest": SouthWest, "sw": SouthWest,
}

// ParseDirection accepts a compass name ("east", "nw", "left", ...) or an
// "x,y" pair, optionally parenthesised: "1,0", "(-1, 1)".
// Returns ErrInvalidDirection for "0,0" and a descriptive error for
// anything unparsable.
func ParseDirection(s string) (Direction, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if d, ok := namedDirections[key]; ok {
		return d, nil
	}

	key = strings.TrimSuffix(strings.TrimPrefix(key, "("), ")")
	xs, ys, found := strings.Cut(key, ",")
	if !found {
		return Direction{}, fmt.Errorf("grid: cannot parse direction %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Direction{}, fmt.Errorf("grid: direction %q: x: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Direction{}, fmt.Errorf("grid: direction %q: y: %w", s, err)
	}

	return NewDirection(x, y)
}

// X returns the horizontal component.
func (d Direction) X() int { return d.x }

// Y returns the vertical component.
func (d Direction) Y() int { return d.y }

// IsZero reports whether d is the (invalid) zero vector, which only the Go
// zero value Direction{} can be.
func (d Direction) IsZero() bool { return d.x == 0 && d.y == 0 }

// Opposite returns (-x,-y). Total and pure: negating a non-zero vector never
// yields the zero vector, so no error is possible.
// Complexity: O(1).
func (d Direction) Opposite() Direction {
	return Direction{x: -d.x, y: -d.y}
}

// Equal reports component-wise equality. Equivalent to d == other.
func (d Direction) Equal(other Direction) bool {
	return d.x == other.x && d.y == other.y
}

// String renders the direction as "(x,y)".
func (d Direction) String() string {
	return fmt.Sprintf("(%d,%d)", d.x, d.y)
}

// VonNeumann returns the four orthogonal unit directions in clockwise order
// starting at North. A fresh slice is returned on every call.
func VonNeumann() []Direction {
	return []Direction{North, East, South, West}
}

// Moore returns the eight unit and diagonal directions in clockwise order
// starting at North. A fresh slice is returned on every call.
func Moore() []Direction {
	return []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
}
