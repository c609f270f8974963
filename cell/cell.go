// Package cell defines the state value stored in grid nodes by the
// elementary automaton layer. The grid core treats it as opaque.
package cell

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownState is returned by ParseState for unrecognised input.
var ErrUnknownState = errors.New("cell: unknown state")

// State is the colour of a cell.
type State uint8

const (
	// White is the quiescent state and the zero value.
	White State = iota
	// Black is the active state.
	Black
)

// String returns "white" or "black".
func (s State) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Symbol returns the single-letter form used in layout rows: 'W' or 'B'.
func (s State) Symbol() rune {
	switch s {
	case White:
		return 'W'
	case Black:
		return 'B'
	default:
		return '?'
	}
}

// ParseState accepts "W"/"B" (any case), "white"/"black", and "0"/"1".
func ParseState(s string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w", "white", "0", ".":
		return White, nil
	case "b", "black", "1", "#":
		return Black, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownState, s)
	}
}

// Cell is an immutable wrapper around a State. Use WithState to derive the
// next-generation cell instead of mutating.
type Cell struct {
	state State
}

// New returns a cell in state s.
func New(s State) Cell { return Cell{state: s} }

// State returns the cell's state.
func (c Cell) State() State { return c.state }

// WithState returns a new cell in state s; c is unchanged.
func (c Cell) WithState(s State) Cell {
	c.state = s
	return c
}

// String implements fmt.Stringer.
func (c Cell) String() string { return c.state.String() }

// FromStates wraps each state in a Cell, preserving order.
func FromStates(states ...State) []Cell {
	out := make([]Cell, len(states))
	for i, s := range states {
		out[i] = New(s)
	}
	return out
}
