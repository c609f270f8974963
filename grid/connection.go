// SPDX-License-Identifier: MIT
// Package: cellgrid/grid
//
// connection.go — directed, direction-labelled edges and the pairing
// constructor Connect.
//
// Invariant: every Connection is one half of a pair created by Connect.
// If A holds A→B labelled D then B holds B→A labelled D.Opposite(), both
// appended in the same call. Edges are never removed or relabelled.

package grid

import "fmt"

// Connection is a one-way labelled reference from its owning node to Target.
type Connection[C any] struct {
	target    *Node[C]
	direction Direction
}

// Target returns the node this connection points to.
func (c Connection[C]) Target() *Node[C] { return c.target }

// Direction returns the spatial label of this connection.
func (c Connection[C]) Direction() Direction { return c.direction }

// Connect wires origin and target as neighbours: origin→target labelled d and
// target→origin labelled d.Opposite().
//
// Validation happens before any mutation, so a failed call leaves both nodes
// untouched and the graph is never observable half-wired.
//
// Errors:
//   - ErrNilNode if either endpoint is nil.
//   - ErrInvalidDirection if d is the zero value.
//
// Multiple connections between the same pair (in different or even equal
// directions) are permitted; self-connections are too, in which case the
// node receives both halves.
// Complexity: O(1) amortized.
func Connect[C any](origin, target *Node[C], d Direction) error {
	if origin == nil || target == nil {
		return fmt.Errorf("connect: %w", ErrNilNode)
	}
	if d.IsZero() {
		return fmt.Errorf("connect %s→%s: %w", origin, target, ErrInvalidDirection)
	}

	forward := Connection[C]{target: target, direction: d}
	backward := Connection[C]{target: origin, direction: d.Opposite()}

	origin.addConnection(forward)
	target.addConnection(backward)

	return nil
}
