// SPDX-License-Identifier: MIT
// Package: cellgrid/grid
//
// node.go — Node, the uniquely identified vertex of a grid graph.
//
// Ownership:
//   • A Node exclusively owns its Cell slot and its connection list.
//   • A Node does not own the nodes it connects to; those are shared pointers
//     kept alive by the Grid (and the garbage collector).
// Identity:
//   • Nodes compare by ID only. Two nodes wrapping equal cells are distinct
//     positions and never Equal.

package grid

import (
	"github.com/google/uuid"
)

// Node is a vertex holding one cell value of type C and an insertion-ordered,
// append-only list of outgoing Connections.
//
// C is opaque to this package: it is stored and returned, never inspected.
// Callers are expected to use immutable values for C and "change" a cell by
// calling ReplaceCell with a new value.
//
// Node is not safe for concurrent mutation. Concurrent reads are safe as long
// as no goroutine calls ReplaceCell or Connect on the same graph meanwhile.
type Node[C any] struct {
	id          uuid.UUID
	cell        C
	connections []Connection[C]
}

// NewNode allocates a node with a fresh random 128-bit identifier, the given
// cell, and no connections. It cannot fail.
// Complexity: O(1).
func NewNode[C any](cell C) *Node[C] {
	return &Node[C]{
		id:   uuid.New(),
		cell: cell,
	}
}

// ID returns the node's identifier. It is stable for the node's lifetime and
// suitable as a map key for visited-sets.
func (n *Node[C]) ID() uuid.UUID { return n.id }

// Cell returns the currently stored cell value.
func (n *Node[C]) Cell() C { return n.cell }

// ReplaceCell overwrites the stored cell; the previous value is discarded.
// Always succeeds.
func (n *Node[C]) ReplaceCell(cell C) {
	n.cell = cell
}

// Connections returns a copy of the outgoing connections in insertion order.
// Mutating the returned slice does not affect the node.
// Complexity: O(deg).
func (n *Node[C]) Connections() []Connection[C] {
	out := make([]Connection[C], len(n.connections))
	copy(out, n.connections)

	return out
}

// Degree returns the number of outgoing connections.
func (n *Node[C]) Degree() int { return len(n.connections) }

// Step returns the target of the first outgoing connection labelled exactly d
// (both components compared), or (nil, false) if there is none.
// Ties on an over-connected node resolve to the earliest inserted edge.
// Complexity: O(deg).
func (n *Node[C]) Step(d Direction) (*Node[C], bool) {
	for _, c := range n.connections {
		if c.direction == d {
			return c.target, true
		}
	}

	return nil, false
}

// Equal reports whether n and other are the same grid position, i.e. carry
// the same identifier. A nil node is equal only to another nil node.
func (n *Node[C]) Equal(other *Node[C]) bool {
	if n == nil || other == nil {
		return n == other
	}

	return n.id == other.id
}

// String returns the identifier in canonical UUID form.
func (n *Node[C]) String() string { return n.id.String() }

// addConnection appends c. It performs no validation and no duplicate
// detection; Connect is the only caller so edges always exist in pairs.
func (n *Node[C]) addConnection(c Connection[C]) {
	n.connections = append(n.connections, c)
}
