// SPDX-License-Identifier: MIT
// Package: cellgrid/grid
//
// grid.go — Grid, the ordered aggregate of nodes forming one topology.

package grid

import (
	"fmt"

	"github.com/google/uuid"
)

// Grid is an ordered, construction-time-fixed collection of nodes.
//
// Order matters only in that Node(0) is the seed for boundary searches.
// The Grid does not enforce connectivity; nodes may be wired before or after
// NewGrid, but must not be rewired while a traversal is in progress.
type Grid[C any] struct {
	nodes []*Node[C]
	index map[uuid.UUID]int // node ID → position in nodes
}

// NewGrid builds a Grid from nodes in the given order. The slice is copied.
// A node listed twice keeps its first position for Lookup/IndexOf.
//
// Errors:
//   - ErrNilNode (wrapped with the offending position) if any entry is nil.
//
// Complexity: O(n).
func NewGrid[C any](nodes ...*Node[C]) (*Grid[C], error) {
	g := &Grid[C]{
		nodes: make([]*Node[C], len(nodes)),
		index: make(map[uuid.UUID]int, len(nodes)),
	}
	for i, n := range nodes {
		if n == nil {
			return nil, fmt.Errorf("new grid: node %d: %w", i, ErrNilNode)
		}
		g.nodes[i] = n
		if _, seen := g.index[n.id]; !seen {
			g.index[n.id] = i
		}
	}

	return g, nil
}

// Len returns the number of nodes.
func (g *Grid[C]) Len() int { return len(g.nodes) }

// Node returns the i-th node, or nil when i is out of range.
func (g *Grid[C]) Node(i int) *Node[C] {
	if i < 0 || i >= len(g.nodes) {
		return nil
	}

	return g.nodes[i]
}

// Nodes returns a copy of the node sequence in construction order.
func (g *Grid[C]) Nodes() []*Node[C] {
	out := make([]*Node[C], len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Seed returns the first node, the starting point for boundary searches.
// The second result is false for an empty grid.
func (g *Grid[C]) Seed() (*Node[C], bool) {
	if len(g.nodes) == 0 {
		return nil, false
	}

	return g.nodes[0], true
}

// Lookup returns the member node with the given identifier.
// Complexity: O(1).
func (g *Grid[C]) Lookup(id uuid.UUID) (*Node[C], bool) {
	i, ok := g.index[id]
	if !ok {
		return nil, false
	}

	return g.nodes[i], true
}

// IndexOf returns the position of n in the grid, or -1 if n is not a member.
func (g *Grid[C]) IndexOf(n *Node[C]) int {
	if n == nil {
		return -1
	}
	if i, ok := g.index[n.id]; ok {
		return i
	}

	return -1
}

// Contains reports whether n is a member of the grid.
func (g *Grid[C]) Contains(n *Node[C]) bool { return g.IndexOf(n) >= 0 }

// Neighbors returns the targets of n's connections in insertion order.
// Targets need not be members of g.
// Complexity: O(deg(n)).
func (g *Grid[C]) Neighbors(n *Node[C]) []*Node[C] {
	if n == nil {
		return nil
	}
	out := make([]*Node[C], 0, len(n.connections))
	for _, c := range n.connections {
		out = append(out, c.target)
	}

	return out
}

// EdgeCount returns the total number of directed connections held by member
// nodes. For a graph wired only through Connect among members it is even.
// Complexity: O(n).
func (g *Grid[C]) EdgeCount() int {
	total := 0
	for _, n := range g.nodes {
		total += len(n.connections)
	}

	return total
}
