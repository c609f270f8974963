// Package grid models a discrete spatial grid as a graph of addressable cells
// connected by paired, direction-labelled edges.
//
// What:
//
//   - Direction: immutable non-zero (x,y) offset with Opposite().
//   - Node[C]: uniquely identified vertex (random UUID) holding one cell of
//     type C and an insertion-ordered list of outgoing Connections.
//   - Connection[C]: one-way (Target, Direction) reference.
//   - Connect: the only way to create edges; always adds the pair
//     a→b labelled d and b→a labelled d.Opposite().
//   - Grid[C]: ordered node collection, the input to a navigator.
//
// Example, a three-cell row wired left to right:
//
//	a ──East──▶ b ──East──▶ c
//	a ◀──West── b ◀──West── c
//
// Invariants:
//
//   - NewDirection(0,0) fails with ErrInvalidDirection.
//   - d.Opposite().Opposite() == d.
//   - Node equality is by ID only; equal cells never make nodes equal.
//   - After Connect(a,b,d) each endpoint gained exactly one edge.
//
// Concurrency:
//
//	The package takes no locks. Build and wire the graph on one goroutine,
//	then read it from as many goroutines as needed. Mutating a graph while
//	it is being traversed is undefined behaviour that callers must prevent.
//
// Complexity:
//
//   - NewNode, Connect, Lookup: O(1).
//   - Node.Step, Node.Connections: O(deg).
//   - NewGrid, EdgeCount: O(n).
//
// Errors:
//
//   - ErrInvalidDirection: zero vector.
//   - ErrNilNode: nil node passed to Connect or NewGrid.
package grid
