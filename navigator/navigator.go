// Package navigator walks a grid.Grid deterministically along one axis:
// it locates the boundary node against the traversal direction, then yields
// nodes one edge-hop at a time until no further edge exists.
package navigator

import (
	"fmt"
	"iter"

	"github.com/google/uuid"

	"github.com/katalvlaran/cellgrid/grid"
)

// Navigator is a stateful cursor over one Grid and one Direction.
//
// A Navigator is not safe for concurrent use, but it holds no shared mutable
// state: any number of Navigators may traverse the same Grid concurrently as
// long as the Grid is not mutated meanwhile.
type Navigator[C any] struct {
	grid *grid.Grid[C]
	dir  grid.Direction
	opts Options

	state    State
	boundary *grid.Node[C] // nil for an empty grid
	current  *grid.Node[C]
	hops     int
	yielded  map[uuid.UUID]struct{}
}

// New builds a Navigator over g stepping in direction d and performs the
// one-time boundary scan.
// Returns ErrGridNil for a nil grid, or grid.ErrInvalidDirection (wrapped)
// for the zero direction.
// Complexity: O(n) for the boundary scan.
func New[C any](g *grid.Grid[C], d grid.Direction, opts ...Option) (*Navigator[C], error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if d.IsZero() {
		return nil, fmt.Errorf("navigator: %w", grid.ErrInvalidDirection)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	nav := &Navigator[C]{
		grid: g,
		dir:  d,
		opts: o,
	}
	nav.position()

	return nav, nil
}

// Direction returns the traversal direction.
func (nav *Navigator[C]) Direction() grid.Direction { return nav.dir }

// State returns the current state of the traversal.
func (nav *Navigator[C]) State() State { return nav.state }

// Boundary returns the node the traversal starts from, or nil for an empty grid.
func (nav *Navigator[C]) Boundary() *grid.Node[C] { return nav.boundary }

// Next yields the next node along the axis.
//
// The first call returns the boundary node without consuming an edge. Each
// later call follows the first connection labelled with the traversal
// direction. When there is none, or it leads back to a node already yielded
// in this pass, the Navigator becomes Exhausted and returns (nil, false) on
// this and all future calls.
// Complexity: O(deg) per call.
func (nav *Navigator[C]) Next() (*grid.Node[C], bool) {
	switch nav.state {
	case NotPositioned:
		if nav.boundary == nil {
			nav.exhaust()
			return nil, false
		}
		nav.state = Positioned
		nav.visit(nav.boundary)
		return nav.boundary, true

	case Positioned:
		next, ok := nav.current.Step(nav.dir)
		if !ok {
			nav.exhaust()
			return nil, false
		}
		if _, seen := nav.yielded[next.ID()]; seen {
			nav.exhaust()
			return nil, false
		}
		nav.visit(next)
		return next, true

	default:
		return nil, false
	}
}

// Reset rescans the boundary and returns the Navigator to NotPositioned, so
// the same axis can be traversed again (e.g. after cells were replaced).
func (nav *Navigator[C]) Reset() {
	nav.position()
}

// All returns an iterator over the remaining nodes. Ranging over it drives
// Next; stopping early leaves the Navigator positioned where the loop broke.
func (nav *Navigator[C]) All() iter.Seq[*grid.Node[C]] {
	return func(yield func(*grid.Node[C]) bool) {
		for {
			n, ok := nav.Next()
			if !ok || !yield(n) {
				return
			}
		}
	}
}

// Collect drains the remaining nodes into a slice.
func (nav *Navigator[C]) Collect() []*grid.Node[C] {
	var out []*grid.Node[C]
	for n := range nav.All() {
		out = append(out, n)
	}

	return out
}

// position (re)computes the boundary from the grid seed and clears cursor state.
func (nav *Navigator[C]) position() {
	nav.state = NotPositioned
	nav.current = nil
	nav.hops = 0
	nav.yielded = make(map[uuid.UUID]struct{}, nav.grid.Len())
	nav.boundary = nil

	seed, ok := nav.grid.Seed()
	if !ok {
		nav.opts.Logger.Debug("navigator: empty grid", "direction", nav.dir.String())
		return
	}
	nav.boundary = Boundary(seed, nav.dir)
	nav.opts.Logger.Debug("navigator: boundary located",
		"direction", nav.dir.String(),
		"seed", seed.String(),
		"boundary", nav.boundary.String(),
	)
}

// visit records n as yielded and advances the cursor onto it.
func (nav *Navigator[C]) visit(n *grid.Node[C]) {
	nav.current = n
	nav.yielded[n.ID()] = struct{}{}
	nav.opts.OnStep(n.ID(), nav.hops)
	nav.hops++
}

// exhaust moves to the terminal state and fires the exhaustion hooks once.
func (nav *Navigator[C]) exhaust() {
	nav.state = Exhausted
	nav.current = nil
	nav.opts.Logger.Debug("navigator: exhausted",
		"direction", nav.dir.String(),
		"yielded", nav.hops,
	)
	nav.opts.OnExhausted(nav.hops)
}

// Boundary returns the farthest node reachable from seed by repeatedly
// following the first connection labelled d.Opposite(). If seed has no such
// connection it is its own boundary. On a ring the walk stops at the last
// node before it would re-enter one already visited.
// Returns nil for a nil seed.
// Complexity: O(n·deg) worst case.
func Boundary[C any](seed *grid.Node[C], d grid.Direction) *grid.Node[C] {
	if seed == nil {
		return nil
	}
	back := d.Opposite()
	visited := map[uuid.UUID]struct{}{seed.ID(): {}}
	cur := seed
	for {
		prev, ok := cur.Step(back)
		if !ok {
			return cur
		}
		if _, seen := visited[prev.ID()]; seen {
			return cur
		}
		visited[prev.ID()] = struct{}{}
		cur = prev
	}
}
