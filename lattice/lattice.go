// Package lattice builds wired grid.Grid topologies from rectangular cell
// layouts: a one-dimensional row for elementary automata, or a 2D grid with
// four- or eight-connectivity, optionally wrapped into a ring or torus.
//
// Every edge is created through grid.Connect, so the pairing invariant holds
// for everything this package produces.
package lattice

import (
	"fmt"

	"github.com/katalvlaran/cellgrid/grid"
)

// Lattice is a rectangular grid.Grid together with its coordinate system.
// Nodes are stored row-major: index = y*Width + x, with x growing East and y
// growing South. It is immutable in shape once built; cells may be replaced
// through the nodes.
type Lattice[C any] struct {
	Width, Height int
	Conn          Connectivity
	Wrap          bool

	grid  *grid.Grid[C]
	nodes []*grid.Node[C]
}

// forward offsets: each undirected neighbour pair is emitted exactly once,
// from the cell that sees the other in one of these directions.
var (
	forward4 = []grid.Direction{grid.East, grid.South}
	forward8 = []grid.Direction{grid.East, grid.South, grid.SouthEast, grid.SouthWest}
)

// Line builds a one-row lattice, wiring cells left to right with grid.East.
// Returns ErrEmptyGrid for no cells.
// Complexity: O(n).
func Line[C any](cells []C, opts ...Option) (*Lattice[C], error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("Line: %w", ErrEmptyGrid)
	}

	return Rect([][]C{cells}, opts...)
}

// Rect builds a lattice from a non-empty rectangular rows[y][x] layout.
//
// Emission order is deterministic: nodes row-major; for each cell the
// forward neighbours East, South (and SouthEast, SouthWest under Conn8).
//
// Errors:
//   - ErrEmptyGrid if rows has no rows or no columns.
//   - ErrNonRectangular if any row length differs.
//   - ErrTooSmallToWrap if WithWrap is set and a dimension has length 2.
//
// Complexity: O(W×H×d) time and memory.
func Rect[C any](rows [][]C, opts ...Option) (*Lattice[C], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("Rect: %w", ErrEmptyGrid)
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("Rect: row %d has %d cells, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
	}
	cfg := newConfig(opts...)
	if cfg.wrap && (w == 2 || h == 2) {
		return nil, fmt.Errorf("Rect: %dx%d: %w", w, h, ErrTooSmallToWrap)
	}

	l := &Lattice[C]{
		Width:  w,
		Height: h,
		Conn:   cfg.conn,
		Wrap:   cfg.wrap,
		nodes:  make([]*grid.Node[C], 0, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			l.nodes = append(l.nodes, grid.NewNode(rows[y][x]))
		}
	}

	offsets := forward4
	if cfg.conn == Conn8 {
		offsets = forward8
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			u := l.nodes[l.index(x, y)]
			for _, d := range offsets {
				nx, ny, ok := l.neighbour(x, y, d)
				if !ok {
					continue
				}
				v := l.nodes[l.index(nx, ny)]
				if err := grid.Connect(u, v, d); err != nil {
					return nil, fmt.Errorf("Rect: Connect(%d,%d→%d,%d): %w", x, y, nx, ny, err)
				}
			}
		}
	}

	g, err := grid.NewGrid(l.nodes...)
	if err != nil {
		return nil, fmt.Errorf("Rect: %w", err)
	}
	l.grid = g

	return l, nil
}

// Grid returns the wired graph, nodes in row-major order.
func (l *Lattice[C]) Grid() *grid.Grid[C] { return l.grid }

// InBounds reports whether (x,y) lies within the lattice.
// Complexity: O(1).
func (l *Lattice[C]) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// At returns the node at (x,y).
func (l *Lattice[C]) At(x, y int) (*grid.Node[C], bool) {
	if !l.InBounds(x, y) {
		return nil, false
	}

	return l.nodes[l.index(x, y)], true
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (l *Lattice[C]) Coordinate(idx int) (x, y int) {
	return idx % l.Width, idx / l.Width
}

// Position returns the coordinates of n, or ok=false if n is not part of
// this lattice.
func (l *Lattice[C]) Position(n *grid.Node[C]) (x, y int, ok bool) {
	i := l.grid.IndexOf(n)
	if i < 0 {
		return 0, 0, false
	}
	x, y = l.Coordinate(i)

	return x, y, true
}

// Cells snapshots the current cell values as rows[y][x].
// Complexity: O(W×H).
func (l *Lattice[C]) Cells() [][]C {
	out := make([][]C, l.Height)
	for y := 0; y < l.Height; y++ {
		out[y] = make([]C, l.Width)
		for x := 0; x < l.Width; x++ {
			out[y][x] = l.nodes[l.index(x, y)].Cell()
		}
	}

	return out
}

// index maps (x,y) to a row-major index: y*Width + x.
func (l *Lattice[C]) index(x, y int) int {
	return y*l.Width + x
}

// neighbour resolves (x,y)+d, wrapping dimensions longer than one cell when
// the lattice wraps. A dimension of length 1 is never wrapped onto itself.
func (l *Lattice[C]) neighbour(x, y int, d grid.Direction) (nx, ny int, ok bool) {
	nx, ny = x+d.X(), y+d.Y()
	if l.Wrap {
		if l.Width > 1 {
			nx = (nx + l.Width) % l.Width
		}
		if l.Height > 1 {
			ny = (ny + l.Height) % l.Height
		}
	}

	return nx, ny, l.InBounds(nx, ny)
}
