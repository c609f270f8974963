package grid_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellgrid/cell"
	"github.com/katalvlaran/cellgrid/grid"
)

func newWhite() *grid.Node[cell.Cell] { return grid.NewNode(cell.New(cell.White)) }

//----------------------------------------------------------------------------//
// Node identity and cell replacement
//----------------------------------------------------------------------------//

// TestNode_HasUniqueIdentifier checks a node has a non-empty ID and equals itself.
func TestNode_HasUniqueIdentifier(t *testing.T) {
	n := newWhite()
	assert.NotEqual(t, uuid.Nil, n.ID())
	assert.True(t, n.Equal(n))
	assert.Equal(t, n.ID().String(), n.String())
}

// TestNode_TwoNodesAreDifferent even when wrapping the same cell.
func TestNode_TwoNodesAreDifferent(t *testing.T) {
	c := cell.New(cell.White)
	a, b := grid.NewNode(c), grid.NewNode(c)

	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, a.Cell(), b.Cell())
}

// TestNode_EqualNil covers nil receivers and arguments.
func TestNode_EqualNil(t *testing.T) {
	var nilNode *grid.Node[cell.Cell]
	assert.True(t, nilNode.Equal(nil))
	assert.False(t, nilNode.Equal(newWhite()))
	assert.False(t, newWhite().Equal(nil))
}

// TestNode_ContainsCell and ReplaceCell swaps it wholesale.
func TestNode_ReplaceCell(t *testing.T) {
	old := cell.New(cell.White)
	n := grid.NewNode(old)
	require.Equal(t, old, n.Cell())

	id := n.ID()
	next := cell.New(cell.Black)
	n.ReplaceCell(next)

	assert.Equal(t, next, n.Cell())
	assert.Equal(t, id, n.ID(), "identity is independent of content")
}

//----------------------------------------------------------------------------//
// Connect
//----------------------------------------------------------------------------//

// TestConnect_LinksBothNodes checks targets on both halves.
func TestConnect_LinksBothNodes(t *testing.T) {
	a, b := newWhite(), newWhite()
	require.NoError(t, grid.Connect(a, b, grid.East))

	require.Equal(t, 1, a.Degree())
	require.Equal(t, 1, b.Degree())
	assert.True(t, a.Connections()[0].Target().Equal(b))
	assert.True(t, b.Connections()[0].Target().Equal(a))
}

// TestConnect_OppositeDirections checks labels for a few offsets.
func TestConnect_OppositeDirections(t *testing.T) {
	cases := []struct{ x, y, ox, oy int }{
		{1, 0, -1, 0},
		{0, 1, 0, -1},
		{2, -3, -2, 3},
	}
	for _, tc := range cases {
		a, b := newWhite(), newWhite()
		d := grid.MustDirection(tc.x, tc.y)
		require.NoError(t, grid.Connect(a, b, d))

		assert.Equal(t, d, a.Connections()[0].Direction())
		assert.Equal(t, grid.MustDirection(tc.ox, tc.oy), b.Connections()[0].Direction())
	}
}

// TestConnect_Rejects verifies no edge is added on invalid input.
func TestConnect_Rejects(t *testing.T) {
	a, b := newWhite(), newWhite()

	err := grid.Connect(a, b, grid.Direction{})
	if !errors.Is(err, grid.ErrInvalidDirection) {
		t.Errorf("zero direction: error = %v; want ErrInvalidDirection", err)
	}
	err = grid.Connect(a, nil, grid.East)
	if !errors.Is(err, grid.ErrNilNode) {
		t.Errorf("nil target: error = %v; want ErrNilNode", err)
	}
	err = grid.Connect(nil, b, grid.East)
	if !errors.Is(err, grid.ErrNilNode) {
		t.Errorf("nil origin: error = %v; want ErrNilNode", err)
	}

	assert.Zero(t, a.Degree(), "failed Connect must not half-wire origin")
	assert.Zero(t, b.Degree(), "failed Connect must not half-wire target")
}

// TestConnect_AddsExactlyOnePair checks no other edges appear on either node.
func TestConnect_AddsExactlyOnePair(t *testing.T) {
	a, b, c := newWhite(), newWhite(), newWhite()
	require.NoError(t, grid.Connect(a, b, grid.East))
	require.NoError(t, grid.Connect(b, c, grid.East))

	assert.Equal(t, 1, a.Degree())
	assert.Equal(t, 2, b.Degree())
	assert.Equal(t, 1, c.Degree())
}

// TestConnect_DuplicatesAllowed: no duplicate detection.
func TestConnect_DuplicatesAllowed(t *testing.T) {
	a, b := newWhite(), newWhite()
	require.NoError(t, grid.Connect(a, b, grid.East))
	require.NoError(t, grid.Connect(a, b, grid.SouthEast))
	require.NoError(t, grid.Connect(a, b, grid.East))

	assert.Equal(t, 3, a.Degree())
	assert.Equal(t, 3, b.Degree())
}

// TestConnections_ReturnsCopy ensures callers cannot mutate the edge list.
func TestConnections_ReturnsCopy(t *testing.T) {
	a, b := newWhite(), newWhite()
	require.NoError(t, grid.Connect(a, b, grid.East))

	conns := a.Connections()
	conns[0] = grid.Connection[cell.Cell]{}
	assert.True(t, a.Connections()[0].Target().Equal(b))
}

// TestMooreNeighbourhood wires a centre to 8 neighbours and checks every
// return edge carries the exact opposite label.
func TestMooreNeighbourhood(t *testing.T) {
	centre := newWhite()
	neighbours := make(map[grid.Direction]*grid.Node[cell.Cell], 8)
	for _, d := range grid.Moore() {
		n := newWhite()
		neighbours[d] = n
		require.NoError(t, grid.Connect(centre, n, d))
	}

	require.Equal(t, 8, centre.Degree())
	for d, n := range neighbours {
		got, ok := centre.Step(d)
		require.True(t, ok, "centre has no edge %s", d)
		assert.True(t, got.Equal(n))

		require.Equal(t, 1, n.Degree())
		back := n.Connections()[0]
		assert.Equal(t, d.Opposite(), back.Direction(), "neighbour via %s", d)
		assert.True(t, back.Target().Equal(centre))
	}

	// Spot-check the literal example: connected via (-1,-1) returns via (1,1).
	back := neighbours[grid.MustDirection(-1, -1)].Connections()[0]
	assert.Equal(t, grid.MustDirection(1, 1), back.Direction())
}

//----------------------------------------------------------------------------//
// Step
//----------------------------------------------------------------------------//

// TestStep_ExactMatch distinguishes directions sharing an x component.
func TestStep_ExactMatch(t *testing.T) {
	centre, up, down := newWhite(), newWhite(), newWhite()
	require.NoError(t, grid.Connect(centre, up, grid.North))
	require.NoError(t, grid.Connect(centre, down, grid.South))

	got, ok := centre.Step(grid.South)
	require.True(t, ok)
	assert.True(t, got.Equal(down))

	got, ok = centre.Step(grid.North)
	require.True(t, ok)
	assert.True(t, got.Equal(up))

	_, ok = centre.Step(grid.East)
	assert.False(t, ok)
}

// TestStep_FirstInsertedWins covers the over-connected tie-break.
func TestStep_FirstInsertedWins(t *testing.T) {
	a, first, second := newWhite(), newWhite(), newWhite()
	require.NoError(t, grid.Connect(a, first, grid.East))
	require.NoError(t, grid.Connect(a, second, grid.East))

	got, ok := a.Step(grid.East)
	require.True(t, ok)
	assert.True(t, got.Equal(first))
}

//----------------------------------------------------------------------------//
// Grid aggregate
//----------------------------------------------------------------------------//

// TestNewGrid_Basics covers ordering, lookup and membership.
func TestNewGrid_Basics(t *testing.T) {
	a, b, c := newWhite(), newWhite(), newWhite()
	require.NoError(t, grid.Connect(a, b, grid.East))
	require.NoError(t, grid.Connect(b, c, grid.East))

	input := []*grid.Node[cell.Cell]{a, b, c}
	g, err := grid.NewGrid(input...)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 4, g.EdgeCount())

	seed, ok := g.Seed()
	require.True(t, ok)
	assert.True(t, seed.Equal(a))

	for i, n := range input {
		assert.True(t, g.Node(i).Equal(n))
		assert.Equal(t, i, g.IndexOf(n))
		got, ok := g.Lookup(n.ID())
		require.True(t, ok)
		assert.True(t, got.Equal(n))
	}
	assert.Nil(t, g.Node(-1))
	assert.Nil(t, g.Node(3))

	outsider := newWhite()
	assert.False(t, g.Contains(outsider))
	assert.Equal(t, -1, g.IndexOf(outsider))
	assert.Equal(t, -1, g.IndexOf(nil))
	_, ok = g.Lookup(outsider.ID())
	assert.False(t, ok)

	// Nodes returns a copy.
	nodes := g.Nodes()
	nodes[0] = outsider
	assert.True(t, g.Node(0).Equal(a))
	input[0] = outsider
	assert.True(t, g.Node(0).Equal(a), "NewGrid must copy its input")

	nbrs := g.Neighbors(b)
	require.Len(t, nbrs, 2)
	assert.True(t, nbrs[0].Equal(a))
	assert.True(t, nbrs[1].Equal(c))
	assert.Nil(t, g.Neighbors(nil))
}

// TestNewGrid_Empty has no seed.
func TestNewGrid_Empty(t *testing.T) {
	g, err := grid.NewGrid[cell.Cell]()
	require.NoError(t, err)
	assert.Zero(t, g.Len())
	_, ok := g.Seed()
	assert.False(t, ok)
}

// TestNewGrid_NilNode rejects nil members.
func TestNewGrid_NilNode(t *testing.T) {
	_, err := grid.NewGrid(newWhite(), nil)
	if !errors.Is(err, grid.ErrNilNode) {
		t.Fatalf("NewGrid with nil: error = %v; want ErrNilNode", err)
	}
}
