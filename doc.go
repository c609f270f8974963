// Package cellgrid is the substrate for cellular automata: a discrete spatial
// grid modelled as a graph of addressable cells, plus deterministic traversal
// of that graph along any axis.
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/      — Direction, Node, Connection, Connect and the Grid aggregate
//	navigator/ — axis traversal: boundary scan, then one hop per Next()
//	lattice/   — wired rows, rectangles and tori (Conn4 / Conn8, wrap)
//	layout/    — YAML/JSON initial-state documents built into lattices
//	cell/      — the White/Black cell state used by elementary automata
//	cmd/gridwalk — command-line walker over layout files
//
// Quick ASCII example, a row wired with East = (1,0):
//
//	W ── B ── W ── W ── B
//
// A navigator with East yields W B W W B; with West it yields B W W B W.
//
// Rule evaluation (computing generation T+1 from T) is deliberately not part
// of this module; it is meant to consume navigator output.
package cellgrid
