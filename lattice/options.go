// SPDX-License-Identifier: MIT
// Package: cellgrid/lattice
//
// options.go — functional options for lattice constructors.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and PANIC on meaningless inputs.
//     Constructors themselves never panic; they return sentinel errors.
//   • Later options override earlier ones.

package lattice

import "fmt"

// Connectivity selects neighbour wiring: orthogonal (Conn4) or including
// diagonals (Conn8, the Moore neighbourhood).
type Connectivity int

const (
	// Conn4 wires N, E, S, W neighbours.
	Conn4 Connectivity = iota
	// Conn8 wires N, NE, E, SE, S, SW, W, NW neighbours.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("connectivity(%d)", int(c))
	}
}

// ParseConnectivity accepts "4", "conn4", "vonneumann", "8", "conn8", "moore".
// The empty string resolves to Conn4.
func ParseConnectivity(s string) (Connectivity, error) {
	switch s {
	case "", "4", "conn4", "vonneumann", "von-neumann":
		return Conn4, nil
	case "8", "conn8", "moore":
		return Conn8, nil
	default:
		return 0, fmt.Errorf("lattice: unknown connectivity %q", s)
	}
}

// Option customizes a lattice constructor.
type Option func(*config)

// config aggregates all knobs; passed by value once resolved.
type config struct {
	conn Connectivity
	wrap bool
}

// newConfig applies opts over deterministic defaults (Conn4, no wrap).
func newConfig(opts ...Option) config {
	cfg := config{conn: Conn4}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithConnectivity selects Conn4 or Conn8. Panics on any other value.
func WithConnectivity(c Connectivity) Option {
	if c != Conn4 && c != Conn8 {
		panic(fmt.Sprintf("lattice: WithConnectivity(%d)", int(c)))
	}
	return func(cfg *config) {
		cfg.conn = c
	}
}

// WithMoore is shorthand for WithConnectivity(Conn8).
func WithMoore() Option { return WithConnectivity(Conn8) }

// WithWrap joins opposite borders, producing a ring (one row) or a torus.
func WithWrap() Option {
	return func(cfg *config) {
		cfg.wrap = true
	}
}
