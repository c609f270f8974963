// SPDX-License-Identifier: MIT
// Package: cellgrid/grid
//
// errors.go — sentinel errors for the grid package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the call site, never in the sentinel.
//   • Nothing in this package panics at runtime except MustDirection, which
//     is reserved for compile-time-known literals.

package grid

import "errors"

// ErrInvalidDirection indicates a Direction built from (or equal to) the zero
// vector (0,0). Not recoverable by retrying with the same input.
var ErrInvalidDirection = errors.New("grid: direction cannot be 0,0")

// ErrNilNode indicates a nil *Node was passed where a live node is required
// (Connect endpoints, NewGrid members).
var ErrNilNode = errors.New("grid: node is nil")
