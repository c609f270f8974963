package lattice

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("lattice: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("lattice: all rows must have the same length")
	// ErrTooSmallToWrap indicates a wrapped dimension of length 2, which would
	// wire the same pair of cells twice in both directions.
	ErrTooSmallToWrap = errors.New("lattice: wrapped dimension must be 1 or at least 3")
)
