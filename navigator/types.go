// Package navigator provides tunable options, states, and sentinel errors
// for axis traversal over a grid.Grid.
package navigator

import (
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// Sentinel errors for navigator construction.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("navigator: grid is nil")
)

// State is the position of a Navigator in its traversal state machine.
type State uint8

const (
	// NotPositioned: constructed or Reset, the boundary node not yet yielded.
	NotPositioned State = iota
	// Positioned: at least one node yielded; the cursor sits on it.
	Positioned
	// Exhausted: terminal; every further Next returns (nil, false).
	Exhausted
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case NotPositioned:
		return "not-positioned"
	case Positioned:
		return "positioned"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Option configures Navigator behaviour via functional arguments.
type Option func(*Options)

// Options holds the hooks and logger used by a Navigator.
type Options struct {
	// Logger receives Debug records when the boundary is located and when the
	// traversal is exhausted. Defaults to a discarding logger.
	Logger *slog.Logger

	// OnStep is called for every yielded node with its identifier and its
	// zero-based hop count from the boundary.
	OnStep func(id uuid.UUID, hop int)

	// OnExhausted is called once, on the transition to Exhausted, with the
	// number of nodes yielded in this pass.
	OnExhausted func(yielded int)
}

// DefaultOptions returns Options with a discard logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnStep:      func(uuid.UUID, int) {},
		OnExhausted: func(int) {},
	}
}

// WithLogger routes navigator debug records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnStep registers a callback run for each yielded node.
func WithOnStep(fn func(id uuid.UUID, hop int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnExhausted registers a callback run when the traversal ends.
func WithOnExhausted(fn func(yielded int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExhausted = fn
		}
	}
}
