// Package dfs provides tunable options and error definitions
// for depth-first route search over a grid.Grid.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/bijay299/Robotics-path-planning/grid"
)

// Sentinel errors for DFS execution.
var (
	// ErrGridNil is returned if a nil grid is passed.
	ErrGridNil = errors.New("dfs: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures DFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize DFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a cell is discovered, in the same order the
	// Result.Order log is written. If it returns an error, the search aborts
	// and propagates that error.
	OnVisit func(c grid.Cell) error

	// MaxDepth, if > 0, stops exploring beyond this many steps from start.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip adjacencies by returning false.
	// Called for each step curr→neighbor before discovery.
	FilterNeighbor func(curr, neighbor grid.Cell) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(grid.Cell) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ grid.Cell) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on each discovery; returning an
// error from this callback stops the search.
func WithOnVisit(fn func(c grid.Cell) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (exclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor grid.Cell) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of one DFS run. Each Search call allocates a
// fresh Result, so consecutive searches never see each other's state.
//   - Path:   some start→goal route, or empty when the goal is unreachable.
//   - Parent: map from cell → the cell it was first reached from; the start
//     cell has no entry. The induced graph is a forest rooted at start.
//   - Order:  cells in the exact order they were discovered, for external
//     visualization; not consulted by the algorithm itself.
type Result struct {
	Path   grid.Path
	Parent map[grid.Cell]grid.Cell
	Order  []grid.Cell
}
