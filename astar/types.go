// Package astar provides tunable options and error definitions
// for A* route search over a grid.Grid.
package astar

import (
	"context"
	"errors"

	"github.com/bijay299/Robotics-path-planning/grid"
)

// Sentinel errors for A* execution.
var (
	// ErrGridNil is returned if a nil grid is passed.
	ErrGridNil = errors.New("astar: grid is nil")
)

// stepCost is the uniform cost of moving between adjacent cells.
const stepCost = 1.0

// Option configures A* behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize A* execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a cell is expanded (popped and closed), in the
	// same order the Result.Order log is written. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(c grid.Cell) error

	// FilterNeighbor can skip adjacencies by returning false.
	// Called for each step curr→neighbor before relaxation.
	FilterNeighbor func(curr, neighbor grid.Cell) bool

	// H estimates the remaining cost from a cell to the goal. It must be
	// admissible and consistent for the shortest-route guarantee to hold.
	H Heuristic
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no filtering (all neighbors allowed)
//   - no-op OnVisit hook
//   - Manhattan heuristic.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(grid.Cell) error { return nil },
		FilterNeighbor: func(_, _ grid.Cell) bool { return true },
		H:              Manhattan,
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

// WithOnVisit registers a callback to run on each expansion; returning an
// error from this callback stops the search.
func WithOnVisit(fn func(c grid.Cell) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
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

// WithHeuristic substitutes h for the default Manhattan estimate.
// The shortest-route guarantee holds only for admissible, consistent h;
// see the package documentation. A nil h keeps the default.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.H = h
		}
	}
}

// Result holds the outcome of one A* run. Each Search call allocates a
// fresh Result, so consecutive searches never see each other's state.
//   - Path:   a shortest start→goal route under an admissible, consistent
//     heuristic, or empty when the goal is unreachable.
//   - Parent: map from cell → its cheapest-known predecessor; rewritten
//     during relaxation, final for closed cells. The start cell has no
//     entry, and the induced graph is a forest rooted at start.
//   - Order:  cells in the exact order they were expanded (closed), for
//     external visualization; not consulted by the algorithm itself.
//   - Cost:   best known cost-from-start per discovered cell; exact for
//     closed cells.
type Result struct {
	Path   grid.Path
	Parent map[grid.Cell]grid.Cell
	Order  []grid.Cell
	Cost   map[grid.Cell]float64
}
