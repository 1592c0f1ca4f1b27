// Package dfs implements depth-first route search over a grid.Grid.
//
// The frontier is an explicit LIFO stack: the last neighbor enumerated from
// a cell is explored first. Discovery marking happens on push, the goal test
// on pop, so the returned route is *some* route, not a shortest one.
package dfs

import (
	"fmt"

	"github.com/bijay299/Robotics-path-planning/grid"
)

// stackItem pairs a frontier cell with its discovery depth.
type stackItem struct {
	cell  grid.Cell
	depth int
}

// walker encapsulates mutable DFS state.
type walker struct {
	grid  grid.Grid
	opts  Options
	goal  grid.Cell
	stack []stackItem
	seen  map[grid.Cell]bool
	res   *Result
}

// Search runs depth-first search on g from start toward goal, applying any
// number of functional Options. An unreachable goal is a normal outcome and
// yields a Result with an empty Path; errors are reserved for invalid input
// (ErrGridNil, ErrOptionViolation), cancellation, and hook failures.
func Search(g grid.Grid, start, goal grid.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		grid:  g,
		opts:  o,
		goal:  goal,
		stack: make([]stackItem, 0, 16),
		seen:  make(map[grid.Cell]bool),
		res: &Result{
			Parent: make(map[grid.Cell]grid.Cell),
			Order:  make([]grid.Cell, 0, 16),
		},
	}

	// Seed frontier with the start cell (discovered, no parent entry)
	w.seen[start] = true
	if err := w.visit(start); err != nil {
		return w.res, err
	}
	w.stack = append(w.stack, stackItem{cell: start})

	// Main loop
	return w.res, w.loop()
}

// loop pops frontier cells until goal match, exhaustion, error, or
// cancellation. On a goal match the route is reconstructed immediately and
// exploration stops.
func (w *walker) loop() error {
	for len(w.stack) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.pop()
		if item.cell == w.goal {
			w.res.Path = grid.TracePath(w.res.Parent, item.cell)
			return nil
		}
		if err := w.pushNeighbors(item); err != nil {
			return err
		}
	}
	// frontier exhausted: Path stays empty
	return nil
}

// pop removes and returns the most recently pushed item.
func (w *walker) pop() stackItem {
	n := len(w.stack) - 1
	item := w.stack[n]
	w.stack = w.stack[:n]

	return item
}

// pushNeighbors discovers each unseen neighbor of item.cell: mark seen,
// record parent, log the visit, push. Respects FilterNeighbor and MaxDepth.
func (w *walker) pushNeighbors(item stackItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range w.grid.Neighbors(item.cell) {
		if w.seen[nbr] {
			continue
		}
		if !w.opts.FilterNeighbor(item.cell, nbr) {
			continue
		}

		w.seen[nbr] = true
		w.res.Parent[nbr] = item.cell
		if err := w.visit(nbr); err != nil {
			return err
		}
		w.stack = append(w.stack, stackItem{cell: nbr, depth: nextDepth})
	}

	return nil
}

// visit appends c to the discovery log and invokes the OnVisit hook.
func (w *walker) visit(c grid.Cell) error {
	w.res.Order = append(w.res.Order, c)
	if err := w.opts.OnVisit(c); err != nil {
		return fmt.Errorf("dfs: OnVisit error at %v: %w", c, err)
	}

	return nil
}
