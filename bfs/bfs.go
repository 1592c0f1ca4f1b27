// Package bfs implements breadth-first route search over a grid.Grid.
//
// The frontier is a FIFO queue. Discovery marking happens at enqueue time
// and the goal test at dequeue time; together these guarantee the returned
// route is shortest by step count on a uniform-step grid.
package bfs

import (
	"fmt"

	"github.com/bijay299/Robotics-path-planning/grid"
)

// queueItem pairs a frontier cell with its distance from the start.
type queueItem struct {
	cell  grid.Cell
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid  grid.Grid
	opts  Options
	goal  grid.Cell
	queue []queueItem
	seen  map[grid.Cell]bool
	res   *Result
}

// Search runs breadth-first search on g from start toward goal, applying any
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
		queue: make([]queueItem, 0, 16),
		seen:  make(map[grid.Cell]bool),
		res: &Result{
			Parent: make(map[grid.Cell]grid.Cell),
			Order:  make([]grid.Cell, 0, 16),
		},
	}

	// Seed queue with the start cell (discovered, no parent entry)
	w.seen[start] = true
	if err := w.visit(start); err != nil {
		return w.res, err
	}
	w.queue = append(w.queue, queueItem{cell: start})

	// Main loop
	return w.res, w.loop()
}

// loop processes the queue until goal match, exhaustion, error, or
// cancellation. When the goal is dequeued its parent chain is already a
// shortest route, so reconstruction happens immediately.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if item.cell == w.goal {
			w.res.Path = grid.TracePath(w.res.Parent, item.cell)
			return nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	// frontier exhausted: Path stays empty
	return nil
}

// dequeue pops the earliest-enqueued item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// enqueueNeighbors discovers each unseen neighbor of item.cell: mark seen,
// record parent, log the visit, enqueue. A cell is marked exactly once, at
// first reach; that is the invariant the shortest-route guarantee rests on.
// Respects FilterNeighbor and MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
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
		w.queue = append(w.queue, queueItem{cell: nbr, depth: nextDepth})
	}

	return nil
}

// visit appends c to the discovery log and invokes the OnVisit hook.
func (w *walker) visit(c grid.Cell) error {
	w.res.Order = append(w.res.Order, c)
	if err := w.opts.OnVisit(c); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", c, err)
	}

	return nil
}
