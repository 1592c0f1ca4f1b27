// Package astar implements A* route search over a grid.Grid using a
// min-heap frontier keyed by f = g + h with insertion-sequence tie-breaking
// and lazy deletion of superseded entries.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/bijay299/Robotics-path-planning/grid"
)

// Search runs A* on g from start toward goal, applying any number of
// functional Options. An unreachable goal is a normal outcome and yields a
// Result with an empty Path; errors are reserved for invalid input
// (ErrGridNil), cancellation, and hook failures.
//
// Under the default Manhattan heuristic on a 4-connected unit-step grid the
// returned route is shortest by step count.
func Search(g grid.Grid, start, goal grid.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &runner{
		grid:   g,
		opts:   o,
		goal:   goal,
		closed: make(map[grid.Cell]bool),
		pq:     make(cellPQ, 0, 16),
		res: &Result{
			Parent: make(map[grid.Cell]grid.Cell),
			Order:  make([]grid.Cell, 0, 16),
			Cost:   make(map[grid.Cell]float64),
		},
	}

	r.init(start)

	return r.res, r.process()
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	grid   grid.Grid
	opts   Options
	goal   grid.Cell
	closed map[grid.Cell]bool // expanded cells; their cost is final
	pq     cellPQ             // min-heap of open entries, lazy decrease-key
	seq    int                // insertion counter, breaks f ties
	res    *Result            // Cost doubles as the g-cost map during the run
}

// init seeds the frontier: g[start] = 0, no parent entry, one heap entry at
// f = h(start, goal).
func (r *runner) init(start grid.Cell) {
	r.res.Cost[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

// push adds a frontier entry for c with cost-from-start g, stamped with the
// next insertion sequence number.
func (r *runner) push(c grid.Cell, g float64) {
	heap.Push(&r.pq, &cellItem{
		cell: c,
		g:    g,
		f:    g + r.opts.H(c, r.goal),
		seq:  r.seq,
	})
	r.seq++
}

// process is the core loop: pop the lowest-f entry, discard it if stale,
// otherwise close and expand it. Terminates on goal match, frontier
// exhaustion, error, or cancellation.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// cancellation check (once per loop)
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*cellItem)

		// Stale entry superseded by a cheaper relaxation: skip.
		if r.closed[item.cell] {
			continue
		}
		r.closed[item.cell] = true
		if err := r.visit(item.cell); err != nil {
			return err
		}

		if item.cell == r.goal {
			r.res.Path = grid.TracePath(r.res.Parent, item.cell)
			return nil
		}

		r.relax(item)
	}
	// frontier exhausted: Path stays empty
	return nil
}

// relax examines each non-closed neighbor of item.cell and records any
// strictly cheaper route to it: update its g-cost, rewrite its parent, push
// a fresh frontier entry. The superseded entry stays in the heap and is
// discarded as stale when popped.
func (r *runner) relax(item *cellItem) {
	for _, nbr := range r.grid.Neighbors(item.cell) {
		if r.closed[nbr] {
			continue
		}
		if !r.opts.FilterNeighbor(item.cell, nbr) {
			continue
		}

		tentative := item.g + stepCost
		if known, ok := r.res.Cost[nbr]; ok && tentative >= known {
			continue
		}
		r.res.Cost[nbr] = tentative
		r.res.Parent[nbr] = item.cell
		r.push(nbr, tentative)
	}
}

// visit appends c to the expansion log and invokes the OnVisit hook.
func (r *runner) visit(c grid.Cell) error {
	r.res.Order = append(r.res.Order, c)
	if err := r.opts.OnVisit(c); err != nil {
		return fmt.Errorf("astar: OnVisit error at %v: %w", c, err)
	}

	return nil
}

// cellItem is one frontier entry: a cell, its cost-from-start g, its
// priority f = g + h, and the insertion sequence number that breaks f ties.
type cellItem struct {
	cell grid.Cell
	g    float64
	f    float64
	seq  int
}

// cellPQ is a min-heap of *cellItem ordered by (f, seq) ascending: lowest f
// first, and among equal f the earlier-pushed entry wins. Relaxation pushes
// duplicates instead of decreasing keys; stale entries are skipped on pop
// via the closed set.
type cellPQ []*cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less orders by f, then by insertion sequence for a total ordering.
func (pq cellPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *cellItem.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }

// Pop removes and returns the last element for heap.Pop.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
