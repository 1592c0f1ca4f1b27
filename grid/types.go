// Package grid defines the coordinate and adjacency contract consumed by the
// route search strategies.
package grid

import "fmt"

// Cell is a single grid coordinate.
// It is a plain value: compared and hashed by value, copied freely, never
// mutated. Cells are created ad hoc by Grid implementations and by the
// search strategies.
type Cell struct {
	// I is the row index.
	I int
	// J is the column index.
	J int
}

// String renders the cell as "(i,j)"; used by examples and error messages.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.I, c.J)
}

// Path is an ordered route of cells from start to goal inclusive.
// An empty Path signals that the goal is unreachable from the start; that is
// a normal outcome of a search, not a failure condition.
type Path []Cell

// Grid supplies the adjacency relation the search strategies traverse.
// It is the entire boundary between the search core and the surrounding
// navigation tool; construction, bounds validation, and obstacle modeling
// happen on the implementer's side before a search begins.
//
// Implementations must uphold:
//
//   - Neighbors never returns nil; an isolated cell yields an empty slice.
//   - Enumeration order is stable and reproducible for identical grid state.
//     The determinism of every strategy's path and visit order depends on it.
//   - Cells passed to a search are in bounds and well-formed; the strategies
//     assume a total neighbor function.
//   - astar.Search additionally requires 4-connected, unit-step adjacency
//     for its shortest-path guarantee (see the astar package documentation).
type Grid interface {
	// Neighbors returns the cells reachable from c in one step.
	Neighbors(c Cell) []Cell
}
