// Package dfs provides depth-first route search over a grid.Grid,
// returning a route, its discovery forest, and the visit order.
//
// What
//
//   - Explore cells with an explicit LIFO frontier: the last neighbor
//     enumerated from a cell is the first one explored.
//   - Cells are marked discovered when first reached (pushed), and the goal
//     test happens when a cell is popped; the search stops at the first match.
//   - Returns a Result containing:
//   - Path:   some start→goal route, or empty when the goal is unreachable
//   - Parent: map from cell → the cell it was first reached from
//   - Order:  cells in discovery order, for external visualization
//   - Supports an OnVisit hook, neighbor filtering, depth limiting, and
//     cancellation via context.Context.
//
// Why
//
//   - Cheapest frontier bookkeeping of the three strategies: no queue head
//     shifting, no heap. Useful when any route will do.
//   - The returned route is *some* route, not a shortest one; use bfs or
//     astar when route length matters.
//
// Determinism
//
//	For a fixed grid and a stable Neighbors enumeration order, repeated
//	searches with the same start/goal produce identical Path and Order.
//
// Complexity (V = reachable cells, E = adjacencies among them)
//
//   - Time:   O(V + E)   (each cell discovered at most once)
//   - Memory: O(V)       (frontier, discovered set, Parent, Order)
//
// Usage
//
//	res, err := dfs.Search(g, grid.Cell{I: 0, J: 0}, grid.Cell{I: 9, J: 9})
//	if err != nil {
//	    // ErrGridNil, ErrOptionViolation, ctx.Err(), or a hook error
//	}
//	if len(res.Path) == 0 {
//	    // goal unreachable from start
//	}
package dfs
