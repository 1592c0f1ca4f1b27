// Package bfs provides breadth-first route search over a grid.Grid,
// returning a shortest route by step count, its discovery forest, and the
// visit order.
//
// What
//
//   - Explore cells in non-decreasing distance from the start with a FIFO
//     frontier.
//   - Cells are marked discovered once, when first enqueued; the goal test
//     happens at dequeue time. This pairing is what guarantees that the
//     parent chain at the moment the goal is dequeued is a shortest route by
//     step count — swap either policy and the guarantee is lost.
//   - Returns a Result containing:
//   - Path:   a shortest start→goal route, or empty when unreachable
//   - Parent: map from cell → the cell it was first reached from
//   - Order:  cells in discovery order, for external visualization
//   - Supports an OnVisit hook, neighbor filtering, depth limiting, and
//     cancellation via context.Context.
//
// Why
//
//   - Shortest routes on uniform-step grids in O(V + E) with no priority
//     structure; the go-to strategy when every step costs the same.
//
// Determinism
//
//	For a fixed grid and a stable Neighbors enumeration order, repeated
//	searches with the same start/goal produce identical Path and Order.
//
// Complexity (V = reachable cells, E = adjacencies among them)
//
//   - Time:   O(V + E)   (each cell enqueued at most once)
//   - Memory: O(V)       (queue, discovered set, Parent, Order)
//
// Usage
//
//	res, err := bfs.Search(g, grid.Cell{I: 0, J: 0}, grid.Cell{I: 9, J: 9})
//	if err != nil {
//	    // ErrGridNil, ErrOptionViolation, ctx.Err(), or a hook error
//	}
//	fmt.Println(len(res.Path)) // cells on a shortest route, 0 if unreachable
package bfs
