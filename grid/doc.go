// Package grid defines the coordinate types and adjacency contract shared by
// the route search strategies (dfs, bfs, astar), plus the path reconstructor
// that turns a discovery forest back into an ordered route.
//
// What
//
//   - Cell: an immutable (row, column) coordinate, compared by value.
//   - Path: an ordered route of cells, start→goal inclusive; empty means
//     "no route exists" and is a normal outcome, never an error.
//   - Grid: the single interface the strategies consume — Neighbors(Cell).
//     Grid construction, obstacle modeling, and rendering belong to the
//     caller; the search core only walks the adjacency this interface exposes.
//   - TracePath: walks parent links from a matched goal back to the start and
//     returns the route in start→goal order.
//
// Determinism
//
//	Every strategy's returned path and visit order is a pure function of the
//	Neighbors enumeration order. Implementations must therefore enumerate
//	neighbors in a stable, reproducible order for identical grid state; a
//	fixed compass sequence (up, right, down, left) is the recommended choice.
//
// Complexity
//
//	Cell operations are O(1). TracePath is O(L) for a route of L cells.
package grid
