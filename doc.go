// Package routing is the search core of a grid navigation tool: three
// interchangeable route strategies over a caller-supplied 2-D grid.
//
// 🚀 What is Robotics-path-planning?
//
//	A small, pure-Go routing core that brings together:
//		• grid primitives: Cell coordinates, Path routes, the Grid contract
//		• uninformed search: depth-first and breadth-first route strategies
//		• informed search: A* with Manhattan heuristic and deterministic
//		  tie-breaking
//		• path reconstruction from the discovery forest each search returns
//
// ✨ Why choose it?
//
//   - Minimal boundary – the strategies consume one interface,
//     grid.Grid{Neighbors(Cell) []Cell}; grid construction, rendering, and
//     interaction stay on the caller's side
//   - Session results – every search returns its own Result (path, parent
//     forest, visit order); nothing is mutated on the shared grid, so
//     concurrent searches over one grid are safe
//   - Deterministic – fixed neighbor enumeration in, identical routes and
//     visit logs out, for all three strategies
//   - Extensible – hooks (OnVisit), neighbor filters, depth limits, and
//     context cancellation on every strategy
//
// Everything is organized under four subpackages:
//
//	grid/  — Cell, Path, the Grid adjacency contract, TracePath
//	dfs/   — depth-first search: LIFO frontier, some route
//	bfs/   — breadth-first search: FIFO frontier, shortest route by steps
//	astar/ — A* search: f = g + h min-heap frontier, shortest route under an
//	         admissible, consistent heuristic
//
// Quick ASCII example:
//
//	    S . .        S → . → .
//	    . # .                ↓
//	    . . G        bfs:    G
//
//	a 3×3 grid with one obstacle; bfs and astar both return a 5-cell route.
//
// Unreachable goals are a normal outcome (empty Path), never an error.
//
//	go get github.com/bijay299/Robotics-path-planning
package routing
