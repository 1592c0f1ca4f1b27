// Package astar provides A* route search over a grid.Grid: best-first
// exploration ordered by f = g + h, where g is the known cost from the start
// and h an admissible estimate of the remaining cost to the goal.
//
// Overview:
//
//   - The frontier is a min-heap keyed by f, with ties broken by insertion
//     sequence (earlier-pushed entries win). The ordering is therefore total
//     and deterministic without ever comparing cells directly.
//   - Relaxation uses the lazy-decrease-key strategy: a strictly cheaper
//     route to an open cell pushes a fresh heap entry and rewrites the
//     cell's parent; the superseded entry stays in the heap and is discarded
//     when popped, via the closed set. A deliberate simplicity tradeoff over
//     an indexed decrease-key heap.
//   - Step cost is uniform 1.0. The default heuristic is Manhattan distance,
//     admissible and consistent on a 4-connected unit-step grid; under it
//     the returned route is shortest by step count.
//
// When to use:
//
//   - Whenever bfs would do but the grid is large and a goal direction
//     exists: the heuristic focuses expansion toward the goal and typically
//     visits far fewer cells for the same shortest-route guarantee.
//
// Heuristic constraints:
//
//   - The shortest-route guarantee requires an admissible, consistent
//     heuristic relative to the grid's step cost. Manhattan distance stops
//     being admissible on 8-connected or non-unit-cost grids; that is a
//     constraint on the Grid implementation, not something Search checks.
//   - WithHeuristic substitutes another estimate (h ≡ 0 degenerates to
//     uniform-cost search). Supplying an inadmissible heuristic trades the
//     guarantee for speed.
//
// Performance and complexity (V = reachable cells, E = adjacencies):
//
//   - Time:  O((V + E) log V) — each cell is expanded at most once; each
//     relaxation may push one heap entry; heap operations cost O(log N),
//     N ≤ V + E.
//   - Space: O(V + E) — cost/parent maps plus worst-case heap entries under
//     lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrGridNil: a nil grid was passed to Search.
//   - An unreachable goal is NOT an error: Search returns a Result with an
//     empty Path, exactly like dfs and bfs.
//
// Usage:
//
//	res, err := astar.Search(g, start, goal)
//	if err != nil {
//	    // ErrGridNil, ctx.Err(), or a hook error
//	}
//	fmt.Println(res.Path, res.Cost[goal])
package astar
