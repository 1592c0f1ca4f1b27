package astar

import "github.com/bijay299/Robotics-path-planning/grid"

// Heuristic estimates the remaining cost from a to b. For the shortest-route
// guarantee it must never overestimate the true remaining cost (admissible)
// and must satisfy the triangle inequality relative to the step cost
// (consistent).
type Heuristic func(a, b grid.Cell) float64

// Manhattan returns |ΔI| + |ΔJ|, the default heuristic. It is admissible and
// consistent on a 4-connected grid with uniform step cost.
func Manhattan(a, b grid.Cell) float64 {
	di := a.I - b.I
	if di < 0 {
		di = -di
	}
	dj := a.J - b.J
	if dj < 0 {
		dj = -dj
	}

	return float64(di + dj)
}
