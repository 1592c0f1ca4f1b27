package astar_test

import (
	"fmt"

	"github.com/bijay299/Robotics-path-planning/astar"
	"github.com/bijay299/Robotics-path-planning/grid"
)

// ExampleSearch routes across an open 3×3 grid. Under the Manhattan
// heuristic every cell here has f = 4, so insertion order alone decides the
// expansion sequence and the run is fully reproducible.
func ExampleSearch() {
	res, err := astar.Search(open3x3, grid.Cell{I: 0, J: 0}, grid.Cell{I: 2, J: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Path)
	fmt.Println(res.Cost[grid.Cell{I: 2, J: 2}])
	// Output:
	// [(0,0) (0,1) (0,2) (1,2) (2,2)]
	// 4
}

// ExampleSearch_obstacles steers around walls and still returns a route of
// minimal step count.
func ExampleSearch_obstacles() {
	m := cellmap{
		"..#",
		".#.",
		"...",
	}
	res, err := astar.Search(m, grid.Cell{I: 0, J: 0}, grid.Cell{I: 2, J: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Path)
	// Output:
	// [(0,0) (1,0) (2,0) (2,1) (2,2)]
}
