package bfs_test

import (
	"fmt"

	"github.com/bijay299/Robotics-path-planning/bfs"
	"github.com/bijay299/Robotics-path-planning/grid"
)

// ExampleSearch routes across an open 3×3 grid. Discovery proceeds in
// non-decreasing distance from the start, and the returned route is one of
// the monotone staircases of minimal length.
func ExampleSearch() {
	res, err := bfs.Search(open3x3, grid.Cell{I: 0, J: 0}, grid.Cell{I: 2, J: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Path)
	fmt.Println(res.Order)
	// Output:
	// [(0,0) (0,1) (0,2) (1,2) (2,2)]
	// [(0,0) (0,1) (1,0) (0,2) (1,1) (2,0) (1,2) (2,1) (2,2)]
}

// ExampleSearch_unreachable shows that a partitioned grid is a normal
// outcome: the route is empty and err is nil.
func ExampleSearch_unreachable() {
	walled := cellmap{".#.", ".#.", ".#."}
	res, err := bfs.Search(walled, grid.Cell{I: 0, J: 0}, grid.Cell{I: 0, J: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(len(res.Path) == 0)
	// Output:
	// true
}
