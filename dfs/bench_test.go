package dfs_test

import (
	"strings"
	"testing"

	"github.com/bijay299/Robotics-path-planning/dfs"
	"github.com/bijay299/Robotics-path-planning/grid"
)

// openGrid builds an N×N cellmap with no obstacles.
func openGrid(n int) cellmap {
	rows := make(cellmap, n)
	for i := range rows {
		rows[i] = strings.Repeat(".", n)
	}

	return rows
}

// BenchmarkSearch_OpenGrid measures DFS corner-to-corner on an open N×N grid.
func BenchmarkSearch_OpenGrid(b *testing.B) {
	const n = 100
	m := openGrid(n)
	goal := grid.Cell{I: n - 1, J: n - 1}

	b.ReportAllocs()
	b.SetBytes(int64(n * n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.Search(m, grid.Cell{}, goal)
	}
}

// BenchmarkSearch_NoRoute measures full exhaustion of a sealed component.
func BenchmarkSearch_NoRoute(b *testing.B) {
	const n = 64
	m := openGrid(n)
	// goal outside the grid is unreachable by construction
	goal := grid.Cell{I: n, J: n}

	b.ReportAllocs()
	b.SetBytes(int64(n * n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.Search(m, grid.Cell{}, goal)
	}
}
