package grid

// TracePath reconstructs the start→goal route from a discovery forest.
// parent maps every discovered cell to the cell it was reached from; the
// start cell has no entry and terminates the walk.
//
// The walk is undefined for a goal that was never discovered, so callers
// invoke TracePath only on a cell just matched as goal during a search.
// Complexity: O(L) for a route of L cells.
func TracePath(parent map[Cell]Cell, goal Cell) Path {
	// build reversed route, goal first
	path := Path{}
	for cur := goal; ; {
		path = append(path, cur)
		prev, ok := parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
