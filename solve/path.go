package solve

import (
	"fmt"

	"github.com/katalvlaran/lvlmaze/maze"
)

// ReconstructPath walks predecessor links from end back to start and
// returns the cells in start→end order. The parent map uses absence as
// its "no predecessor" marker, so the start cell carries no entry; start
// is passed explicitly to tell "walk finished" apart from "cell was
// never reached".
//
// Returns ErrMissingParent when end, or any ancestor met on the walk, is
// absent from parent before start appears — the search never reached end
// and reconstruction should not have been attempted.
// Complexity: O(L) for a path of L cells.
func ReconstructPath(parent map[maze.Cell]maze.Cell, start, end maze.Cell) ([]maze.Cell, error) {
	path := []maze.Cell{end}
	for cur := end; cur != start; {
		prev, ok := parent[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingParent, cur)
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
