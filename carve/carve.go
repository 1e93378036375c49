// Package carve turns a fully walled maze into a perfect maze by
// randomized iterative depth-first carving with backtracking.
package carve

import (
	"github.com/katalvlaran/lvlmaze/maze"
)

// carver encapsulates mutable generation state.
type carver struct {
	m       *maze.Maze
	opts    Options
	stack   []maze.Cell
	visited [][]bool
}

// candidate pairs a carving direction with the unvisited cell it reaches.
type candidate struct {
	dir  maze.Direction
	cell maze.Cell
}

// Carve generates a perfect maze in place: it carves a randomized
// depth-first spanning tree over the grid graph (cells as nodes,
// side-by-side adjacency as edges) so that afterwards exactly one simple
// path connects any two cells. Walls are the only state touched; the
// walk starts at m.Start()
// and, because plain adjacency connects the whole rectangle, terminates
// with every cell visited.
// Returns ErrNilMaze for nil input; carving itself cannot fail.
// Complexity: O(W×H) time, O(W×H) memory for the stack and visited marks.
func Carve(m *maze.Maze, opts ...Option) error {
	// 1. Validate input
	if m == nil {
		return ErrNilMaze
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 3. Prepare carver: fresh visited marks, stack seeded with start
	visited := make([][]bool, m.Height())
	for r := range visited {
		visited[r] = make([]bool, m.Width())
	}
	c := &carver{
		m:       m,
		opts:    o,
		stack:   make([]maze.Cell, 0, m.Width()*m.Height()),
		visited: visited,
	}
	c.push(m.Start())

	// 4. Walk until the stack drains
	c.walk()

	return nil
}

// push marks cell visited and places it on the backtracking stack.
func (c *carver) push(cell maze.Cell) {
	c.visited[cell.Row][cell.Col] = true
	c.stack = append(c.stack, cell)
}

// walk repeatedly extends the passage from the top-of-stack cell into a
// uniformly chosen unvisited neighbor, popping on dead ends.
func (c *carver) walk() {
	for len(c.stack) > 0 {
		cur := c.stack[len(c.stack)-1]

		cands := c.unvisitedNeighbors(cur)
		if len(cands) == 0 {
			// dead end
			c.stack = c.stack[:len(c.stack)-1]
			c.opts.OnBacktrack(cur)
			continue
		}

		next := cands[c.opts.Rand.Intn(len(cands))]
		// Opening the edge clears both wall halves, keeping symmetry.
		_ = c.m.Grid().RemoveWall(cur, next.dir)
		c.opts.OnCarve(cur, next.cell)
		c.push(next.cell)
	}
}

// unvisitedNeighbors collects cur's in-bounds, not-yet-visited neighbors
// in the fixed Up/Right/Down/Left order, so the RNG draw is the only
// source of variation between runs.
func (c *carver) unvisitedNeighbors(cur maze.Cell) []candidate {
	cands := make([]candidate, 0, 4)
	for _, d := range maze.Directions() {
		n, ok := c.m.Grid().Neighbor(cur, d)
		if !ok || c.visited[n.Row][n.Col] {
			continue
		}
		cands = append(cands, candidate{dir: d, cell: n})
	}

	return cands
}
