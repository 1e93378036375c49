// Package solve finds shortest paths through carved mazes with
// breadth-first search, either in one shot or one observable step at a
// time over the same deterministic expansion rule.
package solve

import (
	"github.com/katalvlaran/lvlmaze/maze"
)

// queueItem pairs a frontier cell with its BFS depth.
type queueItem struct {
	cell  maze.Cell
	depth int
}

// walker encapsulates mutable BFS state. Solve and Stepper are both thin
// drivers over walker.step, which is what guarantees their dequeue
// sequences are identical for a given maze.
type walker struct {
	m       *maze.Maze
	opts    Options
	queue   []queueItem
	visited [][]bool
	res     *Result
	done    bool
}

// Solve runs breadth-first search from m.Start() toward m.End(). Because
// the passage graph is unweighted, the first dequeue of any cell happens
// at its minimum distance, so the recorded path is shortest.
//
// An unreachable end is not an error: the Result comes back with
// Found=false and a nil Path. Returns ErrNilMaze for nil input and the
// context's error if WithContext is cancelled mid-search.
// Complexity: O(W×H) time and memory.
func Solve(m *maze.Maze, opts ...Option) (*Result, error) {
	w, err := newWalker(m, opts)
	if err != nil {
		return nil, err
	}

	for len(w.queue) > 0 {
		// cancellation check (once per expansion)
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		item := w.step()
		if w.done {
			path, perr := ReconstructPath(w.res.Parent, m.Start(), item.cell)
			if perr != nil {
				return nil, perr
			}
			w.res.Path = path
			w.res.Found = true

			return w.res, nil
		}
	}
	// queue drained without dequeuing the end: no path exists
	if w.opts.FullTraversal {
		_, w.res.Found = w.res.Depth[m.End()]
	}

	return w.res, nil
}

// newWalker validates input, applies options, and seeds the frontier
// with the start cell (visited, no predecessor).
func newWalker(m *maze.Maze, opts []Option) (*walker, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := m.Width() * m.Height()
	visited := make([][]bool, m.Height())
	for r := range visited {
		visited[r] = make([]bool, m.Width())
	}
	w := &walker{
		m:       m,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: visited,
		res: &Result{
			Order:  make([]maze.Cell, 0, n),
			Depth:  make(map[maze.Cell]int, n),
			Parent: make(map[maze.Cell]maze.Cell, n),
			start:  m.Start(),
		},
	}
	w.visited[m.Start().Row][m.Start().Col] = true
	w.res.Depth[m.Start()] = 0
	w.opts.OnEnqueue(m.Start(), 0)
	w.queue = append(w.queue, queueItem{cell: m.Start(), depth: 0})

	return w, nil
}

// step performs one expansion: dequeue the frontier head, record it, and
// — unless it is the end cell — enqueue its unvisited open neighbors in
// the fixed Up/Right/Down/Left order. The end cell is never expanded;
// the search is complete the moment it pops. Callers must not invoke
// step on an empty queue or after done.
func (w *walker) step() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.cell, item.depth)
	w.res.Order = append(w.res.Order, item.cell)

	if item.cell == w.m.End() && !w.opts.FullTraversal {
		w.done = true

		return item
	}

	for _, d := range maze.Directions() {
		if !w.m.Grid().Open(item.cell, d) {
			continue
		}
		n, _ := w.m.Grid().Neighbor(item.cell, d)
		if w.visited[n.Row][n.Col] {
			continue
		}
		w.visited[n.Row][n.Col] = true
		w.res.Depth[n] = item.depth + 1
		w.res.Parent[n] = item.cell
		w.opts.OnEnqueue(n, item.depth+1)
		w.queue = append(w.queue, queueItem{cell: n, depth: item.depth + 1})
	}

	return item
}
