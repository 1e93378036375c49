package solve

import (
	"github.com/katalvlaran/lvlmaze/maze"
)

// Stepper is the resumable face of the BFS engine: each Step call runs
// exactly one frontier expansion and hands back the dequeued cell with
// snapshots of the search state, suspending until the caller asks again.
// It drives the same walker as Solve, so collecting every stepped cell
// reproduces the synchronous dequeue order exactly.
//
// A Stepper holds only plain in-memory state; abandoning one mid-search
// needs no cleanup.
type Stepper struct {
	w    *walker
	last Step
	has  bool
}

// NewStepper prepares a stepwise search from m.Start() toward m.End()
// without performing any expansion yet. Returns ErrNilMaze for nil input.
func NewStepper(m *maze.Maze, opts ...Option) (*Stepper, error) {
	w, err := newWalker(m, opts)
	if err != nil {
		return nil, err
	}

	return &Stepper{w: w}, nil
}

// Step advances the search by one expansion and returns the resulting
// state. The second return is false once no further step exists: the end
// cell was already yielded (it is yielded with Done=true, its neighbors
// never expanded) or the frontier drained with the end unreachable.
// Complexity: O(1) expansion plus O(W×H) for the snapshots.
func (s *Stepper) Step() (Step, bool) {
	if s.w.done || len(s.w.queue) == 0 {
		return Step{}, false
	}

	item := s.w.step()
	s.last = Step{
		Cell:    item.cell,
		Depth:   item.depth,
		Done:    s.w.done,
		Visited: cloneVisited(s.w.visited),
		Parent:  cloneParent(s.w.res.Parent),
	}
	s.has = true

	return s.last, true
}

// Last returns the most recent yielded state; the second return is false
// before the first successful Step.
func (s *Stepper) Last() (Step, bool) {
	return s.last, s.has
}

// Found reports whether the search has reached the end cell: dequeued in
// the default mode, merely discovered under WithFullTraversal.
func (s *Stepper) Found() bool {
	if s.w.opts.FullTraversal {
		_, ok := s.w.res.Depth[s.w.m.End()]

		return ok
	}

	return s.w.done
}

// Result exposes the accumulated search state (order, depths, parents).
// Intended for observers that finished stepping; its Path field is never
// populated here — call PathTo once Found reports true.
func (s *Stepper) Result() *Result {
	s.w.res.Found = s.Found()

	return s.w.res
}

// cloneVisited deep-copies a visited matrix.
func cloneVisited(v [][]bool) [][]bool {
	out := make([][]bool, len(v))
	for r := range v {
		out[r] = make([]bool, len(v[r]))
		copy(out[r], v[r])
	}

	return out
}

// cloneParent deep-copies a parent map.
func cloneParent(p map[maze.Cell]maze.Cell) map[maze.Cell]maze.Cell {
	out := make(map[maze.Cell]maze.Cell, len(p))
	for k, v := range p {
		out[k] = v
	}

	return out
}
