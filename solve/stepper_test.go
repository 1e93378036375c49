package solve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/carve"
	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/solve"
)

func TestNewStepper_NilMaze(t *testing.T) {
	s, err := solve.NewStepper(nil)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, solve.ErrNilMaze)
}

// TestStepper_Snake drives the corridor one expansion at a time and pins
// every yielded state.
func TestStepper_Snake(t *testing.T) {
	m := buildSnake(t)
	s, err := solve.NewStepper(m)
	require.NoError(t, err)

	_, has := s.Last()
	assert.False(t, has, "no state before the first Step")

	for i, want := range snakeOrder {
		step, ok := s.Step()
		require.True(t, ok, "step %d", i)
		assert.Equal(t, want, step.Cell, "step %d cell", i)
		assert.Equal(t, i, step.Depth, "step %d depth", i)
		assert.Equal(t, i == len(snakeOrder)-1, step.Done, "Done only on the end cell")
		assert.True(t, step.Visited[want.Row][want.Col], "yielded cell marked visited")
	}

	// the end was yielded; the protocol is over
	_, ok := s.Step()
	assert.False(t, ok, "no step after the end cell pops")
	assert.True(t, s.Found())

	last, has := s.Last()
	require.True(t, has)
	assert.Equal(t, m.End(), last.Cell)
}

// TestStepper_MatchesSolve: collecting stepped cells must reproduce the
// synchronous dequeue order exactly, cell for cell, on a carved maze.
func TestStepper_MatchesSolve(t *testing.T) {
	m, err := maze.New(8, 8)
	require.NoError(t, err)
	require.NoError(t, carve.Carve(m, carve.WithSeed(99)))

	var syncOrder []maze.Cell
	_, err = solve.Solve(m, solve.WithOnDequeue(func(c maze.Cell, _ int) {
		syncOrder = append(syncOrder, c)
	}))
	require.NoError(t, err)

	s, err := solve.NewStepper(m)
	require.NoError(t, err)
	var stepOrder []maze.Cell
	for {
		step, ok := s.Step()
		if !ok {
			break
		}
		stepOrder = append(stepOrder, step.Cell)
	}

	assert.Equal(t, syncOrder, stepOrder, "stepwise and synchronous drivers share one expansion rule")
	assert.True(t, s.Found())
	assert.Equal(t, m.End(), stepOrder[len(stepOrder)-1])
}

// TestStepper_SnapshotIsolation: a yielded snapshot must never change as
// the search continues.
func TestStepper_SnapshotIsolation(t *testing.T) {
	m := buildSnake(t)
	s, err := solve.NewStepper(m)
	require.NoError(t, err)

	first, ok := s.Step()
	require.True(t, ok)
	countVisited := func(v [][]bool) int {
		n := 0
		for _, row := range v {
			for _, b := range row {
				if b {
					n++
				}
			}
		}

		return n
	}
	// after the first expansion: start plus its one corridor neighbor
	require.Equal(t, 2, countVisited(first.Visited))
	require.Len(t, first.Parent, 1)

	for {
		if _, ok := s.Step(); !ok {
			break
		}
	}

	assert.Equal(t, 2, countVisited(first.Visited), "old visited snapshot mutated by later steps")
	assert.Len(t, first.Parent, 1, "old parent snapshot mutated by later steps")
}

// TestStepper_EndYieldedButNotExpanded: the final snapshot must not
// contain anything enqueued from the end cell.
func TestStepper_EndYieldedButNotExpanded(t *testing.T) {
	// three-cell corridor with the end mid-corridor, so the end has a
	// neighbor the search has not seen when it pops
	m, err := maze.New(3, 1, maze.WithEnd(maze.Cell{Row: 0, Col: 1}))
	require.NoError(t, err)
	open(t, m, maze.Cell{Row: 0, Col: 0}, maze.Right)
	open(t, m, maze.Cell{Row: 0, Col: 1}, maze.Right)

	s, err := solve.NewStepper(m)
	require.NoError(t, err)

	first, ok := s.Step()
	require.True(t, ok)
	assert.False(t, first.Done)

	second, ok := s.Step()
	require.True(t, ok)
	assert.True(t, second.Done, "middle cell is the end")
	// (0,2) was enqueued by the end's predecessor? No: only (0,1) saw it,
	// and (0,1) popped as the end without expanding. So (0,2) stays
	// untouched in both snapshots.
	assert.False(t, second.Visited[0][2], "end cell neighbors must not be expanded")

	_, ok = s.Step()
	assert.False(t, ok)
}

// TestStepper_NoPath drains the frontier without ever reporting Found.
func TestStepper_NoPath(t *testing.T) {
	m := buildIsolatedEnd(t)
	s, err := solve.NewStepper(m)
	require.NoError(t, err)

	steps := 0
	for {
		step, ok := s.Step()
		if !ok {
			break
		}
		steps++
		assert.False(t, step.Done)
	}
	assert.Equal(t, 6, steps, "every reachable cell is dequeued once")
	assert.False(t, s.Found())

	res := s.Result()
	assert.False(t, res.Found)
	_, err = res.PathTo(m.End())
	assert.ErrorIs(t, err, solve.ErrMissingParent)
}

// TestStepper_ResultPathTo reconstructs from accumulated state after
// stepping to completion, the way an external observer would.
func TestStepper_ResultPathTo(t *testing.T) {
	m := buildSnake(t)
	s, err := solve.NewStepper(m)
	require.NoError(t, err)
	for {
		step, ok := s.Step()
		if !ok || step.Done {
			break
		}
	}
	require.True(t, s.Found())

	path, err := s.Result().PathTo(m.End())
	require.NoError(t, err)
	assert.Equal(t, snakeOrder, path)
	assertValidPath(t, m, path)
}
