package solve_test

import (
	"testing"

	"github.com/katalvlaran/lvlmaze/carve"
	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/solve"
)

// benchMaze carves a deterministic n×n maze once for all iterations.
func benchMaze(b *testing.B, n int) *maze.Maze {
	b.Helper()
	m, err := maze.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	if err := carve.Carve(m, carve.WithSeed(42)); err != nil {
		b.Fatalf("setup Carve failed: %v", err)
	}

	return m
}

// BenchmarkSolve measures one-shot BFS over a carved 100×100 maze.
// Complexity: O(W×H).
func BenchmarkSolve(b *testing.B) {
	m := benchMaze(b, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solve.Solve(m); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_FullTraversal measures the exhaustive distance field.
func BenchmarkSolve_FullTraversal(b *testing.B) {
	m := benchMaze(b, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solve.Solve(m, solve.WithFullTraversal()); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkStepper measures the stepwise driver including its per-step
// snapshot copies, the price visualizers pay for isolation.
func BenchmarkStepper(b *testing.B) {
	m := benchMaze(b, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := solve.NewStepper(m)
		if err != nil {
			b.Fatalf("NewStepper failed: %v", err)
		}
		for {
			if _, ok := s.Step(); !ok {
				break
			}
		}
	}
}
