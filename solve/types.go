// Package solve provides tunable options and error definitions for
// breadth-first maze search.
package solve

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvlmaze/maze"
)

// Sentinel errors for search and reconstruction.
var (
	// ErrNilMaze is returned if a nil maze pointer is passed.
	ErrNilMaze = errors.New("solve: maze is nil")

	// ErrMissingParent is returned when path reconstruction meets a cell
	// absent from the parent map before reaching the start: the search
	// never routed through it, and reconstructing was a caller error.
	ErrMissingParent = errors.New("solve: cell missing from parent map")
)

// Option configures search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation of the synchronous solver; the stepwise
	// driver is caller-paced, so its cancellation is simply not calling
	// Step again.
	Ctx context.Context

	// OnEnqueue is called when a cell joins the frontier, with its depth.
	OnEnqueue func(c maze.Cell, depth int)

	// OnDequeue is called when a cell pops off the frontier, before any
	// of its neighbors are examined.
	OnDequeue func(c maze.Cell, depth int)

	// FullTraversal, when set, ignores the end cell and expands the whole
	// reachable component, yielding a complete distance field.
	FullTraversal bool
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op hooks
//   - early exit at the end cell (FullTraversal off).
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(maze.Cell, int) {},
		OnDequeue: func(maze.Cell, int) {},
	}
}

// WithContext sets a custom context for cancellation. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run as a cell joins the frontier.
func WithOnEnqueue(fn func(c maze.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run as a cell leaves the frontier.
func WithOnDequeue(fn func(c maze.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithFullTraversal expands every reachable cell instead of stopping at
// the end, turning the result's Depth map into a full distance field.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result holds the outcome of a search:
//   - Order: cells dequeued, in dequeue sequence.
//   - Depth: map from cell to its distance (in passages) from the start.
//   - Parent: map from cell to its predecessor in the BFS tree; the start
//     cell has no entry — absence is the "no predecessor" marker, read
//     with the comma-ok idiom.
//   - Path: the shortest start→end path inclusive, nil when none exists.
//   - Found: whether the end cell was reached.
type Result struct {
	Order  []maze.Cell
	Depth  map[maze.Cell]int
	Parent map[maze.Cell]maze.Cell
	Path   []maze.Cell
	Found  bool

	start maze.Cell
}

// PathTo reconstructs the start→dest path from this result's parent map.
// Returns ErrMissingParent if the search never reached dest.
func (r *Result) PathTo(dest maze.Cell) ([]maze.Cell, error) {
	return ReconstructPath(r.Parent, r.start, dest)
}

// Step is one yielded state of the stepwise driver: the just-dequeued
// cell with its depth, whether it is the end cell, and deep snapshots of
// the visited matrix and parent map as of this step. Snapshots are the
// caller's to keep; later steps never mutate them.
type Step struct {
	Cell    maze.Cell
	Depth   int
	Done    bool
	Visited [][]bool
	Parent  map[maze.Cell]maze.Cell
}
