// Package carve defines tunable options and error definitions for
// spanning-tree maze generation.
package carve

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/lvlmaze/maze"
)

// Sentinel errors for carving.
var (
	// ErrNilMaze is returned if a nil maze pointer is passed.
	ErrNilMaze = errors.New("carve: maze is nil")
)

// defaultSeed feeds the RNG when neither WithSeed nor WithRand is given,
// so even unconfigured carving is reproducible run-to-run.
const defaultSeed int64 = 1

// Option configures carving behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize generation.
type Options struct {
	// Rand drives the uniform choice among unvisited neighbors.
	// Never process-global: inject a source to replay a maze.
	Rand *rand.Rand

	// OnCarve is called once per removed wall, with the cell the carver
	// stood on and the newly reached cell. Fires before the walk moves on.
	OnCarve func(from, to maze.Cell)

	// OnBacktrack is called each time a dead end pops off the stack.
	OnBacktrack func(c maze.Cell)
}

// DefaultOptions returns Options with deterministic defaults:
//   - RNG seeded with a fixed constant
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Rand:        rand.New(rand.NewSource(defaultSeed)),
		OnCarve:     func(maze.Cell, maze.Cell) {},
		OnBacktrack: func(maze.Cell) {},
	}
}

// WithRand sets a caller-supplied RNG. Nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithOnCarve registers a callback fired per carved passage.
func WithOnCarve(fn func(from, to maze.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCarve = fn
		}
	}
}

// WithOnBacktrack registers a callback fired per dead-end pop.
func WithOnBacktrack(fn func(c maze.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBacktrack = fn
		}
	}
}
