// Package maze defines core types, options, and sentinel errors
// for the maze subpackage of github.com/katalvlaran/lvlmaze.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze operations.
var (
	// ErrNonPositiveSize indicates width or height below one.
	ErrNonPositiveSize = errors.New("maze: width and height must be at least one")
	// ErrOutOfBounds indicates a cell outside the grid extent.
	ErrOutOfBounds = errors.New("maze: cell out of bounds")
)

// Cell identifies one grid position as a (Row, Col) pair, 0-indexed.
// It is a comparable value type, usable as a map key and as node
// identity in the passage graph.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)". Used in error wrapping and tests.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction selects one side of a cell. The four values follow the fixed
// cyclic order Up, Right, Down, Left; every neighbor enumeration in this
// module walks them in exactly that order, which is what makes carving
// and search traversal reproducible.
type Direction uint8

const (
	// Up points toward decreasing row.
	Up Direction = iota
	// Right points toward increasing column.
	Right
	// Down points toward increasing row.
	Down
	// Left points toward decreasing column.
	Left

	// dirCount is the number of directions; sized for wall records.
	dirCount = 4
)

// dirDeltas maps each Direction to its (row, col) step.
var dirDeltas = [dirCount][2]int{
	Up:    {-1, 0},
	Right: {0, 1},
	Down:  {1, 0},
	Left:  {0, -1},
}

// dirNames backs Direction.String.
var dirNames = [dirCount]string{"Up", "Right", "Down", "Left"}

// Opposite returns the direction pointing back across the same edge:
// Up↔Down, Right↔Left. Complexity: O(1).
func (d Direction) Opposite() Direction {
	return (d + dirCount/2) % dirCount
}

// Delta returns the (row, col) step of one move in direction d.
// Complexity: O(1).
func (d Direction) Delta() (dr, dc int) {
	return dirDeltas[d][0], dirDeltas[d][1]
}

// String returns the direction name, or "Direction(n)" for invalid values.
func (d Direction) String() string {
	if d >= dirCount {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}

	return dirNames[d]
}

// Directions returns the four directions in their fixed enumeration order.
// The slice is freshly allocated; callers may not assume sharing.
func Directions() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// Option configures Maze construction via functional arguments.
type Option func(*mazeOptions)

// mazeOptions holds start/end overrides collected before validation.
type mazeOptions struct {
	start    Cell
	end      Cell
	endSet   bool
	startSet bool
}

// WithStart places the maze entry at c. Default is (0,0).
// New returns ErrOutOfBounds if c lies outside the grid.
func WithStart(c Cell) Option {
	return func(o *mazeOptions) {
		o.start = c
		o.startSet = true
	}
}

// WithEnd places the maze exit at c. Default is the bottom-right corner.
// New returns ErrOutOfBounds if c lies outside the grid.
func WithEnd(c Cell) Option {
	return func(o *mazeOptions) {
		o.end = c
		o.endSet = true
	}
}
