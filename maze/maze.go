package maze

import "fmt"

// Maze owns the grid together with its dimensions and the start and end
// cells. Start and end are fixed at construction; the grid is mutated
// only by a generator and is read-only for the rest of the maze's life.
type Maze struct {
	grid  *Grid
	start Cell
	end   Cell
}

// New constructs a fully walled width×height maze. Start defaults to
// (0,0) and end to the bottom-right corner; override with WithStart and
// WithEnd. Returns ErrNonPositiveSize for degenerate dimensions and
// ErrOutOfBounds when a supplied start or end lies outside the grid.
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) (*Maze, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	o := mazeOptions{
		start: Cell{Row: 0, Col: 0},
		end:   Cell{Row: height - 1, Col: width - 1},
	}
	for _, opt := range opts {
		opt(&o)
	}

	if !grid.InBounds(o.start) {
		return nil, fmt.Errorf("%w: start %s", ErrOutOfBounds, o.start)
	}
	if !grid.InBounds(o.end) {
		return nil, fmt.Errorf("%w: end %s", ErrOutOfBounds, o.end)
	}

	return &Maze{grid: grid, start: o.start, end: o.end}, nil
}

// Grid returns the underlying wall grid. Complexity: O(1).
func (m *Maze) Grid() *Grid { return m.grid }

// Width returns the number of columns. Complexity: O(1).
func (m *Maze) Width() int { return m.grid.Width() }

// Height returns the number of rows. Complexity: O(1).
func (m *Maze) Height() int { return m.grid.Height() }

// Start returns the entry cell. Complexity: O(1).
func (m *Maze) Start() Cell { return m.start }

// End returns the exit cell. Complexity: O(1).
func (m *Maze) End() Cell { return m.end }
