package maze

import "fmt"

// Grid owns a rectangular height×width matrix of per-cell wall records.
// Each record holds four flags indexed by Direction, true meaning "wall
// present, no passage". A fresh Grid is fully walled; carving is the only
// sanctioned mutation, and walls stay symmetric throughout: the two
// halves of an edge are always toggled together.
type Grid struct {
	width, height int
	walls         [][][dirCount]bool
}

// NewGrid constructs a fully walled width×height grid.
// Returns ErrNonPositiveSize when either dimension is below one.
// Complexity: O(W×H) time and memory.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrNonPositiveSize, width, height)
	}
	walls := make([][][dirCount]bool, height)
	for r := 0; r < height; r++ {
		walls[r] = make([][dirCount]bool, width)
		for c := 0; c < width; c++ {
			walls[r][c] = [dirCount]bool{true, true, true, true}
		}
	}

	return &Grid{width: width, height: height, walls: walls}, nil
}

// Width returns the number of columns. Complexity: O(1).
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows. Complexity: O(1).
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within [0,height)×[0,width).
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// Neighbor returns the cell one step from c in direction d and whether
// that cell is in bounds. Complexity: O(1).
func (g *Grid) Neighbor(c Cell, d Direction) (Cell, bool) {
	dr, dc := d.Delta()
	n := Cell{Row: c.Row + dr, Col: c.Col + dc}

	return n, g.InBounds(n)
}

// WallPresent reports whether cell c has a wall on side d.
// Returns ErrOutOfBounds if c lies outside the grid.
// Complexity: O(1).
func (g *Grid) WallPresent(c Cell, d Direction) (bool, error) {
	if !g.InBounds(c) {
		return false, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}

	return g.walls[c.Row][c.Col][d], nil
}

// RemoveWall opens the passage from c toward d, clearing both the flag on
// c and the opposite flag on the neighbor across the shared edge, so wall
// symmetry holds after every mutation. Returns ErrOutOfBounds if c or the
// reached neighbor lies outside the grid; for trusted carvers that is an
// invariant violation and must propagate, never be swallowed.
// Complexity: O(1).
func (g *Grid) RemoveWall(c Cell, d Direction) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	n, ok := g.Neighbor(c, d)
	if !ok {
		return fmt.Errorf("%w: neighbor %s of %s", ErrOutOfBounds, n, c)
	}
	g.walls[c.Row][c.Col][d] = false
	g.walls[n.Row][n.Col][d.Opposite()] = false

	return nil
}

// Open reports whether the passage from c toward d is traversable: the
// neighbor is in bounds and no wall separates the two cells. Out-of-bounds
// c reads as closed, so traversal loops need no separate bounds branch.
// Complexity: O(1).
func (g *Grid) Open(c Cell, d Direction) bool {
	if !g.InBounds(c) {
		return false
	}
	if _, ok := g.Neighbor(c, d); !ok {
		return false
	}

	return !g.walls[c.Row][c.Col][d]
}

// PassageCount returns the number of open passages (edges of the passage
// graph), counting each carved edge once. A perfect maze over W×H cells
// holds exactly W×H−1. Complexity: O(W×H).
func (g *Grid) PassageCount() int {
	n := 0
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			// Count Right and Down only; Up/Left are the same edges
			// seen from the other side.
			if !g.walls[r][c][Right] && c+1 < g.width {
				n++
			}
			if !g.walls[r][c][Down] && r+1 < g.height {
				n++
			}
		}
	}

	return n
}

// CloneWalls returns a deep copy of the wall matrix, indexed
// [row][col][Direction]. External collaborators (renderers, serializers)
// read this snapshot; the Grid itself is never handed out mutably.
// Complexity: O(W×H) time and memory.
func (g *Grid) CloneWalls() [][][dirCount]bool {
	out := make([][][dirCount]bool, g.height)
	for r := 0; r < g.height; r++ {
		out[r] = make([][dirCount]bool, g.width)
		copy(out[r], g.walls[r])
	}

	return out
}

// Index maps a cell to its row-major index: row*Width + col.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.width + c.Col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.width, Col: idx % g.width}
}
