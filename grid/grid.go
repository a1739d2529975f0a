// Package grid provides a dense, row-major 2-D container generic over its
// cell type. It supports:
//
//   - Construction from a fill value, from rows, or from line-oriented text
//   - O(1) bounded Get/Set
//   - Row-major linear search (Find, FindBy)
//   - Restartable lazy row, column and cell sequences
//   - Independent deep copies via Clone
//
// Access outside the grid is a precondition violation and panics; parse
// failures are reported as errors.
package grid

import (
	"fmt"
)

// Grid is a width×height block of cells stored in one flat buffer.
// Invariant: len(cells) == size.Width*size.Height.
// A Grid is not safe for concurrent mutation.
type Grid[T comparable] struct {
	size  Size
	cells []T
}

// New builds a grid of the given size with every cell set to fill.
// Panics if width or height is not positive.
// Complexity: O(W×H) time and memory.
func New[T comparable](size Size, fill T) *Grid[T] {
	if size.Width <= 0 || size.Height <= 0 {
		panic(fmt.Sprintf("grid: invalid size %dx%d", size.Width, size.Height))
	}
	cells := make([]T, size.Area())
	for i := range cells {
		cells[i] = fill
	}

	return &Grid[T]{size: size, cells: cells}
}

// NewZero builds a grid of the given size filled with T's zero value.
func NewZero[T comparable](size Size) *Grid[T] {
	var zero T
	return New(size, zero)
}

// FromRows builds a grid from equal-length rows. The input is copied.
// Returns ErrEmptyGrid if rows is empty, ErrEmptyRow if any row is empty,
// ErrNonRectangular if row lengths differ.
// Complexity: O(W×H).
func FromRows[T comparable](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for y, row := range rows {
		if len(row) == 0 {
			return nil, fmt.Errorf("%w: row %d", ErrEmptyRow, y)
		}
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	cells := make([]T, 0, w*len(rows))
	for _, row := range rows {
		cells = append(cells, row...)
	}

	return &Grid[T]{size: Size{Width: w, Height: len(rows)}, cells: cells}, nil
}

// Size returns the grid dimensions.
func (g *Grid[T]) Size() Size {
	return g.size
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int {
	return g.size.Width
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int {
	return g.size.Height
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Position) bool {
	return g.size.Contains(p)
}

// Index maps p to its row-major buffer index: Y*Width + X.
// Complexity: O(1).
func (g *Grid[T]) Index(p Position) int {
	return p.Y*g.size.Width + p.X
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid[T]) Coordinate(idx int) Position {
	return Position{X: idx % g.size.Width, Y: idx / g.size.Width}
}

// Get returns the cell at p. Panics if p is out of bounds.
// Complexity: O(1).
func (g *Grid[T]) Get(p Position) T {
	g.mustContain(p)
	return g.cells[g.Index(p)]
}

// Set stores v at p. Panics if p is out of bounds.
// Complexity: O(1).
func (g *Grid[T]) Set(p Position, v T) {
	g.mustContain(p)
	g.cells[g.Index(p)] = v
}

// mustContain panics with a wrapped ErrOutOfBounds when p is outside the grid.
// Without it an X overflow would silently alias the next row.
func (g *Grid[T]) mustContain(p Position) {
	if !g.size.Contains(p) {
		panic(fmt.Errorf("%w: %v not in %dx%d", ErrOutOfBounds, p, g.size.Width, g.size.Height))
	}
}

// Find returns the first position holding v in row-major order.
// Complexity: O(W×H).
func (g *Grid[T]) Find(v T) (Position, bool) {
	for i, c := range g.cells {
		if c == v {
			return g.Coordinate(i), true
		}
	}

	return Position{}, false
}

// FindBy returns the first position, in row-major order, whose value
// satisfies match.
// Complexity: O(W×H).
func (g *Grid[T]) FindBy(match func(T) bool) (Position, bool) {
	for i, c := range g.cells {
		if match(c) {
			return g.Coordinate(i), true
		}
	}

	return Position{}, false
}

// Clone returns a deep copy that shares no storage with g.
// Complexity: O(W×H).
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)

	return &Grid[T]{size: g.size, cells: cells}
}

// Equal reports whether g and other have the same size and cells.
func (g *Grid[T]) Equal(other *Grid[T]) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}

	return true
}
