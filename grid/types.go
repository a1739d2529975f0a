// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/katalvlaran/gridwalk.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates the input has no rows.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrEmptyRow indicates a row without any cells.
	ErrEmptyRow = errors.New("grid: rows must not be empty")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrParseCell indicates a cell token that the cell parser rejected.
	ErrParseCell = errors.New("grid: cell token cannot be parsed")
	// ErrOutOfBounds is the panic value (wrapped) for Get/Set outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
)

// Position is a zero-based (X, Y) cell coordinate. X grows to the east,
// Y grows to the south.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns p shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String renders p as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size holds grid dimensions.
type Size struct {
	Width, Height int
}

// Area returns Width×Height, the number of cells.
func (s Size) Area() int {
	return s.Width * s.Height
}

// Contains reports whether p lies within 0≤X<Width, 0≤Y<Height.
// Complexity: O(1).
func (s Size) Contains(p Position) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// CellParser turns one textual token into a cell value.
type CellParser[T comparable] func(token string) (T, error)
