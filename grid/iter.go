package grid

import (
	"fmt"
	"iter"
)

// Row returns the cells of row y from west to east. Every range over the
// returned sequence starts again at column 0. Panics if y is out of range.
func (g *Grid[T]) Row(y int) iter.Seq[T] {
	if y < 0 || y >= g.size.Height {
		panic(fmt.Errorf("%w: row %d of %d", ErrOutOfBounds, y, g.size.Height))
	}
	return func(yield func(T) bool) {
		base := y * g.size.Width
		for x := 0; x < g.size.Width; x++ {
			if !yield(g.cells[base+x]) {
				return
			}
		}
	}
}

// Column returns the cells of column x from north to south. Restartable
// like Row. Panics if x is out of range.
func (g *Grid[T]) Column(x int) iter.Seq[T] {
	if x < 0 || x >= g.size.Width {
		panic(fmt.Errorf("%w: column %d of %d", ErrOutOfBounds, x, g.size.Width))
	}
	return func(yield func(T) bool) {
		for y := 0; y < g.size.Height; y++ {
			if !yield(g.cells[y*g.size.Width+x]) {
				return
			}
		}
	}
}

// Rows yields one Row sequence per grid row, north to south.
func (g *Grid[T]) Rows() iter.Seq[iter.Seq[T]] {
	return func(yield func(iter.Seq[T]) bool) {
		for y := 0; y < g.size.Height; y++ {
			if !yield(g.Row(y)) {
				return
			}
		}
	}
}

// Columns yields one Column sequence per grid column, west to east.
func (g *Grid[T]) Columns() iter.Seq[iter.Seq[T]] {
	return func(yield func(iter.Seq[T]) bool) {
		for x := 0; x < g.size.Width; x++ {
			if !yield(g.Column(x)) {
				return
			}
		}
	}
}

// Cells yields every (position, value) pair in row-major order.
func (g *Grid[T]) Cells() iter.Seq2[Position, T] {
	return func(yield func(Position, T) bool) {
		for i, c := range g.cells {
			if !yield(g.Coordinate(i), c) {
				return
			}
		}
	}
}
