// Package maze layers wall-aware exploration, shortest-distance and
// shortest-path queries on top of a character grid.
//
// A wall is any rune chosen by the caller; every other cell is passable.
// Queries report "no route" as a false second result, never as an error.
package maze

import (
	"errors"

	"github.com/katalvlaran/gridwalk/explore"
	"github.com/katalvlaran/gridwalk/grid"
)

// ErrGridNil is returned by New for a nil map.
var ErrGridNil = errors.New("maze: map is nil")

// Maze wraps a character grid. The map is read through Map and must not be
// mutated while a query or an Explorer obtained from Explore is in use.
type Maze struct {
	m *grid.Grid[rune]
}

// New wraps an existing character grid without copying it.
func New(m *grid.Grid[rune]) (*Maze, error) {
	if m == nil {
		return nil, ErrGridNil
	}

	return &Maze{m: m}, nil
}

// Parse builds a maze from text, one rune per cell.
// Errors are those of grid.ParseRunes.
func Parse(text string) (*Maze, error) {
	m, err := grid.ParseRunes(text)
	if err != nil {
		return nil, err
	}

	return &Maze{m: m}, nil
}

// Load is Parse that panics on invalid input.
func Load(text string) *Maze {
	return &Maze{m: grid.LoadRunes(text)}
}

// Map returns the underlying grid.
func (mz *Maze) Map() *grid.Grid[rune] {
	return mz.m
}

// Find returns the first position holding r in row-major order.
func (mz *Maze) Find(r rune) (grid.Position, bool) {
	return mz.m.Find(r)
}

// String renders the map exactly as ParseRunes accepts it.
func (mz *Maze) String() string {
	return grid.Text(mz.m)
}

// Explore starts a breadth-first exploration from start that accepts every
// cell whose value differs from wall. A start on a wall yields nothing.
// Panics if start is outside the map or an option is invalid (for example
// explore.WithMaxDepth(-1)).
func (mz *Maze) Explore(start grid.Position, wall rune, opts ...explore.Option) *explore.Explorer[rune] {
	return explore.MustNew(mz.m, start, func(p, _ grid.Position, _ int) bool {
		return mz.m.Get(p) != wall
	}, opts...)
}

// Distance returns the number of steps on a shortest wall-free route from
// begin to end, or false if end is unreachable.
// Complexity: O(W×H).
func (mz *Maze) Distance(begin, end grid.Position, wall rune) (int, bool) {
	e := mz.Explore(begin, wall)
	for s := range e.All() {
		if s.Pos == end {
			return s.Dist, true
		}
	}

	return 0, false
}

// Path returns a shortest wall-free route from begin to end, or false if
// end is unreachable. The route is recovered from a came-from grid that
// lives only for the duration of the call.
// Complexity: O(W×H) time and memory.
func (mz *Maze) Path(begin, end grid.Position, wall rune) (*Path, bool) {
	cameFrom := grid.New(mz.m.Size(), grid.Position{})
	e := mz.Explore(begin, wall)
	for s := range e.All() {
		cameFrom.Set(s.Pos, s.Parent)
		if s.Pos != end {
			continue
		}
		back := make([]grid.Position, 0, s.Dist+1)
		for p := end; ; p = cameFrom.Get(p) {
			back = append(back, p)
			if p == begin {
				break
			}
		}

		return &Path{back: back}, true
	}

	return nil, false
}
