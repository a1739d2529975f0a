// Package explore performs lazy, pull-based breadth-first search over the
// 4-connected neighbourhood of a grid.Grid.
//
// An Explorer owns its frontier queue and a packed visited plane. Each call
// to Next produces the oldest frontier entry and discovers its unvisited
// neighbours (west, east, north, south). A neighbour is marked visited
// before the Predicate runs, so a rejection is permanent for the lifetime
// of the Explorer. Never share an Explorer between two different predicates.
//
// Exploration is ACTIVE while the frontier is non-empty and EXHAUSTED once
// it drains. Callers may stop pulling at any point; nothing needs closing.
package explore

import (
	"fmt"
	"iter"

	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/internal/bitgrid"
)

// offsets lists the neighbour deltas in discovery order: west, east, north, south.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Explorer encapsulates mutable breadth-first state over a read-only grid.
// The grid must not be mutated while the Explorer is in use.
type Explorer[T comparable] struct {
	grid     *grid.Grid[T]
	size     grid.Size
	accept   Predicate
	opts     Options
	frontier *queue.Queue[Step]
	visited  *bitgrid.Bits
}

// New creates an Explorer rooted at start. The start is marked visited and
// enqueued only if accept(start, start, 0) holds; a rejected start is never
// produced. A nil accept behaves like Accept.
//
// Returns ErrGridNil, ErrStartOutOfBounds or ErrOptionViolation.
// Complexity: O(W×H/64) for the visited plane.
func New[T comparable](g *grid.Grid[T], start grid.Position, accept Predicate, opts ...Option) (*Explorer[T], error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	size := g.Size()
	if !size.Contains(start) {
		return nil, fmt.Errorf("%w: %v not in %dx%d", ErrStartOutOfBounds, start, size.Width, size.Height)
	}
	if accept == nil {
		accept = Accept
	}

	e := &Explorer[T]{
		grid:     g,
		size:     size,
		accept:   accept,
		opts:     o,
		frontier: queue.New[Step](),
		visited:  bitgrid.New(size.Width, size.Height),
	}
	e.discover(start, start, 0)

	return e, nil
}

// MustNew is New for callers that have already validated their inputs.
// It panics on any error.
func MustNew[T comparable](g *grid.Grid[T], start grid.Position, accept Predicate, opts ...Option) *Explorer[T] {
	e, err := New(g, start, accept, opts...)
	if err != nil {
		panic(err)
	}

	return e
}

// discover marks pos visited and enqueues it when it passes the depth limit
// and the predicate. Already visited positions are ignored.
func (e *Explorer[T]) discover(pos, parent grid.Position, dist int) {
	if !e.visited.TestAndSet(pos.X, pos.Y) {
		return
	}
	if e.opts.MaxDepth > 0 && dist > e.opts.MaxDepth {
		return
	}
	if !e.accept(pos, parent, dist) {
		return
	}
	s := Step{Pos: pos, Parent: parent, Dist: dist}
	e.opts.OnEnqueue(s)
	e.frontier.Enqueue(s)
}

// Next produces the next position in breadth-first order. It returns false
// once the frontier is empty; every later call also returns false.
// Complexity: O(1) amortised per call.
func (e *Explorer[T]) Next() (Step, bool) {
	if e.frontier.Empty() {
		return Step{}, false
	}
	s := e.frontier.Dequeue()
	for _, d := range offsets {
		n := s.Pos.Add(d[0], d[1])
		if e.size.Contains(n) {
			e.discover(n, s.Pos, s.Dist+1)
		}
	}
	e.opts.OnVisit(s)

	return s, true
}

// All drains the Explorer as a sequence. The sequence is not restartable:
// ranging over it again continues where the previous range stopped.
func (e *Explorer[T]) All() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for {
			s, ok := e.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// Exhausted reports whether the frontier is empty.
func (e *Explorer[T]) Exhausted() bool {
	return e.frontier.Empty()
}

// Visited reports whether pos has been discovered, accepted or not.
// Positions outside the grid are never visited.
func (e *Explorer[T]) Visited(pos grid.Position) bool {
	return e.size.Contains(pos) && e.visited.Test(pos.X, pos.Y)
}

// Grid returns the grid being explored.
func (e *Explorer[T]) Grid() *grid.Grid[T] {
	return e.grid
}
