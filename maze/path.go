package maze

import (
	"iter"

	"github.com/katalvlaran/gridwalk/grid"
)

// Path is a one-shot route from begin to end. It stores the backward walk
// end→begin and consumes it from the tail, so positions come out in
// forward order.
type Path struct {
	back []grid.Position
}

// Next returns the next position of the route, begin first and end last.
func (p *Path) Next() (grid.Position, bool) {
	n := len(p.back)
	if n == 0 {
		return grid.Position{}, false
	}
	pos := p.back[n-1]
	p.back = p.back[:n-1]

	return pos, true
}

// Len returns the number of positions not yet consumed.
func (p *Path) Len() int {
	return len(p.back)
}

// Steps returns the number of moves left on the route, Len()-1 for a
// non-empty route.
func (p *Path) Steps() int {
	if len(p.back) == 0 {
		return 0
	}

	return len(p.back) - 1
}

// All consumes the route as a sequence.
func (p *Path) All() iter.Seq[grid.Position] {
	return func(yield func(grid.Position) bool) {
		for {
			pos, ok := p.Next()
			if !ok || !yield(pos) {
				return
			}
		}
	}
}

// Slice returns the positions not yet consumed, in forward order, without
// consuming them.
func (p *Path) Slice() []grid.Position {
	out := make([]grid.Position, len(p.back))
	for i, pos := range p.back {
		out[len(p.back)-1-i] = pos
	}

	return out
}
