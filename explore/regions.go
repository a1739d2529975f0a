package explore

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/internal/bitgrid"
)

// FloodFill counts every cell reachable from start when no position is
// rejected; on a grid this is the whole grid.
// Returns ErrGridNil or ErrStartOutOfBounds.
// Complexity: O(W×H).
func FloodFill[T comparable](g *grid.Grid[T], start grid.Position) (int, error) {
	e, err := New(g, start, Accept)
	if err != nil {
		return 0, err
	}
	n := 0
	for range e.All() {
		n++
	}

	return n, nil
}

// Reachable collects the positions produced by exploring g from start
// under accept. On error the returned set is empty but usable.
// Complexity: O(W×H) time, O(R) memory for R reachable positions.
func Reachable[T comparable](g *grid.Grid[T], start grid.Position, accept Predicate) (mapset.Set[grid.Position], error) {
	set := mapset.New[grid.Position]()
	e, err := New(g, start, accept)
	if err != nil {
		return set, err
	}
	for s := range e.All() {
		set.Put(s.Pos)
	}

	return set, nil
}

// Regions partitions g into maximal 4-connected groups of cells whose values
// satisfy same with the group's first cell. Groups are returned in row-major
// order of their first cell; each group lists positions in breadth-first
// order from that cell. A cell for which same(v, v) is false forms no group.
//
// All groups share one visited plane. Only cells claimed by a group are
// marked, so a cell rejected by one group stays available to the next.
//
// Returns ErrGridNil for a nil grid.
// Complexity: O(W×H) time, Memory: O(W×H/64) plus the output.
func Regions[T comparable](g *grid.Grid[T], same func(a, b T) bool) ([][]grid.Position, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if same == nil {
		same = func(a, b T) bool { return a == b }
	}
	size := g.Size()
	seen := bitgrid.New(size.Width, size.Height)
	frontier := queue.New[grid.Position]()
	var regions [][]grid.Position

	for origin, v := range g.Cells() {
		if seen.Test(origin.X, origin.Y) || !same(v, v) {
			continue
		}
		seen.Set(origin.X, origin.Y)
		frontier.Enqueue(origin)

		var region []grid.Position
		for !frontier.Empty() {
			p := frontier.Dequeue()
			region = append(region, p)
			for _, d := range offsets {
				n := p.Add(d[0], d[1])
				if !size.Contains(n) || seen.Test(n.X, n.Y) || !same(v, g.Get(n)) {
					continue
				}
				seen.Set(n.X, n.Y)
				frontier.Enqueue(n)
			}
		}
		regions = append(regions, region)
	}

	return regions, nil
}
