package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/explore"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/maze"
)

// deadEnd is a 9×5 maze whose upper corridor branches into a dead end.
const deadEnd = `
#########
#B....#.#
#####...#
#E......#
#########
`

// ends locates the 'B' and 'E' markers of mz.
func ends(t *testing.T, mz *maze.Maze) (grid.Position, grid.Position) {
	t.Helper()
	b, ok := mz.Find('B')
	require.True(t, ok, "no B marker")
	e, ok := mz.Find('E')
	require.True(t, ok, "no E marker")
	return b, e
}

func TestParse(t *testing.T) {
	mz, err := maze.Parse("###\n#.#\n###")
	require.NoError(t, err)
	assert.Equal(t, grid.Size{Width: 3, Height: 3}, mz.Map().Size())
	assert.Equal(t, "###\n#.#\n###", mz.String())

	_, err = maze.Parse("##\n#")
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
	_, err = maze.Parse("")
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	assert.Panics(t, func() { maze.Load("") })
}

func TestNew(t *testing.T) {
	_, err := maze.New(nil)
	assert.ErrorIs(t, err, maze.ErrGridNil)

	m := grid.LoadRunes("#.#")
	mz, err := maze.New(m)
	require.NoError(t, err)
	assert.Same(t, m, mz.Map())
}

func TestExplore(t *testing.T) {
	mz := maze.Load("#####\n#...#\n#####")
	count := func(e *explore.Explorer[rune]) int {
		n := 0
		for range e.All() {
			n++
		}
		return n
	}
	assert.Equal(t, 3, count(mz.Explore(grid.Pos(2, 1), '#')))
	assert.Equal(t, 0, count(mz.Explore(grid.Pos(2, 1), '.')))
	assert.Equal(t, 2, count(mz.Explore(grid.Pos(1, 1), '#', explore.WithMaxDepth(1))))
	assert.Panics(t, func() { mz.Explore(grid.Pos(5, 0), '#') })
	assert.Panics(t, func() { mz.Explore(grid.Pos(2, 1), '#', explore.WithMaxDepth(-1)) })
}

func TestDistance(t *testing.T) {
	cases := []struct {
		name string
		text string
		wall rune
		want int
	}{
		{"around the wall", "#####\n#B#E#\n#...#\n#####", '#', 4},
		{"walls ignored", "#####\n#B#E#\n#...#\n#####", 'X', 2},
		{"two routes", "#######\n#B###E#\n#.#.#.#\n#.....#\n#######", '#', 8},
		{"dead end", deadEnd, '#', 10},
		{"adjacent", "####\n#BE#\n####", '#', 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mz := maze.Load(tc.text)
			b, e := ends(t, mz)
			d, ok := mz.Distance(b, e, tc.wall)
			require.True(t, ok)
			assert.Equal(t, tc.want, d)
		})
	}
}

func TestDistance_Unreachable(t *testing.T) {
	mz := maze.Load("#####\n#B#E#\n#####")
	b, e := ends(t, mz)
	_, ok := mz.Distance(b, e, '#')
	assert.False(t, ok)

	_, ok = mz.Path(b, e, '#')
	assert.False(t, ok)
}

func TestDistance_SameCell(t *testing.T) {
	mz := maze.Load("#.#")
	d, ok := mz.Distance(grid.Pos(1, 0), grid.Pos(1, 0), '#')
	assert.True(t, ok)
	assert.Equal(t, 0, d)

	// A begin on a wall produces nothing, not even itself.
	_, ok = mz.Distance(grid.Pos(0, 0), grid.Pos(0, 0), '#')
	assert.False(t, ok)
}

func TestPath_Adjacent(t *testing.T) {
	mz := maze.Load("####\n#BE#\n####")
	b, e := ends(t, mz)
	path, ok := mz.Path(b, e, '#')
	require.True(t, ok)

	p, ok := path.Next()
	assert.True(t, ok)
	assert.Equal(t, grid.Pos(1, 1), p)
	p, ok = path.Next()
	assert.True(t, ok)
	assert.Equal(t, grid.Pos(2, 1), p)
	_, ok = path.Next()
	assert.False(t, ok)
}

// TestPath_DeadEnd follows the route through the dead-end fixture: every
// hop is a unit move onto an open cell and its length matches Distance.
func TestPath_DeadEnd(t *testing.T) {
	mz := maze.Load(deadEnd)
	b, e := ends(t, mz)
	d, ok := mz.Distance(b, e, '#')
	require.True(t, ok)

	path, ok := mz.Path(b, e, '#')
	require.True(t, ok)
	assert.Equal(t, d+1, path.Len())
	assert.Equal(t, d, path.Steps())

	route := path.Slice()
	assert.Equal(t, d+1, path.Len(), "Slice must not consume")
	assert.Equal(t, b, route[0])
	assert.Equal(t, e, route[len(route)-1])
	for i := 1; i < len(route); i++ {
		dx, dy := route[i].X-route[i-1].X, route[i].Y-route[i-1].Y
		assert.Equal(t, 1, dx*dx+dy*dy, "hop %v→%v", route[i-1], route[i])
		assert.NotEqual(t, '#', mz.Map().Get(route[i]))
	}
	assert.NotContains(t, route, grid.Pos(7, 1), "route must skip the dead end")

	var consumed []grid.Position
	for p := range path.All() {
		consumed = append(consumed, p)
	}
	assert.Equal(t, route, consumed)
	assert.Equal(t, 0, path.Len())
	assert.Equal(t, 0, path.Steps())
	assert.Empty(t, path.Slice())
}

// TestPath_AgreesWithDistance checks edge count == distance for every open
// target of a maze.
func TestPath_AgreesWithDistance(t *testing.T) {
	mz := maze.Load("#######\n#B###E#\n#.#.#.#\n#.....#\n#######")
	b, _ := ends(t, mz)
	for p, v := range mz.Map().Cells() {
		if v == '#' {
			continue
		}
		d, ok := mz.Distance(b, p, '#')
		require.True(t, ok, "target %v", p)
		path, ok := mz.Path(b, p, '#')
		require.True(t, ok, "target %v", p)
		assert.Equal(t, d, path.Steps(), "target %v", p)
	}
}

// TestPath_LeavesMapUntouched verifies queries never write to the map.
func TestPath_LeavesMapUntouched(t *testing.T) {
	mz := maze.Load(deadEnd)
	before := mz.Map().Clone()
	b, e := ends(t, mz)
	_, _ = mz.Path(b, e, '#')
	_, _ = mz.Distance(b, e, '#')
	assert.True(t, before.Equal(mz.Map()))
}
