package types

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeKey(t *testing.T) {
	{ // Packed int for edge labeling
		en := NewEdgeKey([2]int{1, 0})
		assert.Equal(t, EdgeKey(1<<32), en)
		assert.Equal(t, [2]int{0, 1}, en.GetVertices(false))
		assert.Equal(t, [2]int{1, 0}, en.GetVertices(true))

		en = NewEdgeKey([2]int{0, 1})
		assert.Equal(t, EdgeKey(1<<32), en)

		en = NewEdgeKey([2]int{100, 1})
		assert.Equal(t, EdgeKey(100*(1<<32)+1), en)
		assert.Equal(t, [2]int{1, 100}, en.GetVertices(false))

		en = NewEdgeKey([2]int{100, 100001})
		assert.Equal(t, EdgeKey(100001*(1<<32)+100), en)
		assert.Equal(t, [2]int{100, 100001}, en.GetVertices(false))

		// Maximum indices
		en = NewEdgeKey([2]int{1<<32 - 1, 1<<32 - 1})
		assert.Equal(t, EdgeKey(1<<64-1), en)
		assert.Equal(t, [2]int{1<<32 - 1, 1<<32 - 1}, en.GetVertices(false))
	}
	{ // Out of range vertices
		assert.Panics(t, func() { NewEdgeKey([2]int{-1, 2}) })
		assert.Panics(t, func() { NewEdgeKey([2]int{0, 1 << 32}) })
	}
	{ // Sorting orders by the upper vertex, then the lower
		keys := EdgeKeySlice{
			NewEdgeKey([2]int{3, 4}),
			NewEdgeKey([2]int{0, 4}),
			NewEdgeKey([2]int{1, 2}),
		}
		sort.Sort(keys)
		assert.Equal(t, [2]int{1, 2}, keys[0].GetVertices(false))
		assert.Equal(t, [2]int{0, 4}, keys[1].GetVertices(false))
		assert.Equal(t, [2]int{3, 4}, keys[2].GetVertices(false))
	}
}

func TestDirection(t *testing.T) {
	names := []string{"Left", "Right", "Down", "Up"}
	for i, dir := range Directions {
		assert.Equal(t, names[i], dir.String())
		assert.Equal(t, dir, dir.Opposite().Opposite())
		assert.NotEqual(t, dir, dir.Opposite())
		dx, dy := dir.Offset()
		ox, oy := dir.Opposite().Offset()
		assert.Equal(t, 1, dx*dx+dy*dy)
		assert.Equal(t, 0, dx+ox)
		assert.Equal(t, 0, dy+oy)
	}
	assert.Equal(t, "Direction(7)", Direction(7).String())
}

func TestCorner(t *testing.T) {
	var (
		names = []string{"BottomLeft", "BottomRight", "TopRight", "TopLeft"}
		signs = [][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	)
	for i, c := range Corners {
		assert.Equal(t, names[i], c.String())
		sx, sy := c.Sign()
		assert.Equal(t, signs[i], [2]float64{sx, sy})
	}
	assert.Equal(t, "Corner(4)", Corner(4).String())
}
