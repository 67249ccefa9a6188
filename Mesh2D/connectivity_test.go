package Mesh2D

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/lsmesh/types"
)

func TestNodeCoordinates(t *testing.T) {
	m := NewMesh(3, 2, false)
	VX, VY := m.NodeCoordinates()
	assert.Equal(t, m.NumNodes(), VX.Len())
	assert.Equal(t, m.NumNodes(), VY.Len())
	assert.Equal(t, 0., VX.Min())
	assert.Equal(t, 3., VX.Max())
	assert.Equal(t, 2., VY.Max())
	for i := 0; i < m.NumNodes(); i++ {
		assert.Equal(t, m.Node(i).Coord.X, VX.AtVec(i))
		assert.Equal(t, m.Node(i).Coord.Y, VY.AtVec(i))
	}
	// Callers own the returned storage
	VX.DataP[0] = 99
	assert.Equal(t, 0., m.Node(0).Coord.X)
}

func TestEToV(t *testing.T) {
	m := NewMesh(3, 2, true)
	EToV := m.EToV()
	nr, nc := EToV.Dims()
	assert.Equal(t, m.NumElements(), nr)
	assert.Equal(t, 4, nc)
	for k := 0; k < m.NumElements(); k++ {
		for c, node := range m.Element(k).Nodes {
			assert.Equal(t, float64(node), EToV.At(k, c))
		}
	}
	assert.True(t, EToV.IsReadOnly())
	assert.Panics(t, func() { EToV.Set(0, 0, 1) })
	// Built once
	assert.Same(t, &EToV.DataP[0], &m.EToV().DataP[0])
}

func TestNodeElementIncidence(t *testing.T) {
	for _, periodic := range []bool{false, true} {
		m := NewMesh(4, 3, periodic)
		inc := m.NodeElementIncidence()
		nr, nc := inc.Dims()
		assert.Equal(t, m.NumNodes(), nr)
		assert.Equal(t, m.NumElements(), nc)
		assert.Equal(t, 4*m.NumElements(), inc.NNZ())
		for i := 0; i < m.NumNodes(); i++ {
			assert.Equal(t, m.NodeElements(i), inc.RowIndices(i))
		}
		assert.Equal(t, 1., inc.At(m.Element(5).Nodes[types.TopLeft], 5))
		assert.Equal(t, 0., inc.At(0, 5))
	}
}

func TestEdges(t *testing.T) {
	for _, dims := range testDims {
		width, height := dims[0], dims[1]
		m := NewMesh(width, height, false)
		edges := m.Edges()
		assert.Equal(t, width*(height+1)+height*(width+1), len(edges))
		for i, ek := range edges {
			if i > 0 {
				assert.True(t, edges[i-1] < ek)
			}
			verts := ek.GetVertices(false)
			a, b := m.Node(verts[0]).Coord, m.Node(verts[1]).Coord
			// Every edge joins axis neighbours
			dist := (a.X - b.X) + (a.Y - b.Y)
			if dist < 0 {
				dist = -dist
			}
			assert.Equal(t, 1., dist)
		}
	}
	{ // Unit mesh
		m := NewMesh(1, 1, false)
		assert.Equal(t, []types.EdgeKey{
			types.NewEdgeKey([2]int{0, 1}),
			types.NewEdgeKey([2]int{0, 2}),
			types.NewEdgeKey([2]int{1, 3}),
			types.NewEdgeKey([2]int{2, 3}),
		}, m.Edges())
	}
}
