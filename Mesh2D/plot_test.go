package Mesh2D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriMesh(t *testing.T) {
	m := NewMesh(2, 1, false)
	tMesh := TriMesh(m)
	assert.Equal(t, 2*m.NumNodes(), len(tMesh.XY))
	assert.Equal(t, 2*m.NumElements(), len(tMesh.TriVerts))
	assert.Equal(t, []float32{0, 0, 1, 0, 2, 0, 0, 1, 1, 1, 2, 1}, tMesh.XY)
	assert.Equal(t, [][3]int64{{0, 1, 4}, {0, 4, 3}, {1, 2, 5}, {1, 5, 4}}, tMesh.TriVerts)
	{ // Both triangles of every element are counter-clockwise
		xy := tMesh.XY
		for _, tri := range tMesh.TriVerts {
			ax, ay := xy[2*tri[0]], xy[2*tri[0]+1]
			bx, by := xy[2*tri[1]], xy[2*tri[1]+1]
			cx, cy := xy[2*tri[2]], xy[2*tri[2]+1]
			assert.True(t, (bx-ax)*(cy-ay)-(cx-ax)*(by-ay) > 0)
		}
	}
}

func TestGaussCrossHairs(t *testing.T) {
	m := NewMesh(3, 3, false)
	lines := GaussCrossHairs(m, 0.01)
	// Two segments of four floats per Gauss point
	assert.Equal(t, 4*2*4*m.NumElements(), len(lines))
	gp := m.Element(0).GaussPoints[0]
	assert.InDelta(t, float32(gp.X)-0.01, lines[0], 1.e-6)
	assert.InDelta(t, float32(gp.Y), lines[1], 1.e-6)
}
