package Mesh2D

import (
	"time"

	"github.com/notargets/avs/chart2d"
	"github.com/notargets/avs/geometry"
	avsUtils "github.com/notargets/avs/utils"

	"github.com/notargets/lsmesh/utils"
)

// TriMesh splits every quad along its bottom-left to top-right diagonal into
// two counter-clockwise triangles, 2k and 2k+1 for element k
func TriMesh(m *Mesh) (tMesh geometry.TriMesh) {
	tMesh = geometry.TriMesh{
		XY:       make([]float32, 2*m.nNodes),
		TriVerts: make([][3]int64, 2*m.nElements),
	}
	for i, n := range m.nodes {
		tMesh.XY[2*i] = float32(n.Coord.X)
		tMesh.XY[2*i+1] = float32(n.Coord.Y)
	}
	for k, el := range m.elements {
		n0, n1, n2, n3 := int64(el.Nodes[0]), int64(el.Nodes[1]),
			int64(el.Nodes[2]), int64(el.Nodes[3])
		tMesh.TriVerts[2*k] = [3]int64{n0, n1, n2}
		tMesh.TriVerts[2*k+1] = [3]int64{n0, n2, n3}
	}
	return
}

// GaussCrossHairs returns line segments, four floats each, marking every Gauss point
func GaussCrossHairs(m *Mesh, size float32) (lines []float32) {
	lines = make([]float32, 0, 32*m.nElements)
	for _, el := range m.elements {
		for _, gp := range el.GaussPoints {
			x, y := float32(gp.X), float32(gp.Y)
			lines = append(lines,
				x-size, y, x+size, y,
				x, y-size, x, y+size,
			)
		}
	}
	return
}

func PlotMesh(m *Mesh, plotPoints bool, holdTime time.Duration) {
	var (
		tMesh = TriMesh(m)
	)
	xMin, xMax, yMin, yMax := utils.GetSquareBoundingBox(0, float32(m.width),
		0, float32(m.height))
	ch := chart2d.NewChart2D(xMin, xMax, yMin, yMax, 1024, 1024,
		avsUtils.WHITE, avsUtils.BLACK, 0.9)
	ch.AddTriMesh(tMesh)
	if plotPoints {
		ch.AddLine(GaussCrossHairs(m, 0.05), avsUtils.RED)
	}
	time.Sleep(holdTime)
}
