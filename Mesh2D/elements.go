package Mesh2D

import (
	"math"

	"github.com/notargets/lsmesh/types"
)

// gaussOffset is the distance of each 2x2 Gauss point from the element centre along each axis
var gaussOffset = 0.5 / math.Sqrt(3.)

func (m *Mesh) initialiseElements() {
	var (
		w    = m.width + 1
		x, y int
	)
	for k := 0; k < m.nElements; k++ {
		x = k % m.width
		y = k / m.width
		el := &m.elements[k]
		el.Coord = Coord{X: float64(x) + 0.5, Y: float64(y) + 0.5}
		for _, c := range types.Corners {
			sx, sy := c.Sign()
			el.GaussPoints[c] = Coord{
				X: el.Coord.X + gaussOffset*sx,
				Y: el.Coord.Y + gaussOffset*sy,
			}
		}
		el.Nodes[types.BottomLeft] = x + y*w
		el.Nodes[types.BottomRight] = x + 1 + y*w
		el.Nodes[types.TopRight] = x + 1 + (y+1)*w
		el.Nodes[types.TopLeft] = x + (y+1)*w
		// Reverse connectivity, node lists fill in ascending element order
		for _, node := range el.Nodes {
			n := &m.nodes[node]
			n.Elements[n.NElements] = k
			n.NElements++
		}
	}
}
