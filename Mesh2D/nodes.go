package Mesh2D

import (
	"github.com/notargets/lsmesh/types"
)

func (m *Mesh) initialiseNodes() {
	var (
		w    = m.width + 1
		x, y int
	)
	for i := 0; i < m.nNodes; i++ {
		x = i % w
		y = i / w
		n := &m.nodes[i]
		n.Coord = Coord{X: float64(x), Y: float64(y)}
		n.IsDomainBoundary = x == 0 || x == m.width || y == 0 || y == m.height
		n.NElements = 0
		m.xyToIndex[x][y] = i
		m.initialiseNeighbours(i, x, y)
	}
}

func (m *Mesh) initialiseNeighbours(node, x, y int) {
	var (
		w  = m.width + 1
		h  = m.height + 1
		nb = &m.nodes[node].Neighbours
	)
	nb[types.Left] = (x-1+w)%w + y*w
	nb[types.Right] = (x+1)%w + y*w
	nb[types.Down] = x + w*((y-1+h)%h)
	nb[types.Up] = x + w*((y+1)%h)
	if m.isPeriodic {
		return
	}
	// Neighbours across the domain edge are flagged out of bounds
	if x == 0 {
		nb[types.Left] = m.nNodes
	}
	if x == m.width {
		nb[types.Right] = m.nNodes
	}
	if y == 0 {
		nb[types.Down] = m.nNodes
	}
	if y == m.height {
		nb[types.Up] = m.nNodes
	}
}

// Neighbour returns the node next to node in direction dir. ok is false where
// the mesh is not periodic and node sits on the edge facing dir.
func (m *Mesh) Neighbour(node int, dir types.Direction) (nb int, ok bool) {
	nb = m.nodes[node].Neighbours[dir]
	if nb == m.nNodes {
		return -1, false
	}
	return nb, true
}
