package Mesh2D

import (
	"sort"

	"github.com/notargets/lsmesh/types"
	"github.com/notargets/lsmesh/utils"
)

// NodeCoordinates returns fresh vectors of the node x and y coordinates
func (m *Mesh) NodeCoordinates() (VX, VY utils.Vector) {
	VX, VY = utils.NewVector(m.nNodes), utils.NewVector(m.nNodes)
	for i, n := range m.nodes {
		VX.DataP[i] = n.Coord.X
		VY.DataP[i] = n.Coord.Y
	}
	return
}

// EToV is the read only nElements x 4 element to vertex table, columns follow types.Corner
func (m *Mesh) EToV() utils.Matrix {
	m.eToVOnce.Do(func() {
		EToV := utils.NewMatrix(m.nElements, 4)
		for k, el := range m.elements {
			for c, node := range el.Nodes {
				EToV.Set(k, c, float64(node))
			}
		}
		m.eToV = EToV.SetReadOnly("EToV")
	})
	return m.eToV
}

// NodeElementIncidence is the nNodes x nElements matrix with a one wherever an
// element touches a node
func (m *Mesh) NodeElementIncidence() utils.CSR {
	m.incidenceOnce.Do(func() {
		dok := utils.NewDOK(m.nNodes, m.nElements)
		for k, el := range m.elements {
			for _, node := range el.Nodes {
				dok.Set(node, k, 1)
			}
		}
		m.incidence = dok.SetReadOnly("NodeElementIncidence").ToCSR()
	})
	return m.incidence
}

// Edges returns the unique element edges in ascending key order
func (m *Mesh) Edges() (edges []types.EdgeKey) {
	m.edgesOnce.Do(func() {
		var (
			seen = make(map[types.EdgeKey]struct{}, 2*m.nElements+m.width+m.height)
			list types.EdgeKeySlice
		)
		for _, el := range m.elements {
			for c := 0; c < 4; c++ {
				ek := types.NewEdgeKey([2]int{el.Nodes[c], el.Nodes[(c+1)%4]})
				if _, present := seen[ek]; !present {
					seen[ek] = struct{}{}
					list = append(list, ek)
				}
			}
		}
		sort.Sort(list)
		m.edges = list
	})
	edges = make([]types.EdgeKey, len(m.edges))
	copy(edges, m.edges)
	return
}
