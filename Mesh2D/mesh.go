// Package Mesh2D builds the fixed grid, finite-element mesh used as the spatial
// substrate of a level set field. Elements are unit squares laid out over a
// width x height rectangle, nodes sit on the integer grid points.
//
// A Mesh is built once by NewMesh and is never written afterwards, so any
// number of goroutines may read and query it without locking.
package Mesh2D

import (
	"sync"

	"github.com/notargets/lsmesh/types"
	"github.com/notargets/lsmesh/utils"
)

type Coord struct {
	X, Y float64
}

type Node struct {
	Coord            Coord
	IsDomainBoundary bool   // Node lies on the outer edge of the rectangle
	Neighbours       [4]int // Indexed by types.Direction, holds the sentinel NumNodes() when absent
	Elements         [4]int // Touching elements in ascending order, first NElements are valid
	NElements        int
}

type Element struct {
	Coord       Coord    // Centre of the element
	GaussPoints [4]Coord // 2x2 quadrature points, ordered to match Nodes
	Nodes       [4]int   // Corner nodes, indexed by types.Corner
}

type Mesh struct {
	width, height     int
	nElements, nNodes int
	isPeriodic        bool
	nodes             []Node
	elements          []Element
	xyToIndex         [][]int // xyToIndex[x][y] is the node at grid coordinate (x,y)

	// Derived tables, built on first request
	eToVOnce, incidenceOnce, edgesOnce sync.Once
	eToV                               utils.Matrix
	incidence                          utils.CSR
	edges                              []types.EdgeKey
}

// NewMesh builds a mesh of width x height unit elements. Both dimensions must
// be positive, this is not checked and a zero dimension gives an empty mesh.
// When isPeriodic is set the node neighbours wrap around opposite edges.
func NewMesh(width, height int, isPeriodic bool) (m *Mesh) {
	m = &Mesh{
		width:      width,
		height:     height,
		nElements:  width * height,
		nNodes:     (width + 1) * (height + 1),
		isPeriodic: isPeriodic,
	}
	m.nodes = make([]Node, m.nNodes)
	m.elements = make([]Element, m.nElements)
	m.xyToIndex = make([][]int, width+1)
	for i := range m.xyToIndex {
		m.xyToIndex[i] = make([]int, height+1)
	}
	m.initialiseNodes()
	m.initialiseElements()
	return
}

func (m *Mesh) Width() int       { return m.width }
func (m *Mesh) Height() int      { return m.height }
func (m *Mesh) IsPeriodic() bool { return m.isPeriodic }
func (m *Mesh) NumElements() int { return m.nElements }
func (m *Mesh) NumNodes() int    { return m.nNodes }

// Sentinel is the neighbour index meaning "no neighbour in this direction"
func (m *Mesh) Sentinel() int { return m.nNodes }

// Node returns a copy of node i
func (m *Mesh) Node(i int) Node { return m.nodes[i] }

// Element returns a copy of element k
func (m *Mesh) Element(k int) Element { return m.elements[k] }

// NodeAt returns the node index at integer grid coordinate (x,y)
func (m *Mesh) NodeAt(x, y int) int { return m.xyToIndex[x][y] }

// NodeElements lists the elements touching node i
func (m *Mesh) NodeElements(i int) (K utils.Index) {
	var (
		n = &m.nodes[i]
	)
	K = utils.NewIndex(n.NElements)
	copy(K, n.Elements[:n.NElements])
	return
}
