package Mesh2D

import (
	"fmt"
	"math"
	"sync"

	"github.com/notargets/lsmesh/types"
	"github.com/notargets/lsmesh/utils"
)

/*
Spatial queries map a point in [0,width]x[0,height] to the element that owns it
and to the closest node of that element. Nothing is bounds checked and periodic
meshes do not wrap the query point. A point outside the domain yields an element
index that is wrong and may fall outside [0,NumElements()), in which case
LocateNearestNode panics on the slice access.
*/

func (m *Mesh) LocateElement(x, y float64) (k int) {
	var (
		elementX = int(math.Floor(x))
		elementY = int(math.Floor(y))
	)
	k = elementY*m.width + elementX
	return
}

func (m *Mesh) LocateElementCoord(pt Coord) int {
	return m.LocateElement(pt.X, pt.Y)
}

// LocateNearestNode returns the corner of the located element closest to (x,y).
// Valid for 0 <= x < width and 0 <= y < height; points on the right or top
// edge of the domain locate past the element table and panic.
func (m *Mesh) LocateNearestNode(x, y float64) (node int) {
	var (
		k      = m.LocateElement(x, y)
		dx     = x - math.Floor(x)
		dy     = y - math.Floor(y)
		corner types.Corner
	)
	// Quadrants are half open, a point on x or y = 0.5 goes right or up
	switch {
	case dx < 0.5 && dy < 0.5:
		corner = types.BottomLeft
	case dy < 0.5:
		corner = types.BottomRight
	case dx >= 0.5:
		corner = types.TopRight
	default:
		corner = types.TopLeft
	}
	node = m.elements[k].Nodes[corner]
	return
}

func (m *Mesh) LocateNearestNodeCoord(pt Coord) int {
	return m.LocateNearestNode(pt.X, pt.Y)
}

// LocateElements answers a batch of LocateElement queries in parallel.
// procLimit caps the number of goroutines, zero means one per CPU.
func (m *Mesh) LocateElements(X, Y []float64, procLimit int) (K utils.Index) {
	return m.parallelLocate(X, Y, procLimit, m.LocateElement)
}

// LocateNearestNodes answers a batch of LocateNearestNode queries in parallel.
// procLimit caps the number of goroutines, zero means one per CPU.
func (m *Mesh) LocateNearestNodes(X, Y []float64, procLimit int) (N utils.Index) {
	return m.parallelLocate(X, Y, procLimit, m.LocateNearestNode)
}

func (m *Mesh) parallelLocate(X, Y []float64, procLimit int,
	locate func(x, y float64) int) (I utils.Index) {
	var (
		nPts = len(X)
		wg   = sync.WaitGroup{}
	)
	if len(Y) != nPts {
		panic(fmt.Errorf("coordinate length mismatch: len(X) = %d, len(Y) = %d", nPts, len(Y)))
	}
	I = utils.NewIndex(nPts)
	if nPts == 0 {
		return
	}
	pm := utils.NewPartitionMap(utils.GetParallelDegree(procLimit, nPts), nPts)
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			iMin, iMax := pm.GetBucketRange(np)
			for i := iMin; i < iMax; i++ {
				I[i] = locate(X[i], Y[i])
			}
			wg.Done()
		}(np)
	}
	wg.Wait()
	return
}
