package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	{ // Construction and row major storage
		M := NewMatrix(2, 3, []float64{1, 2, 3, 4, 5, 6})
		nr, nc := M.Dims()
		assert.Equal(t, 2, nr)
		assert.Equal(t, 3, nc)
		assert.Equal(t, 6., M.At(1, 2))
		assert.Equal(t, []float64{4, 5, 6}, M.Row(1).DataP)
		assert.Equal(t, []float64{2, 5}, M.Col(1).DataP)
		assert.Equal(t, 1., M.Min())
		assert.Equal(t, 6., M.Max())
		tr, tc := M.T().Dims()
		assert.Equal(t, 3, tr)
		assert.Equal(t, 2, tc)
		assert.Panics(t, func() { NewMatrix(2, 2, []float64{1}) })
	}
	{ // Read only matrices refuse writes and carry their name in the panic
		M := NewMatrix(2, 2)
		M.Set(0, 1, 3)
		assert.Equal(t, 3., M.DataP[1])
		assert.False(t, M.IsReadOnly())
		R := M.SetReadOnly("R")
		assert.True(t, R.IsReadOnly())
		assert.PanicsWithError(t, "attempt to write to a read only matrix named: \"R\"",
			func() { R.Set(0, 0, 1) })
	}
}

func TestVector(t *testing.T) {
	v := NewVector(4, []float64{3, -1, 7, 2})
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 7., v.AtVec(2))
	assert.Equal(t, -1., v.Min())
	assert.Equal(t, 7., v.Max())
	nr, nc := v.Dims()
	assert.Equal(t, 4, nr)
	assert.Equal(t, 1, nc)
	assert.Equal(t, make([]float64, 3), NewVector(3).DataP)
	assert.Panics(t, func() { NewVector(3, []float64{1}) })
}

func TestIndex(t *testing.T) {
	I := NewIndex(3)
	assert.Equal(t, Index{0, 0, 0}, I)
	I[1] = 5
	assert.True(t, I.Contains(5))
	assert.False(t, I.Contains(4))
}

func TestSparse(t *testing.T) {
	dok := NewDOK(3, 4)
	dok.Set(0, 3, 1)
	dok.Set(0, 1, 1)
	dok.Set(2, 2, 5)
	assert.Equal(t, 3, dok.NNZ())
	ro := dok.SetReadOnly("incidence")
	assert.Panics(t, func() { ro.Set(1, 1, 1) })
	csr := dok.ToCSR()
	nr, nc := csr.Dims()
	assert.Equal(t, 3, nr)
	assert.Equal(t, 4, nc)
	assert.Equal(t, 3, csr.NNZ())
	assert.Equal(t, "incidence", csr.Name())
	assert.Equal(t, 5., csr.At(2, 2))
	assert.Equal(t, Index{1, 3}, csr.RowIndices(0))
	assert.Equal(t, 0, len(csr.RowIndices(1)))
	assert.Equal(t, 1., csr.T().At(3, 0))
}

func TestGraphicsAndSystem(t *testing.T) {
	{ // Bounding box is squared about the shorter axis
		xMin, xMax, yMin, yMax := GetSquareBoundingBox(0, 4, 0, 2)
		assert.Equal(t, [4]float32{0, 4, -1, 3}, [4]float32{xMin, xMax, yMin, yMax})
		xMin, xMax, yMin, yMax = GetSquareBoundingBox(0, 2, 0, 4)
		assert.Equal(t, [4]float32{-1, 3, 0, 4}, [4]float32{xMin, xMax, yMin, yMax})
	}
	assert.True(t, strings.HasPrefix(GetMemUsage(), "Alloc = "))
}
