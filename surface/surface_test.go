package surface

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/loadmap/types"
)

func grids(X ...r3.Vec) (g []Grid) {
	g = make([]Grid, len(X))
	for i, x := range X {
		g[i] = Grid{ID: i + 1, X: x}
	}
	return
}

func assertVec(t *testing.T, expected, actual r3.Vec, tol float64) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, tol)
	assert.InDelta(t, expected.Y, actual.Y, tol)
	assert.InDelta(t, expected.Z, actual.Z, tol)
}

func TestTriangleGeometry(t *testing.T) {
	A, B, C := r3.Vec{X: 0.3, Y: -1, Z: 2}, r3.Vec{X: 2, Y: 0.5, Z: 1}, r3.Vec{X: -1, Y: 3, Z: 0.25}
	s, err := NewSurface(types.Mesh_Tri, grids(A, B, C), [][]int{{0, 1, 2}, {0, 2, 1}})
	require.NoError(t, err)
	require.Equal(t, 2, s.NumPanels)

	expected := r3.Scale(0.5, r3.Cross(r3.Sub(B, A), r3.Sub(C, A)))
	p := s.Panels[0]
	assertVec(t, expected, p.Area, 1.e-14)
	assert.InDelta(t, r3.Norm(expected), p.AreaNorm, 1.e-14)
	assertVec(t, r3.Scale(1./3., r3.Add(A, r3.Add(B, C))), p.Center, 1.e-14)

	// Reversing the vertex order flips the vector, not the magnitude
	q := s.Panels[1]
	assertVec(t, r3.Scale(-1, p.Area), q.Area, 1.e-14)
	assert.InDelta(t, p.AreaNorm, q.AreaNorm, 1.e-14)
	assert.Empty(t, s.Degenerate)
}

func TestQuadGeometry(t *testing.T) {
	// A warped quad, the diagonal form is kept as the panel area
	A, B, C, D := r3.Vec{X: 0, Y: 0, Z: 0}, r3.Vec{X: 1, Y: 0, Z: 0.2}, r3.Vec{X: 1.2, Y: 1, Z: 0}, r3.Vec{X: 0, Y: 1, Z: 0.5}
	s, err := NewSurface(types.Mesh_Quad, grids(A, B, C, D), [][]int{{0, 1, 2, 3}})
	require.NoError(t, err)
	p := s.Panels[0]

	diag := r3.Scale(0.5, r3.Cross(r3.Sub(C, A), r3.Sub(D, B)))
	assert.Equal(t, diag, p.Area)
	assert.Equal(t, r3.Norm(diag), p.AreaNorm)
	assertVec(t, r3.Scale(0.25, r3.Add(r3.Add(A, B), r3.Add(C, D))), p.Center, 1.e-14)

	// Triangulating the warped quad gives a larger total area
	split := r3.Norm(AreaVector([]r3.Vec{A, B, C})) + r3.Norm(AreaVector([]r3.Vec{A, C, D}))
	assert.Greater(t, split-p.AreaNorm, 0.1)

	// Unit square in the xy plane
	s, err = NewSurface(types.Mesh_Quad,
		grids(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{X: 1, Y: 1}, r3.Vec{Y: 1}), [][]int{{0, 1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, r3.Vec{Z: 1}, s.Panels[0].Area)
	assert.Equal(t, 1., s.Panels[0].AreaNorm)
}

func TestSurfaceErrors(t *testing.T) {
	X := grids(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Y: 1})
	{ // Index out of range
		_, err := NewSurface(types.Mesh_Tri, X, [][]int{{0, 1, 3}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrConnectivity))
	}
	{ // Non uniform vertex count
		_, err := NewSurface(types.Mesh_Tri, X, [][]int{{0, 1, 2}, {0, 1, 2, 0}})
		assert.True(t, errors.Is(err, ErrConnectivity))
	}
	{ // Grid ids must be dense from 1
		bad := grids(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Y: 1})
		bad[2].ID = 7
		_, err := NewSurface(types.Mesh_Tri, bad, [][]int{{0, 1, 2}})
		assert.True(t, errors.Is(err, ErrGridID))
		bad[2].ID = 1
		_, err = NewSurface(types.Mesh_Tri, bad, [][]int{{0, 1, 2}})
		assert.True(t, errors.Is(err, ErrGridID))
	}
	{ // Unsupported mesh type
		_, err := NewSurface(types.MeshType(5), X, nil)
		assert.Error(t, err)
	}
}

func TestGridOrdering(t *testing.T) {
	// Grid records out of order land at id-1
	g := []Grid{{ID: 3, X: r3.Vec{Y: 1}}, {ID: 1, X: r3.Vec{}}, {ID: 2, X: r3.Vec{X: 1}}}
	s, err := NewSurface(types.Mesh_Tri, g, [][]int{{0, 1, 2}})
	require.NoError(t, err)
	assert.Equal(t, r3.Vec{Z: 0.5}, s.Panels[0].Area)
}

func TestDegeneratePanels(t *testing.T) {
	X := grids(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Y: 1}, r3.Vec{X: 2})
	s, err := NewSurface(types.Mesh_Tri, X, [][]int{{0, 1, 2}, {0, 0, 2}, {0, 1, 3}})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, s.Degenerate)
	assert.Equal(t, 0., s.Panels[1].AreaNorm)
}

func TestPressureResidency(t *testing.T) {
	X := grids(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{X: 1, Y: 1}, r3.Vec{Y: 1}, r3.Vec{X: 5, Y: 5})
	s, err := NewSurface(types.Mesh_Tri, X, [][]int{{0, 1, 2}, {0, 2, 3}})
	require.NoError(t, err)

	pn := NewPressures(types.Press_Node, []float64{1, 2, 3, 4, 100})
	pe, err := s.ElementPressures(pn)
	require.NoError(t, err)
	assert.Equal(t, types.Press_Element, pe.Type)
	assert.InDeltaSlice(t, []float64{2, 8. / 3.}, pe.Values, 1.e-14)

	// Element fields pass straight through
	same, err := s.ElementPressures(pe)
	require.NoError(t, err)
	assert.Equal(t, pe, same)

	back, err := s.NodePressures(NewPressures(types.Press_Element, []float64{2, 4}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 2, 3, 4, 0}, back.Values, 1.e-14)

	_, err = s.ElementPressures(NewPressures(types.Press_Node, []float64{1, 2}))
	assert.True(t, errors.Is(err, ErrFieldLength))

	assert.Len(t, s.SamplePoints(types.Press_Node), 5)
	assert.Equal(t, s.Centers(), s.SamplePoints(types.Press_Element))
}
