package surface

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/loadmap/types"
	"github.com/notargets/loadmap/utils"
)

var (
	ErrConnectivity = errors.New("invalid panel connectivity")
	ErrGridID       = errors.New("invalid grid identifier")
	ErrFieldLength  = errors.New("pressure field length does not match the mesh")
)

// Grid is a mesh node, ID is the external 1-based identifier
type Grid struct {
	ID int
	X  r3.Vec
}

// Panel is a triangular or quadrilateral surface element
type Panel struct {
	Verts    []int   // 0-based grid indices in stored order
	Center   r3.Vec  // Mean of the vertex positions
	Area     r3.Vec  // Oriented area vector
	AreaNorm float64 // Magnitude of Area
}

// Surface is one discretized surface with derived panel geometry
type Surface struct {
	MeshType   types.MeshType
	Grids      []Grid
	Panels     []Panel
	Degenerate []int // Panels with no measurable area

	NumGrids  int
	NumPanels int
}

/*
NewSurface places every grid at index ID-1, validates the element connectivity against
the grid count and the mesh type, then derives panel centers and oriented areas.
Connectivity in elements is 0-based.
*/
func NewSurface(meshType types.MeshType, grids []Grid, elements [][]int) (s *Surface, err error) {
	if _, err = types.NewMeshType(int(meshType)); err != nil {
		return nil, err
	}
	s = &Surface{
		MeshType:  meshType,
		NumGrids:  len(grids),
		NumPanels: len(elements),
	}
	s.Grids = make([]Grid, s.NumGrids)
	seen := make([]bool, s.NumGrids)
	for i, g := range grids {
		ind := g.ID - 1
		if ind < 0 || ind >= s.NumGrids {
			return nil, fmt.Errorf("%w: grid record %d has id %d, ids must lie in 1..%d",
				ErrGridID, i+1, g.ID, s.NumGrids)
		}
		if seen[ind] {
			return nil, fmt.Errorf("%w: grid id %d appears more than once", ErrGridID, g.ID)
		}
		seen[ind] = true
		s.Grids[ind] = g
	}
	nv := meshType.NumVertices()
	s.Panels = make([]Panel, s.NumPanels)
	for k, elem := range elements {
		if len(elem) != nv {
			return nil, fmt.Errorf("%w: panel %d has %d vertices, mesh type is %d",
				ErrConnectivity, k+1, len(elem), nv)
		}
		for _, v := range elem {
			if v < 0 || v >= s.NumGrids {
				return nil, fmt.Errorf("%w: panel %d references grid %d, mesh has %d grids",
					ErrConnectivity, k+1, v+1, s.NumGrids)
			}
		}
		s.Panels[k].Verts = append([]int(nil), elem...)
	}
	s.calcPanelGeometry()
	return
}

func (s *Surface) calcPanelGeometry() {
	s.Degenerate = s.Degenerate[:0]
	for k := range s.Panels {
		p := &s.Panels[k]
		X := s.PanelVertices(k)
		p.Center = Centroid(X)
		p.Area = AreaVector(X)
		p.AreaNorm = r3.Norm(p.Area)
		var ext float64
		for _, x := range X[1:] {
			ext = math.Max(ext, r3.Norm(r3.Sub(x, X[0])))
		}
		if p.AreaNorm <= utils.AREATOL*ext*ext {
			s.Degenerate = append(s.Degenerate, k)
		}
	}
}

func (s *Surface) PanelVertices(k int) (X []r3.Vec) {
	X = make([]r3.Vec, len(s.Panels[k].Verts))
	for i, v := range s.Panels[k].Verts {
		X[i] = s.Grids[v].X
	}
	return
}

// Centroid is the unweighted mean of the vertices
func Centroid(X []r3.Vec) (c r3.Vec) {
	for _, x := range X {
		c = r3.Add(c, x)
	}
	return r3.Scale(1/float64(len(X)), c)
}

/*
AreaVector is 0.5*(B-A)x(C-A) for a triangle and 0.5*(C-A)x(D-B) for a quad.
The quad form uses the diagonals; for a warped quad its magnitude is smaller than the
summed magnitudes of the two triangles either diagonal would split it into.
*/
func AreaVector(X []r3.Vec) r3.Vec {
	switch len(X) {
	case 3:
		return r3.Scale(0.5, r3.Cross(r3.Sub(X[1], X[0]), r3.Sub(X[2], X[0])))
	case 4:
		return r3.Scale(0.5, r3.Cross(r3.Sub(X[2], X[0]), r3.Sub(X[3], X[1])))
	}
	panic(fmt.Errorf("unable to compute area of a %d vertex panel", len(X)))
}

func (s *Surface) Centers() (C []r3.Vec) {
	C = make([]r3.Vec, s.NumPanels)
	for k, p := range s.Panels {
		C[k] = p.Center
	}
	return
}

func (s *Surface) Areas() (A []r3.Vec) {
	A = make([]r3.Vec, s.NumPanels)
	for k, p := range s.Panels {
		A[k] = p.Area
	}
	return
}

func (s *Surface) Positions() (X []r3.Vec) {
	X = make([]r3.Vec, s.NumGrids)
	for i, g := range s.Grids {
		X[i] = g.X
	}
	return
}

// SamplePoints returns where a field of the given residency is sampled
func (s *Surface) SamplePoints(pt types.PressureType) []r3.Vec {
	if pt == types.Press_Node {
		return s.Positions()
	}
	return s.Centers()
}

// FieldLength is the number of values a field of the given residency carries
func (s *Surface) FieldLength(pt types.PressureType) int {
	if pt == types.Press_Node {
		return s.NumGrids
	}
	return s.NumPanels
}
