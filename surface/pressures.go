package surface

import (
	"fmt"

	"github.com/notargets/loadmap/types"
)

// Pressures is one load case's scalar field on a surface
type Pressures struct {
	Type   types.PressureType
	Values []float64
}

func NewPressures(pt types.PressureType, values []float64) Pressures {
	return Pressures{Type: pt, Values: values}
}

// Check verifies the field length against the surface
func (s *Surface) Check(p Pressures) error {
	if n := s.FieldLength(p.Type); len(p.Values) != n {
		return fmt.Errorf("%w: %s field has %d values, surface needs %d",
			ErrFieldLength, p.Type, len(p.Values), n)
	}
	return nil
}

// ElementPressures converts a field to panel centers, averaging node values with
// the same weights used for the panel centers. Element fields are returned as is.
func (s *Surface) ElementPressures(p Pressures) (pe Pressures, err error) {
	if err = s.Check(p); err != nil {
		return
	}
	if p.Type == types.Press_Element {
		return p, nil
	}
	pe = Pressures{Type: types.Press_Element, Values: make([]float64, s.NumPanels)}
	for k, panel := range s.Panels {
		var sum float64
		for _, v := range panel.Verts {
			sum += p.Values[v]
		}
		pe.Values[k] = sum / float64(len(panel.Verts))
	}
	return
}

// NodePressures averages a field over the panels incident to each grid, grids
// without panels receive zero. Node fields are returned as is.
func (s *Surface) NodePressures(p Pressures) (pn Pressures, err error) {
	if err = s.Check(p); err != nil {
		return
	}
	if p.Type == types.Press_Node {
		return p, nil
	}
	pn = Pressures{Type: types.Press_Node, Values: make([]float64, s.NumGrids)}
	count := make([]int, s.NumGrids)
	for k, panel := range s.Panels {
		for _, v := range panel.Verts {
			pn.Values[v] += p.Values[k]
			count[v]++
		}
	}
	for i, c := range count {
		if c > 0 {
			pn.Values[i] /= float64(c)
		}
	}
	return
}
