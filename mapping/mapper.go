package mapping

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/loadmap/geometry2D"
	"github.com/notargets/loadmap/surface"
	"github.com/notargets/loadmap/types"
)

const Unmapped = -1

// Mapping assigns each source sample point to at most one target panel
type Mapping struct {
	Owner            []int    // Panel index per source point, Unmapped if none
	Points           []r3.Vec // Source sample point coordinates
	Plane            types.Plane
	Tolerance        float64
	NumPanels        int
	DegeneratePanels []int // Panels with no footprint in the projection plane
}

/*
Map classifies the source points against the target panels in the projection plane.
Panels are visited in order and each one claims every still unclaimed point inside its
footprint, so a point on an edge shared by two panels goes to the lower numbered panel.
*/
func Map(target *surface.Surface, points []r3.Vec, plane types.Plane, tol float64) (m *Mapping) {
	m = &Mapping{
		Owner:     make([]int, len(points)),
		Points:    points,
		Plane:     plane,
		Tolerance: tol,
		NumPanels: target.NumPanels,
	}
	proj := make([]geometry2D.Point, len(points))
	for j, x := range points {
		m.Owner[j] = Unmapped
		proj[j] = geometry2D.Project(x, plane)
	}
	index := NewPointIndex(proj)
	verts := make([]geometry2D.Point, target.MeshType.NumVertices())
	for k := 0; k < target.NumPanels; k++ {
		for i, x := range target.PanelVertices(k) {
			verts[i] = geometry2D.Project(x, plane)
		}
		region := geometry2D.NewRegion(verts, tol)
		if region.Degenerate {
			m.DegeneratePanels = append(m.DegeneratePanels, k)
			continue
		}
		index.Candidates(region.Box, func(j int) {
			if m.Owner[j] == Unmapped && region.Contains(proj[j]) {
				m.Owner[j] = k
			}
		})
	}
	return
}

func (m *Mapping) NumPoints() int { return len(m.Owner) }

// Unmapped lists the source points no panel claimed, in ascending order
func (m *Mapping) Unmapped() (ind []int) {
	for j, k := range m.Owner {
		if k == Unmapped {
			ind = append(ind, j)
		}
	}
	return
}

func (m *Mapping) NumMapped() (n int) {
	for _, k := range m.Owner {
		if k != Unmapped {
			n++
		}
	}
	return
}

// Counts is the number of source points owned by each panel
func (m *Mapping) Counts() (c []int) {
	c = make([]int, m.NumPanels)
	for _, k := range m.Owner {
		if k != Unmapped {
			c[k]++
		}
	}
	return
}

// Check verifies that every point is either unmapped or owned by a valid panel
func (m *Mapping) Check() error {
	if len(m.Owner) != len(m.Points) {
		return fmt.Errorf("mapping has %d owners for %d points", len(m.Owner), len(m.Points))
	}
	for j, k := range m.Owner {
		if k != Unmapped && (k < 0 || k >= m.NumPanels) {
			return fmt.Errorf("point %d is owned by panel %d, target has %d panels", j, k, m.NumPanels)
		}
	}
	return nil
}

func (m *Mapping) String() string {
	return fmt.Sprintf("%d of %d points mapped onto %d panels in the %s plane, %d unmapped, %d panels without footprint",
		m.NumMapped(), m.NumPoints(), m.NumPanels, m.Plane, m.NumPoints()-m.NumMapped(), len(m.DegeneratePanels))
}
