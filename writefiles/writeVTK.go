package writefiles

import (
	"fmt"
	"io"

	"github.com/notargets/loadmap/loads"
	"github.com/notargets/loadmap/surface"
	"github.com/notargets/loadmap/types"
)

// VTK legacy cell type tags
const (
	VTK_Triangle = 5
	VTK_Quad     = 9
)

func cellType(mt types.MeshType) int {
	if mt == types.Mesh_Tri {
		return VTK_Triangle
	}
	return VTK_Quad
}

/*
WriteVTK writes the surface as a legacy ASCII unstructured grid. The pressure field is
written as "dcp" point or cell data depending on its residency; the panel forces, when
given, follow as cell vectors.
*/
func WriteVTK(w io.Writer, s *surface.Surface, p surface.Pressures, pl []loads.PanelLoad) (err error) {
	if err = s.Check(p); err != nil {
		return
	}
	if pl != nil && len(pl) != s.NumPanels {
		return fmt.Errorf("have %d panel loads for %d panels", len(pl), s.NumPanels)
	}
	pf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}
	nv := s.MeshType.NumVertices()
	pf("# vtk DataFile Version 3.0\n")
	pf("vtk output\n")
	pf("ASCII\n")
	pf("DATASET UNSTRUCTURED_GRID\n\n")
	pf("POINTS %8d float\n", s.NumGrids)
	for _, g := range s.Grids {
		pf("%12.6f %12.6f %12.6f\n", g.X.X, g.X.Y, g.X.Z)
	}
	pf("\nCELLS %8d %8d\n", s.NumPanels, s.NumPanels*(nv+1))
	for _, panel := range s.Panels {
		pf("%8d", nv)
		for _, v := range panel.Verts {
			pf(" %8d", v)
		}
		pf("\n")
	}
	pf("\nCELL_TYPES %8d\n", s.NumPanels)
	ct := cellType(s.MeshType)
	for range s.Panels {
		pf("%d\n", ct)
	}
	pf("\n")
	if p.Type == types.Press_Node {
		pf("POINT_DATA %8d\n", s.NumGrids)
	} else {
		pf("CELL_DATA %8d\n", s.NumPanels)
	}
	pf("SCALARS dcp float\n")
	pf("LOOKUP_TABLE default\n")
	for _, v := range p.Values {
		pf("%12.6f\n", v)
	}
	if pl != nil {
		if p.Type == types.Press_Node {
			pf("\nCELL_DATA %8d\n", s.NumPanels)
		}
		pf("VECTORS force float\n")
		for _, l := range pl {
			pf("%.6e %.6e %.6e\n", l.Force.X, l.Force.Y, l.Force.Z)
		}
	}
	return
}

func WriteVTKFile(filename string, s *surface.Surface, p surface.Pressures, pl []loads.PanelLoad) error {
	return createFile(filename, func(w io.Writer) error {
		return WriteVTK(w, s, p, pl)
	})
}
