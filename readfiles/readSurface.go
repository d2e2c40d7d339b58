package readfiles

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/loadmap/surface"
	"github.com/notargets/loadmap/types"
)

// ReadGrids reads a count line followed by "id x y z" records
func ReadGrids(filename string) (grids []surface.Grid, err error) {
	var (
		lr     *lineReader
		closer io.Closer
	)
	if lr, closer, err = openLines(filename); err != nil {
		return
	}
	defer closer.Close()
	return readGrids(lr)
}

func readGrids(lr *lineReader) (grids []surface.Grid, err error) {
	var nGrids int
	if nGrids, err = lr.readNumber("number of grids"); err != nil {
		return
	}
	if nGrids < 0 {
		return nil, lr.errorf("negative number of grids %d", nGrids)
	}
	grids = make([]surface.Grid, nGrids)
	for i := 0; i < nGrids; i++ {
		var (
			fields []string
			x      [3]float64
		)
		if fields, err = lr.mustFields(fmt.Sprintf("grid %d of %d", i+1, nGrids)); err != nil {
			return
		}
		if len(fields) < 4 {
			return nil, lr.errorf("grid record needs id x y z, have %d fields", len(fields))
		}
		if grids[i].ID, err = lr.parseInt(fields[0], "grid id"); err != nil {
			return
		}
		if x, err = lr.parseVec(fields[1:], "grid coordinate"); err != nil {
			return
		}
		grids[i].X = r3.Vec{X: x[0], Y: x[1], Z: x[2]}
	}
	return
}

// ReadElements reads a count line followed by records of mesh type 1-based grid ids,
// returned 0-based
func ReadElements(filename string, meshType types.MeshType) (elements [][]int, err error) {
	var (
		lr     *lineReader
		closer io.Closer
	)
	if lr, closer, err = openLines(filename); err != nil {
		return
	}
	defer closer.Close()
	return readElements(lr, meshType)
}

func readElements(lr *lineReader, meshType types.MeshType) (elements [][]int, err error) {
	var (
		nElem int
		nv    = meshType.NumVertices()
	)
	if nElem, err = lr.readNumber("number of elements"); err != nil {
		return
	}
	if nElem < 0 {
		return nil, lr.errorf("negative number of elements %d", nElem)
	}
	elements = make([][]int, nElem)
	for k := 0; k < nElem; k++ {
		var fields []string
		if fields, err = lr.mustFields(fmt.Sprintf("element %d of %d", k+1, nElem)); err != nil {
			return
		}
		if len(fields) != nv {
			return nil, lr.errorf("element record needs %d grid ids for a %s mesh, have %d fields",
				nv, meshType, len(fields))
		}
		elements[k] = make([]int, nv)
		for i := 0; i < nv; i++ {
			var id int
			if id, err = lr.parseInt(fields[i], "element grid id"); err != nil {
				return
			}
			elements[k][i] = id - 1
		}
	}
	return
}

// ReadSurface reads a grid and an element file and builds the panel geometry
func ReadSurface(gridFile, elementFile string, meshType types.MeshType) (s *surface.Surface, err error) {
	var (
		grids    []surface.Grid
		elements [][]int
	)
	if grids, err = ReadGrids(gridFile); err != nil {
		return
	}
	if elements, err = ReadElements(elementFile, meshType); err != nil {
		return
	}
	if s, err = surface.NewSurface(meshType, grids, elements); err != nil {
		err = fmt.Errorf("%s, %s: %w", gridFile, elementFile, err)
	}
	return
}
