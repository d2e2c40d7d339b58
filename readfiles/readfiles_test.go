package readfiles

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/loadmap/loads"
	"github.com/notargets/loadmap/surface"
	"github.com/notargets/loadmap/types"
)

// Helper function to create temporary test files
func createTempFile(t *testing.T, name, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}

const (
	gridsFile = `4
1 0.0 0.0 0.0
2 1.0 0.0 0.0
3 1.0 1.0 0.0
4 0.0 1.0 0.0
`
	quadsFile = `1
1 2 3 4
`
	trisFile = `2
1 2 3
1 3 4
`
)

func TestReadSurface(t *testing.T) {
	gf := createTempFile(t, "grids.txt", gridsFile)
	{
		s, err := ReadSurface(gf, createTempFile(t, "quads.txt", quadsFile), types.Mesh_Quad)
		require.NoError(t, err)
		assert.Equal(t, 4, s.NumGrids)
		assert.Equal(t, 1, s.NumPanels)
		assert.Equal(t, []int{0, 1, 2, 3}, s.Panels[0].Verts)
		assert.Equal(t, r3.Vec{X: 0.5, Y: 0.5}, s.Panels[0].Center)
		assert.Equal(t, 1., s.Panels[0].AreaNorm)
	}
	{
		s, err := ReadSurface(gf, createTempFile(t, "tris.txt", trisFile), types.Mesh_Tri)
		require.NoError(t, err)
		assert.Equal(t, 2, s.NumPanels)
		assert.Equal(t, []int{0, 2, 3}, s.Panels[1].Verts)
	}
	{ // Quad mesh type on a triangle file runs out of fields
		_, err := ReadSurface(gf, createTempFile(t, "tris.txt", trisFile), types.Mesh_Quad)
		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, 2, pe.Line)
	}
	{ // Quad record in a triangle mesh
		_, err := ReadSurface(gf, createTempFile(t, "mixed.txt", "2\n1 2 3 4\n1 3 4\n"), types.Mesh_Tri)
		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, 2, pe.Line)
	}
	{ // Reference to a grid that does not exist
		_, err := ReadSurface(gf, createTempFile(t, "bad.txt", "1\n1 2 5\n"), types.Mesh_Tri)
		assert.True(t, errors.Is(err, surface.ErrConnectivity))
	}
}

func TestReadGridErrors(t *testing.T) {
	{ // Short file
		_, err := ReadGrids(createTempFile(t, "g.txt", "3\n1 0 0 0\n2 1 0 0\n"))
		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, 4, pe.Line)
	}
	{ // Bad coordinate
		_, err := ReadGrids(createTempFile(t, "g.txt", "1\n1 0 zero 0\n"))
		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, 2, pe.Line)
		assert.Contains(t, pe.Error(), "g.txt:2")
	}
	{ // Bad count
		_, err := ReadGrids(createTempFile(t, "g.txt", "many\n"))
		assert.Error(t, err)
	}
	{ // Missing file
		_, err := ReadGrids(filepath.Join(t.TempDir(), "none.txt"))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	}
}

func TestReadPressures(t *testing.T) {
	{ // With a count line, windows line endings
		p, err := ReadPressures(createTempFile(t, "p.txt", "3\r\n1 0.5\r\n3 -2.0\r\n2 1e-3\r\n"), types.Press_Node, 3)
		require.NoError(t, err)
		assert.Equal(t, types.Press_Node, p.Type)
		assert.Equal(t, []float64{0.5, 1.e-3, -2}, p.Values)
	}
	{ // Without a count line, unlisted entries stay zero
		p, err := ReadPressures(createTempFile(t, "p.txt", "2 4.0\n\n4 1.5"), types.Press_Element, 4)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 4, 0, 1.5}, p.Values)
	}
	{ // Index out of range
		_, err := ReadPressures(createTempFile(t, "p.txt", "1 1.0\n5 2.0\n"), types.Press_Element, 4)
		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, 2, pe.Line)
	}
	{ // Repeated index
		_, err := ReadPressures(createTempFile(t, "p.txt", "1 1.0\n3 2.0\n1 5.0\n"), types.Press_Element, 4)
		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, 3, pe.Line)
		assert.Contains(t, pe.Error(), "appears twice")
	}
	{ // Count larger than the records present
		_, err := ReadPressures(createTempFile(t, "p.txt", "3\n1 1.0\n"), types.Press_Element, 4)
		assert.Error(t, err)
	}
	{
		_, err := ReadPressures(createTempFile(t, "p.txt", "\n"), types.Press_Element, 4)
		assert.Error(t, err)
	}
}

const frameFile = `Reference point
0.25 0.0 0.1
Coordinate system
0.25 0.0 0.1
1.25 0.0 0.1
0.25 1.0 0.1
0.25 0.0 1.1
Reference values
AREF 12.5
CREF= 2.0
2.5 BREF
`

func TestReadReferenceFrame(t *testing.T) {
	rf, err := ReadReferenceFrame(createTempFile(t, "cs.txt", frameFile))
	require.NoError(t, err)
	assert.Equal(t, r3.Vec{X: 0.25, Z: 0.1}, rf.Point)
	assert.Equal(t, r3.Vec{X: 0.25, Z: 0.1}, rf.BasisOrigin)
	assert.Equal(t, r3.Vec{X: 1.25, Z: 0.1}, rf.BasisPoints[0])
	assert.Equal(t, r3.Vec{X: 0.25, Y: 1, Z: 0.1}, rf.BasisPoints[1])
	assert.Equal(t, 12.5, rf.Area)
	assert.Equal(t, 2., rf.Chord)
	assert.Equal(t, 2.5, rf.Span)

	{ // Truncated
		_, err = ReadReferenceFrame(createTempFile(t, "cs.txt", frameFile[:60]))
		var pe *ParseError
		assert.True(t, errors.As(err, &pe))
	}
	{ // Zero area
		bad := `h
0 0 0
s
0 0 0
1 0 0
0 1 0
0 0 1
s
AREF 0
CREF 1
BREF 1
`
		_, err = ReadReferenceFrame(createTempFile(t, "cs.txt", bad))
		assert.True(t, errors.Is(err, loads.ErrFrame))
	}
	{ // Missing scalar value
		_, err = ReadReferenceFrame(createTempFile(t, "cs.txt", frameFile[:len(frameFile)-9]+"BREF\n"))
		assert.Error(t, err)
	}
}
