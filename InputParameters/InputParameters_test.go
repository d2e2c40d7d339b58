package InputParameters

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/loadmap/types"
	"github.com/notargets/loadmap/utils"
)

const runYAML = `
component:
  name: wing
  input_grids: grids_cfd.txt
  input_elements: elements_cfd.txt
  output_grids: grids_fem.txt
  output_elements: elements_fem.txt
  input_mesh_type: 3
  input_press_type: 1
  output_mesh_type: 4
  output_press_type: 0
  data_dir: wing
  plane: 1
vtk: true
files:
  - press_case1.txt
  - press_case2.txt
`

func TestParse(t *testing.T) {
	var ip LoadTransferParameters
	require.NoError(t, ip.Parse([]byte(runYAML)))
	require.NoError(t, ip.Validate())
	assert.Equal(t, "wing", ip.Component.Name)
	assert.Equal(t, "elements_fem.txt", ip.Component.OutputElements)
	assert.Equal(t, DefaultReferenceFrame, ip.ReferenceFrame)
	assert.Equal(t, utils.MAPTOL, ip.Tolerance)
	assert.True(t, ip.VTK)
	assert.Equal(t, 2, ip.NumCases())

	in, out := ip.MeshTypes()
	assert.Equal(t, types.Mesh_Tri, in)
	assert.Equal(t, types.Mesh_Quad, out)
	inP, outP := ip.PressureTypes()
	assert.Equal(t, types.Press_Element, inP)
	assert.Equal(t, types.Press_Node, outP)
	assert.Equal(t, types.Plane_XZ, ip.Plane())

	ip.BaseDir = filepath.Join("runs", "r1")
	assert.Equal(t, filepath.Join("runs", "r1", "wing", "press_case2.txt"), ip.DataFile(ip.Files[1]))
	assert.Equal(t, filepath.Join("runs", "r1", "cs.txt"), ip.ReferenceFrameFile())
	abs := filepath.Join(string(filepath.Separator), "data", "cs.txt")
	ip.ReferenceFrame = abs
	assert.Equal(t, abs, ip.ReferenceFrameFile())
}

func TestValidate(t *testing.T) {
	parse := func(edit func(ip *LoadTransferParameters)) error {
		var ip LoadTransferParameters
		require.NoError(t, ip.Parse([]byte(runYAML)))
		edit(&ip)
		return ip.Validate()
	}
	assert.Error(t, parse(func(ip *LoadTransferParameters) { ip.Component.InputMeshType = 5 }))
	assert.Error(t, parse(func(ip *LoadTransferParameters) { ip.Component.OutputMeshType = 0 }))
	assert.Error(t, parse(func(ip *LoadTransferParameters) { ip.Component.OutputPressType = 2 }))
	assert.Error(t, parse(func(ip *LoadTransferParameters) { ip.Component.Plane = 2 }))
	assert.Error(t, parse(func(ip *LoadTransferParameters) { ip.Component.OutputGrids = "" }))
	assert.Error(t, parse(func(ip *LoadTransferParameters) { ip.Tolerance = -1 }))

	var ip LoadTransferParameters
	assert.Error(t, ip.Parse([]byte("component: [1, 2")))
	assert.Error(t, ip.Parse([]byte(strings.Replace(runYAML, "plane: 1", "plane: yz", 1))))
	assert.Error(t, ip.Parse([]byte(strings.Replace(runYAML, "input_mesh_type: 3", "input_mesh_type: 6", 1))))
}

func TestParseNames(t *testing.T) {
	yml := strings.NewReplacer(
		"input_press_type: 1", "input_press_type: element",
		"output_press_type: 0", "output_press_type: nodes",
		"plane: 1", "plane: xz",
	).Replace(runYAML)
	var ip LoadTransferParameters
	require.NoError(t, ip.Parse([]byte(yml)))
	require.NoError(t, ip.Validate())
	inP, outP := ip.PressureTypes()
	assert.Equal(t, types.Press_Element, inP)
	assert.Equal(t, types.Press_Node, outP)
	assert.Equal(t, types.Plane_XZ, ip.Plane())
}

func TestParseTolerance(t *testing.T) {
	var ip LoadTransferParameters
	require.NoError(t, ip.Parse([]byte(runYAML+"tolerance: 0\n")))
	require.NoError(t, ip.Validate())
	assert.Equal(t, 0., ip.Tolerance)

	ip = LoadTransferParameters{}
	require.NoError(t, ip.Parse([]byte(runYAML+"tolerance: 1.0e-6\n")))
	assert.Equal(t, 1.e-6, ip.Tolerance)
}
