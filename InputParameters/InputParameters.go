package InputParameters

import (
	"fmt"
	"path/filepath"

	"github.com/ghodss/yaml"

	"github.com/notargets/loadmap/types"
	"github.com/notargets/loadmap/utils"
)

// Component names the two meshes of one structural component and how to read them.
// Pressure types and the plane take either their number or a name such as "element" or "xz".
type Component struct {
	Name            string             `json:"name"`
	InputGrids      string             `json:"input_grids"`
	InputElements   string             `json:"input_elements"`
	OutputGrids     string             `json:"output_grids"`
	OutputElements  string             `json:"output_elements"`
	InputMeshType   types.MeshType     `json:"input_mesh_type"`
	InputPressType  types.PressureType `json:"input_press_type"`
	OutputMeshType  types.MeshType     `json:"output_mesh_type"`
	OutputPressType types.PressureType `json:"output_press_type"`
	DataDir         string             `json:"data_dir"`
	Plane           types.Plane        `json:"plane"`
}

// Parameters obtained from the YAML run description
// ghodss/yaml converts to JSON before decoding, so the keys are carried on json tags
type LoadTransferParameters struct {
	Component      Component `json:"component"`
	ReferenceFrame string    `json:"reference_frame"`
	Tolerance      float64   `json:"tolerance"`
	VTK            bool      `json:"vtk"`
	Files          []string  `json:"files"`
	// Directory holding the run description, data_dir and reference_frame are relative to it
	BaseDir string `json:"-"`
}

const DefaultReferenceFrame = "cs.txt"

// Parse fills the defaults first, so keys absent from data keep them
func (ip *LoadTransferParameters) Parse(data []byte) (err error) {
	ip.ReferenceFrame = DefaultReferenceFrame
	ip.Tolerance = utils.MAPTOL
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	if ip.ReferenceFrame == "" {
		ip.ReferenceFrame = DefaultReferenceFrame
	}
	return
}

func (ip *LoadTransferParameters) Validate() (err error) {
	var (
		c     = ip.Component
		names = [4]string{"input_grids", "input_elements", "output_grids", "output_elements"}
		files = [4]string{c.InputGrids, c.InputElements, c.OutputGrids, c.OutputElements}
	)
	for i, f := range files {
		if f == "" {
			return fmt.Errorf("component %s is missing %s", c.Name, names[i])
		}
	}
	if _, err = types.NewMeshType(int(c.InputMeshType)); err != nil {
		return fmt.Errorf("input_mesh_type: %w", err)
	}
	if _, err = types.NewMeshType(int(c.OutputMeshType)); err != nil {
		return fmt.Errorf("output_mesh_type: %w", err)
	}
	if _, err = types.NewPressureType(int(c.InputPressType)); err != nil {
		return fmt.Errorf("input_press_type: %w", err)
	}
	if _, err = types.NewPressureType(int(c.OutputPressType)); err != nil {
		return fmt.Errorf("output_press_type: %w", err)
	}
	if _, err = types.NewPlane(int(c.Plane)); err != nil {
		return fmt.Errorf("plane: %w", err)
	}
	if !(ip.Tolerance >= 0) || !utils.IsFinite(ip.Tolerance) {
		return fmt.Errorf("tolerance must be a finite non negative number, have %g", ip.Tolerance)
	}
	return
}

func (ip *LoadTransferParameters) MeshTypes() (in, out types.MeshType) {
	return ip.Component.InputMeshType, ip.Component.OutputMeshType
}

func (ip *LoadTransferParameters) PressureTypes() (in, out types.PressureType) {
	return ip.Component.InputPressType, ip.Component.OutputPressType
}

func (ip *LoadTransferParameters) Plane() types.Plane { return ip.Component.Plane }

func (ip *LoadTransferParameters) resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// DataFile locates a mesh or pressure file under the component data directory
func (ip *LoadTransferParameters) DataFile(name string) string {
	return ip.resolve(ip.resolve(ip.BaseDir, ip.Component.DataDir), name)
}

func (ip *LoadTransferParameters) ReferenceFrameFile() string {
	return ip.resolve(ip.BaseDir, ip.ReferenceFrame)
}

func (ip *LoadTransferParameters) NumCases() int { return len(ip.Files) }

func (ip *LoadTransferParameters) Print() {
	c := ip.Component
	inM, outM := ip.MeshTypes()
	inP, outP := ip.PressureTypes()
	fmt.Printf("\"%s\"\t\t\t= Component\n", c.Name)
	fmt.Printf("[%s]\t\t\t= Data Directory\n", c.DataDir)
	fmt.Printf("[%s, %s]\t= Input Mesh [%s], Pressures [%s]\n", c.InputGrids, c.InputElements, inM, inP)
	fmt.Printf("[%s, %s]\t= Output Mesh [%s], Pressures [%s]\n", c.OutputGrids, c.OutputElements, outM, outP)
	fmt.Printf("[%s]\t\t\t= Projection Plane\n", ip.Plane())
	fmt.Printf("[%s]\t\t\t= Reference Frame\n", ip.ReferenceFrame)
	fmt.Printf("%8.2e\t\t= Tolerance\n", ip.Tolerance)
	fmt.Printf("[%d]\t\t\t\t= Load Cases\n", ip.NumCases())
	for i, f := range ip.Files {
		fmt.Printf("Files[%d] = %s\n", i, f)
	}
}
