package LoadTransfer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/multierr"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/loadmap/InputParameters"
	"github.com/notargets/loadmap/loads"
	"github.com/notargets/loadmap/mapping"
	"github.com/notargets/loadmap/readfiles"
	"github.com/notargets/loadmap/surface"
	"github.com/notargets/loadmap/types"
	"github.com/notargets/loadmap/utils"
	"github.com/notargets/loadmap/writefiles"
)

/*
LoadTransfer carries one component through the batch: both meshes are read once, the
input panel centers are mapped onto the output panels once, and every load case reuses
that mapping.
*/
type LoadTransfer struct {
	Params     *InputParameters.LoadTransferParameters
	ResultsDir string
	Input      *surface.Surface // Aerodynamic mesh carrying the pressures
	Output     *surface.Surface // Structural mesh receiving the loads
	InPress    types.PressureType
	OutPress   types.PressureType
	Mapping    *mapping.Mapping
	Projector  *loads.Projector
	Integrator *loads.Integrator
	verbose    bool
}

func NewLoadTransfer(ip *InputParameters.LoadTransferParameters, resultsDir string, verbose bool) (lt *LoadTransfer, err error) {
	if err = ip.Validate(); err != nil {
		return
	}
	lt = &LoadTransfer{
		Params:     ip,
		ResultsDir: resultsDir,
		verbose:    verbose,
	}
	lt.InPress, lt.OutPress = ip.PressureTypes()
	inMesh, outMesh := ip.MeshTypes()
	c := ip.Component
	if lt.Input, err = readfiles.ReadSurface(ip.DataFile(c.InputGrids), ip.DataFile(c.InputElements), inMesh); err != nil {
		return nil, err
	}
	if lt.Output, err = readfiles.ReadSurface(ip.DataFile(c.OutputGrids), ip.DataFile(c.OutputElements), outMesh); err != nil {
		return nil, err
	}
	if verbose {
		fmt.Printf("Input mesh:  %d grids, %d %s panels, %d degenerate\n",
			lt.Input.NumGrids, lt.Input.NumPanels, lt.Input.MeshType, len(lt.Input.Degenerate))
		fmt.Printf("Output mesh: %d grids, %d %s panels, %d degenerate\n",
			lt.Output.NumGrids, lt.Output.NumPanels, lt.Output.MeshType, len(lt.Output.Degenerate))
	}
	if err = os.MkdirAll(resultsDir, 0755); err != nil {
		return nil, err
	}
	return
}

func (lt *LoadTransfer) resultFile(name string) string {
	return filepath.Join(lt.ResultsDir, name)
}

// BuildMapping maps the input panel centers onto the output panels and writes the map log
func (lt *LoadTransfer) BuildMapping() (err error) {
	start := time.Now()
	lt.Mapping = mapping.Map(lt.Output, lt.Input.Centers(), lt.Params.Plane(), lt.Params.Tolerance)
	if lt.Projector, err = loads.NewProjector(lt.Mapping); err != nil {
		return
	}
	if err = writefiles.WriteMapLogFile(lt.resultFile("map-log.txt"), lt.Mapping); err != nil {
		return
	}
	if lt.verbose {
		fmt.Printf("%s\n", lt.Mapping)
		if len(lt.Mapping.DegeneratePanels) > 0 {
			fmt.Printf("Output panels without footprint: %v\n", lt.Mapping.DegeneratePanels)
		}
		fmt.Printf("Mapping time = %v, %s\n", time.Since(start), utils.GetMemUsage())
	}
	return
}

func (lt *LoadTransfer) loadFrame() (err error) {
	if lt.Integrator != nil {
		return
	}
	var rf loads.ReferenceFrame
	if rf, err = readfiles.ReadReferenceFrame(lt.Params.ReferenceFrameFile()); err != nil {
		return
	}
	lt.Integrator, err = loads.NewIntegrator(rf)
	return
}

// casePressures reads a case and places its values on the input panel centers
func (lt *LoadTransfer) casePressures(i int) (p surface.Pressures, err error) {
	fn := lt.Params.DataFile(lt.Params.Files[i])
	if p, err = readfiles.ReadPressures(fn, lt.InPress, lt.Input.FieldLength(lt.InPress)); err != nil {
		return
	}
	return lt.Input.ElementPressures(p)
}

func checkResult(res loads.Result) error {
	if utils.IsNan([]r3.Vec{res.Force, res.Moment}) {
		return fmt.Errorf("integrated loads are not a number: force %v, moment %v", res.Force, res.Moment)
	}
	return nil
}

// TransferCase projects one load case onto the output mesh, integrates it and writes its files
func (lt *LoadTransfer) TransferCase(i int) (res loads.Result, err error) {
	var (
		p  surface.Pressures
		pl []loads.PanelLoad
	)
	if p, err = lt.casePressures(i); err != nil {
		return
	}
	if pl, err = lt.Projector.Project(lt.Input.Areas(), p.Values); err != nil {
		return
	}
	if res, err = lt.Integrator.Integrate(lt.Output.Centers(), loads.ProjectedForces(pl)); err != nil {
		return
	}
	if err = checkResult(res); err != nil {
		return
	}
	if lt.verbose {
		total, mapped := loads.PressureBalance(p.Values, pl)
		fmt.Printf("Case %d [%s]: pressure sum %g, mapped %g, total force %v\n",
			i, lt.Params.Files[i], total, mapped, loads.TotalForce(pl))
	}
	fout := fmt.Sprintf("forces_%d", i)
	if err = writefiles.WriteForcesFile(lt.resultFile(fout), lt.Output, pl); err != nil {
		return
	}
	if err = writefiles.WriteIntegratedFile(lt.resultFile(fout+"_output_int.txt"), res); err != nil {
		return
	}
	if lt.Params.VTK {
		op := make([]float64, len(pl))
		for k, l := range pl {
			op[k] = l.Pressure
		}
		vp := surface.NewPressures(types.Press_Element, op)
		if lt.OutPress == types.Press_Node {
			if vp, err = lt.Output.NodePressures(vp); err != nil {
				return
			}
		}
		err = writefiles.WriteVTKFile(lt.resultFile(fout+".vtk"), lt.Output, vp, pl)
	}
	return
}

// IntegrateCase integrates one load case directly on the input mesh
func (lt *LoadTransfer) IntegrateCase(i int) (res loads.Result, err error) {
	var p surface.Pressures
	if p, err = lt.casePressures(i); err != nil {
		return
	}
	src := loads.PressureForces{Areas: lt.Input.Areas(), Pressures: p.Values}
	if res, err = lt.Integrator.Integrate(lt.Input.Centers(), src); err != nil {
		return
	}
	if err = checkResult(res); err != nil {
		return
	}
	err = writefiles.WriteIntegratedFile(lt.resultFile(fmt.Sprintf("integrated_%d.txt", i)), res)
	return
}

/*
runCases applies fn to every load case. A failed case is recorded and the remaining cases
still run; a result that is not a number stops the run.
*/
func (lt *LoadTransfer) runCases(fn func(i int) (loads.Result, error)) (results []loads.Result, err error) {
	if err = lt.loadFrame(); err != nil {
		return
	}
	results = make([]loads.Result, lt.Params.NumCases())
	for i, file := range lt.Params.Files {
		res, cerr := fn(i)
		if cerr != nil {
			err = multierr.Append(err, fmt.Errorf("case %d [%s]: %w", i, file, cerr))
			if checkResult(res) != nil {
				return
			}
			continue
		}
		results[i] = res
		if lt.verbose {
			v := res.Values()
			fmt.Printf("Case %d: CF = [%8.5f, %8.5f, %8.5f] CM = [%8.5f, %8.5f, %8.5f]\n",
				i, v[0], v[1], v[2], v[3], v[4], v[5])
		}
	}
	return
}

// Transfer runs every load case through the mapping onto the output mesh
func (lt *LoadTransfer) Transfer() (results []loads.Result, err error) {
	if lt.Mapping == nil {
		if err = lt.BuildMapping(); err != nil {
			return
		}
	}
	return lt.runCases(lt.TransferCase)
}

// Integrate runs every load case directly on the input mesh, no mapping is built
func (lt *LoadTransfer) Integrate() (results []loads.Result, err error) {
	return lt.runCases(lt.IntegrateCase)
}
