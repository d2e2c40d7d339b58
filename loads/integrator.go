package loads

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// ForceSource supplies the force acting on each panel
type ForceSource interface {
	NumPanels() int
	PanelForce(k int) r3.Vec
	Check() error
}

// ProjectedForces uses the resultants of a projection
type ProjectedForces []PanelLoad

func (pf ProjectedForces) NumPanels() int          { return len(pf) }
func (pf ProjectedForces) PanelForce(k int) r3.Vec { return pf[k].Force }
func (pf ProjectedForces) Check() error            { return nil }

// PressureForces is each panel's own pressure times its oriented area
type PressureForces struct {
	Areas     []r3.Vec
	Pressures []float64
}

func (pf PressureForces) NumPanels() int { return len(pf.Areas) }
func (pf PressureForces) PanelForce(k int) r3.Vec {
	return r3.Scale(pf.Pressures[k], pf.Areas[k])
}

func (pf PressureForces) Check() error {
	if len(pf.Pressures) != len(pf.Areas) {
		return fmt.Errorf("have %d pressures for %d panel areas", len(pf.Pressures), len(pf.Areas))
	}
	return nil
}

// Contribution is one panel's force and moment in the reference axes
type Contribution struct {
	Force  r3.Vec
	Moment r3.Vec
}

/*
Result holds the non-dimensional coefficients of one load case.
The moment coefficients are the summed reference axis forces divided by area*span about
axes 0 and 2 and by area*chord about axis 1; MomentSum keeps the summed panel moments in
the reference axes, un-normalized.
*/
type Result struct {
	Force     r3.Vec
	Moment    r3.Vec
	MomentSum r3.Vec
}

func (r Result) Values() [6]float64 {
	return [6]float64{r.Force.X, r.Force.Y, r.Force.Z, r.Moment.X, r.Moment.Y, r.Moment.Z}
}

type Integrator struct {
	Frame ReferenceFrame
	basis *mat.Dense
}

func NewIntegrator(frame ReferenceFrame) (ig *Integrator, err error) {
	if err = frame.Validate(); err != nil {
		return
	}
	ig = &Integrator{
		Frame: frame,
		basis: frame.Basis(),
	}
	return
}

// Rotate left multiplies v by the basis matrix
func (ig *Integrator) Rotate(v r3.Vec) r3.Vec {
	var y mat.VecDense
	y.MulVec(ig.basis, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return r3.Vec{X: y.AtVec(0), Y: y.AtVec(1), Z: y.AtVec(2)}
}

// Contributions computes force x (center - reference point) for every panel and
// expresses both the force and the moment in the reference axes
func (ig *Integrator) Contributions(centers []r3.Vec, src ForceSource) (c []Contribution, err error) {
	if err = src.Check(); err != nil {
		return
	}
	if src.NumPanels() != len(centers) {
		err = fmt.Errorf("force source has %d panels, surface has %d", src.NumPanels(), len(centers))
		return
	}
	c = make([]Contribution, len(centers))
	for k, x := range centers {
		f := src.PanelForce(k)
		dist := r3.Sub(x, ig.Frame.Point)
		c[k].Force = ig.Rotate(f)
		c[k].Moment = ig.Rotate(r3.Cross(f, dist))
	}
	return
}

func (ig *Integrator) Integrate(centers []r3.Vec, src ForceSource) (res Result, err error) {
	var c []Contribution
	if c, err = ig.Contributions(centers, src); err != nil {
		return
	}
	var fSum r3.Vec
	for _, ck := range c {
		fSum = r3.Add(fSum, ck.Force)
		res.MomentSum = r3.Add(res.MomentSum, ck.Moment)
	}
	var (
		a = ig.Frame.Area
		b = ig.Frame.Span
		l = ig.Frame.Chord
	)
	res.Force = r3.Vec{X: fSum.X / a, Y: fSum.Y / a, Z: fSum.Z / a}
	res.Moment = r3.Vec{
		X: fSum.X / (a * b),
		Y: fSum.Y / (a * l),
		Z: fSum.Z / (a * b),
	}
	return
}
