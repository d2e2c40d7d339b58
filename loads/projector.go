package loads

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/loadmap/mapping"
)

// PanelLoad is the resultant of the source pressures mapped onto one target panel
type PanelLoad struct {
	Force    r3.Vec
	Pressure float64 // Sum of the mapped pressures
}

/*
Projector holds the mapping as a target panel by source point incidence matrix.
Row k has a unit entry in column j for every source point j owned by panel k, with
columns ascending so each panel accumulates its points in source order.
*/
type Projector struct {
	M         *sparse.CSR
	NumPanels int
	NumPoints int
}

func NewProjector(m *mapping.Mapping) (pr *Projector, err error) {
	if err = m.Check(); err != nil {
		return
	}
	pr = &Projector{
		NumPanels: m.NumPanels,
		NumPoints: m.NumPoints(),
	}
	if pr.NumPanels == 0 || pr.NumPoints == 0 {
		return
	}
	var (
		counts = m.Counts()
		indptr = make([]int, pr.NumPanels+1)
	)
	for k, c := range counts {
		indptr[k+1] = indptr[k] + c
	}
	var (
		nnz  = indptr[pr.NumPanels]
		ind  = make([]int, nnz)
		data = make([]float64, nnz)
		next = make([]int, pr.NumPanels)
	)
	copy(next, indptr[:pr.NumPanels])
	for j, k := range m.Owner {
		if k == mapping.Unmapped {
			continue
		}
		ind[next[k]] = j
		data[next[k]] = 1
		next[k]++
	}
	pr.M = sparse.NewCSR(pr.NumPanels, pr.NumPoints, indptr, ind, data)
	return
}

// Project accumulates pressure times source area onto the target panels.
// Pressures must be resident on the same points the mapping was built from.
// Each force component and the pressure sum is one product of the incidence matrix
// with a source vector.
func (pr *Projector) Project(areas []r3.Vec, pressures []float64) (pl []PanelLoad, err error) {
	if len(areas) != pr.NumPoints || len(pressures) != pr.NumPoints {
		err = fmt.Errorf("projection needs %d source areas and pressures, have %d and %d",
			pr.NumPoints, len(areas), len(pressures))
		return
	}
	pl = make([]PanelLoad, pr.NumPanels)
	if pr.M == nil {
		return
	}
	var (
		src [4]*mat.VecDense // Pressure times area x, y, z and the pressure itself
		dst [4]*mat.VecDense
	)
	for i := range src {
		src[i] = mat.NewVecDense(pr.NumPoints, nil)
		dst[i] = mat.NewVecDense(pr.NumPanels, nil)
	}
	for j, p := range pressures {
		src[0].SetVec(j, p*areas[j].X)
		src[1].SetVec(j, p*areas[j].Y)
		src[2].SetVec(j, p*areas[j].Z)
		src[3].SetVec(j, p)
	}
	for i := range src {
		pr.M.MulVecTo(dst[i].RawVector().Data, false, src[i].RawVector().Data)
	}
	for k := range pl {
		pl[k].Force = r3.Vec{X: dst[0].AtVec(k), Y: dst[1].AtVec(k), Z: dst[2].AtVec(k)}
		pl[k].Pressure = dst[3].AtVec(k)
	}
	return
}

// TotalForce sums the panel forces without any change of axes
func TotalForce(pl []PanelLoad) (f r3.Vec) {
	for _, l := range pl {
		f = r3.Add(f, l.Force)
	}
	return
}

// PressureBalance returns the sum of all source pressures and the part carried onto panels.
// The difference is the pressure on unmapped points.
func PressureBalance(pressures []float64, pl []PanelLoad) (total, mapped float64) {
	total = floats.Sum(pressures)
	for _, l := range pl {
		mapped += l.Pressure
	}
	return
}
