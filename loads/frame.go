package loads

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/loadmap/utils"
)

var ErrFrame = errors.New("invalid reference frame")

/*
ReferenceFrame is the moment reference point, the three points that span the reference
axes and the normalizing area, chord and span. The axes are the basis points minus the
reference point and are neither normalized nor orthogonalized.
*/
type ReferenceFrame struct {
	Point       r3.Vec    // Reference point p0
	BasisOrigin r3.Vec    // First basis line of the frame file, not used for the axes
	BasisPoints [3]r3.Vec // p1, p2, p3
	Area        float64
	Chord       float64
	Span        float64
}

func NewReferenceFrame(point r3.Vec, basisPoints [3]r3.Vec, area, chord, span float64) (rf ReferenceFrame, err error) {
	rf = ReferenceFrame{
		Point:       point,
		BasisOrigin: point,
		BasisPoints: basisPoints,
		Area:        area,
		Chord:       chord,
		Span:        span,
	}
	err = rf.Validate()
	return
}

func (rf ReferenceFrame) Validate() error {
	names := [3]string{"area", "chord", "span"}
	for i, v := range [3]float64{rf.Area, rf.Chord, rf.Span} {
		if !utils.IsFinite(v) || v == 0 {
			return fmt.Errorf("%w: reference %s is %v", ErrFrame, names[i], v)
		}
	}
	pts := append([]r3.Vec{rf.Point}, rf.BasisPoints[:]...)
	if utils.IsNan(pts) {
		return fmt.Errorf("%w: reference point or basis point is NaN", ErrFrame)
	}
	return nil
}

func (rf ReferenceFrame) Axes() (e [3]r3.Vec) {
	for i, p := range rf.BasisPoints {
		e[i] = r3.Sub(p, rf.Point)
	}
	return
}

// Basis is the 3x3 matrix with the axes as rows
func (rf ReferenceFrame) Basis() *mat.Dense {
	e := rf.Axes()
	return mat.NewDense(3, 3, []float64{
		e[0].X, e[0].Y, e[0].Z,
		e[1].X, e[1].Y, e[1].Z,
		e[2].X, e[2].Y, e[2].Z,
	})
}
