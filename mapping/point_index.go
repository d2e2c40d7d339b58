package mapping

import (
	"math"

	"github.com/notargets/loadmap/geometry2D"
)

// PointIndex buckets projected points on a uniform grid over their bounding box
type PointIndex struct {
	box    geometry2D.BoundingBox
	n      [2]int
	width  [2]float64
	bucket [][]int
}

func NewPointIndex(pts []geometry2D.Point) (pi *PointIndex) {
	pi = &PointIndex{}
	if len(pts) == 0 {
		return
	}
	pi.box = geometry2D.NewBoundingBox(pts)
	// About four points per bucket on a uniform scatter
	nSide := int(math.Max(1, math.Sqrt(float64(len(pts))/4)))
	for n := 0; n < 2; n++ {
		pi.n[n] = nSide
		pi.width[n] = (pi.box.XMax[n] - pi.box.XMin[n]) / float64(nSide)
		if pi.width[n] == 0 {
			pi.n[n] = 1
		}
	}
	pi.bucket = make([][]int, pi.n[0]*pi.n[1])
	for j, pt := range pts {
		b := pi.cell(pt.X[0], 0) + pi.n[0]*pi.cell(pt.X[1], 1)
		pi.bucket[b] = append(pi.bucket[b], j)
	}
	return
}

func (pi *PointIndex) cell(x float64, axis int) (i int) {
	if pi.n[axis] == 1 {
		return 0
	}
	i = int((x - pi.box.XMin[axis]) / pi.width[axis])
	if i < 0 {
		i = 0
	}
	if i >= pi.n[axis] {
		i = pi.n[axis] - 1
	}
	return
}

// Candidates calls fn for every point whose bucket overlaps box, each point at most once
func (pi *PointIndex) Candidates(box geometry2D.BoundingBox, fn func(j int)) {
	if len(pi.bucket) == 0 {
		return
	}
	for n := 0; n < 2; n++ {
		if box.XMax[n] < pi.box.XMin[n] || box.XMin[n] > pi.box.XMax[n] {
			return
		}
	}
	i0, i1 := pi.cell(box.XMin[0], 0), pi.cell(box.XMax[0], 0)
	j0, j1 := pi.cell(box.XMin[1], 1), pi.cell(box.XMax[1], 1)
	for jj := j0; jj <= j1; jj++ {
		for ii := i0; ii <= i1; ii++ {
			for _, j := range pi.bucket[ii+pi.n[0]*jj] {
				fn(j)
			}
		}
	}
}
