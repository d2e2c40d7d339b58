package geometry2D

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/loadmap/types"
	"github.com/notargets/loadmap/utils"
)

type Point struct {
	X [2]float64
}

// Project drops the coordinate normal to the plane
func Project(v r3.Vec, plane types.Plane) (pt Point) {
	var (
		x      = [3]float64{v.X, v.Y, v.Z}
		a0, a1 = plane.Axes()
	)
	pt.X = [2]float64{x[a0], x[a1]}
	return
}

// Orient is twice the signed area of a-b-c, counter-clockwise is positive
func Orient(a, b, c Point) float64 {
	return (b.X[0]-a.X[0])*(c.X[1]-a.X[1]) - (c.X[0]-a.X[0])*(b.X[1]-a.X[1])
}

type BoundingBox struct {
	XMin, XMax [2]float64
}

func NewBoundingBox(pts []Point) (box BoundingBox) {
	for n := 0; n < 2; n++ {
		box.XMin[n], box.XMax[n] = math.MaxFloat64, -math.MaxFloat64
	}
	for _, pt := range pts {
		for n := 0; n < 2; n++ {
			box.XMin[n] = math.Min(box.XMin[n], pt.X[n])
			box.XMax[n] = math.Max(box.XMax[n], pt.X[n])
		}
	}
	return
}

// Grow expands each side of the box by delta
func (box BoundingBox) Grow(delta float64) BoundingBox {
	for n := 0; n < 2; n++ {
		box.XMin[n] -= delta
		box.XMax[n] += delta
	}
	return box
}

func (box BoundingBox) Extent() float64 {
	return (box.XMax[0] - box.XMin[0]) + (box.XMax[1] - box.XMin[1])
}

func (box BoundingBox) Contains(pt Point) bool {
	return pt.X[0] >= box.XMin[0] && pt.X[0] <= box.XMax[0] &&
		pt.X[1] >= box.XMin[1] && pt.X[1] <= box.XMax[1]
}

/*
Region is the planar footprint of a panel: the convex hull of its projected vertices,
stored counter-clockwise and split into a fan of triangles from the first hull vertex.
A point belongs to the region when it lies in one of the fan triangles, with every
barycentric coordinate allowed to undershoot zero by the tolerance.
*/
type Region struct {
	Hull       []Point
	Box        BoundingBox // Includes the tolerance margin
	Degenerate bool        // Hull has no area in this projection
	tol        float64
}

func NewRegion(verts []Point, tol float64) (r Region) {
	r.tol = tol
	r.Hull = ConvexHull(verts)
	box := NewBoundingBox(verts)
	ext := box.Extent()
	r.Box = box.Grow(4*tol*ext + utils.NODETOL)
	if len(r.Hull) < 3 {
		r.Degenerate = true
		return
	}
	var area2 float64
	for k := 1; k < len(r.Hull)-1; k++ {
		area2 += Orient(r.Hull[0], r.Hull[k], r.Hull[k+1])
	}
	if area2 <= utils.AREATOL*ext*ext {
		r.Degenerate = true
	}
	return
}

func (r Region) Contains(pt Point) bool {
	if r.Degenerate || !r.Box.Contains(pt) {
		return false
	}
	for k := 1; k < len(r.Hull)-1; k++ {
		if InTriangle(pt, r.Hull[0], r.Hull[k], r.Hull[k+1], r.tol) {
			return true
		}
	}
	return false
}

// InTriangle tests the barycentric coordinates of p against a-b-c, allowing each to reach -tol
func InTriangle(p, a, b, c Point, tol float64) bool {
	det := Orient(a, b, c)
	if det == 0 {
		return false
	}
	l1 := Orient(p, b, c) / det
	l2 := Orient(a, p, c) / det
	l3 := 1 - l1 - l2
	return l1 >= -tol && l2 >= -tol && l3 >= -tol &&
		l1 <= 1+tol && l2 <= 1+tol && l3 <= 1+tol
}

// ConvexHull returns the hull vertices in counter-clockwise order, collinear points dropped
func ConvexHull(verts []Point) (hull []Point) {
	pts := make([]Point, len(verts))
	copy(pts, verts)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X[0] != pts[j].X[0] {
			return pts[i].X[0] < pts[j].X[0]
		}
		return pts[i].X[1] < pts[j].X[1]
	})
	// Remove exact duplicates, they would collapse the monotone chain
	uniq := pts[:0]
	for _, pt := range pts {
		if len(uniq) == 0 || pt != uniq[len(uniq)-1] {
			uniq = append(uniq, pt)
		}
	}
	pts = uniq
	if len(pts) < 3 {
		return pts
	}
	hull = make([]Point, 0, 2*len(pts))
	for _, pt := range pts { // Lower chain
		for len(hull) >= 2 && Orient(hull[len(hull)-2], hull[len(hull)-1], pt) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, pt)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- { // Upper chain
		pt := pts[i]
		for len(hull) >= lower && Orient(hull[len(hull)-2], hull[len(hull)-1], pt) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, pt)
	}
	return hull[:len(hull)-1]
}
