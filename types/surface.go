package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MeshType is the number of grids per panel, uniform over a mesh
type MeshType uint8

const (
	Mesh_Tri  MeshType = 3
	Mesh_Quad MeshType = 4
)

func NewMeshType(n int) (mt MeshType, err error) {
	switch MeshType(n) {
	case Mesh_Tri, Mesh_Quad:
		mt = MeshType(n)
	default:
		err = fmt.Errorf("mesh type must be 3 (triangles) or 4 (quadrilaterals), have %d", n)
	}
	return
}

func (mt MeshType) NumVertices() int { return int(mt) }

func (mt MeshType) String() string {
	switch mt {
	case Mesh_Tri:
		return "Triangle"
	case Mesh_Quad:
		return "Quad"
	}
	return fmt.Sprintf("MeshType(%d)", uint8(mt))
}

// PressureType selects where a pressure field lives
type PressureType uint8

const (
	Press_Node    PressureType = iota // one value per grid
	Press_Element                     // one value per panel center
)

var PressureNameMap = map[string]PressureType{
	"node":     Press_Node,
	"nodes":    Press_Node,
	"grid":     Press_Node,
	"grids":    Press_Node,
	"element":  Press_Element,
	"elements": Press_Element,
	"center":   Press_Element,
	"centers":  Press_Element,
}

func NewPressureType(n int) (pt PressureType, err error) {
	switch PressureType(n) {
	case Press_Node, Press_Element:
		pt = PressureType(n)
	default:
		err = fmt.Errorf("pressure type must be 0 (nodes) or 1 (element centers), have %d", n)
	}
	return
}

func NewPressureTypeByName(label string) (pt PressureType, err error) {
	var ok bool
	if pt, ok = PressureNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown pressure type [%s]", label)
	}
	return
}

func (pt PressureType) String() string {
	switch pt {
	case Press_Node:
		return "Node"
	case Press_Element:
		return "Element"
	}
	return fmt.Sprintf("PressureType(%d)", uint8(pt))
}

// Plane is the 2D projection used to classify points against panels
type Plane uint8

const (
	Plane_XY Plane = iota
	Plane_XZ
)

var PlaneNameMap = map[string]Plane{
	"xy": Plane_XY,
	"xz": Plane_XZ,
}

func NewPlane(n int) (pl Plane, err error) {
	switch Plane(n) {
	case Plane_XY, Plane_XZ:
		pl = Plane(n)
	default:
		err = fmt.Errorf("projection plane must be 0 (xy) or 1 (xz), have %d", n)
	}
	return
}

func NewPlaneByName(label string) (pl Plane, err error) {
	var ok bool
	if pl, ok = PlaneNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown projection plane [%s]", label)
	}
	return
}

// Axes returns the two coordinate indices retained by the projection
func (pl Plane) Axes() (a0, a1 int) {
	if pl == Plane_XZ {
		return 0, 2
	}
	return 0, 1
}

func (pl Plane) String() string {
	switch pl {
	case Plane_XY:
		return "XY"
	case Plane_XZ:
		return "XZ"
	}
	return fmt.Sprintf("Plane(%d)", uint8(pl))
}

// decodeEnum accepts a configuration value given either as a number or as a name
func decodeEnum(b []byte, byNumber func(n int) error, byName func(label string) error) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		return byNumber(n)
	}
	var label string
	if err := json.Unmarshal(b, &label); err != nil {
		return fmt.Errorf("expected a number or a name, have %s", b)
	}
	return byName(label)
}

func (mt *MeshType) UnmarshalJSON(b []byte) error {
	return decodeEnum(b,
		func(n int) (err error) { *mt, err = NewMeshType(n); return },
		func(label string) error { return fmt.Errorf("mesh type must be 3 or 4, have [%s]", label) })
}

func (pt *PressureType) UnmarshalJSON(b []byte) error {
	return decodeEnum(b,
		func(n int) (err error) { *pt, err = NewPressureType(n); return },
		func(label string) (err error) { *pt, err = NewPressureTypeByName(label); return })
}

func (pl *Plane) UnmarshalJSON(b []byte) error {
	return decodeEnum(b,
		func(n int) (err error) { *pl, err = NewPlane(n); return },
		func(label string) (err error) { *pl, err = NewPlaneByName(label); return })
}
