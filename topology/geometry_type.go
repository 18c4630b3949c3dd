package topology

import (
	"errors"
	"fmt"
)

// ErrUnimplementedShape is returned when a shape descriptor names a basic
// kind outside its valid dimension range, or names no shape at all.
var ErrUnimplementedShape = errors.New("unimplemented shape")

// BasicType is the caller-facing classification of a reference cell shape.
type BasicType uint8

const (
	Simplex BasicType = iota
	Cube
	Prism
	Pyramid
	None
)

func (b BasicType) String() string {
	switch b {
	case Simplex:
		return "simplex"
	case Cube:
		return "cube"
	case Prism:
		return "prism"
	case Pyramid:
		return "pyramid"
	default:
		return "none"
	}
}

// GeometryType is the runtime shape descriptor (basic kind, dimension). It is
// total and onto for dimension <= 3; above dimension 3 only the simplex and
// cube families carry a name and every other composition maps to None.
type GeometryType struct {
	Basic BasicType
	Dim   int
}

func (gt GeometryType) IsSimplex() bool { return gt.Basic == Simplex }
func (gt GeometryType) IsCube() bool    { return gt.Basic == Cube }
func (gt GeometryType) IsPrism() bool   { return gt.Basic == Prism }
func (gt GeometryType) IsPyramid() bool { return gt.Basic == Pyramid }
func (gt GeometryType) IsNone() bool    { return gt.Basic == None }

func (gt GeometryType) String() string {
	return fmt.Sprintf("%s(dim=%d)", gt.Basic, gt.Dim)
}

// GeometryTypeOf classifies a topology as a named shape descriptor.
func GeometryTypeOf(t Topology) GeometryType {
	switch {
	case t.dim == 0:
		return GeometryType{Basic: Simplex, Dim: 0}
	case t.id == SimplexTopology(t.dim).id:
		return GeometryType{Basic: Simplex, Dim: t.dim}
	case t.id == CubeTopology(t.dim).id:
		return GeometryType{Basic: Cube, Dim: t.dim}
	case t.dim <= 1:
		// Both line encodings classify as a simplex.
		return GeometryType{Basic: Simplex, Dim: t.dim}
	case t.dim == 2 && t.id <= 1:
		return GeometryType{Basic: Simplex, Dim: 2}
	case t.dim == 2:
		return GeometryType{Basic: Cube, Dim: 2}
	case t.dim == 3 && t.id <= 1:
		return GeometryType{Basic: Simplex, Dim: 3}
	case t.dim == 3 && t.id <= 3:
		return GeometryType{Basic: Pyramid, Dim: 3}
	case t.dim == 3 && t.id <= 5:
		return GeometryType{Basic: Prism, Dim: 3}
	case t.dim == 3:
		return GeometryType{Basic: Cube, Dim: 3}
	case t.id <= 1:
		return GeometryType{Basic: Simplex, Dim: t.dim}
	case t.id >= uint32(1)<<t.dim-2:
		return GeometryType{Basic: Cube, Dim: t.dim}
	default:
		// No canonical name exists for mixed compositions above dimension 3.
		return GeometryType{Basic: None, Dim: t.dim}
	}
}

// Topology returns the canonical topology for the descriptor. Simplex and
// cube exist in every dimension; prism and pyramid only in dimension 3.
func (gt GeometryType) Topology() (Topology, error) {
	if gt.Dim < 0 {
		return Topology{}, fmt.Errorf("%w: %s", ErrUnimplementedShape, gt)
	}
	switch gt.Basic {
	case Simplex:
		return SimplexTopology(gt.Dim), nil
	case Cube:
		return CubeTopology(gt.Dim), nil
	case Prism:
		if gt.Dim != 3 {
			return Topology{}, fmt.Errorf("%w: %s", ErrUnimplementedShape, gt)
		}
		return PrismTopology(3), nil
	case Pyramid:
		if gt.Dim != 3 {
			return Topology{}, fmt.Errorf("%w: %s", ErrUnimplementedShape, gt)
		}
		return PyramidTopology(3), nil
	default:
		return Topology{}, fmt.Errorf("%w: %s", ErrUnimplementedShape, gt)
	}
}
