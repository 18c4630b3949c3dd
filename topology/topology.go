// Package topology encodes convex reference cell shapes as recursive
// compositions of two generators over a point: prism (extrusion along a new
// axis) and pyramid (cone over a new apex). A shape is identified by its
// (id, dimension) pair, where bit k of the id records the prism-vs-pyramid
// choice at recursion level k. The package enumerates subentities of every
// codimension, converts between the generic and the legacy subentity
// numbering conventions, and supplies the reference geometry (corners,
// volume, outward normals) of every shape.
package topology

import "fmt"

// Topology identifies one convex reference cell shape. The zero value is the
// 0-dimensional point.
type Topology struct {
	id  uint32
	dim int
}

// Point returns the 0-dimensional base shape.
func Point() Topology {
	return Topology{}
}

// PrismOver extrudes base along a new coordinate axis.
func PrismOver(base Topology) Topology {
	return Topology{id: base.id | 1<<base.dim, dim: base.dim + 1}
}

// PyramidOver builds the cone over base with a new apex vertex.
func PyramidOver(base Topology) Topology {
	return Topology{id: base.id, dim: base.dim + 1}
}

// New builds the topology for a raw (id, dimension) pair. The id must satisfy
// id < 2^dim; the bit layout is a compatibility contract with persisted mesh
// numberings.
func New(id uint32, dim int) (Topology, error) {
	if dim < 0 || dim >= 32 || id >= uint32(1)<<dim {
		return Topology{}, fmt.Errorf("topology id %d out of range for dimension %d", id, dim)
	}
	return Topology{id: id, dim: dim}, nil
}

// ID returns the integer encoding of the composition chain.
func (t Topology) ID() uint32 { return t.id }

// Dim returns the dimension of the shape.
func (t Topology) Dim() int { return t.dim }

// IsPrism reports whether the outermost composition level is an extrusion.
// It is false for the point.
func (t Topology) IsPrism() bool {
	return t.dim >= 1 && t.id&(1<<(t.dim-1)) != 0
}

// IsPyramid reports whether the outermost composition level is a cone.
// It is false for the point.
func (t Topology) IsPyramid() bool {
	return t.dim >= 1 && t.id&(1<<(t.dim-1)) == 0
}

// Base peels off the outermost composition level. It panics for the point.
func (t Topology) Base() Topology {
	if t.dim == 0 {
		panic("topology: point has no base")
	}
	return Topology{id: t.id & (1<<(t.dim-1) - 1), dim: t.dim - 1}
}

// NumCorners returns the number of vertices of the shape.
func (t Topology) NumCorners() int {
	if t.dim == 0 {
		return 1
	}
	b := t.Base()
	if t.IsPrism() {
		return 2 * b.NumCorners()
	}
	return b.NumCorners() + 1
}

func (t Topology) String() string {
	if t.dim == 0 {
		return "Point"
	}
	if t.IsPrism() {
		return fmt.Sprintf("Prism(%s)", t.Base())
	}
	return fmt.Sprintf("Pyramid(%s)", t.Base())
}

// SimplexTopology returns the all-cone composition of the given dimension
// (line, triangle, tetrahedron, ...). Its id is 0.
func SimplexTopology(dim int) Topology {
	t := Point()
	for k := 0; k < dim; k++ {
		t = PyramidOver(t)
	}
	return t
}

// CubeTopology returns the all-extrusion composition of the given dimension
// (line, quadrilateral, hexahedron, ...). Its id is 2^dim - 1.
func CubeTopology(dim int) Topology {
	t := Point()
	for k := 0; k < dim; k++ {
		t = PrismOver(t)
	}
	return t
}

// PyramidTopology returns the cone over the cube of one dimension less.
func PyramidTopology(dim int) Topology {
	if dim == 0 {
		return Point()
	}
	return PyramidOver(CubeTopology(dim - 1))
}

// PrismTopology returns the extrusion of the simplex of one dimension less.
func PrismTopology(dim int) Topology {
	if dim == 0 {
		return Point()
	}
	return PrismOver(SimplexTopology(dim - 1))
}
