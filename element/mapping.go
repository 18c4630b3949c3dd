// Package element builds reference elements: for one (scalar type, dimension,
// topology id) triple it aggregates the full subentity table, barycenters,
// volume, outward face normals and one embedding mapping per subentity. A
// container caches every reference element of a dimension, and a process-wide
// registry caches containers per scalar type.
package element

import (
	"fmt"

	"github.com/notargets/refelement/topology"
)

// Float is the scalar type of reference coordinates.
type Float interface {
	~float32 | ~float64
}

// Mapping embeds a subentity's local reference frame into the frame of its
// parent reference element.
type Mapping[T Float] interface {
	// SubTopology is the shape of the embedded subentity.
	SubTopology() topology.Topology
	// NumCorners is the subentity's vertex count.
	NumCorners() int
	// Corner returns vertex i of the subentity in the parent frame.
	Corner(i int) []T
	// Center returns the barycenter of the subentity in the parent frame.
	Center() []T
	// Global maps a local coordinate of the subentity's reference cell into
	// the parent frame. len(local) must equal the subentity dimension.
	Global(local []T) []T
	// CheckInside reports whether a local coordinate lies in the subentity's
	// reference cell.
	CheckInside(local []T) bool
}

// trace is the one concrete mapping implementation: a corner-interpolation
// map evaluated recursively over the subentity's composition chain. For the
// corner placements occurring in reference elements every trace is affine.
type trace[T Float] struct {
	topo    topology.Topology
	dim     int   // parent frame dimension
	corners [][]T // vertex positions in the parent frame
}

func (m *trace[T]) SubTopology() topology.Topology { return m.topo }

func (m *trace[T]) NumCorners() int { return len(m.corners) }

func (m *trace[T]) Corner(i int) []T {
	out := make([]T, m.dim)
	copy(out, m.corners[i])
	return out
}

func (m *trace[T]) Center() []T {
	out := make([]T, m.dim)
	for _, c := range m.corners {
		for k := range out {
			out[k] += c[k]
		}
	}
	inv := T(1) / T(len(m.corners))
	for k := range out {
		out[k] *= inv
	}
	return out
}

func (m *trace[T]) Global(local []T) []T {
	if len(local) != m.topo.Dim() {
		panic(fmt.Sprintf("element: local coordinate of length %d does not match %s", len(local), m.topo))
	}
	out := make([]T, m.dim)
	interpolate(m.topo, local, m.corners, out)
	return out
}

func (m *trace[T]) CheckInside(local []T) bool {
	return topology.CheckInside(m.topo, widen(local))
}

// interpolate evaluates the corner map of t at local. An extrusion level
// blends the bottom and top halves linearly; a cone level shrinks the base by
// 1-z and blends with the apex.
func interpolate[T Float](t topology.Topology, local []T, corners [][]T, out []T) {
	if t.Dim() == 0 {
		copy(out, corners[0])
		return
	}
	b := t.Base()
	nb := b.NumCorners()
	z := local[t.Dim()-1]
	if t.IsPrism() {
		bottom := make([]T, len(out))
		top := make([]T, len(out))
		interpolate(b, local[:t.Dim()-1], corners[:nb], bottom)
		interpolate(b, local[:t.Dim()-1], corners[nb:], top)
		for k := range out {
			out[k] = (1-z)*bottom[k] + z*top[k]
		}
		return
	}
	apex := corners[nb]
	cz := 1 - z
	if cz == 0 {
		copy(out, apex)
		return
	}
	scaled := make([]T, t.Dim()-1)
	for k := range scaled {
		scaled[k] = local[k] / cz
	}
	base := make([]T, len(out))
	interpolate(b, scaled, corners[:nb], base)
	for k := range out {
		out[k] = cz*base[k] + z*apex[k]
	}
}

func widen[T Float](x []T) []float64 {
	out := make([]float64, len(x))
	for k, v := range x {
		out[k] = float64(v)
	}
	return out
}

func narrow[T Float](x []float64) []T {
	out := make([]T, len(x))
	for k, v := range x {
		out[k] = T(v)
	}
	return out
}
