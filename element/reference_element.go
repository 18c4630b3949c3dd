package element

import (
	"fmt"

	"github.com/notargets/refelement/topology"
)

// subEntityInfo holds the adjacency of one subentity: for every deeper
// codimension, the parent-frame indices of the subentities it contains.
type subEntityInfo struct {
	codim     int
	topo      topology.Topology
	numbering [][]int // [cc][ii], populated for cc >= codim
}

func (s *subEntityInfo) size(cc int) int {
	return len(s.numbering[cc])
}

func (s *subEntityInfo) number(ii, cc int) int {
	return s.numbering[cc][ii]
}

// ReferenceElement provides the geometric and topological properties of one
// reference cell: subentity counts and adjacency, subentity shapes,
// barycenters, volume, outward face normals, and the embedding mapping of
// every subentity. It is immutable after construction; a container builds
// each element exactly once and shares it for the process lifetime.
type ReferenceElement[T Float] struct {
	topo topology.Topology
	dim  int

	info          [][]subEntityInfo // [codim][i]
	baryCenters   [][][]T           // [codim][i]
	volume        T
	volumeNormals [][]T

	mappings [][]*trace[T] // [codim][i]; mappings[0][0] is the identity
}

// newReferenceElement runs the one-time construction: subentity table,
// barycenters bottom-up, volume and normals from the reference domain, the
// codimension-0 identity mapping, then the trace table in increasing
// codimension order.
func newReferenceElement[T Float](t topology.Topology) *ReferenceElement[T] {
	dim := t.Dim()
	re := &ReferenceElement[T]{topo: t, dim: dim}

	re.info = make([][]subEntityInfo, dim+1)
	for c := 0; c <= dim; c++ {
		size := topology.Size(t, c)
		re.info[c] = make([]subEntityInfo, size)
		for i := 0; i < size; i++ {
			sub := topology.SubTopology(t, c, i)
			numbering := make([][]int, dim+1)
			for cc := c; cc <= dim; cc++ {
				n := topology.Size(sub, cc-c)
				numbering[cc] = make([]int, n)
				for ii := 0; ii < n; ii++ {
					numbering[cc][ii] = topology.SubEntity(t, c, i, cc, ii)
				}
			}
			re.info[c][i] = subEntityInfo{codim: c, topo: sub, numbering: numbering}
		}
	}

	// vertex positions, then barycenters as corner means
	re.baryCenters = make([][][]T, dim+1)
	numVertices := topology.Size(t, dim)
	verts := make([][]T, numVertices)
	for i := 0; i < numVertices; i++ {
		verts[i] = narrow[T](topology.Corner(t, i))
	}
	re.baryCenters[dim] = verts
	for c := 0; c < dim; c++ {
		size := topology.Size(t, c)
		re.baryCenters[c] = make([][]T, size)
		for i := 0; i < size; i++ {
			center := make([]T, dim)
			numCorners := re.info[c][i].size(dim)
			for j := 0; j < numCorners; j++ {
				v := verts[re.info[c][i].number(j, dim)]
				for k := range center {
					center[k] += v[k]
				}
			}
			for k := range center {
				center[k] /= T(numCorners)
			}
			re.baryCenters[c][i] = center
		}
	}

	re.volume = T(topology.Volume(t))
	re.volumeNormals = make([][]T, topology.NumNormals(t))
	for i := range re.volumeNormals {
		re.volumeNormals[i] = narrow[T](topology.IntegrationOuterNormal(t, i))
	}

	// codimension-0 identity mapping, then one trace per subentity
	re.mappings = make([][]*trace[T], dim+1)
	identity := &trace[T]{topo: t, dim: dim, corners: verts}
	re.mappings[0] = []*trace[T]{identity}
	for c := 1; c <= dim; c++ {
		factory := newTraceFactory[T](t, c)
		size := topology.Size(t, c)
		slab := make([]trace[T], size) // one slab per codimension
		re.mappings[c] = make([]*trace[T], size)
		for i := 0; i < size; i++ {
			re.mappings[c][i] = factory.construct(identity, i, &slab[i])
		}
	}
	return re
}

// Topology returns the shape of the reference element.
func (re *ReferenceElement[T]) Topology() topology.Topology { return re.topo }

// Dim returns the dimension of the reference element.
func (re *ReferenceElement[T]) Dim() int { return re.dim }

// Size returns the number of subentities of codimension c.
func (re *ReferenceElement[T]) Size(c int) int {
	return len(re.info[c])
}

// SubSize returns the number of codimension-cc subentities of subentity
// (i, c).
func (re *ReferenceElement[T]) SubSize(i, c, cc int) int {
	return re.info[c][i].size(cc)
}

// SubEntity returns the parent-frame index of the ii-th codimension-cc
// subentity of subentity (i, c).
func (re *ReferenceElement[T]) SubEntity(i, c, ii, cc int) int {
	return re.info[c][i].number(ii, cc)
}

// SubTopology returns the shape of subentity (i, c).
func (re *ReferenceElement[T]) SubTopology(i, c int) topology.Topology {
	return re.info[c][i].topo
}

// TypeOf returns the shape descriptor of subentity (i, c).
func (re *ReferenceElement[T]) TypeOf(i, c int) topology.GeometryType {
	return topology.GeometryTypeOf(re.info[c][i].topo)
}

// Type returns the shape descriptor of the reference element itself.
func (re *ReferenceElement[T]) Type() topology.GeometryType {
	return re.TypeOf(0, 0)
}

// Position returns the barycenter of subentity (i, c) in the element frame.
func (re *ReferenceElement[T]) Position(i, c int) []T {
	out := make([]T, re.dim)
	copy(out, re.baryCenters[c][i])
	return out
}

// CheckInside reports whether a local coordinate lies in the reference
// element.
func (re *ReferenceElement[T]) CheckInside(local []T) bool {
	return topology.CheckInside(re.topo, widen(local))
}

// CheckInsideSub reports whether a local coordinate of subentity (i, codim)
// lies in that subentity's reference cell. The coordinate length must match
// the subentity dimension.
func (re *ReferenceElement[T]) CheckInsideSub(local []T, i, codim int) (bool, error) {
	if len(local) != re.dim-codim {
		return false, fmt.Errorf("element: local coordinate of length %d does not correspond to codimension %d in dimension %d",
			len(local), codim, re.dim)
	}
	return re.mappings[codim][i].CheckInside(local), nil
}

// Global maps a local coordinate of subentity (i, codim) into the element
// frame. The coordinate length must match the subentity dimension; a mismatch
// is reported, never silently reinterpreted.
func (re *ReferenceElement[T]) Global(local []T, i, codim int) ([]T, error) {
	if len(local) != re.dim-codim {
		return nil, fmt.Errorf("element: local coordinate of length %d does not correspond to codimension %d in dimension %d",
			len(local), codim, re.dim)
	}
	return re.mappings[codim][i].Global(local), nil
}

// Mapping returns the embedding of subentity (i, codim) into the reference
// element.
func (re *ReferenceElement[T]) Mapping(i, codim int) Mapping[T] {
	return re.mappings[codim][i]
}

// Volume returns the volume of the reference element.
func (re *ReferenceElement[T]) Volume() T {
	return re.volume
}

// VolumeOuterNormal returns the outward normal of the given face, scaled by
// the face volume relative to the face's reference cell.
func (re *ReferenceElement[T]) VolumeOuterNormal(face int) []T {
	out := make([]T, re.dim)
	copy(out, re.volumeNormals[face])
	return out
}
