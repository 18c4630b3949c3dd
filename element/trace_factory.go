package element

import (
	"sync"

	"github.com/notargets/refelement/topology"
)

// constructFunc fills a caller-owned slot with the embedding mapping of
// subentity i, derived from the parent's codimension-0 mapping.
type constructFunc[T Float] func(parent *trace[T], i int, slot *trace[T])

// traceFactory builds the embedding mappings for one (topology, codimension)
// pair. A codimension whose subentities share a single shape is non-hybrid
// and uses one bound constructor; a mixed codimension (e.g. the faces of a
// pyramid) holds a dispatch table with one constructor per subentity index.
// The table is built once on first use.
type traceFactory[T Float] struct {
	topo   topology.Topology
	codim  int
	hybrid bool

	once  sync.Once
	table []constructFunc[T]
}

func newTraceFactory[T Float](t topology.Topology, codim int) *traceFactory[T] {
	f := &traceFactory[T]{topo: t, codim: codim}
	first := topology.SubTopology(t, codim, 0)
	for i := 1; i < topology.Size(t, codim); i++ {
		if topology.SubTopology(t, codim, i) != first {
			f.hybrid = true
			break
		}
	}
	return f
}

// construct places the mapping of subentity i into slot and returns it. The
// slot is storage owned by the caller (the reference element's per-codim
// slab), so no per-entity allocation happens here beyond the corner list.
func (f *traceFactory[T]) construct(parent *trace[T], i int, slot *trace[T]) *trace[T] {
	f.dispatch()[i](parent, i, slot)
	return slot
}

func (f *traceFactory[T]) dispatch() []constructFunc[T] {
	f.once.Do(func() {
		size := topology.Size(f.topo, f.codim)
		f.table = make([]constructFunc[T], size)
		if !f.hybrid {
			fn := f.bind(topology.SubTopology(f.topo, f.codim, 0))
			for i := range f.table {
				f.table[i] = fn
			}
			return
		}
		for i := range f.table {
			f.table[i] = f.bind(topology.SubTopology(f.topo, f.codim, i))
		}
	})
	return f.table
}

// bind fixes the concrete subentity shape of a constructor. The corner list
// is pulled from the parent mapping through the generic vertex numbering, so
// the local corner order matches the subentity's own reference cell.
func (f *traceFactory[T]) bind(sub topology.Topology) constructFunc[T] {
	codim := f.codim
	topo := f.topo
	return func(parent *trace[T], i int, slot *trace[T]) {
		corners := make([][]T, sub.NumCorners())
		for j := range corners {
			v := topology.SubEntity(topo, codim, i, topo.Dim(), j)
			c := make([]T, parent.dim)
			copy(c, parent.corners[v])
			corners[j] = c
		}
		*slot = trace[T]{topo: sub, dim: parent.dim, corners: corners}
	}
}
