package element

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/notargets/refelement/topology"
)

// Container owns one reference element for every topology id of a dimension.
// Elements are built once at container construction and read-only afterwards.
type Container[T Float] struct {
	dim    int
	values []*ReferenceElement[T]
}

// NewContainer builds all 2^dim reference elements of the given dimension.
func NewContainer[T Float](dim int) *Container[T] {
	if dim < 0 || dim >= 32 {
		panic(fmt.Sprintf("element: dimension %d out of range", dim))
	}
	c := &Container[T]{
		dim:    dim,
		values: make([]*ReferenceElement[T], 1<<dim),
	}
	for id := range c.values {
		t := topologyForID(uint32(id), dim)
		c.values[id] = newReferenceElement[T](t)
	}
	return c
}

func topologyForID(id uint32, dim int) topology.Topology {
	t := topology.Point()
	for k := 0; k < dim; k++ {
		if id&(1<<k) != 0 {
			t = topology.PrismOver(t)
		} else {
			t = topology.PyramidOver(t)
		}
	}
	return t
}

// Dim returns the dimension the container serves.
func (c *Container[T]) Dim() int { return c.dim }

// NumTopologies returns the number of cached reference elements, 2^dim.
func (c *Container[T]) NumTopologies() int { return len(c.values) }

// Element returns the reference element for a raw topology id.
func (c *Container[T]) Element(id uint32) *ReferenceElement[T] {
	return c.values[id]
}

// General returns the reference element for a shape descriptor. The
// descriptor's dimension must match the container's.
func (c *Container[T]) General(gt topology.GeometryType) (*ReferenceElement[T], error) {
	if gt.Dim != c.dim {
		return nil, fmt.Errorf("element: invalid shape %s for reference elements of dimension %d", gt, c.dim)
	}
	t, err := gt.Topology()
	if err != nil {
		return nil, fmt.Errorf("element: invalid shape: %w", err)
	}
	return c.values[t.ID()], nil
}

// Simplex returns the reference simplex of the container's dimension.
func (c *Container[T]) Simplex() *ReferenceElement[T] {
	return c.values[topology.SimplexTopology(c.dim).ID()]
}

// Cube returns the reference hypercube of the container's dimension.
func (c *Container[T]) Cube() *ReferenceElement[T] {
	return c.values[topology.CubeTopology(c.dim).ID()]
}

// Pyramid returns the cone over the hypercube of one dimension less. Unlike
// General, the named accessors address topologies directly by id and remain
// available in every dimension.
func (c *Container[T]) Pyramid() *ReferenceElement[T] {
	return c.values[topology.PyramidTopology(c.dim).ID()]
}

// Prism returns the extrusion of the simplex of one dimension less.
func (c *Container[T]) Prism() *ReferenceElement[T] {
	return c.values[topology.PrismTopology(c.dim).ID()]
}

// registry is the process-wide cache of containers, keyed by scalar type and
// dimension. Construction happens under the lock, so concurrent first access
// builds a container exactly once and never observes partial state.
type registryKey struct {
	scalar reflect.Type
	dim    int
}

var (
	registryMu sync.Mutex
	registry   = make(map[registryKey]any)
)

// Registry returns the process-wide container for (T, dim), building it on
// first use.
func Registry[T Float](dim int) *Container[T] {
	key := registryKey{scalar: reflect.TypeOf(*new(T)), dim: dim}
	registryMu.Lock()
	defer registryMu.Unlock()
	if v, ok := registry[key]; ok {
		return v.(*Container[T])
	}
	c := NewContainer[T](dim)
	registry[key] = c
	return c
}

// ClearRegistry drops every cached container. It exists as an explicit
// teardown hook; elements already handed out stay valid, they just stop
// being shared with later Registry calls.
func ClearRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	clear(registry)
}
