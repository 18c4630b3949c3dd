package topology

import (
	"fmt"
	"sync"
)

// The generic subentity enumeration (block layout in subentity.go) and the
// legacy convention used by external callers disagree for the named shapes up
// to dimension 4. The permutations below are literal compatibility tables;
// there is no general derivation, and shapes outside the tabulated set keep
// the identity map.

// NumberingProvider converts subentity indices between the generic and the
// legacy convention for every topology of one dimension. It is immutable
// after construction and safe for concurrent use.
type NumberingProvider struct {
	dim       int
	toGeneric [][][]int // [topologyId][codim][legacy index]
	toLegacy  [][][]int // [topologyId][codim][generic index]
}

var (
	numberingMu sync.Mutex
	numberings  = make(map[int]*NumberingProvider)
)

// Numbering returns the process-wide provider for the given dimension,
// building it on first use. Construction happens exactly once per dimension.
func Numbering(dim int) *NumberingProvider {
	if dim < 0 {
		panic(fmt.Sprintf("topology: negative dimension %d", dim))
	}
	numberingMu.Lock()
	defer numberingMu.Unlock()
	if p, ok := numberings[dim]; ok {
		return p
	}
	p := buildNumbering(dim)
	numberings[dim] = p
	return p
}

func buildNumbering(dim int) *NumberingProvider {
	n := 1 << dim
	p := &NumberingProvider{
		dim:       dim,
		toGeneric: make([][][]int, n),
		toLegacy:  make([][][]int, n),
	}
	for id := 0; id < n; id++ {
		t := topologyForID(uint32(id), dim)
		p.toGeneric[id] = make([][]int, dim+1)
		p.toLegacy[id] = make([][]int, dim+1)
		for c := 0; c <= dim; c++ {
			g, l := legacyMaps(t, c)
			p.toGeneric[id][c] = g
			p.toLegacy[id][c] = l
		}
	}
	return p
}

// topologyForID decodes the bit layout: bit k picks prism over pyramid at
// recursion level k.
func topologyForID(id uint32, dim int) Topology {
	t := Point()
	for k := 0; k < dim; k++ {
		if id&(1<<k) != 0 {
			t = PrismOver(t)
		} else {
			t = PyramidOver(t)
		}
	}
	return t
}

// Dim returns the dimension the provider serves.
func (p *NumberingProvider) Dim() int { return p.dim }

// LegacyToGeneric maps a legacy subentity index to the generic enumeration.
func (p *NumberingProvider) LegacyToGeneric(topologyID uint32, codim, i int) int {
	return p.toGeneric[topologyID][codim][i]
}

// GenericToLegacy maps a generic subentity index to the legacy convention.
func (p *NumberingProvider) GenericToLegacy(topologyID uint32, codim, i int) int {
	return p.toLegacy[topologyID][codim][i]
}

// LegacySubEntity answers the subentity-of-subentity lookup entirely in the
// legacy convention: it converts through the subentity's own provider and the
// generic composition, then back.
func (p *NumberingProvider) LegacySubEntity(topologyID uint32, c, i, cc, ii int) int {
	t := topologyForID(topologyID, p.dim)
	gi := p.LegacyToGeneric(topologyID, c, i)
	sub := SubTopology(t, c, gi)
	gii := Numbering(sub.Dim()).LegacyToGeneric(sub.ID(), cc-c, ii)
	return p.GenericToLegacy(topologyID, cc, SubEntity(t, c, gi, cc, gii))
}

// legacyMaps returns the (legacy -> generic, generic -> legacy) permutations
// for one codimension.
func legacyMaps(t Topology, codim int) (toGeneric, toLegacy []int) {
	n := Size(t, codim)
	toGeneric = make([]int, n)
	toLegacy = make([]int, n)
	fwd, bwd := legacyTables(t, codim)
	for i := 0; i < n; i++ {
		if fwd == nil {
			toGeneric[i] = i
			toLegacy[i] = i
		} else {
			toGeneric[i] = fwd[i]
			toLegacy[i] = bwd[i]
		}
	}
	return toGeneric, toLegacy
}

// legacyTables selects the literal tables of a named shape, or nil for the
// identity. Where the legacy permutation is self-inverse only one table is
// spelled out.
func legacyTables(t Topology, codim int) (fwd, bwd []int) {
	id := t.ID()
	switch {
	case t.Dim() == 2 && id <= 1: // triangle
		if codim == 1 {
			e := []int{2, 1, 0}
			return e, e
		}
	case t.Dim() == 3 && id <= 1: // tetrahedron
		switch codim {
		case 1:
			f := []int{3, 2, 1, 0}
			return f, f
		case 2:
			e := []int{0, 2, 1, 3, 4, 5}
			return e, e
		}
	case t.Dim() == 3 && id <= 3: // pyramid
		switch codim {
		case 1:
			return []int{0, 3, 2, 4, 1}, []int{0, 4, 2, 1, 3}
		case 2:
			return []int{2, 1, 3, 0, 4, 5, 7, 6}, []int{3, 1, 0, 2, 4, 5, 7, 6}
		case 3:
			v := []int{0, 1, 3, 2, 4}
			return v, v
		}
	case t.Dim() == 3 && id <= 5: // prism
		switch codim {
		case 1:
			return []int{3, 0, 2, 1, 4}, []int{1, 3, 2, 0, 4}
		case 2:
			return []int{3, 5, 4, 0, 1, 2, 6, 8, 7}, []int{3, 4, 5, 0, 2, 1, 6, 8, 7}
		}
	case t.Dim() == 3: // hexahedron
		if codim == 2 {
			e := []int{0, 1, 2, 3, 4, 5, 8, 9, 6, 7, 10, 11}
			return e, e
		}
	case t.Dim() == 4 && id >= 14: // 4d hypercube
		switch codim {
		case 2:
			return []int{
					0, 1, 2, 3, 4, 5, 8, 9, 12, 13, 18, 19,
					6, 7, 10, 11, 14, 15, 20, 21, 16, 17, 22, 23,
				}, []int{
					0, 1, 2, 3, 4, 5, 12, 13, 6, 7, 14, 15,
					8, 9, 16, 17, 20, 21, 10, 11, 18, 19, 22, 23,
				}
		case 3:
			return []int{
					0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 20, 21, 22, 23,
					12, 13, 16, 17, 24, 25, 28, 29, 14, 15, 18, 19, 26, 27, 30, 31,
				}, []int{
					0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 16, 17, 24, 25,
					18, 19, 26, 27, 12, 13, 14, 15, 20, 21, 28, 29, 22, 23, 30, 31,
				}
		}
	}
	return nil, nil
}
