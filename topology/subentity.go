package topology

import "fmt"

// Subentity enumeration follows the composition chain. For a prism over B the
// codimension-c subentities are laid out in three blocks:
//
//	[ extruded over B's codim-c subs | bottom copies of B's codim-(c-1) subs | top copies ]
//
// For a pyramid over B the layout is two blocks, with the apex terminating
// the cone block at vertex codimension:
//
//	[ base copies of B's codim-(c-1) subs | cones over B's codim-c subs / apex ]
//
// This ordering is deterministic and part of the numbering contract.

// Size returns the number of codimension-codim subentities of t.
func Size(t Topology, codim int) int {
	if codim < 0 || codim > t.dim {
		panic(fmt.Sprintf("topology: codimension %d out of range for %s", codim, t))
	}
	return size(t, codim)
}

func size(t Topology, codim int) int {
	if codim == 0 {
		return 1
	}
	b := t.Base()
	m := size(b, codim-1)
	if t.IsPrism() {
		return extSize(b, codim) + 2*m
	}
	return m + coneSize(b, codim, t.dim)
}

// extSize is the extruded block size: B's codim-c count, zero beyond B's
// dimension.
func extSize(b Topology, codim int) int {
	if codim > b.dim {
		return 0
	}
	return size(b, codim)
}

// coneSize is the cone block size: B's codim-c count, or the single apex at
// vertex codimension.
func coneSize(b Topology, codim, dim int) int {
	if codim == dim {
		return 1
	}
	return size(b, codim)
}

// SubTopology returns the shape of the i-th codimension-codim subentity.
func SubTopology(t Topology, codim, i int) Topology {
	if codim < 0 || codim > t.dim || i < 0 || i >= Size(t, codim) {
		panic(fmt.Sprintf("topology: subentity (%d, codim %d) out of range for %s", i, codim, t))
	}
	return subTopology(t, codim, i)
}

func subTopology(t Topology, codim, i int) Topology {
	if codim == 0 {
		return t
	}
	b := t.Base()
	if t.IsPrism() {
		n := extSize(b, codim)
		if i < n {
			return PrismOver(subTopology(b, codim, i))
		}
		m := size(b, codim-1)
		return subTopology(b, codim-1, (i-n)%m)
	}
	m := size(b, codim-1)
	if i < m {
		return subTopology(b, codim-1, i)
	}
	if codim == t.dim {
		return Point() // apex
	}
	return PyramidOver(subTopology(b, codim, i-m))
}

// SubEntity returns the index, within t at codimension cc, of the ii-th
// codimension-(cc-c) subentity of subentity (i, c). Indices compose
// recursively through the same block layout that defines the enumeration, so
// the ii ordering coincides with the subentity's own enumeration order.
func SubEntity(t Topology, c, i, cc, ii int) int {
	if c < 0 || cc < c || cc > t.dim {
		panic(fmt.Sprintf("topology: codimension pair (%d, %d) out of range for %s", c, cc, t))
	}
	if i < 0 || i >= Size(t, c) {
		panic(fmt.Sprintf("topology: subentity (%d, codim %d) out of range for %s", i, c, t))
	}
	sub := subTopology(t, c, i)
	if ii < 0 || ii >= size(sub, cc-c) {
		panic(fmt.Sprintf("topology: subentity (%d, codim %d) of (%d, codim %d) out of range for %s", ii, cc, i, c, t))
	}
	return subEntity(t, c, i, cc, ii)
}

func subEntity(t Topology, c, i, cc, ii int) int {
	if c == 0 {
		return ii
	}
	if cc == c {
		return i
	}
	b := t.Base()
	if t.IsPrism() {
		nc, mc := extSize(b, c), size(b, c-1)
		ncc, mcc := extSize(b, cc), size(b, cc-1)
		switch {
		case i < nc:
			// Extruded prism over s = B's (i, c); its blocks at relative
			// codimension cc-c land in the matching blocks of t.
			s := subTopology(b, c, i)
			ne := extSize(s, cc-c)
			me := size(s, cc-c-1)
			switch {
			case ii < ne:
				return subEntity(b, c, i, cc, ii)
			case ii < ne+me:
				return ncc + subEntity(b, c, i, cc-1, ii-ne)
			default:
				return ncc + mcc + subEntity(b, c, i, cc-1, ii-ne-me)
			}
		case i < nc+mc:
			return ncc + subEntity(b, c-1, i-nc, cc-1, ii)
		default:
			return ncc + mcc + subEntity(b, c-1, i-nc-mc, cc-1, ii)
		}
	}
	mc := size(b, c-1)
	mcc := size(b, cc-1)
	if i < mc {
		return subEntity(b, c-1, i, cc-1, ii)
	}
	// Cone over s = B's (i-mc, c): base copies of s's subs lie in the base
	// facet, cones over s's subs lie in the cone block, and the cone of a
	// vertex-codimension sub is the shared apex.
	s := subTopology(b, c, i-mc)
	me := size(s, cc-c-1)
	if ii < me {
		return subEntity(b, c, i-mc, cc-1, ii)
	}
	if cc == t.dim {
		return mcc // apex
	}
	return mcc + subEntity(b, c, i-mc, cc, ii-me)
}
