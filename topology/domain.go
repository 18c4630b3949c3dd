package topology

import "fmt"

// Reference domain geometry. Corners, volumes and outer normals follow the
// composition chain: an extrusion duplicates the base corners at heights 0
// and 1, a cone copies the base corners into the z=0 facet and adds the apex
// at (0,...,0,1). All values are exact small rationals, computed in float64.

const insideTolerance = 1e-12

// Corner returns the coordinates of vertex i of t in its own frame.
func Corner(t Topology, i int) []float64 {
	if i < 0 || i >= t.NumCorners() {
		panic(fmt.Sprintf("topology: corner %d out of range for %s", i, t))
	}
	c := make([]float64, t.dim)
	corner(t, i, c)
	return c
}

func corner(t Topology, i int, out []float64) {
	if t.dim == 0 {
		return
	}
	b := t.Base()
	nb := b.NumCorners()
	if i < nb {
		corner(b, i, out[:t.dim-1])
		out[t.dim-1] = 0
		return
	}
	if t.IsPrism() {
		corner(b, i-nb, out[:t.dim-1])
		out[t.dim-1] = 1
		return
	}
	// apex
	for k := range out {
		out[k] = 0
	}
	out[t.dim-1] = 1
}

// Volume returns the cell volume: an extrusion preserves the base volume, a
// cone divides it by the new dimension.
func Volume(t Topology) float64 {
	if t.dim == 0 {
		return 1
	}
	if t.IsPrism() {
		return Volume(t.Base())
	}
	return Volume(t.Base()) / float64(t.dim)
}

// CheckInside reports whether x lies in the reference cell of t, up to a
// small absolute tolerance on every facet.
func CheckInside(t Topology, x []float64) bool {
	if len(x) != t.dim {
		panic(fmt.Sprintf("topology: coordinate of length %d checked against %s", len(x), t))
	}
	return checkInside(t, x, 1)
}

// checkInside tests x against the cell scaled by factor; cone levels shrink
// the factor for the base, extrusion levels keep it.
func checkInside(t Topology, x []float64, factor float64) bool {
	if t.dim == 0 {
		return true
	}
	z := x[t.dim-1]
	if z < -insideTolerance || z > factor+insideTolerance {
		return false
	}
	if t.IsPrism() {
		return checkInside(t.Base(), x[:t.dim-1], factor)
	}
	return checkInside(t.Base(), x[:t.dim-1], factor-z)
}

// NumNormals returns the number of codimension-1 subentities carrying an
// outer normal.
func NumNormals(t Topology) int {
	if t.dim == 0 {
		return 0
	}
	return Size(t, 1)
}

// IntegrationOuterNormal returns the outward normal of the given face, scaled
// so that its length equals the ratio of the face volume to the volume of the
// face's own reference cell.
func IntegrationOuterNormal(t Topology, face int) []float64 {
	if t.dim == 0 || face < 0 || face >= NumNormals(t) {
		panic(fmt.Sprintf("topology: face %d out of range for %s", face, t))
	}
	out := make([]float64, t.dim)
	b := t.Base()
	if t.IsPrism() {
		next := extSize(b, 1)
		switch {
		case face < next:
			copy(out, IntegrationOuterNormal(b, face))
		case face == next:
			out[t.dim-1] = -1
		default:
			out[t.dim-1] = 1
		}
		return out
	}
	if face == 0 {
		// base facet
		out[t.dim-1] = -1
		return out
	}
	if t.dim == 1 {
		// the apex is the upper facet of the 1d cone
		out[0] = 1
		return out
	}
	// Cone face over base face face-1: the normal keeps the base components
	// and closes the plane through the apex, pinned by any corner of the
	// base face.
	bn := IntegrationOuterNormal(b, face-1)
	copy(out, bn)
	x := Corner(b, SubEntity(b, 1, face-1, b.dim, 0))
	var d float64
	for k := range x {
		d += bn[k] * x[k]
	}
	out[t.dim-1] = d
	return out
}
