package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	b := 1
	for i := 0; i < k; i++ {
		b = b * (n - i) / (i + 1)
	}
	return b
}

func allTopologies(dim int) []Topology {
	var out []Topology
	for id := uint32(0); id < uint32(1)<<dim; id++ {
		topo, err := New(id, dim)
		if err != nil {
			panic(err)
		}
		out = append(out, topo)
	}
	return out
}

func TestSizeClosedForms(t *testing.T) {
	for dim := 0; dim <= 5; dim++ {
		cube := CubeTopology(dim)
		simplex := SimplexTopology(dim)
		for c := 0; c <= dim; c++ {
			assert.Equal(t, binomial(dim, c)*(1<<c), Size(cube, c),
				"cube dim %d codim %d", dim, c)
			assert.Equal(t, binomial(dim+1, c+1), Size(simplex, c),
				"simplex dim %d codim %d", dim, c)
		}
	}
}

func TestSizeSelfAndVertices(t *testing.T) {
	for dim := 0; dim <= 5; dim++ {
		for _, topo := range allTopologies(dim) {
			assert.Equal(t, 1, Size(topo, 0))
			assert.Equal(t, topo.NumCorners(), Size(topo, dim))
		}
	}
}

func TestPrismAndPyramidRecursions(t *testing.T) {
	for dim := 1; dim <= 5; dim++ {
		for _, base := range allTopologies(dim - 1) {
			prism := PrismOver(base)
			pyramid := PyramidOver(base)
			for c := 1; c < dim; c++ {
				ext := 0
				if c <= base.Dim() {
					ext = Size(base, c)
				}
				assert.Equal(t, ext+2*Size(base, c-1), Size(prism, c))
				assert.Equal(t, Size(base, c-1)+ext, Size(pyramid, c))
			}
			assert.Equal(t, 2*base.NumCorners(), Size(prism, dim))
			assert.Equal(t, base.NumCorners()+1, Size(pyramid, dim))
		}
	}
}

func TestSubTopologyMixedFaces(t *testing.T) {
	// a 3d pyramid has a quadrilateral base and four triangle sides
	pyr := PyramidTopology(3)
	require.Equal(t, 5, Size(pyr, 1))
	assert.Equal(t, 4, SubTopology(pyr, 1, 0).NumCorners())
	for i := 1; i < 5; i++ {
		face := SubTopology(pyr, 1, i)
		assert.Equal(t, 3, face.NumCorners(), "face %d", i)
		assert.True(t, face.IsPyramid())
	}

	// a 3d prism has three quadrilateral sides, then bottom and top triangles
	prism := PrismTopology(3)
	require.Equal(t, 5, Size(prism, 1))
	for i := 0; i < 3; i++ {
		assert.Equal(t, 4, SubTopology(prism, 1, i).NumCorners(), "face %d", i)
	}
	assert.Equal(t, 3, SubTopology(prism, 1, 3).NumCorners())
	assert.Equal(t, 3, SubTopology(prism, 1, 4).NumCorners())

	// every face of a hexahedron is a quadrilateral
	hex := CubeTopology(3)
	for i := 0; i < Size(hex, 1); i++ {
		assert.Equal(t, 4, SubTopology(hex, 1, i).NumCorners())
	}
}

func TestSubEntityRanges(t *testing.T) {
	for dim := 0; dim <= 4; dim++ {
		for _, topo := range allTopologies(dim) {
			for c := 0; c <= dim; c++ {
				for i := 0; i < Size(topo, c); i++ {
					sub := SubTopology(topo, c, i)
					assert.Equal(t, dim-c, sub.Dim())
					for cc := c; cc <= dim; cc++ {
						n := Size(sub, cc-c)
						for ii := 0; ii < n; ii++ {
							idx := SubEntity(topo, c, i, cc, ii)
							assert.GreaterOrEqual(t, idx, 0)
							assert.Less(t, idx, Size(topo, cc))
						}
					}
				}
			}
		}
	}
}

func TestSubEntityVerticesDistinct(t *testing.T) {
	for dim := 0; dim <= 4; dim++ {
		for _, topo := range allTopologies(dim) {
			for c := 0; c <= dim; c++ {
				for i := 0; i < Size(topo, c); i++ {
					sub := SubTopology(topo, c, i)
					seen := make(map[int]bool)
					for j := 0; j < sub.NumCorners(); j++ {
						seen[SubEntity(topo, c, i, dim, j)] = true
					}
					assert.Equal(t, sub.NumCorners(), len(seen),
						"duplicate vertices in subentity (%d, codim %d) of %s", i, c, topo)
				}
			}
		}
	}
}

func TestSubEntityConsistency(t *testing.T) {
	// a sub-subentity's vertex set must be a subset of the subentity's
	hex := CubeTopology(3)
	for f := 0; f < Size(hex, 1); f++ {
		faceVerts := make(map[int]bool)
		for j := 0; j < 4; j++ {
			faceVerts[SubEntity(hex, 1, f, 3, j)] = true
		}
		face := SubTopology(hex, 1, f)
		for e := 0; e < Size(face, 1); e++ {
			edge := SubEntity(hex, 1, f, 2, e)
			for j := 0; j < 2; j++ {
				v := SubEntity(hex, 2, edge, 3, j)
				assert.True(t, faceVerts[v],
					"vertex %d of edge %d not on face %d", v, edge, f)
			}
		}
	}
}

func TestHexEdgeVertices(t *testing.T) {
	// generic edge 0 of the hexahedron is the vertical edge over corner 0
	hex := CubeTopology(3)
	assert.Equal(t, 0, SubEntity(hex, 2, 0, 3, 0))
	assert.Equal(t, 4, SubEntity(hex, 2, 0, 3, 1))
	// generic edges 4..7 are the bottom copies of the quadrilateral's edges
	assert.Equal(t, 0, SubEntity(hex, 2, 4, 3, 0))
	assert.Equal(t, 2, SubEntity(hex, 2, 4, 3, 1))
}

func TestPyramidFaceVertices(t *testing.T) {
	pyr := PyramidTopology(3)
	// face 0 is the base quadrilateral
	base := []int{}
	for j := 0; j < 4; j++ {
		base = append(base, SubEntity(pyr, 1, 0, 3, j))
	}
	assert.Equal(t, []int{0, 1, 2, 3}, base)
	// every side triangle contains the apex (vertex 4)
	for f := 1; f < 5; f++ {
		verts := make(map[int]bool)
		for j := 0; j < 3; j++ {
			verts[SubEntity(pyr, 1, f, 3, j)] = true
		}
		assert.True(t, verts[4], "face %d misses the apex", f)
	}
}

func TestSubentityTableDeterministic(t *testing.T) {
	derive := func(topo Topology) [][][]int {
		dim := topo.Dim()
		table := make([][][]int, dim+1)
		for c := 0; c <= dim; c++ {
			table[c] = make([][]int, Size(topo, c))
			for i := range table[c] {
				sub := SubTopology(topo, c, i)
				for cc := c; cc <= dim; cc++ {
					for ii := 0; ii < Size(sub, cc-c); ii++ {
						table[c][i] = append(table[c][i], SubEntity(topo, c, i, cc, ii))
					}
				}
			}
		}
		return table
	}
	for dim := 0; dim <= 4; dim++ {
		for _, topo := range allTopologies(dim) {
			assert.Equal(t, derive(topo), derive(topo), "topology %s", topo)
		}
	}
}
