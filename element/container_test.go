package element

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/refelement/topology"
)

func TestContainerElements(t *testing.T) {
	c := NewContainer[float64](3)
	assert.Equal(t, 3, c.Dim())
	assert.Equal(t, 8, c.NumTopologies())

	assert.True(t, c.Simplex().Type().IsSimplex())
	assert.True(t, c.Cube().Type().IsCube())
	assert.True(t, c.Pyramid().Type().IsPyramid())
	assert.True(t, c.Prism().Type().IsPrism())

	for id := 0; id < c.NumTopologies(); id++ {
		assert.EqualValues(t, id, c.Element(uint32(id)).Topology().ID())
	}
}

func TestContainerGeneral(t *testing.T) {
	c := NewContainer[float64](3)

	re, err := c.General(topology.GeometryType{Basic: topology.Prism, Dim: 3})
	require.NoError(t, err)
	assert.Same(t, c.Prism(), re)

	_, err = c.General(topology.GeometryType{Basic: topology.Cube, Dim: 2})
	assert.Error(t, err, "dimension mismatch")

	_, err = c.General(topology.GeometryType{Basic: topology.None, Dim: 3})
	assert.Error(t, err)
}

func TestRegistrySharing(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	const workers = 32
	containers := make([]*Container[float64], workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			containers[w] = Registry[float64](4)
		}(w)
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		assert.Same(t, containers[0], containers[w])
		assert.Same(t, containers[0].Cube(), containers[w].Cube())
	}
}

func TestRegistryKeyedByScalarAndDim(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	a := Registry[float64](2)
	b := Registry[float64](3)
	assert.NotSame(t, a, b)
	assert.Same(t, a, Registry[float64](2))

	// float32 lives in its own slot of the same dimension
	f := Registry[float32](2)
	assert.Equal(t, float32(1), f.Cube().Volume())
}

func TestContainerDeterministic(t *testing.T) {
	a := NewContainer[float64](3)
	b := NewContainer[float64](3)
	for id := 0; id < a.NumTopologies(); id++ {
		ra, rb := a.Element(uint32(id)), b.Element(uint32(id))
		for c := 0; c <= 3; c++ {
			require.Equal(t, ra.Size(c), rb.Size(c))
			for i := 0; i < ra.Size(c); i++ {
				assert.Equal(t, ra.Position(i, c), rb.Position(i, c))
				assert.Equal(t, ra.SubTopology(i, c), rb.SubTopology(i, c))
			}
		}
	}
}
