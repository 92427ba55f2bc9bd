package gaussian

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func component2D(w float64) Gaussian2D {
	return Gaussian2D{
		Weight: w,
		Mean:   [2]float64{w, -w},
		Cov:    [4]float64{w, 0.1, 0.2, 2 * w},
	}
}

func TestMixture_AppendPreservesOrder(t *testing.T) {
	var m GaussianMixture2D
	want := make([]Gaussian2D, 0, 10)
	for i := 0; i < 10; i++ {
		g := component2D(float64(i) + 0.5)
		m.Append(g)
		want = append(want, g)
	}

	require.Equal(t, 10, m.Len())
	for i := range want {
		assert.Equal(t, want[i], m.At(i), "index %d", i)
	}

	var seen []Gaussian2D
	for i, g := range m.All() {
		assert.Equal(t, len(seen), i)
		seen = append(seen, g)
	}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("iteration order mismatch (-want +got):\n%s", diff)
	}
}

func TestMixture_DuplicatesAllowed(t *testing.T) {
	m := NewMixture[Gaussian3D](2)
	g := Gaussian3D{Weight: 0.3}
	m.Append(g, g, g)
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, m.At(0), m.At(2))
}

func TestMixture_Set(t *testing.T) {
	m := GaussianMixture2D{component2D(1), component2D(2)}
	m.Set(1, component2D(7))
	assert.Equal(t, component2D(1), m.At(0))
	assert.Equal(t, component2D(7), m.At(1))

	// At returns a copy.
	g := m.At(0)
	g.Weight = 100
	assert.Equal(t, 1.0, m.At(0).Weight)
}

func TestMixture_OutOfRangePanics(t *testing.T) {
	m := GaussianMixture4D{{Weight: 1}}
	assert.Panics(t, func() { m.At(1) })
	assert.Panics(t, func() { m.Set(-1, Gaussian4D{}) })
}

func TestMixture_Dims(t *testing.T) {
	assert.Equal(t, 2, GaussianMixture2D{}.Dims())
	assert.Equal(t, 3, GaussianMixture3D{}.Dims())
	assert.Equal(t, 4, GaussianMixture4D(nil).Dims())
	assert.Equal(t, 6, NewMixture[Gaussian6D](0).Dims())
}

func TestMixture_Clone(t *testing.T) {
	m := GaussianMixture2D{component2D(1), component2D(2)}
	c := m.Clone()
	c.Set(0, component2D(9))
	assert.Equal(t, component2D(1), m.At(0))
	assert.Equal(t, component2D(9), c.At(0))
}

func TestMixture_BinaryRoundTrip(t *testing.T) {
	var m GaussianMixture6D
	for i := 0; i < 4; i++ {
		var g Gaussian6D
		g.Weight = float64(i) / 3
		for j := range g.Mean {
			g.Mean[j] = float64(i*10 + j)
		}
		for j := range g.Cov {
			g.Cov[j] = float64(j) * 1.25
		}
		m.Append(g)
	}
	m[3].Cov[35] = math.NaN()
	m[2].Weight = math.Copysign(0, -1)

	data, err := m.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, 4*8*(1+6+36))

	var out GaussianMixture6D
	require.NoError(t, out.UnmarshalBinary(data))
	require.Equal(t, m.Len(), out.Len())
	for i := range m {
		a, b := m[i], out[i]
		assert.Equal(t, math.Float64bits(a.Weight), math.Float64bits(b.Weight), "weight %d", i)
		for j := range a.Mean {
			assert.Equal(t, math.Float64bits(a.Mean[j]), math.Float64bits(b.Mean[j]), "mean %d/%d", i, j)
		}
		for j := range a.Cov {
			assert.Equal(t, math.Float64bits(a.Cov[j]), math.Float64bits(b.Cov[j]), "cov %d/%d", i, j)
		}
	}
}

func TestMixture_UnmarshalBinaryRejectsPartialComponent(t *testing.T) {
	m := GaussianMixture2D{component2D(1)}
	data, err := m.MarshalBinary()
	require.NoError(t, err)

	var out GaussianMixture2D
	assert.Error(t, out.UnmarshalBinary(data[:len(data)-8]))
	assert.Nil(t, out)
}

// sumWeights is written only against the constraint; it compiles for every
// component type but cannot mix them.
func sumWeights[G Component](m Mixture[G], weight func(G) float64) float64 {
	var total float64
	for _, g := range m.All() {
		total += weight(g)
	}
	return total
}

func TestMixture_GenericOverComponent(t *testing.T) {
	m2 := GaussianMixture2D{{Weight: 0.25}, {Weight: 0.5}}
	m6 := GaussianMixture6D{{Weight: 1}, {Weight: 2}, {Weight: 3}}

	assert.Equal(t, 0.75, sumWeights(m2, func(g Gaussian2D) float64 { return g.Weight }))
	assert.Equal(t, 6.0, sumWeights(m6, func(g Gaussian6D) float64 { return g.Weight }))
}
