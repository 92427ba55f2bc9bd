package gaussian

import (
	"iter"
	"slices"

	"github.com/banshee-data/stereo.gmphd/flatbuf"
)

// Mixture is an insertion-ordered sequence of components of one
// dimension. Duplicates are allowed. The mixture owns its components by
// value; weight bookkeeping, pruning and merging belong to the filter.
//
// Mixture is a slice, so len, range, indexing and append work directly;
// the methods below exist for callers that prefer a named API.
type Mixture[G Component] []G

// Mixture instantiations for each supported dimension.
type (
	GaussianMixture2D = Mixture[Gaussian2D]
	GaussianMixture3D = Mixture[Gaussian3D]
	GaussianMixture4D = Mixture[Gaussian4D]
	GaussianMixture6D = Mixture[Gaussian6D]
)

// NewMixture returns an empty mixture with room for capacity components.
func NewMixture[G Component](capacity int) Mixture[G] {
	return make(Mixture[G], 0, capacity)
}

// Append adds components to the end of the mixture.
func (m *Mixture[G]) Append(g ...G) {
	*m = append(*m, g...)
}

// At returns a copy of the component at index i. It panics if i is out of
// range.
func (m Mixture[G]) At(i int) G {
	return m[i]
}

// Set replaces the component at index i. It panics if i is out of range.
func (m Mixture[G]) Set(i int, g G) {
	m[i] = g
}

// Len returns the number of components.
func (m Mixture[G]) Len() int {
	return len(m)
}

// Dims returns the state dimension of the mixture's component type. It is
// valid on an empty mixture.
func (m Mixture[G]) Dims() int {
	var zero G
	return zero.Dims()
}

// All yields index/component pairs in insertion order.
func (m Mixture[G]) All() iter.Seq2[int, G] {
	return slices.All(m)
}

// Clone returns a mixture with its own backing array.
func (m Mixture[G]) Clone() Mixture[G] {
	return slices.Clone(m)
}

// MarshalBinary packs the components into a flat little-endian buffer.
func (m Mixture[G]) MarshalBinary() ([]byte, error) {
	return flatbuf.Append(nil, []G(m))
}

// UnmarshalBinary replaces the mixture with the components in data.
func (m *Mixture[G]) UnmarshalBinary(data []byte) error {
	gs, err := flatbuf.Decode[G](data)
	if err != nil {
		return err
	}
	*m = gs
	return nil
}
