package gaussian

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/banshee-data/stereo.gmphd/geom"
)

// State dimensions for which a component type exists.
const (
	Dim2 = 2 // 2D position
	Dim3 = 3 // 3D position, or 2D position plus one extra state
	Dim4 = 4 // 2D position and velocity
	Dim6 = 6 // 3D position and velocity, or a full DisparityPoint
)

// ErrDimensionMismatch is returned when a matrix handed to SetCov is not
// N×N for the receiving component.
var ErrDimensionMismatch = errors.New("gaussian: dimension mismatch")

// Component is satisfied by exactly the four component types. Generic
// code written against it cannot combine components of different
// dimensions: a Mixture[Gaussian2D] only ever holds Gaussian2D values.
type Component interface {
	Gaussian2D | Gaussian3D | Gaussian4D | Gaussian6D
	Dims() int
}

// Gaussian2D is a weighted Gaussian over a 2D state.
type Gaussian2D struct {
	Weight float64
	Mean   [Dim2]float64
	Cov    [Dim2 * Dim2]float64 // row-major
}

// Gaussian3D is a weighted Gaussian over a 3D state.
type Gaussian3D struct {
	Weight float64
	Mean   [Dim3]float64
	Cov    [Dim3 * Dim3]float64 // row-major
}

// Gaussian4D is a weighted Gaussian over a 4D state.
type Gaussian4D struct {
	Weight float64
	Mean   [Dim4]float64
	Cov    [Dim4 * Dim4]float64 // row-major
}

// Gaussian6D is a weighted Gaussian over a 6D state. When the state is a
// disparity-space point the mean is laid out as (u, v, d, vu, vv, vd).
type Gaussian6D struct {
	Weight float64
	Mean   [Dim6]float64
	Cov    [Dim6 * Dim6]float64 // row-major
}

// Dims returns the state dimension.
func (Gaussian2D) Dims() int { return Dim2 }

// Dims returns the state dimension.
func (Gaussian3D) Dims() int { return Dim3 }

// Dims returns the state dimension.
func (Gaussian4D) Dims() int { return Dim4 }

// Dims returns the state dimension.
func (Gaussian6D) Dims() int { return Dim6 }

// MeanVec returns a copy of the mean as a gonum vector.
func (g Gaussian2D) MeanVec() *mat.VecDense { return meanVec(g.Mean[:]) }

// MeanVec returns a copy of the mean as a gonum vector.
func (g Gaussian3D) MeanVec() *mat.VecDense { return meanVec(g.Mean[:]) }

// MeanVec returns a copy of the mean as a gonum vector.
func (g Gaussian4D) MeanVec() *mat.VecDense { return meanVec(g.Mean[:]) }

// MeanVec returns a copy of the mean as a gonum vector.
func (g Gaussian6D) MeanVec() *mat.VecDense { return meanVec(g.Mean[:]) }

// CovDense returns a copy of the covariance as an N×N gonum matrix.
func (g Gaussian2D) CovDense() *mat.Dense { return covDense(Dim2, g.Cov[:]) }

// CovDense returns a copy of the covariance as an N×N gonum matrix.
func (g Gaussian3D) CovDense() *mat.Dense { return covDense(Dim3, g.Cov[:]) }

// CovDense returns a copy of the covariance as an N×N gonum matrix.
func (g Gaussian4D) CovDense() *mat.Dense { return covDense(Dim4, g.Cov[:]) }

// CovDense returns a copy of the covariance as an N×N gonum matrix.
func (g Gaussian6D) CovDense() *mat.Dense { return covDense(Dim6, g.Cov[:]) }

// SetCov copies m into Cov in row-major order. m must be 2×2.
func (g *Gaussian2D) SetCov(m mat.Matrix) error { return setCov(Dim2, g.Cov[:], m) }

// SetCov copies m into Cov in row-major order. m must be 3×3.
func (g *Gaussian3D) SetCov(m mat.Matrix) error { return setCov(Dim3, g.Cov[:], m) }

// SetCov copies m into Cov in row-major order. m must be 4×4.
func (g *Gaussian4D) SetCov(m mat.Matrix) error { return setCov(Dim4, g.Cov[:], m) }

// SetCov copies m into Cov in row-major order. m must be 6×6.
func (g *Gaussian6D) SetCov(m mat.Matrix) error { return setCov(Dim6, g.Cov[:], m) }

// DisparityMean returns the mean as a disparity-space point.
func (g Gaussian6D) DisparityMean() geom.DisparityPoint {
	return geom.DisparityFromArray(g.Mean)
}

// SetDisparityMean stores p as the mean in (u, v, d, vu, vv, vd) order.
func (g *Gaussian6D) SetDisparityMean(p geom.DisparityPoint) {
	g.Mean = p.Array()
}

func meanVec(mean []float64) *mat.VecDense {
	data := make([]float64, len(mean))
	copy(data, mean)
	return mat.NewVecDense(len(data), data)
}

// covDense relies on gonum's Dense storage being row-major, the same
// order as the Cov arrays.
func covDense(n int, cov []float64) *mat.Dense {
	data := make([]float64, len(cov))
	copy(data, cov)
	return mat.NewDense(n, n, data)
}

func setCov(n int, dst []float64, m mat.Matrix) error {
	r, c := m.Dims()
	if r != n || c != n {
		return fmt.Errorf("%w: covariance is %dx%d, want %dx%d", ErrDimensionMismatch, r, c, n, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dst[i*n+j] = m.At(i, j)
		}
	}
	return nil
}
