package geom

import (
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
)

// Number is any scalar accepted by Scale and Div. The value is converted
// to float64 before it touches a field.
type Number interface {
	constraints.Integer | constraints.Float
}

// DisparityPoint is a target state in stereo disparity space: image
// position (U, V), disparity D and their rates. Field order is fixed as
// (U, V, D, VU, VV, VD); flat buffers and Array rely on it.
//
// D is non-negative for a physical observation but is not checked here.
type DisparityPoint struct {
	U, V, D    float64
	VU, VV, VD float64
}

// DisparityFromArray builds a point from a (u, v, d, vu, vv, vd) array.
func DisparityFromArray(a [6]float64) DisparityPoint {
	return DisparityPoint{U: a[0], V: a[1], D: a[2], VU: a[3], VV: a[4], VD: a[5]}
}

// Array returns the fields in (u, v, d, vu, vv, vd) order.
func (p DisparityPoint) Array() [6]float64 {
	return [6]float64{p.U, p.V, p.D, p.VU, p.VV, p.VD}
}

// Add returns p + q.
func (p DisparityPoint) Add(q DisparityPoint) DisparityPoint {
	return DisparityPoint{
		U:  p.U + q.U,
		V:  p.V + q.V,
		D:  p.D + q.D,
		VU: p.VU + q.VU,
		VV: p.VV + q.VV,
		VD: p.VD + q.VD,
	}
}

// Sub returns p - q.
func (p DisparityPoint) Sub(q DisparityPoint) DisparityPoint {
	return DisparityPoint{
		U:  p.U - q.U,
		V:  p.V - q.V,
		D:  p.D - q.D,
		VU: p.VU - q.VU,
		VV: p.VV - q.VV,
		VD: p.VD - q.VD,
	}
}

// Mul returns the Hadamard (element-wise) product of p and q. Each field
// is multiplied by the same-named field of q; this is neither a dot nor a
// cross product. Moment code uses it to square deviation vectors.
func (p DisparityPoint) Mul(q DisparityPoint) DisparityPoint {
	return DisparityPoint{
		U:  q.U * p.U,
		V:  q.V * p.V,
		D:  q.D * p.D,
		VU: q.VU * p.VU,
		VV: q.VV * p.VV,
		VD: q.VD * p.VD,
	}
}

// Scale returns every field multiplied by s.
func (p DisparityPoint) Scale(s float64) DisparityPoint {
	return DisparityPoint{
		U:  s * p.U,
		V:  s * p.V,
		D:  s * p.D,
		VU: s * p.VU,
		VV: s * p.VV,
		VD: s * p.VD,
	}
}

// Div returns every field divided by s. A zero s gives ±Inf or NaN per
// field; callers guard their own divisors.
func (p DisparityPoint) Div(s float64) DisparityPoint {
	return DisparityPoint{
		U:  p.U / s,
		V:  p.V / s,
		D:  p.D / s,
		VU: p.VU / s,
		VV: p.VV / s,
		VD: p.VD / s,
	}
}

// Scale multiplies p by a scalar of any numeric type.
func Scale[T Number](p DisparityPoint, s T) DisparityPoint {
	return p.Scale(float64(s))
}

// Div divides p by a scalar of any numeric type.
func Div[T Number](p DisparityPoint, s T) DisparityPoint {
	return p.Div(float64(s))
}

// ApproxEqual reports whether every field of a and b agrees within tol,
// either absolutely or relative to the larger magnitude.
func ApproxEqual(a, b DisparityPoint, tol float64) bool {
	aa, bb := a.Array(), b.Array()
	return floats.EqualApprox(aa[:], bb[:], tol)
}
