// Package calib holds the stereo camera calibration records.
//
// Intrinsics and Extrinsics are plain field containers. Nothing here
// checks plausibility (f > 0, unit-length rotations); the projection code
// that maps between geom.EuclideanPoint and geom.DisparityPoint consumes
// them as-is.
package calib

import (
	"fmt"

	"github.com/banshee-data/stereo.gmphd/flatbuf"
	"github.com/banshee-data/stereo.gmphd/geom"
)

// Intrinsics is a pinhole projection model extended with disparity.
type Intrinsics struct {
	F      float64 // focal length
	DU, DV float64 // pixel scale along u and v
	U0, V0 float64 // principal point (pixels)
	Alpha  float64 // disparity scale (baseline factor)
}

// Extrinsics is the rigid pose of the camera relative to the reference
// frame. Only the position triple of each field is used: Cartesian holds
// the translation and Angular the three rotation angles. The velocity
// slots are unused.
type Extrinsics struct {
	Cartesian geom.EuclideanPoint
	Angular   geom.EuclideanPoint
}

// MarshalBinary packs the record into its flat little-endian form.
func (in Intrinsics) MarshalBinary() ([]byte, error) {
	return flatbuf.Append(nil, []Intrinsics{in})
}

// UnmarshalBinary restores a record packed by MarshalBinary.
func (in *Intrinsics) UnmarshalBinary(data []byte) error {
	return unmarshalOne(data, in)
}

// MarshalBinary packs the record into its flat little-endian form.
func (ex Extrinsics) MarshalBinary() ([]byte, error) {
	return flatbuf.Append(nil, []Extrinsics{ex})
}

// UnmarshalBinary restores a record packed by MarshalBinary.
func (ex *Extrinsics) UnmarshalBinary(data []byte) error {
	return unmarshalOne(data, ex)
}

func unmarshalOne[T any](data []byte, dst *T) error {
	vs, err := flatbuf.Decode[T](data)
	if err != nil {
		return err
	}
	if len(vs) != 1 {
		return fmt.Errorf("calib: buffer holds %d records, want 1", len(vs))
	}
	*dst = vs[0]
	return nil
}
