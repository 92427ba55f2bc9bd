// Package flatbuf packs slices of fixed-layout values into contiguous
// little-endian buffers and back.
//
// The point, component and calibration types of this module contain only
// float64 fields and arrays, so the packed form is the field values in
// declaration order with no padding or indirection. It is the layout an
// accelerator dispatch layer copies to and from device memory.
package flatbuf

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrNotFixedSize is returned for types that contain slices, maps,
	// strings, pointers or other variable-size fields.
	ErrNotFixedSize = errors.New("flatbuf: type is not fixed size")
	// ErrTrailingBytes is returned when a buffer is not a whole number of
	// encoded values.
	ErrTrailingBytes = errors.New("flatbuf: trailing bytes")
)

// Size returns the encoded size in bytes of one T, or -1 if T is not
// fixed size. Slice types report 0, the size of their zero value.
func Size[T any]() int {
	var zero T
	return binary.Size(zero)
}

// Append appends the packed form of vs to dst and returns the extended
// buffer.
func Append[T any](dst []byte, vs []T) ([]byte, error) {
	if Size[T]() <= 0 {
		return dst, fmt.Errorf("%w: %T", ErrNotFixedSize, *new(T))
	}
	if len(vs) == 0 {
		return dst, nil
	}
	out, err := binary.Append(dst, binary.LittleEndian, vs)
	if err != nil {
		return dst, fmt.Errorf("flatbuf: encode %d values: %w", len(vs), err)
	}
	return out, nil
}

// Decode unpacks buf into a new slice of T. An empty buffer decodes to an
// empty, non-nil slice.
func Decode[T any](buf []byte) ([]T, error) {
	size := Size[T]()
	if size <= 0 {
		return nil, fmt.Errorf("%w: %T", ErrNotFixedSize, *new(T))
	}
	if len(buf)%size != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrTrailingBytes, len(buf), size)
	}

	vs := make([]T, len(buf)/size)
	if len(vs) == 0 {
		return vs, nil
	}
	if _, err := binary.Decode(buf, binary.LittleEndian, vs); err != nil {
		return nil, fmt.Errorf("flatbuf: decode %d values: %w", len(vs), err)
	}
	return vs, nil
}
