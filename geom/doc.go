// Package geom owns the point types of the stereo tracking data model.
//
// Responsibilities: world-frame points (Point3D, EuclideanPoint) and the
// sensor-native DisparityPoint with its closed vector algebra.
// Key types: Point3D, EuclideanPoint, DisparityPoint.
//
// Every type here is a pointer-free value. Operators read only their
// operands and return a fresh value, so they are safe to call from any
// goroutine and can be copied byte-wise into device buffers.
package geom
