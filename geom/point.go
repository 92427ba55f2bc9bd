package geom

// Point3D is a position in a Cartesian frame (metres).
type Point3D struct {
	X, Y, Z float64
}

// EuclideanPoint is a kinematic state in a Cartesian frame: position
// (metres) and velocity (metres per second).
type EuclideanPoint struct {
	X, Y, Z    float64
	VX, VY, VZ float64
}

// Position returns the position triple.
func (p EuclideanPoint) Position() Point3D {
	return Point3D{X: p.X, Y: p.Y, Z: p.Z}
}

// Velocity returns the velocity triple.
func (p EuclideanPoint) Velocity() Point3D {
	return Point3D{X: p.VX, Y: p.VY, Z: p.VZ}
}
