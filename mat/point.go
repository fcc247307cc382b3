package mat

import (
	"fmt"
)

// Point3D is a position. Unlike Vec3D it is not a displacement, so the only
// arithmetic it supports is translation by a vector.
type Point3D struct {
	X, Y, Z float64
}

func NewPoint3D(x, y, z float64) Point3D {
	return Point3D{X: x, Y: y, Z: z}
}

// Translate returns p moved by v.
func (p Point3D) Translate(v Vec3D) Point3D {
	return Point3D{
		X: p.X + v.X(),
		Y: p.Y + v.Y(),
		Z: p.Z + v.Z(),
	}
}

// Vec3D returns the displacement of p from the origin.
func (p Point3D) Vec3D() Vec3D {
	return Vec3D{p.X, p.Y, p.Z}
}

func (p Point3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}
