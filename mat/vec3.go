package mat

import (
	"math"

	"github.com/seqsense/raytracer/vec"
)

// Dim is the dimension of Vec3D and Vec3F.
const Dim = 3

type Vec3D [Dim]float64

var space3D = vec.Space[float64, Vec3D]{
	Field: vec.Float64{},
	Dim:   Dim,
	Make: func(c []float64) Vec3D {
		return Vec3D{c[0], c[1], c[2]}
	},
}

// Space3D returns the generic algebra of Vec3D.
func Space3D() vec.Space[float64, Vec3D] {
	return space3D
}

func NewVec3D(x, y, z float64) Vec3D {
	return Vec3D{x, y, z}
}

func ZeroVec3D() Vec3D {
	return space3D.Zero()
}

// UnitVec3D returns the i-th standard basis vector. It panics if i is out of [0, 3).
func UnitVec3D(i int) Vec3D {
	return space3D.Unit(i)
}

func (v Vec3D) Component(i int) float64 {
	return v[i]
}

func (v Vec3D) X() float64 { return v[0] }
func (v Vec3D) Y() float64 { return v[1] }
func (v Vec3D) Z() float64 { return v[2] }

func (v Vec3D) NormSq() float64 {
	return space3D.NormSquared(v)
}

func (v Vec3D) Norm() float64 {
	return math.Sqrt(v.NormSq())
}

func (v Vec3D) Normalized() Vec3D {
	return v.Div(v.Norm())
}

// Scale multiplies every component by a.
func (v Vec3D) Scale(a float64) Vec3D {
	return space3D.Scale(v, a)
}

// Div scales v by 1/a. a must not be zero.
func (v Vec3D) Div(a float64) Vec3D {
	return space3D.Scale(v, 1/a)
}

// Mul is the component-wise product, not the cross product.
func (v Vec3D) Mul(a Vec3D) Vec3D {
	return space3D.Mul(v, a)
}

func (v Vec3D) Sub(a Vec3D) Vec3D {
	return space3D.Sub(v, a)
}

func (v Vec3D) Add(a Vec3D) Vec3D {
	return space3D.Add(v, a)
}

func (v Vec3D) Neg() Vec3D {
	return space3D.Neg(v)
}

func (v Vec3D) Dot(a Vec3D) float64 {
	return space3D.Dot(v, a)
}

// Cross returns the 3-D cross product. Products are rounded before the
// subtraction so that a.Cross(b) is exactly b.Cross(a).Neg().
func (v Vec3D) Cross(a Vec3D) Vec3D {
	return Vec3D{
		float64(v[1]*a[2]) - float64(v[2]*a[1]),
		float64(v[2]*a[0]) - float64(v[0]*a[2]),
		float64(v[0]*a[1]) - float64(v[1]*a[0]),
	}
}

// Equal compares components exactly.
func (v Vec3D) Equal(a Vec3D) bool {
	return space3D.Equal(v, a)
}

// Float32 converts v to single precision.
func (v Vec3D) Float32() Vec3F {
	return Vec3F{float32(v[0]), float32(v[1]), float32(v[2])}
}
