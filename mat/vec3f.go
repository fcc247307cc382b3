package mat

import (
	"github.com/chewxy/math32"

	"github.com/seqsense/raytracer/vec"
)

// Vec3F is a single precision 3-D vector, the layout used by point cloud data.
type Vec3F [Dim]float32

var space3F = vec.Space[float32, Vec3F]{
	Field: vec.Float32{},
	Dim:   Dim,
	Make: func(c []float32) Vec3F {
		return Vec3F{c[0], c[1], c[2]}
	},
}

func (v Vec3F) Component(i int) float32 {
	return v[i]
}

func (v Vec3F) NormSq() float32 {
	return space3F.NormSquared(v)
}

func (v Vec3F) Norm() float32 {
	return math32.Sqrt(v.NormSq())
}

func (v Vec3F) Add(a Vec3F) Vec3F {
	return space3F.Add(v, a)
}

func (v Vec3F) Sub(a Vec3F) Vec3F {
	return space3F.Sub(v, a)
}

func (v Vec3F) Scale(a float32) Vec3F {
	return space3F.Scale(v, a)
}

func (v Vec3F) Dot(a Vec3F) float32 {
	return space3F.Dot(v, a)
}

func (v Vec3F) Equal(a Vec3F) bool {
	return space3F.Equal(v, a)
}

func (v Vec3F) Float64() Vec3D {
	return Vec3D{float64(v[0]), float64(v[1]), float64(v[2])}
}
