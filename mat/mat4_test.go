package mat

import (
	"math"
	"testing"
)

func transformNaive(m Mat4, a Point3D) Point3D {
	var out [3]float64
	in := [4]float64{a.X, a.Y, a.Z, 1}
	for i := 0; i < 3; i++ {
		var sum float64
		for k := 0; k < 4; k++ {
			sum += m[4*k+i] * in[k]
		}
		out[i] = sum
	}
	return Point3D{out[0], out[1], out[2]}
}

func TestMul(t *testing.T) {
	r := Translate(0.1, 0.2, 0.3).Mul(Identity())
	expected := Translate(0.1, 0.2, 0.3)
	if r != expected {
		t.Errorf("M * I must be M, expected: %v, got: %v", expected, r)
	}

	// Scale is applied first, then the translation.
	p := Translate(1, 0, 0).Mul(Scale(2, 2, 2)).TransformPoint(Point3D{1, 1, 1})
	if p != (Point3D{3, 2, 2}) {
		t.Errorf("Expected: %v, got: %v", Point3D{3, 2, 2}, p)
	}
}

func TestTransformPoint(t *testing.T) {
	m0 := Translate(0.1, 0.2, 0.3)
	m1 := Scale(1.1, 1.2, 1.3)
	m2 := Rotate(1, 0, 0, 0.1)
	m3 := Rotate(0, 1, 0, 0.1)
	m4 := Rotate(0, 0, 1, 0.1)

	m := m0.Mul(m1).Mul(m2).Mul(m3).Mul(m4)

	in := NewPoint3D(1, 2, 3)
	v := m.TransformPoint(in)
	vNaive := transformNaive(m, in)

	for i, diff := range []float64{v.X - vNaive.X, v.Y - vNaive.Y, v.Z - vNaive.Z} {
		if diff < -0.01 || 0.01 < diff {
			t.Errorf("v(%d) differs from naive transform by %0.3f", i, diff)
		}
	}
}

func TestRotate(t *testing.T) {
	testCases := map[string]struct {
		m        Mat4
		in       Vec3D
		expected Vec3D
	}{
		"AroundZ": {m: Rotate(0, 0, 1, math.Pi/2), in: Vec3D{1, 0, 0}, expected: Vec3D{0, 1, 0}},
		"AroundX": {m: Rotate(1, 0, 0, math.Pi/2), in: Vec3D{0, 1, 0}, expected: Vec3D{0, 0, 1}},
		"AroundY": {m: Rotate(0, 1, 0, math.Pi/2), in: Vec3D{0, 0, 1}, expected: Vec3D{1, 0, 0}},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			out := tt.m.TransformVec(tt.in)
			if d := out.Sub(tt.expected).Norm(); d > 1e-9 {
				t.Errorf("Expected: %v, got: %v", tt.expected, out)
			}
		})
	}
}

func TestTransformVec_IgnoresTranslation(t *testing.T) {
	v := Translate(5, 6, 7).TransformVec(Vec3D{1, 2, 3})
	if !v.Equal(Vec3D{1, 2, 3}) {
		t.Errorf("Translation must not move a displacement, got: %v", v)
	}
}
