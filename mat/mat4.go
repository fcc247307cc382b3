package mat

// Mat4 is a column-major 4x4 matrix.
type Mat4 [16]float64

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func (m Mat4) Mul(a Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[4*k+i] * a[4*j+k]
			}
			out[4*j+i] = sum
		}
	}
	return out
}

// TransformPoint applies rotation, scale and translation to p.
func (m Mat4) TransformPoint(p Point3D) Point3D {
	return Point3D{
		X: m[4*0+0]*p.X + m[4*1+0]*p.Y + m[4*2+0]*p.Z + m[4*3+0],
		Y: m[4*0+1]*p.X + m[4*1+1]*p.Y + m[4*2+1]*p.Z + m[4*3+1],
		Z: m[4*0+2]*p.X + m[4*1+2]*p.Y + m[4*2+2]*p.Z + m[4*3+2],
	}
}

// TransformVec applies rotation and scale to a. Translation does not affect
// displacements.
func (m Mat4) TransformVec(a Vec3D) Vec3D {
	return Vec3D{
		m[4*0+0]*a[0] + m[4*1+0]*a[1] + m[4*2+0]*a[2],
		m[4*0+1]*a[0] + m[4*1+1]*a[1] + m[4*2+1]*a[2],
		m[4*0+2]*a[0] + m[4*1+2]*a[1] + m[4*2+2]*a[2],
	}
}
