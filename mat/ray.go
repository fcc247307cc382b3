package mat

// Ray is the parametric line Origin + t*Direction.
type Ray struct {
	Origin    Point3D
	Direction Vec3D
}

func NewRay(origin Point3D, direction Vec3D) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At evaluates the ray at t. t is not clamped; negative values lie behind
// the origin.
func (r Ray) At(t float64) Point3D {
	return r.Origin.Translate(r.Direction.Scale(t))
}

// Transform applies the affine transform m to both the origin and the
// direction of r.
func (r Ray) Transform(m Mat4) Ray {
	return Ray{
		Origin:    m.TransformPoint(r.Origin),
		Direction: m.TransformVec(r.Direction),
	}
}
