package voxant

// Ray is an origin/direction pair, in either object or world space
// depending on context. Direction is not required to be normalized; the
// raycaster normalizes it internally where needed.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// Transform returns r with both origin and direction mapped through m;
// origin as a point (translation included), direction as a vector
// (translation excluded).
func (r Ray) Transform(m Mat4) Ray {
	return Ray{
		Origin:    m.TransformPoint(r.Origin),
		Direction: m.TransformVector(r.Direction),
	}
}
