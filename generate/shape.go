package generate

import "github.com/ashgrove/voxant"

// Sphere generates a solid white ball of the given radius (in voxels),
// at depth. It is the simplest possible voxant.Generator and is mostly
// used as a CSG template for carving/filling operations.
type Sphere struct {
	Radius uint32
	Level  uint32
}

// NewSphere returns a Sphere generator of the given radius and depth.
func NewSphere(radius, depth uint32) Sphere {
	return Sphere{Radius: radius, Level: depth}
}

// Dimensions returns a cube of half-extent Radius on every axis.
func (s Sphere) Dimensions() voxant.IVec3 {
	r := int32(s.Radius)
	return voxant.IVec3{X: r, Y: r, Z: r}
}

// Depth returns the branch depth every voxel is written at.
func (s Sphere) Depth() uint32 { return s.Level }

// Sdf reports a solid white node for every point inside the unit ball.
func (s Sphere) Sdf(point voxant.Vec3) (voxant.Node, bool) {
	if point.Length() < 1 {
		return voxant.SolidNode(255, 255, 255), true
	}
	return voxant.Node{}, false
}
