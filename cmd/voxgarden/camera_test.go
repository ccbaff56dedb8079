package main

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"

	"github.com/ashgrove/voxant"
)

func TestNewCameraEyeIsRadiusFromTarget(t *testing.T) {
	c := newCamera(voxant.Vec3{}, 5)
	eye := c.Eye()
	if math.Abs(eye.Sub(c.Target).Length()-5) > 1e-9 {
		t.Errorf("Eye() is %f from Target, want 5", eye.Sub(c.Target).Length())
	}
}

func TestBasisVectorsAreOrthonormal(t *testing.T) {
	c := newCamera(voxant.Vec3{}, 3)
	c.Yaw, c.Pitch = 0.7, 0.3

	forward, right, up := c.Basis()
	for _, v := range []voxant.Vec3{forward, right, up} {
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Errorf("basis vector %+v is not unit length: %f", v, v.Length())
		}
	}

	dot := func(a, b voxant.Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
	if math.Abs(dot(forward, right)) > 1e-9 {
		t.Error("forward and right are not orthogonal")
	}
	if math.Abs(dot(forward, up)) > 1e-9 {
		t.Error("forward and up are not orthogonal")
	}
	if math.Abs(dot(right, up)) > 1e-9 {
		t.Error("right and up are not orthogonal")
	}
}

func TestOrbitToReachesTargetAngles(t *testing.T) {
	c := newCamera(voxant.Vec3{}, 3)
	c.OrbitTo(1.5, 0.8, 1.0, ease.Linear)

	c.Update(0.5)
	c.Update(0.5)

	if math.Abs(c.Yaw-1.5) > 0.01 {
		t.Errorf("Yaw = %f, want ~1.5", c.Yaw)
	}
	if math.Abs(c.Pitch-0.8) > 0.01 {
		t.Errorf("Pitch = %f, want ~0.8", c.Pitch)
	}
	if c.orbit != nil {
		t.Error("expected orbit tween to clear once both axes finish")
	}
}
