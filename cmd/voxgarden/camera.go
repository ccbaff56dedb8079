package main

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/ashgrove/voxant"
)

// orbitAnim holds an active orbit-to tween for yaw and pitch.
type orbitAnim struct {
	tweenYaw   *gween.Tween
	tweenPitch *gween.Tween
	doneYaw    bool
	donePitch  bool
}

// camera orbits a fixed target at a fixed radius, looking down -Z in view
// space. It is a 3-D generalization of willow's 2-D scroll camera: instead
// of tweening X/Y, it tweens yaw/pitch around the target.
type camera struct {
	Target voxant.Vec3
	Radius float64
	Yaw    float64 // radians, around Y
	Pitch  float64 // radians, from the horizon

	orbit *orbitAnim
}

func newCamera(target voxant.Vec3, radius float64) *camera {
	return &camera{Target: target, Radius: radius, Yaw: 0, Pitch: 0.4}
}

// OrbitTo starts a tween from the camera's current yaw/pitch to the given
// ones, completing after duration seconds with the given easing.
func (c *camera) OrbitTo(yaw, pitch float64, duration float32, easeFn ease.TweenFunc) {
	c.orbit = &orbitAnim{
		tweenYaw:   gween.New(float32(c.Yaw), float32(yaw), duration, easeFn),
		tweenPitch: gween.New(float32(c.Pitch), float32(pitch), duration, easeFn),
	}
}

// Update advances any active orbit tween by dt seconds.
func (c *camera) Update(dt float32) {
	if c.orbit == nil {
		return
	}

	if !c.orbit.doneYaw {
		val, done := c.orbit.tweenYaw.Update(dt)
		c.Yaw = float64(val)
		c.orbit.doneYaw = done
	}
	if !c.orbit.donePitch {
		val, done := c.orbit.tweenPitch.Update(dt)
		c.Pitch = float64(val)
		c.orbit.donePitch = done
	}
	if c.orbit.doneYaw && c.orbit.donePitch {
		c.orbit = nil
	}
}

// Eye returns the camera's world-space position on the orbit sphere.
func (c *camera) Eye() voxant.Vec3 {
	cp := math.Cos(c.Pitch)
	return voxant.Vec3{
		X: c.Target.X + c.Radius*cp*math.Sin(c.Yaw),
		Y: c.Target.Y + c.Radius*math.Sin(c.Pitch),
		Z: c.Target.Z + c.Radius*cp*math.Cos(c.Yaw),
	}
}

// Basis returns the camera's forward (toward Target), right, and up axes,
// for building per-pixel ray directions in the software raycast preview.
func (c *camera) Basis() (forward, right, up voxant.Vec3) {
	eye := c.Eye()
	forward = c.Target.Sub(eye).Normalize()
	worldUp := voxant.Vec3{X: 0, Y: 1, Z: 0}
	right = cross(forward, worldUp).Normalize()
	up = cross(right, forward).Normalize()
	return forward, right, up
}

func cross(a, b voxant.Vec3) voxant.Vec3 {
	return voxant.Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}
