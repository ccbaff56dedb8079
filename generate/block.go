package generate

import (
	"math"

	"github.com/ashgrove/voxant"
)

// Block generates a small grass-topped island: a rounded base shape
// (super-ellipsoid-like, flattened on top) carved by a few layers of
// noise for a bumpy surface, a banded dirt color ramp, and a grass cap
// above a noisy waterline.
type Block struct{}

// Dimensions returns a 16-voxel half-extent cube on every axis.
func (Block) Dimensions() voxant.IVec3 { return voxant.IVec3{X: 16, Y: 16, Z: 16} }

// Depth returns the branch depth every voxel is written at.
func (Block) Depth() uint32 { return 6 }

// Sdf shapes the island and bands its color by height and noise.
func (Block) Sdf(point voxant.Vec3) (voxant.Node, bool) {
	surfaceOffset := ShiftedPerlin(point.Mul(voxant.Vec3{X: 4, Y: 6, Z: 4})) * 0.2
	grassOffset := ShiftedPerlin(point.Mul(voxant.Vec3{X: 10, Y: 0, Z: 10})) * 0.5
	stepOffset := ShiftedPerlin(point.Mul(voxant.Vec3{X: 10, Y: 10, Z: 10})) * 0.25

	step := math.Floor((point.Y+stepOffset)*4) / 4
	color := voxant.Vec3{
		X: 0.76 + step*0.2,
		Y: 0.48 + step*0.15,
		Z: 0.21 + step*0.1,
	}

	if ShiftedPerlin(point.Scale(8)) > 0.8 {
		color = voxant.Vec3{X: 0.7, Y: 0.7, Z: 0.7}
	}

	if point.Y > 0.5+grassOffset {
		color = voxant.Vec3{X: 0.34, Y: 0.77, Z: 0.26}
	} else {
		surfaceOffset += ShiftedPerlin(point.Scale(2)) * 0.3
		surfaceOffset += 2.0 / 16.0
	}

	xo := math.Pow(math.Abs(point.X), 4)
	zo := math.Pow(math.Abs(point.Z), 4)
	yo := math.Pow(math.Min(point.Y, 0), 4) + math.Pow(math.Max(point.Y, 0), 64)

	base := math.Sqrt(xo + zo + yo)

	if base > 1-surfaceOffset {
		return voxant.Node{}, false
	}

	return rgbNode(color), true
}

// rgbNode quantizes a [0, 1]-ranged color vector into a solid leaf.
func rgbNode(c voxant.Vec3) voxant.Node {
	return voxant.SolidNode(toChannel(c.X), toChannel(c.Y), toChannel(c.Z))
}

func toChannel(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(math.Round(v * 255))
}
