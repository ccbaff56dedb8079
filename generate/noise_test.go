package generate

import (
	"math"
	"testing"

	"github.com/ashgrove/voxant"
)

func TestPerlinIsDeterministic(t *testing.T) {
	p := voxant.Vec3{X: 1.23, Y: 4.56, Z: 7.89}

	a := Perlin(p)
	b := Perlin(p)
	if a != b {
		t.Errorf("Perlin(p) is not deterministic: %f != %f", a, b)
	}
}

func TestPerlinStaysRoughlyInUnitRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		p := voxant.Vec3{X: float64(i) * 0.37, Y: float64(i) * 0.11, Z: float64(i) * 0.71}
		v := Perlin(p)
		if v < -1.5 || v > 1.5 {
			t.Errorf("Perlin(%+v) = %f, want roughly within [-1, 1]", p, v)
		}
	}
}

func TestShiftedPerlinStaysRoughlyInUnitRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		p := voxant.Vec3{X: float64(i) * 0.53, Y: float64(i) * 0.29, Z: float64(i) * 0.17}
		v := ShiftedPerlin(p)
		if v < -0.5 || v > 1.5 {
			t.Errorf("ShiftedPerlin(%+v) = %f, want roughly within [0, 1]", p, v)
		}
	}
}

func TestPerlinAtOriginIsZero(t *testing.T) {
	// Classic Perlin noise is always exactly zero at integer lattice
	// points, since the gradient contribution at distance zero vanishes.
	v := Perlin(voxant.Vec3{X: 0, Y: 0, Z: 0})
	if math.Abs(v) > 1e-9 {
		t.Errorf("Perlin(0,0,0) = %f, want 0", v)
	}
}
