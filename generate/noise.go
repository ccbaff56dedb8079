package generate

import "github.com/ashgrove/voxant"

// perm is a fixed, deterministic permutation table built once at package
// init time from a seeded xorshift32 stream (mirroring the original's
// fixed `Perlin::new(0)` seed — no library in the example pack ships a
// noise generator, so this hand-rolls the classic gradient-lattice
// algorithm instead of depending on one; see DESIGN.md).
var perm [512]int

func init() {
	var p [256]int
	for i := range p {
		p[i] = i
	}

	seed := uint32(0x9e3779b9)
	next := func() uint32 {
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		return seed
	}

	for i := 255; i > 0; i-- {
		j := int(next() % uint32(i+1))
		p[i], p[j] = p[j], p[i]
	}

	for i := range perm {
		perm[i] = p[i&255]
	}
}

func fade(t float64) float64 { return t * t * t * (t*(t*6-15) + 10) }

func lerp(t, a, b float64) float64 { return a + t*(b-a) }

func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}

	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}

	g := u
	if h&1 != 0 {
		g = -u
	}
	if h&2 != 0 {
		g -= v
	} else {
		g += v
	}
	return g
}

func floor(v float64) (int, float64) {
	i := int(v)
	if v < float64(i) {
		i--
	}
	return i, v - float64(i)
}

// perlin3 is classic (Ken Perlin 2002-style) gradient noise over perm,
// in roughly [-1, 1].
func perlin3(x, y, z float64) float64 {
	xi, xf := floor(x)
	yi, yf := floor(y)
	zi, zf := floor(z)

	X := xi & 255
	Y := yi & 255
	Z := zi & 255

	u := fade(xf)
	v := fade(yf)
	w := fade(zf)

	a := perm[X] + Y
	aa := perm[a] + Z
	ab := perm[a+1] + Z
	b := perm[X+1] + Y
	ba := perm[b] + Z
	bb := perm[b+1] + Z

	return lerp(w,
		lerp(v,
			lerp(u, grad(perm[aa], xf, yf, zf), grad(perm[ba], xf-1, yf, zf)),
			lerp(u, grad(perm[ab], xf, yf-1, zf), grad(perm[bb], xf-1, yf-1, zf)),
		),
		lerp(v,
			lerp(u, grad(perm[aa+1], xf, yf, zf-1), grad(perm[ba+1], xf-1, yf, zf-1)),
			lerp(u, grad(perm[ab+1], xf, yf-1, zf-1), grad(perm[bb+1], xf-1, yf-1, zf-1)),
		),
	)
}

// Perlin returns classic gradient noise at p, roughly in [-1, 1].
func Perlin(p voxant.Vec3) float64 {
	return perlin3(p.X, p.Y, p.Z)
}

// ShiftedPerlin returns Perlin(p) remapped to roughly [0, 1], the form
// Block uses for offsets that must not go negative.
func ShiftedPerlin(p voxant.Vec3) float64 {
	return Perlin(p)*0.5 + 0.5
}
