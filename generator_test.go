package voxant

import "testing"

// fakeGenerator implements Generator over a solid ball of radius 0.5
// centered at the origin, for exercising Generate without depending on
// the generate package (which imports voxant and would cycle).
type fakeGenerator struct {
	dims  IVec3
	depth uint32
}

func (f fakeGenerator) Dimensions() IVec3 { return f.dims }
func (f fakeGenerator) Depth() uint32     { return f.depth }
func (f fakeGenerator) Sdf(point Vec3) (Node, bool) {
	if point.Length() < 0.5 {
		return SolidNode(11, 22, 33), true
	}
	return Node{}, false
}

func TestGenerateSamplesEveryVoxelInBounds(t *testing.T) {
	gen := fakeGenerator{dims: IVec3{X: 2, Y: 2, Z: 2}, depth: 2}
	o := Generate(gen)

	leaves := o.Iter()
	if len(leaves) == 0 {
		t.Fatal("expected Generate to produce at least one solid leaf near the origin")
	}
	for _, leaf := range leaves {
		if leaf.Node != SolidNode(11, 22, 33) {
			t.Errorf("leaf node = %+v, want solid(11,22,33)", leaf.Node)
		}
	}
}

func TestGenerateSkipsVoxelsOutsideVolume(t *testing.T) {
	gen := fakeGenerator{dims: IVec3{X: 1, Y: 1, Z: 1}, depth: 1}
	o := Generate(gen)

	// Every voxel of a 1-voxel-half-extent cube is a corner voxel, sampled
	// at +-0.5 on every axis: length ~0.87 > 0.5, so Sdf excludes them all.
	if leaves := o.Iter(); len(leaves) != 0 {
		t.Errorf("Iter() = %+v, want no leaves (every voxel is outside the volume)", leaves)
	}
}
