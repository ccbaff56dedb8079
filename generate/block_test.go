package generate

import (
	"testing"

	"github.com/ashgrove/voxant"
)

func TestBlockDimensionsAndDepth(t *testing.T) {
	b := Block{}
	if b.Dimensions() != (voxant.IVec3{X: 16, Y: 16, Z: 16}) {
		t.Errorf("Dimensions() = %+v, want {16,16,16}", b.Dimensions())
	}
	if b.Depth() != 6 {
		t.Errorf("Depth() = %d, want 6", b.Depth())
	}
}

func TestBlockSdfProducesOnlyShadowCastingLeaves(t *testing.T) {
	b := Block{}
	dims := b.Dimensions().AsVec3()

	found := false
	for ix := int32(-5); ix < 5; ix++ {
		for iz := int32(-5); iz < 5; iz++ {
			for iy := int32(-8); iy < 8; iy++ {
				point := voxant.Vec3{X: float64(ix) + 0.5, Y: float64(iy) + 0.5, Z: float64(iz) + 0.5}.Div(dims)
				node, ok := b.Sdf(point)
				if !ok {
					continue
				}
				found = true
				if !node.IsSolid() || !node.IsShadow() {
					t.Fatalf("Sdf(%+v) produced a node that is not a solid shadow-casting leaf: %+v", point, node)
				}
			}
		}
	}

	if !found {
		t.Fatal("expected Block.Sdf to produce at least one solid voxel within its island footprint")
	}
}

func TestGenerateBlockProducesAnIsland(t *testing.T) {
	o := voxant.Generate(Block{})
	if len(o.Iter()) == 0 {
		t.Fatal("expected Generate(Block{}) to produce a non-empty island")
	}
}
