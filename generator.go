package voxant

// Generator samples a signed-distance-style volume over normalized space
// and reports the leaf node (if any) to place at each sampled point.
// Concrete generators (see package voxant/generate) live outside the core
// package; Generator is declared here, not there, so Generate can accept
// it without creating an import cycle.
type Generator interface {
	// Dimensions reports the half-extent, in voxels, of the volume to
	// sample along each axis.
	Dimensions() IVec3
	// Depth is the branch depth every sampled voxel is written at.
	Depth() uint32
	// Sdf reports the node to place at point (in [-1, 1]^3 normalized
	// space), or false if point is outside the generated volume.
	Sdf(point Vec3) (Node, bool)
}

// Generate builds a fresh octree by sampling gen at every voxel in its
// declared dimensions, writing one Set per occupied voxel.
func Generate(gen Generator) *Octree {
	o := NewOctree()

	dims := gen.Dimensions()
	depth := gen.Depth()
	dimsF := dims.AsVec3()

	for ix := -dims.X; ix < dims.X; ix++ {
		for iy := -dims.Y; iy < dims.Y; iy++ {
			for iz := -dims.Z; iz < dims.Z; iz++ {
				point := Vec3{
					X: float64(ix) + 0.5,
					Y: float64(iy) + 0.5,
					Z: float64(iz) + 0.5,
				}.Div(dimsF)

				node, ok := gen.Sdf(point)
				if !ok {
					continue
				}

				branch := Branch{Path: IVec3{X: ix, Y: iy, Z: iz}, Depth: depth}
				o.Set(branch, node)
			}
		}
	}

	return o
}
