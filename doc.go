// Package voxant is a sparse voxel octree (SVO) core: a pointer-linked,
// self-compacting node pool together with CSG edit operators, a raycaster,
// and a dirty-tracking wrapper that feeds a paged GPU texture mirror.
//
// voxant does not own a window, a GPU device, or input capture — those are
// external collaborators. It owns the data structure and the algorithms
// that mutate, query, and export it.
//
// # Quick start
//
//	tree := voxant.NewOctree()
//	tree.Set(voxant.Branch{Path: voxant.IVec3{X: 0, Y: 0, Z: 0}, Depth: 1}, voxant.SolidNode(255, 128, 0))
//
//	hit, ok := tree.Raycast(voxant.Identity(), voxant.Ray{
//		Origin:    voxant.Vec3{X: 2, Y: 0, Z: 0},
//		Direction: voxant.Vec3{X: -1, Y: 0, Z: 0},
//	})
//
// # Mutation and dirty tracking
//
// [DynamicOctree] wraps an [Octree] and records coalesced node-range
// [Segment]s for every write, so a renderer can mirror only what changed:
//
//	dyn := voxant.NewDynamicOctreeEmpty()
//	dyn.Set(branch, node)
//	segments := dyn.TakeSegments()
//
// Segments are consumed by a page mirror (package [voxant/gpu]) once per
// frame, after any edits for that frame and before the frame's draw.
//
// # CSG edits and generators
//
// Templates are themselves [Octree] values, typically built by
// [Generate] from a type implementing [Generator] (see package
// voxant/generate for concrete generators). [Octree.Union] and
// [Octree.Difference] splice a template into a host tree at a branch and
// placement depth.
//
// # On-disk format
//
// [Octree.MarshalBinary] and [Octree.UnmarshalBinary] implement the
// length-prefixed node/free-list format described on MarshalBinary and in
// SPEC_FULL.md in the module root; there is no version field and no
// validation pass — compatibility is by convention, matching an
// already-validated in-memory pool.
package voxant
