package voxant

// mutableOctree is satisfied by both *Octree and *DynamicOctree, letting
// the CSG splice algorithm run identically over either — the dynamic
// variant's Set/Remove additionally record dirty segments as they write.
type mutableOctree interface {
	Set(branch Branch, node Node)
	Remove(branch Branch)
}

// Union splices other's leaves into o at the given branch, scaled down by
// depth additional levels. When other's effective depth is finer than or
// equal to the host branch depth, each of other's leaves maps to exactly
// one host branch. When other is coarser — the template octree has fewer
// levels than the union point needs — a single template leaf fans out to
// replace every host branch it covers.
func (o *Octree) Union(branch Branch, depth uint32, other *Octree) {
	o.stats.Unions++
	joinOctree(o, branch, depth, other, true)
}

// Difference clears every host branch covered by other's solid leaves,
// scaled down by depth additional levels, using the same coarser-template
// fan-out as Union.
func (o *Octree) Difference(branch Branch, depth uint32, other *Octree) {
	o.stats.Differences++
	joinOctree(o, branch, depth, other, false)
}

// Union is Octree.Union, re-implemented over DynamicOctree's own Set so
// the splice is tracked as dirty segments.
func (d *DynamicOctree) Union(branch Branch, depth uint32, other *Octree) {
	d.stats.Unions++
	joinOctree(d, branch, depth, other, true)
}

// Difference is Octree.Difference, re-implemented over DynamicOctree's own
// Remove so the splice is tracked as dirty segments.
func (d *DynamicOctree) Difference(branch Branch, depth uint32, other *Octree) {
	d.stats.Differences++
	joinOctree(d, branch, depth, other, false)
}

// joinOctree walks other's leaves and applies Set (union) or Remove
// (difference) on target for every host branch each leaf maps onto, per
// the replication arithmetic in
// original_source/src/octree/mod.rs's join/difference.
func joinOctree(target mutableOctree, branch Branch, depth uint32, other *Octree, union bool) {
	for _, leaf := range other.Iter() {
		otherBranch := leaf.Branch
		otherBranch.Depth += depth

		offset := int32(otherBranch.Depth) - int32(branch.Depth) - int32(depth)

		if offset >= 0 {
			otherBranch.Path = otherBranch.Path.Add(branch.Path.Shl(offset))
			applyLeaf(target, otherBranch, leaf.Node, union)
			continue
		}

		half := int32(1) << uint(-offset)

		for x := int32(0); x < half; x++ {
			for y := int32(0); y < half; y++ {
				for z := int32(0); z < half; z++ {
					b := otherBranch
					b.Path = b.Path.Shl(-offset)
					b.Path = b.Path.Add(branch.Path)
					b.Path = b.Path.Add(IVec3{X: x, Y: y, Z: z})
					b.Depth -= uint32(offset)
					applyLeaf(target, b, leaf.Node, union)
				}
			}
		}
	}
}

func applyLeaf(target mutableOctree, branch Branch, node Node, union bool) {
	if union {
		target.Set(branch, node)
	} else {
		target.Remove(branch)
	}
}
