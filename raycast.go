package voxant

import (
	"math"
	"math/bits"
)

// Hit describes where a ray struck a solid leaf.
type Hit struct {
	Index    uint32
	Branch   Branch
	Point    Vec3
	Normal   IVec3
	Distance float64
}

// Raycast casts ray (in world space) against o, placed in the world by
// transform, and reports the nearest solid leaf it strikes.
//
// Distance is measured from ray's own (world-space) origin to the
// world-space hit point, deliberately: measuring from the object-space
// ray origin instead would mix spaces whenever transform has any scale
// or rotation (see DESIGN.md open question 2).
func (o *Octree) Raycast(transform Mat4, ray Ray) (Hit, bool) {
	local := ray.Transform(transform.Inverse())

	hit, ok := o.castNormalized(local)
	if !ok {
		return Hit{}, false
	}

	position := transform.TransformPoint(hit.Point)
	return Hit{
		Index:    hit.Index,
		Branch:   hit.Branch,
		Point:    position,
		Normal:   hit.Normal,
		Distance: position.Sub(ray.Origin).Length(),
	}, true
}

// castNormalized runs the stack-based descent/ascent DDA against a ray
// already in the octree's normalized [-1, 1]^3 object space. It never
// computes a distance; Raycast fills that in from world-space positions.
func (o *Octree) castNormalized(ray Ray) (Hit, bool) {
	point, ok := project(ray.Origin, ray.Direction)
	if !ok {
		return Hit{}, false
	}
	direction := ray.Direction.Normalize()

	sideSign := signToI(point)
	var normal IVec3
	if math.Abs(point.X) >= 1 {
		normal.X = sideSign.X
	}
	if math.Abs(point.Y) >= 1 {
		normal.Y = sideSign.Y
	}
	if math.Abs(point.Z) >= 1 {
		normal.Z = sideSign.Z
	}

	// A zero direction component steps toward +1, so its exit distance
	// below is +Inf and never wins the min comparison.
	dir := signToI(direction)
	if dir.X == 0 {
		dir.X = 1
	}
	if dir.Y == 0 {
		dir.Y = 1
	}
	if dir.Z == 0 {
		dir.Z = 1
	}

	root := o.Nodes[o.Root()]
	if root.IsEmpty() {
		return Hit{}, false
	}
	if root.IsSolid() {
		return Hit{
			Index:  o.Root(),
			Branch: RootBranch,
			Point:  point,
			Normal: normal,
		}, true
	}

	parent := root.Pointer()
	depth := uint32(0)
	child := selectInitialChild(point)
	path := addChild(IVec3{}, child)

	var stack [MaxDepth + 1]uint32
	stack[0] = parent

	for {
		debugLog("descend: parent=%d child=%d depth=%d", parent, child, depth)

		if int(parent+child) >= len(o.Nodes) {
			panicMalformedTree(parent, child, uint32(len(o.Nodes)))
		}
		node := o.Nodes[parent+child]

		if node.IsParent() {
			parent = node.Pointer()
			child = selectChild(point, path, depth)
			path = addChild(path, child)

			depth++
			stack[depth] = parent
			continue
		}

		if node.IsSolid() {
			half := int32(int64(1) << depth)
			branch := Branch{Path: path.SubScalar(half), Depth: depth + 1}

			return Hit{
				Index:  parent + child,
				Branch: branch,
				Point:  point.Add(direction.Scale(1e-4)),
				Normal: normal,
			}, true
		}

		oldPath := path
		sp := split(path, depth)
		scale := float64(int64(1) << (depth + 1))
		bounds := Vec3{
			X: sp.X + float64(dir.X)/scale,
			Y: sp.Y + float64(dir.Y)/scale,
			Z: sp.Z + float64(dir.Z)/scale,
		}
		t := bounds.Sub(point).Div(direction)

		tmin := t.MinElement()
		switch {
		case tmin == t.X:
			path.X += dir.X
			normal = IVec3{X: -dir.X}
		case tmin == t.Y:
			path.Y += dir.Y
			normal = IVec3{Y: -dir.Y}
		default:
			path.Z += dir.Z
			normal = IVec3{Z: -dir.Z}
		}

		point = point.Add(direction.Scale(tmin))

		pathDiff := path.Xor(oldPath)
		diff := pathDiff.X | pathDiff.Y | pathDiff.Z
		flip := uint32(31 - bits.LeadingZeros32(uint32(diff)))

		if flip > depth {
			return Hit{}, false
		}

		parent = stack[depth-flip]
		child = extractChild(path, flip)

		for i := flip; i >= 1; i-- {
			debugLog("ascend: parent=%d child=%d depth=%d i=%d", parent, child, depth, i)

			if int(parent+child) >= len(o.Nodes) {
				panicMalformedTree(parent, child, uint32(len(o.Nodes)))
			}
			n := o.Nodes[parent+child]
			if !n.IsParent() {
				depth -= i
				path = path.Shl(-int32(i))
				break
			}

			j := i - 1
			parent = n.Pointer()
			child = extractChild(path, j)
			stack[depth-j] = parent
		}
	}
}

func signToI(v Vec3) IVec3 {
	s := v.Signum()
	return IVec3{X: int32(s.X), Y: int32(s.Y), Z: int32(s.Z)}
}

func inBounds(point Vec3) bool {
	return math.Abs(point.X) <= 1 && math.Abs(point.Y) <= 1 && math.Abs(point.Z) <= 1
}

// project clips (origin, direction) against the [-1, 1]^3 root cube,
// returning the point where the ray enters it, or false if it misses.
func project(origin, direction Vec3) (Vec3, bool) {
	if inBounds(origin) {
		return origin, true
	}

	tmin := Vec3{X: -1, Y: -1, Z: -1}.Sub(origin).Div(direction)
	tmax := Vec3{X: 1, Y: 1, Z: 1}.Sub(origin).Div(direction)

	near := tmin.Min(tmax).MaxElement()
	far := tmin.Max(tmax).MinElement()

	if near > far || far < 0 {
		return Vec3{}, false
	}

	return origin.Add(direction.Scale(near)), true
}

// split returns the center of the cube named by (path, depth) in
// normalized object space.
func split(path IVec3, depth uint32) Vec3 {
	scale := float64(int64(1) << depth)
	return Vec3{
		X: (float64(path.X)+0.5)/scale - 1,
		Y: (float64(path.Y)+0.5)/scale - 1,
		Z: (float64(path.Z)+0.5)/scale - 1,
	}
}

func selectInitialChild(point Vec3) uint32 {
	var child uint32
	if point.X >= 0 {
		child |= 1
	}
	if point.Y >= 0 {
		child |= 2
	}
	if point.Z >= 0 {
		child |= 4
	}
	return child
}

func selectChild(point Vec3, path IVec3, depth uint32) uint32 {
	s := split(path, depth)
	var child uint32
	if point.X >= s.X {
		child |= 1
	}
	if point.Y >= s.Y {
		child |= 2
	}
	if point.Z >= s.Z {
		child |= 4
	}
	return child
}

func addChild(path IVec3, child uint32) IVec3 {
	p := path.Shl(1)
	if child&1 != 0 {
		p.X |= 1
	}
	if child&2 != 0 {
		p.Y |= 1
	}
	if child&4 != 0 {
		p.Z |= 1
	}
	return p
}

func extractChild(path IVec3, depth uint32) uint32 {
	var child uint32
	bit := int32(1) << depth
	if path.X&bit != 0 {
		child |= 1
	}
	if path.Y&bit != 0 {
		child |= 2
	}
	if path.Z&bit != 0 {
		child |= 4
	}
	return child
}
