package voxant

// BatchThreshold is the maximum gap, in nodes, between two otherwise-unrelated
// dirty segments before DynamicOctree stops merging them into one GPU
// upload. A wider threshold trades upload bandwidth for fewer draw calls.
const BatchThreshold uint32 = 1024

// Segment is a coalesced run of dirty node-pool indices, [Start, Start+Len).
type Segment struct {
	Start uint32
	Len   uint32
}

// End returns the index just past the segment.
func (s Segment) End() uint32 { return s.Start + s.Len }

// BatchEnd returns End plus BatchThreshold: any segment starting before this
// is considered close enough to merge with s.
func (s Segment) BatchEnd() uint32 { return s.End() + BatchThreshold }

// ByteStart returns the byte offset of the segment in a serialized node pool.
func (s Segment) ByteStart() int { return int(s.Start) * 8 }

// ByteLen returns the byte length of the segment.
func (s Segment) ByteLen() int { return int(s.Len) * 8 }

// ByteEnd returns the byte offset just past the segment.
func (s Segment) ByteEnd() int { return int(s.End()) * 8 }

// Join returns the smallest segment covering both s and other.
func (s Segment) Join(other Segment) Segment {
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End()
	if other.End() > end {
		end = other.End()
	}
	return Segment{Start: start, Len: end - start}
}

// DynamicOctree wraps Octree, recording a coalesced, sorted set of dirty
// Segments for every mutation so a GPU mirror can resync only what changed.
// Every exported mutator on Octree (Set, Remove, Union,
// Difference) is re-implemented here so that it records segments as it
// writes, rather than delegating to Octree's versions.
type DynamicOctree struct {
	Octree
	segments []Segment
}

// NewDynamicOctree wraps an existing Octree, marking its entire node pool
// as one dirty segment (a full initial upload).
func NewDynamicOctree(tree Octree) *DynamicOctree {
	return &DynamicOctree{
		Octree:   tree,
		segments: []Segment{{Start: 0, Len: tree.Len()}},
	}
}

// NewDynamicOctreeEmpty returns an empty dynamic octree with no pending
// segments.
func NewDynamicOctreeEmpty() *DynamicOctree {
	return &DynamicOctree{Octree: *NewOctree()}
}

// PushBranch allocates an 8-node block (as Octree.pushBranch) and records
// the whole block as one dirty segment.
func (d *DynamicOctree) PushBranch() uint32 {
	index := d.Octree.pushBranch()
	d.PushSegment(Segment{Start: index, Len: 8})
	return index
}

// RemoveBranch releases an 8-node block (as Octree.removeBranch) and, if
// the pool itself shrank, drops trailing segments that now start past its
// end and shrinks the last remaining one to end at it.
func (d *DynamicOctree) RemoveBranch(index uint32) {
	d.Octree.removeBranch(index)

	size := d.Octree.Len()
	for n := len(d.segments); n > 0 && d.segments[n-1].Start >= size; n-- {
		d.segments = d.segments[:n-1]
	}
	if n := len(d.segments); n > 0 && d.segments[n-1].End() > size {
		d.segments[n-1].Len = size - d.segments[n-1].Start
	}
}

// writeNode writes a single node and records a one-node dirty segment,
// mirroring the original's IndexMut override firing on every `self[i] = x`
// assignment inside the shared Set/Remove walk.
func (d *DynamicOctree) writeNode(index uint32, node Node) {
	d.Nodes[index] = node
	d.PushSegment(Segment{Start: index, Len: 1})
}

// Set is Octree.Set, re-implemented to route block allocation and node
// writes through DynamicOctree's own segment-recording PushBranch and
// writeNode.
func (d *DynamicOctree) Set(branch Branch, node Node) {
	if branch.Depth > MaxDepth {
		panicCapacityExceeded(branch.Depth)
	}
	d.stats.Sets++

	parent := d.Root()
	var stack [MaxDepth]uint32
	stackLen := 0

	for depth := uint32(0); depth < branch.Depth; depth++ {
		cur := d.Nodes[parent]

		stack[stackLen] = parent
		stackLen++

		if !cur.IsParent() {
			block := d.PushBranch()
			if cur.IsSolid() {
				for c := uint32(0); c < 8; c++ {
					d.writeNode(block+c, cur)
				}
			}
			d.writeNode(parent, ParentNode(block))
		}

		pointer := d.Nodes[parent].Pointer()
		child := branch.Child(depth)
		parent = pointer + child
		d.stats.NodesVisited++
	}

	d.writeNode(parent, node)

	for i := stackLen - 1; i >= 0; i-- {
		p := stack[i]
		pointer := d.Nodes[p].Pointer()

		combine := true
		for c := uint32(0); c < 8; c++ {
			combine = combine && d.Nodes[pointer+c] == node
		}

		if combine {
			d.writeNode(p, node)
			d.RemoveBranch(pointer)
			d.stats.Coalesces++
		}
	}
}

// Remove is Octree.Remove, re-implemented for segment recording.
func (d *DynamicOctree) Remove(branch Branch) {
	if branch.Depth > MaxDepth {
		panicCapacityExceeded(branch.Depth)
	}
	d.stats.Removes++

	parent := d.Root()
	var stack [MaxDepth]uint32
	stackLen := 0

	for depth := uint32(0); depth < branch.Depth; depth++ {
		cur := d.Nodes[parent]

		if cur.IsEmpty() {
			return
		}

		stack[stackLen] = parent
		stackLen++

		if cur.IsSolid() {
			block := d.PushBranch()
			for c := uint32(0); c < 8; c++ {
				d.writeNode(block+c, cur)
			}
			d.writeNode(parent, ParentNode(block))

			child := branch.Child(depth)
			parent = block + child
			d.stats.NodesVisited++
			continue
		}

		pointer := cur.Pointer()

		childrenEmpty := true
		for c := uint32(0); c < 8 && childrenEmpty; c++ {
			childrenEmpty = d.Nodes[pointer+c].IsEmpty()
		}

		if childrenEmpty {
			d.writeNode(parent, EmptyNode)
			d.RemoveBranch(pointer)
			d.stats.Coalesces++
			return
		}

		child := branch.Child(depth)
		parent = pointer + child
		d.stats.NodesVisited++
	}

	d.writeNode(parent, EmptyNode)

	for i := stackLen - 1; i >= 0; i-- {
		pointer := d.Nodes[stack[i]].Pointer()
		for c := uint32(0); c < 8; c++ {
			if !d.Nodes[pointer+c].IsEmpty() {
				return
			}
		}
		d.writeNode(stack[i], EmptyNode)
		d.RemoveBranch(pointer)
		d.stats.Coalesces++
	}
}

// Union and Difference are implemented in csg.go, over the mutableOctree
// interface shared with *Octree, so the splice is tracked as dirty
// segments via Set/Remove above.

// segmentBefore binary-searches segments (sorted by Start) for an exact
// start match, reporting the insertion point when none is found.
func (d *DynamicOctree) segmentBefore(start uint32) (int, bool) {
	lo, hi := 0, len(d.segments)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case d.segments[mid].Start < start:
			lo = mid + 1
		case d.segments[mid].Start > start:
			hi = mid
		default:
			return mid, true
		}
	}
	return lo, false
}

// PushSegment records segment as dirty, joining it with any existing
// segment it starts at or overlaps within BatchThreshold nodes.
func (d *DynamicOctree) PushSegment(segment Segment) {
	var after int

	if index, ok := d.segmentBefore(segment.Start); ok {
		d.segments[index] = d.segments[index].Join(segment)
		after = index + 1
	} else {
		i := index
		if i > 0 && d.segments[i-1].BatchEnd() >= segment.Start {
			d.segments[i-1] = d.segments[i-1].Join(segment)
			after = i
		} else {
			d.segments = append(d.segments, Segment{})
			copy(d.segments[i+1:], d.segments[i:])
			d.segments[i] = segment
			after = i + 1
		}
	}

	for after < len(d.segments) {
		if d.segments[after].Start >= segment.BatchEnd() {
			break
		}
		d.segments[after-1] = d.segments[after-1].Join(d.segments[after])
		d.segments = append(d.segments[:after], d.segments[after+1:]...)
	}
}

// Segments returns the current sorted, coalesced dirty-segment list.
func (d *DynamicOctree) Segments() []Segment { return d.segments }

// TakeSegments returns the current dirty segments and clears them,
// equivalent to mem::take in the original.
func (d *DynamicOctree) TakeSegments() []Segment {
	out := d.segments
	d.segments = nil
	return out
}

// ClearSegments discards all pending dirty segments without returning them.
func (d *DynamicOctree) ClearSegments() {
	d.segments = nil
}
