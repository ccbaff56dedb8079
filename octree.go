package voxant

// Octree is a flat array-backed sparse voxel octree. nodes[0] is the root;
// an interior node at index p owns the 8-node block nodes[p.Data:p.Data+8].
// FreeBranches is a free list of 8-node block start indices available for
// reuse.
type Octree struct {
	Nodes        []Node
	FreeBranches []uint32

	stats Stats
}

// NewOctree returns an empty octree: a single empty root node.
func NewOctree() *Octree {
	return &Octree{Nodes: []Node{EmptyNode}}
}

// Root is the pool index of the root node (always 0).
func (o *Octree) Root() uint32 { return 0 }

// Len returns the number of nodes in the pool.
func (o *Octree) Len() uint32 { return uint32(len(o.Nodes)) }

// Size returns the byte size of the node pool (8 bytes per node).
func (o *Octree) Size() int { return len(o.Nodes) * 8 }

// Stats returns a snapshot of this octree's mutation/traversal counters.
func (o *Octree) Stats() Stats { return o.stats }

// pushBranch allocates a fresh 8-node block, reusing a freed block if one
// is available, and returns its start index.
func (o *Octree) pushBranch() uint32 {
	if n := len(o.FreeBranches); n > 0 {
		i := o.FreeBranches[n-1]
		o.FreeBranches = o.FreeBranches[:n-1]
		for k := uint32(0); k < 8; k++ {
			o.Nodes[i+k] = EmptyNode
		}
		o.stats.BlocksRecycled++
		return i
	}

	index := o.Len()
	o.Nodes = append(o.Nodes, make([]Node, 8)...)
	o.stats.BlocksAlloced++
	return index
}

// removeBranch releases the 8-node block starting at index. If the block
// is the pool tail, the array is truncated instead of growing the free
// list, and any free-listed blocks that thereby become the tail are
// truncated away too.
func (o *Octree) removeBranch(index uint32) {
	if index == o.Len()-8 {
		o.Nodes = o.Nodes[:index]
		for k := 0; k < len(o.FreeBranches); k++ {
			if f := o.FreeBranches[k]; f+8 == o.Len() {
				o.FreeBranches = append(o.FreeBranches[:k], o.FreeBranches[k+1:]...)
				o.Nodes = o.Nodes[:f]
				k = -1
			}
		}
	} else {
		o.FreeBranches = append(o.FreeBranches, index)
	}
	o.stats.BlocksFreed++
}

// Bytes returns the node pool's raw byte view, in the on-disk record
// layout (flags, data — little-endian, 8 bytes/node), suitable for GPU
// upload or serialization.
func (o *Octree) Bytes() []byte {
	out := make([]byte, len(o.Nodes)*8)
	for i, n := range o.Nodes {
		putNode(out[i*8:], n)
	}
	return out
}

func putNode(b []byte, n Node) {
	b[0] = byte(n.Flags)
	b[1] = byte(n.Flags >> 8)
	b[2] = byte(n.Flags >> 16)
	b[3] = byte(n.Flags >> 24)
	b[4] = byte(n.Data)
	b[5] = byte(n.Data >> 8)
	b[6] = byte(n.Data >> 16)
	b[7] = byte(n.Data >> 24)
}

// Set writes node at branch, splitting interior nodes as needed on the way
// down and coalescing bit-identical siblings on the way back up.
func (o *Octree) Set(branch Branch, node Node) {
	if branch.Depth > MaxDepth {
		panicCapacityExceeded(branch.Depth)
	}
	o.stats.Sets++

	parent := o.Root()
	var stack [MaxDepth]uint32
	stackLen := 0

	for depth := uint32(0); depth < branch.Depth; depth++ {
		cur := o.Nodes[parent]

		stack[stackLen] = parent
		stackLen++

		if !cur.IsParent() {
			block := o.pushBranch()
			if cur.IsSolid() {
				for c := uint32(0); c < 8; c++ {
					o.Nodes[block+c] = cur
				}
			}
			o.Nodes[parent] = ParentNode(block)
		}

		pointer := o.Nodes[parent].Pointer()
		child := branch.Child(depth)
		parent = pointer + child
		o.stats.NodesVisited++
	}

	o.Nodes[parent] = node

	for i := stackLen - 1; i >= 0; i-- {
		p := stack[i]
		pointer := o.Nodes[p].Pointer()

		combine := true
		for c := uint32(0); c < 8; c++ {
			combine = combine && o.Nodes[pointer+c] == node
		}

		if combine {
			o.Nodes[p] = node
			o.removeBranch(pointer)
			o.stats.Coalesces++
		}
	}
}

// Remove clears branch to empty, splitting interior/solid nodes as needed
// on the way down and coalescing all-empty blocks back to an empty leaf.
func (o *Octree) Remove(branch Branch) {
	if branch.Depth > MaxDepth {
		panicCapacityExceeded(branch.Depth)
	}
	o.stats.Removes++

	parent := o.Root()
	var stack [MaxDepth]uint32
	stackLen := 0

	for depth := uint32(0); depth < branch.Depth; depth++ {
		cur := o.Nodes[parent]

		if cur.IsEmpty() {
			return
		}

		stack[stackLen] = parent
		stackLen++

		if cur.IsSolid() {
			block := o.pushBranch()
			for c := uint32(0); c < 8; c++ {
				o.Nodes[block+c] = cur
			}
			o.Nodes[parent] = ParentNode(block)

			child := branch.Child(depth)
			parent = block + child
			o.stats.NodesVisited++
			continue
		}

		pointer := cur.Pointer()

		childrenEmpty := true
		for c := uint32(0); c < 8 && childrenEmpty; c++ {
			childrenEmpty = o.Nodes[pointer+c].IsEmpty()
		}

		if childrenEmpty {
			o.Nodes[parent] = EmptyNode
			o.removeBranch(pointer)
			o.stats.Coalesces++
			return
		}

		child := branch.Child(depth)
		parent = pointer + child
		o.stats.NodesVisited++
	}

	o.Nodes[parent] = EmptyNode

	for i := stackLen - 1; i >= 0; i-- {
		pointer := o.Nodes[stack[i]].Pointer()
		for c := uint32(0); c < 8; c++ {
			if !o.Nodes[pointer+c].IsEmpty() {
				return
			}
		}
		o.Nodes[stack[i]] = EmptyNode
		o.removeBranch(pointer)
		o.stats.Coalesces++
	}
}

// Leaf is a (Branch, Node) pair emitted by Iter.
type Leaf struct {
	Branch Branch
	Node   Node
}

// Iter returns every non-empty leaf in the tree as (Branch, Node) pairs.
// Traversal is depth-first via an explicit stack; sibling order is not
// guaranteed and callers should not depend on it.
func (o *Octree) Iter() []Leaf {
	var out []Leaf

	type frame struct {
		branch Branch
		index  uint32
	}
	stack := []frame{{RootBranch, o.Root()}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := o.Nodes[top.index]
		if node.IsEmpty() {
			continue
		}

		if node.IsParent() {
			pointer := node.Pointer()
			if pointer+8 > o.Len() {
				panicMalformedTree(top.index, pointer, o.Len())
			}
			for c := uint32(0); c < 8; c++ {
				stack = append(stack, frame{top.branch.WithChild(c), pointer + c})
			}
			continue
		}

		out = append(out, Leaf{Branch: top.branch, Node: node})
	}

	return out
}

// Get returns the node at a pool index.
func (o *Octree) Get(index uint32) Node { return o.Nodes[index] }

// GetBranch walks the tree from the root to branch and returns the node
// that resolves it: the leaf at branch itself, or the coarser leaf of an
// ancestor that branch falls within. The bool is always true; it exists so
// callers can mirror Iter's (Branch, Node) pairing (`get(b) == n` for every
// emitted leaf) without special-casing a lookup that can't fail.
func (o *Octree) GetBranch(branch Branch) (Node, bool) {
	if branch.Depth > MaxDepth {
		panicCapacityExceeded(branch.Depth)
	}

	parent := o.Root()
	for depth := uint32(0); depth < branch.Depth; depth++ {
		cur := o.Nodes[parent]
		if !cur.IsParent() {
			return cur, true
		}

		pointer := cur.Pointer()
		if pointer+8 > o.Len() {
			panicMalformedTree(parent, pointer, o.Len())
		}
		parent = pointer + branch.Child(depth)
	}

	return o.Nodes[parent], true
}
