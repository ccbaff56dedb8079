package voxant

// Node is a fixed 8-byte leaf/parent record: a 32-bit flags word and a
// 32-bit data word. Flags expose three independent bits; data is either a
// pool index (PARENT) or a packed RGB triplet (SOLID).
type Node struct {
	Flags uint32
	Data  uint32
}

// Flag bits. PARENT and SOLID are mutually exclusive in a well-formed tree:
// an interior node is never a leaf.
const (
	FlagSolid  uint32 = 1 << 0
	FlagParent uint32 = 1 << 1
	FlagShadow uint32 = 1 << 2

	emptyMask = FlagParent | FlagSolid
)

// EmptyNode is the zero-value leaf: neither parent nor solid.
var EmptyNode = Node{}

// SolidNode returns an opaque, shadow-casting leaf with the given color.
func SolidNode(r, g, b uint8) Node {
	return Node{
		Flags: FlagSolid | FlagShadow,
		Data:  uint32(b)<<16 | uint32(g)<<8 | uint32(r),
	}
}

// TranslucentNode returns a solid leaf that opts out of the shadow
// rendering hint. It is legal and distinct from SolidNode only in the
// SHADOW bit, which matters for coalescing: Set compares whole Node values
// with == (see DESIGN.md open question 1).
func TranslucentNode(r, g, b uint8) Node {
	return Node{
		Flags: FlagSolid,
		Data:  uint32(b)<<16 | uint32(g)<<8 | uint32(r),
	}
}

// ParentNode returns an interior node pointing at the 8-node child block
// starting at pointer.
func ParentNode(pointer uint32) Node {
	return Node{Flags: FlagParent, Data: pointer}
}

// IsParent reports whether n is an interior node.
func (n Node) IsParent() bool { return n.Flags&FlagParent != 0 }

// IsSolid reports whether n is an occupied leaf.
func (n Node) IsSolid() bool { return n.Flags&FlagSolid != 0 }

// IsShadow reports whether n carries the shadow rendering hint.
func (n Node) IsShadow() bool { return n.Flags&FlagShadow != 0 }

// IsEmpty reports whether n is neither a parent nor a solid leaf.
func (n Node) IsEmpty() bool { return n.Flags&emptyMask == 0 }

// Pointer returns n's child-block pointer. Only meaningful if n.IsParent().
func (n Node) Pointer() uint32 { return n.Data }

// R returns the red channel of a solid/translucent leaf's color.
func (n Node) R() uint8 { return uint8(n.Data) }

// G returns the green channel of a solid/translucent leaf's color.
func (n Node) G() uint8 { return uint8(n.Data >> 8) }

// B returns the blue channel of a solid/translucent leaf's color.
func (n Node) B() uint8 { return uint8(n.Data >> 16) }
