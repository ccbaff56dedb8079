package voxant

import (
	"encoding/binary"
	"fmt"
)

// MarshalBinary encodes o as a length-prefixed node array followed by a
// length-prefixed free-list, all little-endian:
//
//	u32         node count
//	node count * (u32 flags, u32 data)
//	u32         free-list length
//	free-list length * u32
//
// There is no version field; compatibility is by convention.
func (o *Octree) MarshalBinary() ([]byte, error) {
	size := 4 + len(o.Nodes)*8 + 4 + len(o.FreeBranches)*4
	buf := make([]byte, size)

	off := 0
	binary.LittleEndian.PutUint32(buf[off:], uint32(len(o.Nodes)))
	off += 4

	for _, n := range o.Nodes {
		binary.LittleEndian.PutUint32(buf[off:], n.Flags)
		binary.LittleEndian.PutUint32(buf[off+4:], n.Data)
		off += 8
	}

	binary.LittleEndian.PutUint32(buf[off:], uint32(len(o.FreeBranches)))
	off += 4

	for _, f := range o.FreeBranches {
		binary.LittleEndian.PutUint32(buf[off:], f)
		off += 4
	}

	return buf, nil
}

// UnmarshalBinary decodes data written by MarshalBinary, replacing o's
// contents. It returns an error (not a panic) on truncated or malformed
// input, since this is a data-boundary operation rather than an internal
// invariant violation.
func (o *Octree) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return fmt.Errorf("voxant: truncated octree: missing node count")
	}

	nodeCount := binary.LittleEndian.Uint32(data)
	off := 4

	nodesEnd := off + int(nodeCount)*8
	if nodesEnd < off || len(data) < nodesEnd {
		return fmt.Errorf("voxant: truncated octree: expected %d node bytes", int(nodeCount)*8)
	}

	nodes := make([]Node, nodeCount)
	for i := range nodes {
		nodes[i] = Node{
			Flags: binary.LittleEndian.Uint32(data[off:]),
			Data:  binary.LittleEndian.Uint32(data[off+4:]),
		}
		off += 8
	}

	if len(data) < off+4 {
		return fmt.Errorf("voxant: truncated octree: missing free-list count")
	}
	freeCount := binary.LittleEndian.Uint32(data[off:])
	off += 4

	freeEnd := off + int(freeCount)*4
	if freeEnd < off || len(data) < freeEnd {
		return fmt.Errorf("voxant: truncated octree: expected %d free-list bytes", int(freeCount)*4)
	}

	free := make([]uint32, freeCount)
	for i := range free {
		free[i] = binary.LittleEndian.Uint32(data[off:])
		off += 4
	}

	o.Nodes = nodes
	o.FreeBranches = free
	return nil
}
