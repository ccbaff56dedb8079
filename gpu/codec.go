package gpu

import (
	"encoding/binary"

	"github.com/ashgrove/voxant"
)

// EncodeNode packs a Node into the 8 little-endian bytes a shader reads as
// two adjacent RGBA8 texels (flags, then data).
func EncodeNode(n voxant.Node) [8]byte {
	var out [8]byte
	binary.LittleEndian.PutUint32(out[0:4], n.Flags)
	binary.LittleEndian.PutUint32(out[4:8], n.Data)
	return out
}

// DecodeNode unpacks the 8 bytes EncodeNode produces back into a Node.
func DecodeNode(b []byte) voxant.Node {
	return voxant.Node{
		Flags: binary.LittleEndian.Uint32(b[0:4]),
		Data:  binary.LittleEndian.Uint32(b[4:8]),
	}
}

// PageWidth is the fixed texel width of a page, per the shader decode
// table: x occupies the low 12 bits, y the next 12, page the top 8.
const PageWidth = 1 << 12

// EncodePointer packs a page-local (x, y) texel coordinate and page index
// into the 4 little-endian bytes a shader reads as a node's second texel:
// bits [0:12) = x, [12:24) = y, [24:32) = page.
func EncodePointer(x, y, page uint32) [4]byte {
	p := (x & 0xFFF) | ((y & 0xFFF) << 12) | (page << 24)
	var out [4]byte
	binary.LittleEndian.PutUint32(out[:], p)
	return out
}

// DecodePointer unpacks the 4 bytes EncodePointer produces back into the
// (x, y, page) texel coordinate.
func DecodePointer(b []byte) (x, y, page uint32) {
	p := binary.LittleEndian.Uint32(b)
	return p & 0xFFF, (p >> 12) & 0xFFF, p >> 24
}
