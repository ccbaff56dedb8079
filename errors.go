package voxant

import "fmt"

// ErrCapacityExceeded is wrapped into the panic raised when a branch depth
// exceeds MaxDepth. It is a programmer error: the tree is designed
// with a fixed depth ceiling, so callers should never construct a branch
// deeper than that, and recovering from it is not meaningful — the panic
// exists so a test can assert on it via errors.Is/errors.As rather than a
// bare string match.
var ErrCapacityExceeded = fmt.Errorf("voxant: branch depth exceeds MaxDepth (%d)", MaxDepth)

// ErrMalformedTree is wrapped into the panic raised when traversal follows
// a PARENT pointer that is out of range. The data structure is corrupt at
// that point and cannot be reasoned about further.
var ErrMalformedTree = fmt.Errorf("voxant: malformed tree")

func panicCapacityExceeded(depth uint32) {
	panic(fmt.Errorf("%w: got depth %d", ErrCapacityExceeded, depth))
}

func panicMalformedTree(parent uint32, pointer uint32, length uint32) {
	panic(fmt.Errorf("%w: parent %d has out-of-range pointer %d (pool length %d)",
		ErrMalformedTree, parent, pointer, length))
}
