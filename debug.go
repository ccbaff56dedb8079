package voxant

import (
	"fmt"
	"os"
)

// Debug gates the raycaster's optional step trace (see Octree.Raycast).
// Off by default; flipped on in tests and the demo only. Mirrors the
// teacher's Scene.debug switch (debug.go), generalized from per-frame
// render stats to per-call octree counters.
var Debug bool

// Stats accumulates counters across the lifetime of an Octree: how many
// times each mutating operation ran, how many nodes traversal visited, how
// many coalesce events fired, and how many 8-node blocks were
// allocated/freed. Read via Octree.Stats; never reset automatically.
type Stats struct {
	Sets           uint64
	Removes        uint64
	Unions         uint64
	Differences    uint64
	NodesVisited   uint64
	Coalesces      uint64
	BlocksAlloced  uint64
	BlocksFreed    uint64
	BlocksRecycled uint64
}

// debugLog prints a one-line trace to stderr when Debug is enabled.
// Never called on a default (non-debug) hot path.
func debugLog(format string, args ...any) {
	if !Debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[voxant] "+format+"\n", args...)
}
