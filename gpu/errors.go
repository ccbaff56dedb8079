package gpu

import "errors"

// ErrSurfaceFatal is wrapped into any error a PageWriter returns when its
// backing surface (texture, image, buffer) cannot satisfy a write —
// uninitialized, or a computed rectangle falls outside it. Unlike the core
// package's panics for internal invariant violations, this is a boundary
// error: the backing surface is owned by an external collaborator,
// so callers may legitimately need to recover and reinitialize it.
var ErrSurfaceFatal = errors.New("voxant/gpu: surface fatal")
