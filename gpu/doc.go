// Package gpu mirrors a voxant.DynamicOctree's node pool into a paged
// texture, writing only the byte ranges DynamicOctree reports dirty.
// Acquiring a GPU device and defining the shader that samples the
// resulting texture are out of scope; PageWriter is the boundary contract
// a real backend implements. EbitenPageWriter is the one concrete backend
// this package ships, built on github.com/hajimehoshi/ebiten/v2.
package gpu
