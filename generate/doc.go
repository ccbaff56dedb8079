// Package generate provides Generator implementations for voxant.Generate:
// simple volumetric shapes and a layered-noise terrain block, in the style
// of the original project's shape/block generators.
package generate
