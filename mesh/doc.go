// Package mesh builds the triangle meshes drawn by sprites.
//
// A [Mesh] is an indexed triangle list in local coordinates plus a baseline
// shape transform. Generators cover axis-aligned rectangles, ellipses and
// curve ribbons with miter joints. Meshes serialize to the little-endian
// vertex and index layouts consumed by the GPU pipeline.
package mesh
