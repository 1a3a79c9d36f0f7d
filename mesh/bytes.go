package mesh

import (
	"encoding/binary"
	"math"
)

// VertexStride is the size in bytes of one serialized vertex:
// position.xy then uv.xy, each a little-endian float32.
const VertexStride = 16

// IndexSize is the size in bytes of one serialized index.
const IndexSize = 2

// VertexBytes serializes the vertices in the GPU vertex layout.
func (m *Mesh) VertexBytes() []byte {
	buf := make([]byte, len(m.Vertices)*VertexStride)
	for i, v := range m.Vertices {
		off := i * VertexStride
		putFloat32(buf[off:], v.Position.X)
		putFloat32(buf[off+4:], v.Position.Y)
		putFloat32(buf[off+8:], v.UV.X)
		putFloat32(buf[off+12:], v.UV.Y)
	}
	return buf
}

// IndexBytes serializes the indices as little-endian uint16.
// The buffer length is rounded up to a multiple of 4 by repeating the last
// index, as GPU buffer writes require 4-byte alignment. The padding lies
// past IndexCount and is never drawn.
func (m *Mesh) IndexBytes() []byte {
	n := len(m.Indices)
	padded := n
	if padded%2 != 0 {
		padded++
	}
	buf := make([]byte, padded*IndexSize)
	for i, idx := range m.Indices {
		binary.LittleEndian.PutUint16(buf[i*IndexSize:], idx)
	}
	if padded > n {
		binary.LittleEndian.PutUint16(buf[n*IndexSize:], m.Indices[n-1])
	}
	return buf
}

// IndexCount returns the number of indices to draw.
func (m *Mesh) IndexCount() uint32 {
	return uint32(len(m.Indices)) //nolint:gosec // meshes use 16-bit indices
}

func putFloat32(b []byte, f float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(f))
}
