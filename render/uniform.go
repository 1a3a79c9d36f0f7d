// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/oge"
)

// Uniform block layout. Each vector occupies a 16-byte slot holding 8 bytes
// of data followed by 8 zero bytes; the opacity scalar sits in the last slot.
const (
	UniformSize = 64

	uniformOffsetI           = 0
	uniformOffsetJ           = 16
	uniformOffsetTranslation = 32
	uniformOffsetOpacity     = UniformSize - 16
)

// PackUniform serializes a device-space transform and opacity into the
// sprite shader's uniform block. All unused bytes are zero.
func PackUniform(a oge.Affine2, opacity float32) []byte {
	buf := make([]byte, UniformSize)
	putVector2(buf[uniformOffsetI:], a.Matrix.I)
	putVector2(buf[uniformOffsetJ:], a.Matrix.J)
	putVector2(buf[uniformOffsetTranslation:], a.Translation)
	putFloat32(buf[uniformOffsetOpacity:], opacity)
	return buf
}

// UnpackUniform is the inverse of PackUniform.
func UnpackUniform(buf []byte) (oge.Affine2, float32, bool) {
	if len(buf) != UniformSize {
		return oge.Affine2{}, 0, false
	}
	a := oge.Affine2{
		Matrix: oge.Matrix2{
			I: getVector2(buf[uniformOffsetI:]),
			J: getVector2(buf[uniformOffsetJ:]),
		},
		Translation: getVector2(buf[uniformOffsetTranslation:]),
	}
	return a, getFloat32(buf[uniformOffsetOpacity:]), true
}

func putVector2(b []byte, v oge.Vector2) {
	putFloat32(b, v.X)
	putFloat32(b[4:], v.Y)
}

func getVector2(b []byte) oge.Vector2 {
	return oge.V2(getFloat32(b), getFloat32(b[4:]))
}

func putFloat32(b []byte, f float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(f))
}

func getFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
