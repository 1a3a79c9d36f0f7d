// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/oge"
)

func TestPackUniform_Layout(t *testing.T) {
	a := oge.NewAffine2(
		oge.Matrix2{I: oge.V2(1, 2), J: oge.V2(3, 4)},
		oge.V2(5, 6),
	)
	buf := PackUniform(a, 0.5)
	if len(buf) != UniformSize {
		t.Fatalf("len(PackUniform()) = %d, want %d", len(buf), UniformSize)
	}

	floats := map[int]float32{0: 1, 4: 2, 16: 3, 20: 4, 32: 5, 36: 6, 48: 0.5}
	for off := 0; off < UniformSize; off += 4 {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
		want := floats[off]
		if got != want {
			t.Errorf("float at offset %d = %v, want %v", off, got, want)
		}
	}
}

func TestPackUniform_PaddingIsZero(t *testing.T) {
	a := oge.NewAffine2(oge.Scale(-1), oge.V2(-1, -1))
	buf := PackUniform(a, 1)
	for _, pad := range [][2]int{{8, 16}, {24, 32}, {40, 48}, {52, 64}} {
		for i := pad[0]; i < pad[1]; i++ {
			if buf[i] != 0 {
				t.Errorf("padding byte %d = %#x, want 0", i, buf[i])
			}
		}
	}
}

func TestUnpackUniform(t *testing.T) {
	a := oge.NewAffine2(oge.Rotation(0.3), oge.V2(0.25, -0.75))
	got, opacity, ok := UnpackUniform(PackUniform(a, 0.8))
	if !ok {
		t.Fatal("UnpackUniform() ok = false")
	}
	if got != a || opacity != 0.8 {
		t.Errorf("UnpackUniform() = %v, %v, want %v, 0.8", got, opacity, a)
	}
	if _, _, ok := UnpackUniform(make([]byte, 48)); ok {
		t.Error("UnpackUniform(short) ok = true")
	}
}
