package mesh

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/oge"
)

func TestVertexBytes(t *testing.T) {
	m := &Mesh{Vertices: []Vertex{
		{Position: oge.V2(1, -2), UV: oge.V2(0.25, 0.75)},
		{Position: oge.V2(3, 4)},
	}}
	buf := m.VertexBytes()
	if len(buf) != 2*VertexStride {
		t.Fatalf("len(VertexBytes()) = %d, want %d", len(buf), 2*VertexStride)
	}
	want := []float32{1, -2, 0.25, 0.75, 3, 4, 0, 0}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != w {
			t.Errorf("float %d = %v, want %v", i, got, w)
		}
	}
}

func TestIndexBytes(t *testing.T) {
	tests := []struct {
		name    string
		indices []uint16
		want    []uint16
	}{
		{"aligned", []uint16{0, 1, 2, 0, 2, 3}, []uint16{0, 1, 2, 0, 2, 3}},
		{"padded", []uint16{0, 1, 2}, []uint16{0, 1, 2, 2}},
		{"empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Indices: tt.indices}
			buf := m.IndexBytes()
			if len(buf)%4 != 0 {
				t.Errorf("len(IndexBytes()) = %d, not 4-byte aligned", len(buf))
			}
			if len(buf) != len(tt.want)*IndexSize {
				t.Fatalf("len(IndexBytes()) = %d, want %d", len(buf), len(tt.want)*IndexSize)
			}
			for i, w := range tt.want {
				if got := binary.LittleEndian.Uint16(buf[i*IndexSize:]); got != w {
					t.Errorf("index %d = %d, want %d", i, got, w)
				}
			}
			if got := m.IndexCount(); got != uint32(len(tt.indices)) {
				t.Errorf("IndexCount() = %d, want %d", got, len(tt.indices))
			}
		})
	}
}
