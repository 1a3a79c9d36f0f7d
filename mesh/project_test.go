package mesh

import (
	"testing"

	"github.com/gogpu/oge"
)

func TestProject_ScaleToFit(t *testing.T) {
	tests := []struct {
		name       string
		mesh       *Mesh
		texW, texH uint32
		want       []oge.Vector2
	}{
		{
			name: "square on square",
			mesh: Rectangle(2, 2),
			texW: 64, texH: 64,
			want: []oge.Vector2{oge.V2(0, 1), oge.V2(1, 1), oge.V2(1, 0), oge.V2(0, 0)},
		},
		{
			// Mesh 4:1 wider than a 2:1 texture, scaled by height.
			name: "wide mesh",
			mesh: Rectangle(4, 1),
			texW: 2, texH: 1,
			want: []oge.Vector2{oge.V2(-1.5, 1), oge.V2(2.5, 1), oge.V2(2.5, 0), oge.V2(-1.5, 0)},
		},
		{
			// Mesh 1:2 narrower than a square texture, scaled by width.
			name: "tall mesh",
			mesh: Rectangle(1, 2),
			texW: 8, texH: 8,
			want: []oge.Vector2{oge.V2(0, 1.5), oge.V2(1, 1.5), oge.V2(1, -0.5), oge.V2(0, -0.5)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mesh.Project(ScaleToFit, tt.texW, tt.texH)
			for i, v := range tt.mesh.Vertices {
				if !v.UV.Approx(tt.want[i], 1e-6) {
					t.Errorf("UV[%d] = %v, want %v", i, v.UV, tt.want[i])
				}
			}
		})
	}
}

func TestProject_ScaleToFitOffCenter(t *testing.T) {
	m := Line(2, []oge.Vector2{oge.V2(10, 10), oge.V2(12, 10)}, PreserveAngles)
	m.Project(ScaleToFit, 1, 1)
	for i, v := range m.Vertices {
		if v.UV.X < 0 || v.UV.X > 1 || v.UV.Y < 0 || v.UV.Y > 1 {
			t.Errorf("UV[%d] = %v, outside [0,1]", i, v.UV)
		}
	}
}

func TestProject_SingleColor(t *testing.T) {
	m := Rectangle(2, 2)
	m.Project(ScaleToFit, 1, 1)
	m.Project(SingleColor, 1, 1)
	for i, v := range m.Vertices {
		if v.UV != (oge.Vector2{}) {
			t.Errorf("UV[%d] = %v, want zero", i, v.UV)
		}
	}
}
