package mesh

import (
	"testing"

	"github.com/gogpu/oge"
)

func TestLine_StraightSegment(t *testing.T) {
	m := Line(4, []oge.Vector2{oge.V2(0, 0), oge.V2(10, 0)}, PreserveAngles)
	want := []oge.Vector2{oge.V2(0, 2), oge.V2(0, -2), oge.V2(10, 2), oge.V2(10, -2)}
	if len(m.Vertices) != len(want) {
		t.Fatalf("len(Vertices) = %d, want %d", len(m.Vertices), len(want))
	}
	for i, v := range m.Vertices {
		if !v.Position.Approx(want[i], 1e-5) {
			t.Errorf("Vertices[%d] = %v, want %v", i, v.Position, want[i])
		}
	}
	wantIdx := []uint16{1, 3, 2, 1, 2, 0}
	for i, idx := range m.Indices {
		if idx != wantIdx[i] {
			t.Errorf("Indices[%d] = %d, want %d", i, idx, wantIdx[i])
		}
	}
}

func TestLine_CollinearJointOmitted(t *testing.T) {
	points := []oge.Vector2{oge.V2(0, 0), oge.V2(10, 0), oge.V2(20, 0)}
	m := Line(4, points, PreserveAngles)

	if len(m.Vertices) != 4 {
		t.Fatalf("len(Vertices) = %d, want 4", len(m.Vertices))
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if m.TriangleCount() != 2 {
		t.Errorf("TriangleCount() = %d, want 2", m.TriangleCount())
	}
	if got := m.Vertices[2].Position; !got.Approx(oge.V2(20, 2), 1e-5) {
		t.Errorf("end cap left = %v, want (20, 2)", got)
	}
}

func TestLine_Miter(t *testing.T) {
	// Right angle turn: up the Y axis then along +X.
	points := []oge.Vector2{oge.V2(0, 0), oge.V2(0, 10), oge.V2(10, 10)}
	m := Line(2, points, PreserveAngles)

	if len(m.Vertices) != 6 {
		t.Fatalf("len(Vertices) = %d, want 6", len(m.Vertices))
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	// The outer corner sits at (-1, 11), the inner corner at (1, 9).
	left, right := m.Vertices[2].Position, m.Vertices[3].Position
	if !left.Approx(oge.V2(-1, 11), 1e-4) {
		t.Errorf("miter left = %v, want (-1, 11)", left)
	}
	if !right.Approx(oge.V2(1, 9), 1e-4) {
		t.Errorf("miter right = %v, want (1, 9)", right)
	}
	if m.TriangleCount() != 4 {
		t.Errorf("TriangleCount() = %d, want 4", m.TriangleCount())
	}
}

func TestLine_MixedCollinearAndTurn(t *testing.T) {
	points := []oge.Vector2{oge.V2(0, 0), oge.V2(5, 0), oge.V2(10, 0), oge.V2(10, 10)}
	m := Line(2, points, PreserveAngles)

	// One collinear joint dropped, one miter kept.
	if len(m.Vertices) != 6 {
		t.Fatalf("len(Vertices) = %d, want 6", len(m.Vertices))
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestDoubleJoint(t *testing.T) {
	tests := []struct {
		name   string
		points []oge.Vector2
		want   int
	}{
		{"two", []oge.Vector2{oge.V2(0, 0), oge.V2(1, 0)}, 2},
		{"three", []oge.Vector2{oge.V2(0, 0), oge.V2(1, 0), oge.V2(1, 1)}, 4},
		{"five", []oge.Vector2{
			oge.V2(0, 0), oge.V2(1, 0), oge.V2(1, 1), oge.V2(2, 1), oge.V2(2, 3),
		}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DoubleJoint(tt.points)
			if len(got) != tt.want {
				t.Errorf("len(DoubleJoint()) = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestDoubleJoint_Placement(t *testing.T) {
	got := DoubleJoint([]oge.Vector2{oge.V2(0, 0), oge.V2(1, 0), oge.V2(1, 1)})
	want := []oge.Vector2{oge.V2(0, 0), oge.V2(1-JointOffset, 0), oge.V2(1, JointOffset), oge.V2(1, 1)}
	for i := range want {
		if !got[i].Approx(want[i], 1e-6) {
			t.Errorf("DoubleJoint()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLine_DoubleJointed(t *testing.T) {
	points := []oge.Vector2{oge.V2(0, 0), oge.V2(0, 10), oge.V2(10, 10)}
	m := Line(2, points, DoubleJointed)

	// Four mapped points, none collinear: four joints.
	if len(m.Vertices) != 8 {
		t.Fatalf("len(Vertices) = %d, want 8", len(m.Vertices))
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLine_Panics(t *testing.T) {
	tests := []struct {
		name   string
		points []oge.Vector2
		style  CurveStyle
	}{
		{"one point", []oge.Vector2{oge.V2(0, 0)}, PreserveAngles},
		{"no points", nil, DoubleJointed},
		{"bezier", []oge.Vector2{oge.V2(0, 0), oge.V2(1, 1)}, Bezier},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Line(%v, %v) did not panic", tt.points, tt.style)
				}
			}()
			Line(1, tt.points, tt.style)
		})
	}
}

func TestCurveStyle_String(t *testing.T) {
	if got := DoubleJointed.String(); got != "DoubleJointed" {
		t.Errorf("String() = %q", got)
	}
	if got := CurveStyle(9).String(); got != "CurveStyle(9)" {
		t.Errorf("String() = %q", got)
	}
}
