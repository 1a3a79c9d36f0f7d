package oge

import (
	"math"
	"testing"
)

func TestMatrix2_Rotation(t *testing.T) {
	tests := []struct {
		name  string
		angle float32
		in    Vector2
		want  Vector2
	}{
		{"quarter up to right", math.Pi / 2, Up, Right},
		{"quarter right to down", math.Pi / 2, Right, V2(0, -1)},
		{"half", math.Pi, Up, V2(0, -1)},
		{"negative quarter", -math.Pi / 2, Up, V2(-1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rotation(tt.angle).Apply(tt.in)
			if !got.Approx(tt.want, eps) {
				t.Errorf("Rotation(%v).Apply(%v) = %v, want %v", tt.angle, tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrix2_Constructors(t *testing.T) {
	p := V2(2, 3)
	tests := []struct {
		name string
		m    Matrix2
		want Vector2
	}{
		{"identity", Identity2(), V2(2, 3)},
		{"stretch", Stretch(2, -1), V2(4, -3)},
		{"scale", Scale(0.5), V2(1, 1.5)},
		{"shear x", ShearX(1), V2(5, 3)},
		{"shear y", ShearY(2), V2(2, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Apply(p); !got.Approx(tt.want, eps) {
				t.Errorf("Apply(%v) = %v, want %v", p, got, tt.want)
			}
		})
	}
}

func TestMatrix2_ComposeOrder(t *testing.T) {
	rot := Rotation(math.Pi / 2)
	st := Stretch(2, 1)
	p := Up

	// Compose applies rhs first: stretch leaves Up alone, rotation sends it right.
	got := rot.Compose(st).Apply(p)
	if !got.Approx(Right, eps) {
		t.Errorf("rot.Compose(st).Apply(Up) = %v, want %v", got, Right)
	}
	// Rotation first, then stretch doubles X.
	got = st.Compose(rot).Apply(p)
	if !got.Approx(V2(2, 0), eps) {
		t.Errorf("st.Compose(rot).Apply(Up) = %v, want (2, 0)", got)
	}
	if rev := rot.ReverseCompose(st); !rev.Approx(st.Compose(rot), eps) {
		t.Errorf("ReverseCompose() = %v, want %v", rev, st.Compose(rot))
	}
}

func TestMatrix2_Determinant(t *testing.T) {
	if got := Stretch(2, 3).Determinant(); got != 6 {
		t.Errorf("Determinant() = %v, want 6", got)
	}
	if got := Rotation(0.7).Determinant(); abs32(got-1) > eps {
		t.Errorf("Rotation determinant = %v, want 1", got)
	}
}
