package oge

import (
	"math"
	"testing"
)

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{3 * math.Pi, math.Pi},
		{4*math.Pi + 0.5, 0.5},
	}
	for _, tt := range tests {
		got := WrapAngle(tt.in)
		if abs32(got-tt.want) > 1e-4 {
			t.Errorf("WrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAngleBetween(t *testing.T) {
	tests := []struct {
		name     string
		from, to Vector2
		want     float32
	}{
		{"quarter turn", Up, Right, math.Pi / 2},
		{"back", Right, Up, -math.Pi / 2},
		{"across the seam", V2(-0.01, -1), V2(0.01, -1), -0.02},
		{"same", Right, Right, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngleBetween(tt.from, tt.to)
			if abs32(got-tt.want) > 1e-3 {
				t.Errorf("AngleBetween(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
