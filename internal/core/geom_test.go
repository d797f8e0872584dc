package core

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestVec2Arithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add() = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub() = %v, expected (2, 6)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale() = %v, expected (6, 8)", got)
	}
	if a.Len() != 5 {
		t.Errorf("Len() = %f, expected 5", a.Len())
	}
	if a.LenSq() != 25 {
		t.Errorf("LenSq() = %f, expected 25", a.LenSq())
	}
}

func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"axis", V(10, 0), V(1, 0)},
		{"pythagorean", V(3, 4), V(0.6, 0.8)},
		{"zero stays zero", V(0, 0), V(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if !approx(got.X, tc.want.X) || !approx(got.Y, tc.want.Y) {
				t.Errorf("Normalize(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestVec2ClampLen(t *testing.T) {
	diag := V(1, 1).ClampLen(1)
	if !approx(diag.Len(), 1) {
		t.Errorf("ClampLen(1) of diagonal has length %f, expected 1", diag.Len())
	}
	short := V(0.2, 0.1)
	if short.ClampLen(1) != short {
		t.Error("ClampLen should not grow short vectors")
	}
}

func TestDist(t *testing.T) {
	if d := Dist(V(0, 0), V(300, 400)); d != 500 {
		t.Errorf("Dist() = %f, expected 500", d)
	}
	if d := DistSq(V(1, 1), V(4, 5)); d != 25 {
		t.Errorf("DistSq() = %f, expected 25", d)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
	if ClampF(-0.5, 0, 1) != 0 || ClampF(1.5, 0, 1) != 1 || ClampF(0.25, 0, 1) != 0.25 {
		t.Error("ClampF did not clamp to [0, 1]")
	}
	if Abs(-7) != 7 || Abs(7) != 7 {
		t.Error("Abs returned wrong value")
	}
}
