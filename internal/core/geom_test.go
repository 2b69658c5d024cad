package core

import "testing"

var half30 = V(30, 30)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		halfA    Vec2
		halfB    Vec2
		expected bool
	}{
		{"identical centers", V(0, 0), V(0, 0), half30, half30, true},
		{"gap of one unit", V(0, 0), V(61, 0), half30, half30, false},
		{"overlap by one unit", V(0, 0), V(59, 0), half30, half30, true},
		{"touching edges (no overlap)", V(0, 0), V(60, 0), half30, half30, false},
		{"touching vertically", V(0, 0), V(0, 60), half30, half30, false},
		{"x overlaps but y apart", V(0, 0), V(10, 100), half30, half30, false},
		{"diagonal overlap", V(0, 0), V(45, -45), half30, half30, true},
		{"negative coordinates", V(-500, -150), V(-470, -140), half30, half30, true},
		{"different extents", V(0, 0), V(35, 0), V(30, 30), V(10, 10), true},
		{"zero size at same point", V(5, 5), V(5, 5), V(0, 0), V(0, 0), false},
		{"zero size inside box", V(0, 0), V(10, 10), half30, V(0, 0), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Overlaps(tc.a, tc.halfA, tc.b, tc.halfB)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := Overlaps(tc.b, tc.halfB, tc.a, tc.halfA)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestOverlapsTranslationInvariant(t *testing.T) {
	pairs := []struct{ a, b Vec2 }{
		{V(0, 0), V(59, 0)},
		{V(0, 0), V(61, 0)},
		{V(10, 20), V(40, 70)},
		{V(-300, 100), V(-250, 60)},
	}
	shifts := []Vec2{V(0, 0), V(1000, 0), V(-1000, -1000), V(-600, 200), V(0.5, -0.25)}

	for _, p := range pairs {
		base := Overlaps(p.a, half30, p.b, half30)
		for _, s := range shifts {
			got := Overlaps(p.a.Add(s), half30, p.b.Add(s), half30)
			if got != base {
				t.Errorf("Overlaps(%v, %v) shifted by %v = %v, expected %v", p.a, p.b, s, got, base)
			}
		}
	}
}

func TestVecOps(t *testing.T) {
	v := V(1, -2).Add(V(3, 4))
	if v != V(4, 2) {
		t.Errorf("Add() = %v, expected (4, 2)", v)
	}
	if s := V(1, -1).Scale(4); s != V(4, -4) {
		t.Errorf("Scale() = %v, expected (4, -4)", s)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestToView(t *testing.T) {
	field := V(1920, 1080)

	tests := []struct {
		name  string
		world Vec2
		x, y  float64
	}{
		{"center", V(0, 0), 480, 270},
		{"top left", V(-960, 540), 0, 0},
		{"bottom right", V(960, -540), 960, 540},
		{"y points up", V(0, 270), 480, 135},
		{"outside the field", V(-1920, 0), -480, 270},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := ToView(tc.world, field, 960, 540)
			if x != tc.x || y != tc.y {
				t.Errorf("ToView(%v) = (%v, %v), expected (%v, %v)", tc.world, x, y, tc.x, tc.y)
			}
		})
	}
}
