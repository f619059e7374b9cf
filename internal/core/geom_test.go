package core

import "testing"

func TestRectContainsRect(t *testing.T) {
	outer := NewRect(0, 0, 20, 10)

	tests := []struct {
		name     string
		inner    Rect
		expected bool
	}{
		{"fully inside", NewRect(2, 2, 5, 5), true},
		{"same rect", NewRect(0, 0, 20, 10), true},
		{"touching right edge", NewRect(15, 0, 5, 10), true},
		{"past right edge", NewRect(16, 0, 5, 10), false},
		{"past bottom edge", NewRect(0, 8, 4, 3), false},
		{"negative offset", NewRect(-1, 0, 4, 2), false},
		{"empty rect", NewRect(3, 3, 0, 2), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := outer.ContainsRect(tc.inner)
			if result != tc.expected {
				t.Errorf("ContainsRect(%+v) = %v, expected %v", tc.inner, result, tc.expected)
			}
		})
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
	if r.Empty() {
		t.Error("20x15 rect should not be empty")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return 5")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return 10")
	}
}

func TestFloor(t *testing.T) {
	tests := []struct {
		in       float64
		expected int
	}{
		{2.9, 2},
		{2.0, 2},
		{-0.5, -1},
		{-2.0, -2},
	}

	for _, tc := range tests {
		if got := Floor(tc.in); got != tc.expected {
			t.Errorf("Floor(%v) = %d, expected %d", tc.in, got, tc.expected)
		}
	}
}

func TestWrapF(t *testing.T) {
	tests := []struct {
		v, period, expected float64
	}{
		{-1, 16, -1},
		{-16, 16, 0},
		{-17, 16, -1},
		{-33.5, 16, -1.5},
		{5, 0, 5}, // zero period leaves the value alone
	}

	for _, tc := range tests {
		if got := WrapF(tc.v, tc.period); got != tc.expected {
			t.Errorf("WrapF(%v, %v) = %v, expected %v", tc.v, tc.period, got, tc.expected)
		}
	}
}
