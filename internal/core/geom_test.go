package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 4, 4),
			b:        NewRect(2, 2, 4, 4),
			expected: true,
		},
		{
			name:     "column band crossing a row band",
			a:        NewRect(3, 0, 2, 24),
			b:        NewRect(0, 10, 10, 2),
			expected: true,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 2, 2),
			b:        NewRect(2, 0, 2, 2),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 2, 2),
			b:        NewRect(0, 2, 2, 2),
			expected: false,
		},
		{
			name:     "single cell overlap",
			a:        NewRect(0, 0, 3, 3),
			b:        NewRect(2, 2, 3, 3),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() not symmetric: %v", got)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 4, 2, 2) // the 2x2 square with bottom-right (5, 3)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{2, 4, true},
		{3, 5, true},
		{4, 5, false},
		{3, 6, false},
		{1, 4, false},
		{2, 3, false},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	if r.Right() != 4 || r.Bottom() != 6 {
		t.Errorf("Right/Bottom = %d/%d, expected 4/6", r.Right(), r.Bottom())
	}
	if r.Empty() {
		t.Error("non-empty rect reported empty")
	}
	if !NewRect(0, 0, 0, 3).Empty() {
		t.Error("zero-width rect should be empty")
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
}
