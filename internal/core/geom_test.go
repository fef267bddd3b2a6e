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
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectOverlapsX(t *testing.T) {
	bird := RectAround(100, 300, 30, 30) // spans x 85..115

	tests := []struct {
		name     string
		pipeX    float64
		expected bool
	}{
		{"pipe ahead, not touching", 115, false},
		{"pipe just reaching bird", 114.9, true},
		{"pipe under bird", 60, true},
		{"pipe trailing edge at bird", 5, false},
		{"pipe trailing edge just inside", 5.1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pipe := NewRect(tc.pipeX, 0, 80, 600)
			if got := bird.OverlapsX(pipe); got != tc.expected {
				t.Errorf("OverlapsX() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	a := RectAround(100, 300, 30, 30)
	if a.X != 85 || a.Y != 285 || a.Right() != 115 || a.Bottom() != 315 {
		t.Errorf("RectAround() = %+v, expected 85,285 30x30", a)
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

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFlap) {
		t.Error("zero InputFrame should have no actions")
	}

	f.Set(ActionFlap)
	if !f.Has(ActionFlap) || f.Has(ActionStart) {
		t.Errorf("after Set(Flap): Flap=%v Start=%v", f.Has(ActionFlap), f.Has(ActionStart))
	}

	f.Clear()
	if f.Has(ActionFlap) {
		t.Error("Clear should remove all actions")
	}

	if ActionStart.String() != "Start" || Action(99).String() != "Unknown" {
		t.Errorf("unexpected action names: %q %q", ActionStart.String(), Action(99).String())
	}
}
