package core

import (
	"math"
	"testing"
)

func TestBoxContains(t *testing.T) {
	b := Box{X: 10, Y: 20, W: 30, H: 10}

	if !b.Contains(Point{X: 10, Y: 20}) {
		t.Error("top-left corner should be inside")
	}
	if !b.Contains(Point{X: 39.9, Y: 29.9}) {
		t.Error("point just inside bottom-right should be inside")
	}
	if b.Contains(Point{X: 40, Y: 25}) {
		t.Error("right edge should be exclusive")
	}
	if b.Contains(Point{X: 5, Y: 25}) {
		t.Error("point left of box should be outside")
	}
}

func TestHexagonVertices(t *testing.T) {
	hex := Hexagon(Point{X: 100, Y: 50}, 10)

	if len(hex) != 6 {
		t.Fatalf("Hexagon should have 6 vertices, got %d", len(hex))
	}

	// Flat-topped: first vertex points right
	if math.Abs(hex[0].X-110) > 1e-9 || math.Abs(hex[0].Y-50) > 1e-9 {
		t.Errorf("first vertex = %v, expected (110, 50)", hex[0])
	}

	for i, p := range hex {
		d := math.Hypot(p.X-100, p.Y-50)
		if math.Abs(d-10) > 1e-9 {
			t.Errorf("vertex %d is %f from centre, expected 10", i, d)
		}
	}
}

func TestPolygonContains(t *testing.T) {
	hex := Hexagon(Point{X: 0, Y: 0}, 10)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"centre", Point{0, 0}, true},
		{"near right vertex", Point{9.5, 0}, true},
		{"beyond right vertex", Point{10.5, 0}, false},
		{"just under flat top", Point{0, -8.5}, true},
		{"above flat top", Point{0, -8.8}, false},
		{"outside corner region", Point{9, 8}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := hex.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestPolygonOverlaps(t *testing.T) {
	a := Hexagon(Point{X: 0, Y: 0}, 10)

	tests := []struct {
		name     string
		centre   Point
		expected bool
	}{
		{"identical", Point{0, 0}, true},
		{"stacked vertically, overlapping", Point{0, 15}, true},
		{"stacked vertically, apart", Point{0, 18}, false},
		{"diagonal neighbour, overlapping", Point{14, 8}, true},
		{"two columns away", Point{30, 0}, false},
		{"far away", Point{100, 100}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Hexagon(tc.centre, 10)
			if got := a.Overlaps(b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := b.Overlaps(a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
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
