package geom

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"same point", Point{7, 7}, Point{7, 7}, 0},
		{"horizontal", Point{0, 0}, Point{4, 0}, 4},
		{"vertical", Point{0, 0}, Point{0, 3}, 3},
		{"pythagorean", Point{0, 3}, Point{4, 0}, 5},
		{"negative delta", Point{10, 10}, Point{7, 6}, 5},
		{"diagonal", Point{0, 0}, Point{1, 1}, math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a, b := Point{500, 8000}, Point{10000, 3000}
	if Distance(a, b) != Distance(b, a) {
		t.Errorf("Distance is not symmetric: %v vs %v", Distance(a, b), Distance(b, a))
	}
}

func TestPointString(t *testing.T) {
	if got := (Point{X: 500, Y: 8000}).String(); got != "500,8000" {
		t.Errorf("String() = %q, want %q", got, "500,8000")
	}
}
