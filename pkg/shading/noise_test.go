package shading

import (
	"math"
	"testing"
)

func TestHash2Deterministic(t *testing.T) {
	coords := [][2]float64{{0, 0}, {1.5, -2.25}, {100, 100}, {-3.7, 42}}
	for _, c := range coords {
		a := Hash2(c[0], c[1])
		b := Hash2(c[0], c[1])
		if a != b {
			t.Fatalf("Hash2(%v,%v) not deterministic: %v vs %v", c[0], c[1], a, b)
		}
		if a < 0 || a >= 1 {
			t.Fatalf("Hash2(%v,%v) = %v, want [0,1)", c[0], c[1], a)
		}
	}
}

func TestHash3Range(t *testing.T) {
	for _, c := range [][3]float64{{0, 0, 0}, {1, 2, 3}, {-9.5, 0.1, 7}} {
		n := Hash3(c[0], c[1], c[2])
		if n < 0 || n >= 1 {
			t.Fatalf("Hash3(%v) = %v, want [0,1)", c, n)
		}
	}
}

func TestFBMRange(t *testing.T) {
	for x := -2.0; x <= 2; x += 0.37 {
		for y := -2.0; y <= 2; y += 0.41 {
			n := FBM(x, y, 4)
			if n < 0 || n >= 1 {
				t.Fatalf("FBM(%v,%v) = %v, want [0,1)", x, y, n)
			}
		}
	}
}

func TestRidge(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.25, 0.5},
		{0.5, 1},
		{0.75, 0.5},
		{1, 0},
	}
	for _, tc := range tests {
		if got := Ridge(tc.in); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Ridge(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRidgedFBMRange(t *testing.T) {
	for x := -1.0; x <= 1; x += 0.29 {
		n := RidgedFBM(x, x*1.7, 4)
		if n < 0 || n >= 1 {
			t.Fatalf("RidgedFBM(%v) = %v, want [0,1)", x, n)
		}
	}
}

func TestCellularProperties(t *testing.T) {
	for x := -2.0; x <= 2; x += 0.53 {
		for y := -2.0; y <= 2; y += 0.47 {
			d := Cellular(x, y)
			if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
				t.Fatalf("Cellular(%v,%v) = %v", x, y, d)
			}
			// Nearest feature point in a 3x3 neighborhood can never be
			// further than the diagonal of that block.
			if d > 3 {
				t.Fatalf("Cellular(%v,%v) = %v, implausibly far", x, y, d)
			}
			if d != Cellular(x, y) {
				t.Fatalf("Cellular(%v,%v) not deterministic", x, y)
			}
		}
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		edge0, edge1, x, want float64
	}{
		{0, 1, 0, 0},
		{0, 1, 1, 1},
		{0, 1, 0.5, 0.5},
		{0, 1, -5, 0},
		{0, 1, 5, 1},
		{2, 4, 3, 0.5},
	}
	for _, tc := range tests {
		if got := Smoothstep(tc.edge0, tc.edge1, tc.x); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Smoothstep(%v,%v,%v) = %v, want %v", tc.edge0, tc.edge1, tc.x, got, tc.want)
		}
	}
}

func TestMixFAndClamp(t *testing.T) {
	if got := MixF(2, 4, 0.5); got != 3 {
		t.Errorf("MixF = %v, want 3", got)
	}
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Clamp high = %v", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Errorf("Clamp low = %v", got)
	}
	if got := Clamp(0.3, 0, 1); got != 0.3 {
		t.Errorf("Clamp mid = %v", got)
	}
}
