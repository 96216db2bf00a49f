package render

import (
	"math"
	"testing"

	"github.com/taigrr/planetarium/pkg/math3d"
	"github.com/taigrr/planetarium/pkg/shading"
)

func testVertex(x, y, z float64, c shading.Color) TransformedVertex {
	return TransformedVertex{
		ScreenPosition: math3d.V3(x, y, z),
		Normal:         math3d.V3(0, 0, 1),
		Color:          c,
	}
}

func TestBarycentricAtVertices(t *testing.T) {
	a := testVertex(0, 0, 0, shading.Color{})
	b := testVertex(10, 0, 0, shading.Color{})
	c := testVertex(0, 10, 0, shading.Color{})

	tests := []struct {
		name    string
		px, py  float64
		w, v, u float64
	}{
		{"vertex a", 0, 0, 1, 0, 0},
		{"vertex b", 10, 0, 0, 1, 0},
		{"vertex c", 0, 10, 0, 0, 1},
		{"centroid", 10.0 / 3, 10.0 / 3, 1.0 / 3, 1.0 / 3, 1.0 / 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, v, u := Barycentric(tc.px, tc.py, &a, &b, &c)
			if math.Abs(w-tc.w) > 0.001 || math.Abs(v-tc.v) > 0.001 || math.Abs(u-tc.u) > 0.001 {
				t.Errorf("barycentric(%v,%v) = (%v,%v,%v), want (%v,%v,%v)",
					tc.px, tc.py, w, v, u, tc.w, tc.v, tc.u)
			}
		})
	}
}

func TestBarycentricOutside(t *testing.T) {
	a := testVertex(0, 0, 0, shading.Color{})
	b := testVertex(10, 0, 0, shading.Color{})
	c := testVertex(0, 10, 0, shading.Color{})

	w, v, u := Barycentric(-5, -5, &a, &b, &c)
	if w >= 0 && v >= 0 && u >= 0 {
		t.Errorf("outside point has all non-negative weights (%v,%v,%v)", w, v, u)
	}
}

func TestBarycentricDegenerate(t *testing.T) {
	// All three vertices at the same point: sentinel weights.
	a := testVertex(5, 5, 0, shading.Color{})
	b := testVertex(5, 5, 0, shading.Color{})
	c := testVertex(5, 5, 0, shading.Color{})

	w, v, u := Barycentric(5, 5, &a, &b, &c)
	if w != -1 || v != -1 || u != -1 {
		t.Errorf("degenerate triangle weights = (%v,%v,%v), want (-1,-1,-1)", w, v, u)
	}
}

func TestRasterizeDegenerateEmitsNothing(t *testing.T) {
	a := testVertex(3, 3, 1, shading.Color{R: 1, A: 1})
	b := testVertex(3, 3, 1, shading.Color{G: 1, A: 1})
	c := testVertex(3, 3, 1, shading.Color{B: 1, A: 1})

	if frags := RasterizeTriangle(&a, &b, &c); len(frags) != 0 {
		t.Errorf("zero-area triangle emitted %d fragments", len(frags))
	}
}

func TestRasterizeCoversTriangle(t *testing.T) {
	a := testVertex(0, 0, 1, shading.Color{R: 1, A: 1})
	b := testVertex(8, 0, 1, shading.Color{G: 1, A: 1})
	c := testVertex(0, 8, 1, shading.Color{B: 1, A: 1})

	frags := RasterizeTriangle(&a, &b, &c)
	if len(frags) == 0 {
		t.Fatal("no fragments emitted")
	}

	for _, f := range frags {
		// Every fragment stays in the bounding box.
		if f.X < 0 || f.X > 8 || f.Y < 0 || f.Y > 8 {
			t.Errorf("fragment outside bounding box: (%d,%d)", f.X, f.Y)
		}
		if math.Abs(f.Depth-1) > 0.001 {
			t.Errorf("flat triangle fragment depth = %v, want 1", f.Depth)
		}
		sum := f.Color.R + f.Color.G + f.Color.B
		if math.Abs(sum-1) > 0.01 {
			t.Errorf("interpolated color channels sum to %v, want 1", sum)
		}
	}
}

func TestRasterizeInterpolatesDepth(t *testing.T) {
	a := testVertex(0, 0, 0, shading.Color{A: 1})
	b := testVertex(10, 0, 10, shading.Color{A: 1})
	c := testVertex(0, 10, 0, shading.Color{A: 1})

	for _, f := range RasterizeTriangle(&a, &b, &c) {
		if f.Depth < 0 || f.Depth > 10 {
			t.Errorf("interpolated depth %v out of vertex range [0,10]", f.Depth)
		}
	}
}

func TestRasterizeRenormalizesNormal(t *testing.T) {
	a := testVertex(0, 0, 0, shading.Color{A: 1})
	b := testVertex(10, 0, 0, shading.Color{A: 1})
	c := testVertex(0, 10, 0, shading.Color{A: 1})
	a.Normal = math3d.V3(1, 0, 0)
	b.Normal = math3d.V3(0, 1, 0)
	c.Normal = math3d.V3(0, 0, 1)

	for _, f := range RasterizeTriangle(&a, &b, &c) {
		if math.Abs(f.Normal.Len()-1) > 0.001 {
			t.Errorf("fragment normal length %v, want 1", f.Normal.Len())
		}
	}
}
