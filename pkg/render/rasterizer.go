package render

import (
	"math"

	"github.com/taigrr/planetarium/pkg/math3d"
	"github.com/taigrr/planetarium/pkg/shading"
)

// TransformedVertex is a vertex after the vertex shader and the full
// view/projection/viewport chain, ready for rasterization.
type TransformedVertex struct {
	ScreenPosition math3d.Vec3 // x,y in pixels, z is depth
	WorldPosition  math3d.Vec3
	Normal         math3d.Vec3
	Color          shading.Color
	UV             math3d.Vec2
}

// Fragment is a candidate pixel sample: interpolated attributes plus
// integer screen coordinates, not yet depth-tested.
type Fragment struct {
	X, Y          int
	Color         shading.Color
	WorldPosition math3d.Vec3
	Normal        math3d.Vec3
	Depth         float64
}

// degenerateArea is the signed-area threshold below which a triangle
// produces no coverage.
const degenerateArea = 1e-10

// Barycentric returns the weights (w, v, u) of point (px, py) with
// respect to the screen positions of a, b, c. The weights sum to 1 for
// a nondegenerate triangle; the point lies inside iff all three are
// >= 0. A near-zero-area triangle returns the sentinel (-1, -1, -1).
func Barycentric(px, py float64, a, b, c *TransformedVertex) (float64, float64, float64) {
	ax, ay := a.ScreenPosition.X, a.ScreenPosition.Y
	bx, by := b.ScreenPosition.X, b.ScreenPosition.Y
	cx, cy := c.ScreenPosition.X, c.ScreenPosition.Y

	area := (by-cy)*(ax-cx) + (cx-bx)*(ay-cy)
	if math.Abs(area) < degenerateArea {
		return -1, -1, -1
	}

	w := ((by-cy)*(px-cx) + (cx-bx)*(py-cy)) / area
	v := ((cy-ay)*(px-cx) + (ax-cx)*(py-cy)) / area
	u := 1 - w - v
	return w, v, u
}

// RasterizeTriangle walks the integer bounding box of the triangle and
// emits one Fragment per covered pixel center, with depth, color, world
// position and normal interpolated barycentrically. The interpolated
// normal is renormalized. Shared edges are covered by both triangles;
// the depth test resolves them.
func RasterizeTriangle(v1, v2, v3 *TransformedVertex) []Fragment {
	minX := int(math.Floor(math.Min(v1.ScreenPosition.X, math.Min(v2.ScreenPosition.X, v3.ScreenPosition.X))))
	maxX := int(math.Ceil(math.Max(v1.ScreenPosition.X, math.Max(v2.ScreenPosition.X, v3.ScreenPosition.X))))
	minY := int(math.Floor(math.Min(v1.ScreenPosition.Y, math.Min(v2.ScreenPosition.Y, v3.ScreenPosition.Y))))
	maxY := int(math.Ceil(math.Max(v1.ScreenPosition.Y, math.Max(v2.ScreenPosition.Y, v3.ScreenPosition.Y))))

	var fragments []Fragment

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			py := float64(y) + 0.5

			w, v, u := Barycentric(px, py, v1, v2, v3)
			if w < 0 || v < 0 || u < 0 {
				continue
			}

			depth := w*v1.ScreenPosition.Z + v*v2.ScreenPosition.Z + u*v3.ScreenPosition.Z

			col := shading.Color{
				R: w*v1.Color.R + v*v2.Color.R + u*v3.Color.R,
				G: w*v1.Color.G + v*v2.Color.G + u*v3.Color.G,
				B: w*v1.Color.B + v*v2.Color.B + u*v3.Color.B,
				A: w*v1.Color.A + v*v2.Color.A + u*v3.Color.A,
			}

			world := v1.WorldPosition.Scale(w).
				Add(v2.WorldPosition.Scale(v)).
				Add(v3.WorldPosition.Scale(u))

			normal := v1.Normal.Scale(w).
				Add(v2.Normal.Scale(v)).
				Add(v3.Normal.Scale(u)).
				Normalize()

			fragments = append(fragments, Fragment{
				X:             x,
				Y:             y,
				Color:         col,
				WorldPosition: world,
				Normal:        normal,
				Depth:         depth,
			})
		}
	}

	return fragments
}
