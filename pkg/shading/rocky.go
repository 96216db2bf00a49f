package shading

import (
	"math"

	"github.com/taigrr/planetarium/pkg/math3d"
)

// Rocky shades a barren rock world: ridged noise raises mountain
// chains, cellular noise punches craters, and a sparse hash field
// scatters mineral glints across the surface.
type Rocky struct{}

// Vertex raises the terrain along the normal. Ridgelines push outward,
// crater centers sink slightly below the mean radius.
func (Rocky) Vertex(position, normal math3d.Vec3, _ math3d.Vec2, _ *Uniforms) (math3d.Vec3, math3d.Vec3) {
	ridge := RidgedFBM(position.X*3, position.Z*3, 4)
	crater := Cellular(position.X*2.5, position.Z*2.5)
	displacement := ridge*0.05 - Smoothstep(0.4, 0, crater)*0.02
	return position.Add(normal.Scale(displacement)), normal
}

func (Rocky) Fragment(_, normal math3d.Vec3, uv math3d.Vec2, u *Uniforms) Color {
	rock := RGB(139, 69, 19)
	dirt := RGB(160, 82, 45)
	mountain := RGB(105, 105, 105)

	surface := FBM(uv.X*8, uv.Y*8, 4)
	height := FBM(uv.X*2, uv.Y*2, 3)

	var base Color
	switch {
	case surface > 0.6:
		base = mountain
	case surface > 0.3:
		base = dirt
	default:
		base = rock
	}

	// Crater floors read darker than the surrounding plain.
	crater := Cellular(uv.X*12, uv.Y*12)
	base = base.Scale(MixF(0.55, 1, Smoothstep(0.05, 0.25, crater)))

	// Sparse mineral glints.
	if Hash2(math.Floor(uv.X*64), math.Floor(uv.Y*64)) > 0.985 {
		base = Mix(base, RGB(212, 175, 55), 0.6)
	}

	intensity := lambert(normal, u.LightDirection, 0.2, 0.8)
	heightFactor := Clamp(height*0.3+0.7, 0.4, 1)

	c := base.Scale(intensity * heightFactor)
	c.A = 1
	return c
}
