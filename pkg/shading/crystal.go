package shading

import (
	"math"

	"github.com/taigrr/planetarium/pkg/math3d"
)

// Crystal shades a translucent gem world: cellular facets pick the
// palette, a Phong specular lobe and a fresnel rim fake refraction,
// and energy veins pulse along the facet boundaries.
type Crystal struct{}

// Vertex grows crystalline spikes that breathe with time.
func (Crystal) Vertex(position, normal math3d.Vec3, _ math3d.Vec2, u *Uniforms) (math3d.Vec3, math3d.Vec3) {
	facets := FBM(position.X*4, position.Y*4, 3)
	displacement := math.Abs(facets*0.1 + math.Sin(u.Time)*0.02)
	return position.Add(normal.Scale(displacement)), normal
}

func (Crystal) Fragment(world, normal math3d.Vec3, uv math3d.Vec2, u *Uniforms) Color {
	blue := RGB(173, 216, 230)
	purple := RGB(147, 112, 219)
	white := RGB(240, 248, 255)
	cyan := RGB(0, 255, 255)

	facet := Cellular(uv.X*10, uv.Y*10)
	pattern := FBM(uv.X*12, uv.Y*12, 4)

	var base Color
	switch {
	case pattern > 0.7:
		base = white
	case pattern > 0.4:
		base = cyan
	case pattern > 0.2:
		base = blue
	default:
		base = purple
	}

	// Internal glow pulsing with depth and time.
	glow := math.Abs(math.Sin(world.Len()*3 + u.Time))
	pulse := math.Sin(u.Time*2)*0.5 + 0.5
	base = Mix(base, RGB(255, 255, 255), glow*0.3*pulse)

	// Energy veins run along facet boundaries.
	vein := Smoothstep(0.08, 0, facet)
	base = Mix(base, RGB(64, 224, 208), vein*(0.4+0.6*pulse))

	view := u.CameraPosition.Sub(world).Normalize()
	reflectDir := normal.Scale(2 * normal.Dot(u.LightDirection)).Sub(u.LightDirection)
	specular := math.Pow(math.Max(0, view.Dot(reflectDir)), 32)
	fresnel := math.Pow(1-math.Max(0, view.Dot(normal)), 3)

	diffuse := math.Max(0, normal.Dot(u.LightDirection))
	intensity := math.Min(0.4+diffuse*0.6+specular*0.8, 1.5)

	c := base.Scale(intensity)
	c = c.Add(NewColor(fresnel*0.25, fresnel*0.3, fresnel*0.35, 0))
	c.A = 0.9
	return c
}
