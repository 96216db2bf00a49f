package shading

import (
	"math"

	"github.com/taigrr/planetarium/pkg/math3d"
)

// Moon shades a small companion body. The vertex stage carries the
// orbital motion: local sphere points are offset around the world
// origin as a function of time, so the moon circles the planet without
// any extra transform in the pipeline.
type Moon struct{}

// Orbit parameters shared with the pipeline's point-cloud generator.
const (
	MoonOrbitRadius = 3.0
	MoonOrbitSpeed  = 0.8
	MoonRadius      = 0.3
)

// MoonCenter returns the orbital position of the moon's center at time t.
func MoonCenter(t float64) math3d.Vec3 {
	angle := t * MoonOrbitSpeed
	return math3d.V3(MoonOrbitRadius*math.Cos(angle), 0, MoonOrbitRadius*math.Sin(angle))
}

func (Moon) Vertex(position, normal math3d.Vec3, _ math3d.Vec2, u *Uniforms) (math3d.Vec3, math3d.Vec3) {
	return position.Add(MoonCenter(u.Time)), normal
}

func (Moon) Fragment(_, normal math3d.Vec3, uv math3d.Vec2, u *Uniforms) Color {
	base := RGB(169, 169, 169)

	// Crater darkening.
	crater := Cellular(uv.X*10, uv.Y*10)
	base = base.Scale(MixF(0.5, 1, Smoothstep(0.04, 0.2, crater)))

	// Faint maria patches.
	if FBM(uv.X*3, uv.Y*3, 3) > 0.55 {
		base = base.Scale(0.8)
	}

	intensity := lambert(normal, u.LightDirection, 0.25, 0.75)

	c := base.Scale(intensity)
	c.A = 1
	return c
}
