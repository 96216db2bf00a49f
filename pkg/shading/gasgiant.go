package shading

import (
	"math"

	"github.com/taigrr/planetarium/pkg/math3d"
)

// GasGiant shades a banded Jovian: horizontal sine bands distorted by
// drifting turbulence, a slowly circling storm oval, and intermittent
// lightning flashes deep in the cloud deck.
type GasGiant struct{}

// Vertex leaves the geometry untouched. All the motion lives in the
// fragment stage.
func (GasGiant) Vertex(position, normal math3d.Vec3, _ math3d.Vec2, _ *Uniforms) (math3d.Vec3, math3d.Vec3) {
	return position, normal
}

func (GasGiant) Fragment(_, normal math3d.Vec3, uv math3d.Vec2, u *Uniforms) Color {
	band1 := RGB(255, 140, 0)
	band2 := RGB(255, 165, 0)
	band3 := RGB(139, 69, 19)
	band4 := RGB(255, 215, 0)

	bandPosition := math.Sin(uv.Y*8 + u.Time*0.1)
	turbulence := FBM(uv.X*6+u.Time*0.05, uv.Y*4, 3) * 0.3
	distorted := bandPosition + turbulence

	var base Color
	switch {
	case distorted > 0.5:
		base = band1
	case distorted > 0:
		base = band2
	case distorted > -0.5:
		base = band3
	default:
		base = band4
	}

	// The great storm drifts slowly in longitude at a fixed latitude.
	stormU := 0.5 + 0.18*math.Cos(u.Time*0.15)
	du := uv.X - stormU
	dv := uv.Y - 0.62
	stormDist := math.Sqrt(du*du*4 + dv*dv*9)
	storm := 1 - Smoothstep(0.05, 0.16, stormDist)
	base = Mix(base, RGB(178, 34, 34), storm*0.85)

	// Lightning: a cloud cell flashes for one time slice when its hash
	// crosses the threshold.
	cell := math.Floor(uv.X*10) + math.Floor(uv.Y*6)*10
	if Hash2(cell, math.Floor(u.Time*4)) > 0.98 {
		base = base.Add(NewColor(0.4, 0.4, 0.5, 0))
	}

	swirl := math.Sin(uv.X*4+u.Time*0.02) * math.Cos(uv.Y*4) * 0.2
	swirlFactor := (swirl + 1) * 0.5
	base = Mix(base, RGB(255, 255, 200), swirlFactor*0.2)

	intensity := lambert(normal, u.LightDirection, 0.3, 0.7)

	c := base.Scale(intensity)
	c.A = 1
	return c
}
