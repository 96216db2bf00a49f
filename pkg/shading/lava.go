package shading

import (
	"math"

	"github.com/taigrr/planetarium/pkg/math3d"
)

// Lava shades a molten world: a drifting temperature field feeds a
// five-stop color ramp from cooled basalt to white-hot, cellular
// cracks glow from below, and the whole surface flickers.
type Lava struct{}

// rampStops is the temperature ramp, coldest first.
var rampStops = [5]Color{
	{R: 26.0 / 255, G: 18.0 / 255, B: 18.0 / 255, A: 1},
	{R: 120.0 / 255, G: 30.0 / 255, B: 10.0 / 255, A: 1},
	{R: 200.0 / 255, G: 60.0 / 255, B: 10.0 / 255, A: 1},
	{R: 255.0 / 255, G: 140.0 / 255, B: 20.0 / 255, A: 1},
	{R: 255.0 / 255, G: 230.0 / 255, B: 120.0 / 255, A: 1},
}

// Vertex swells the crust over hot spots.
func (Lava) Vertex(position, normal math3d.Vec3, _ math3d.Vec2, u *Uniforms) (math3d.Vec3, math3d.Vec3) {
	heat := RidgedFBM(position.X*2, position.Z*2, 3)
	displacement := heat*0.06 + math.Sin(u.Time*1.5+position.Y*4)*0.01
	return position.Add(normal.Scale(displacement)), normal
}

func (Lava) Fragment(_, normal math3d.Vec3, uv math3d.Vec2, u *Uniforms) Color {
	temperature := FBM(uv.X*5+u.Time*0.08, uv.Y*5, 4)
	base := rampColor(temperature)

	// Glowing crack network between crust plates.
	crack := Cellular(uv.X*9, uv.Y*9+u.Time*0.03)
	glow := Smoothstep(0.12, 0, crack)
	base = base.Add(RGB(255, 90, 0).Scale(glow * 0.8))

	flicker := 0.9 + 0.1*math.Sin(u.Time*8+temperature*20)

	// Mostly emissive; diffuse only modulates the cooled crust.
	intensity := 0.55 + 0.45*math.Max(0, normal.Dot(u.LightDirection))

	c := base.Scale(intensity * flicker)
	c.A = 1
	return c
}

// rampColor maps a temperature in [0,1] through the five-stop ramp with
// smooth blending between adjacent stops.
func rampColor(t float64) Color {
	t = Clamp(t, 0, 1)
	scaled := t * float64(len(rampStops)-1)
	i := int(scaled)
	if i >= len(rampStops)-1 {
		return rampStops[len(rampStops)-1]
	}
	frac := scaled - float64(i)
	return Mix(rampStops[i], rampStops[i+1], Smoothstep(0, 1, frac))
}
