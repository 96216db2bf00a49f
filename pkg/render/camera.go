package render

import (
	"math"

	"github.com/taigrr/planetarium/pkg/math3d"
)

// InputState is the per-frame input snapshot the camera consumes. The
// shell fills it from whatever input source it has; the camera never
// talks to a device directly.
type InputState struct {
	PointerDX  float64 // horizontal pointer delta, pixels
	PointerDY  float64 // vertical pointer delta, pixels
	WheelDelta float64 // scroll steps, positive = zoom in
	RotateHeld bool
	PanHeld    bool
	DT         float64 // frame time, seconds
}

// Camera is an orbit camera: Eye is derived from spherical coordinates
// around Target and is never set directly.
type Camera struct {
	Eye    math3d.Vec3
	Target math3d.Vec3
	Up     math3d.Vec3

	Yaw      float64
	Pitch    float64
	Distance float64

	RotationSpeed float64
	ZoomSpeed     float64
	PanSpeed      float64
}

// Pitch stays clear of the poles so the view matrix never degenerates.
const pitchLimit = math.Pi/2 - 0.1

const (
	minDistance = 1.0
	maxDistance = 20.0
)

// NewCamera creates an orbit camera 5 units back from the origin.
func NewCamera() *Camera {
	c := &Camera{
		Target:        math3d.Zero3(),
		Up:            math3d.Up(),
		Distance:      5,
		RotationSpeed: 2,
		ZoomSpeed:     1,
		PanSpeed:      0.5,
	}
	c.updatePosition()
	return c
}

// Update applies one frame of input. All parameters are clamped; there
// are no failure modes.
func (c *Camera) Update(in InputState) {
	if in.RotateHeld {
		c.Yaw -= in.PointerDX * c.RotationSpeed * in.DT
		c.Pitch -= in.PointerDY * c.RotationSpeed * in.DT
		c.Pitch = clampf(c.Pitch, -pitchLimit, pitchLimit)
	}

	c.Distance -= in.WheelDelta * c.ZoomSpeed
	c.Distance = clampf(c.Distance, minDistance, maxDistance)

	if in.PanHeld {
		// Pan axes come from yaw alone so panning stays level.
		right := math3d.V3(math.Cos(c.Yaw), 0, math.Sin(c.Yaw))
		forward := math3d.V3(-math.Sin(c.Yaw), 0, math.Cos(c.Yaw))

		c.Target = c.Target.Add(right.Scale(-in.PointerDX * c.PanSpeed * in.DT))
		c.Target = c.Target.Add(forward.Scale(in.PointerDY * c.PanSpeed * in.DT))
	}

	c.updatePosition()
}

// updatePosition recomputes Eye from the spherical orbit parameters.
func (c *Camera) updatePosition() {
	c.Eye = math3d.V3(
		c.Target.X+c.Distance*math.Cos(c.Pitch)*math.Cos(c.Yaw),
		c.Target.Y+c.Distance*math.Sin(c.Pitch),
		c.Target.Z+c.Distance*math.Cos(c.Pitch)*math.Sin(c.Yaw),
	)
}

// ViewMatrix returns the view matrix for the current orbit state.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	return math3d.LookAt(c.Eye, c.Target, c.Up)
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
