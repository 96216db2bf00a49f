package shading

import (
	"math"

	"github.com/taigrr/planetarium/pkg/math3d"
)

// Ring shades planetary rings from the polar coordinates of the world
// position: the radius buckets into discrete rings, each spinning at
// its own angular speed, with noise-thresholded gaps and occasional
// ice sparkles.
type Ring struct{}

// Ring band geometry. The pipeline draws ring segments between these
// radii; the shader buckets by the same constants.
const (
	RingInnerRadius = 1.5
	RingWidth       = 0.3
	RingCount       = 8
)

func (Ring) Vertex(position, normal math3d.Vec3, _ math3d.Vec2, _ *Uniforms) (math3d.Vec3, math3d.Vec3) {
	return position, normal
}

func (Ring) Fragment(world, normal math3d.Vec3, _ math3d.Vec2, u *Uniforms) Color {
	radius := math.Hypot(world.X, world.Z)
	angle := math.Atan2(world.Z, world.X)

	band := math.Floor((radius - RingInnerRadius) / RingWidth)
	if band < 0 || band >= RingCount {
		return NewColor(0, 0, 0, 0)
	}

	// Inner rings orbit faster than outer ones.
	spin := angle + u.Time*(0.3/(band+1)+0.05)

	// Noise threshold opens Cassini-style gaps.
	if FBM(band*3.1, spin*2, 2) < 0.25 {
		return NewColor(0, 0, 0, 0)
	}

	// Per-ring brightness between dusty gray and pale gold.
	tone := Hash2(band*13.37, 7.77)
	base := Mix(RGB(160, 150, 130), RGB(220, 200, 150), tone)

	// Ice sparkles glint along the ring.
	if Hash2(math.Floor(spin*180), band) > 0.995 {
		base = RGB(255, 255, 255)
	}

	intensity := lambert(normal, u.LightDirection, 0.5, 0.5)

	c := base.Scale(intensity)
	c.A = 1
	return c
}
