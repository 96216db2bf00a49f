// Package shading defines the programmable shader contract and the
// procedural planet shaders that give each body its surface.
package shading

import (
	"math"

	"github.com/taigrr/planetarium/pkg/math3d"
)

// Uniforms carries the per-frame values every shader reads. The render
// loop fills one of these once per frame; shaders treat it as read-only.
type Uniforms struct {
	// Time is seconds since the program started. Drives band drift,
	// pulsing glow, storm motion and orbital animation.
	Time float64

	// LightDirection points from the surface toward the light, unit
	// length.
	LightDirection math3d.Vec3

	// CameraPosition is the eye point in world space, used for specular
	// and fresnel terms.
	CameraPosition math3d.Vec3
}

// Shader turns geometry into color. Both stages must be pure functions
// of their arguments: no internal state, no side effects. That keeps
// every frame reproducible and shaders trivially swappable mid-run.
type Shader interface {
	// Vertex may displace the model-space position and adjust the
	// normal before the camera transform is applied.
	Vertex(position, normal math3d.Vec3, uv math3d.Vec2, u *Uniforms) (math3d.Vec3, math3d.Vec3)

	// Fragment computes the color of a surface point from its
	// interpolated world position, normal and UV.
	Fragment(world, normal math3d.Vec3, uv math3d.Vec2, u *Uniforms) Color
}

// lambert is the shared diffuse term: ambient floor plus N·L scaled by
// the diffuse weight, capped at 1.
func lambert(normal, light math3d.Vec3, ambient, diffuse float64) float64 {
	d := math.Max(0, normal.Dot(light))
	return math.Min(ambient+d*diffuse, 1)
}
