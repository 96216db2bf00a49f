package shading

import "math"

// Procedural noise used by the planet shaders. All of these are pure
// functions of their inputs; a frame rendered twice with the same time
// and camera produces identical pixels.

// Hash2 returns a deterministic pseudo-random value in [0,1) from a
// 2D coordinate. Classic shader-toy hash: the fractional part of a
// large multiple of a sine.
func Hash2(x, y float64) float64 {
	n := math.Abs(math.Sin(x*12.9898+y*78.233)) * 43758.5453
	return n - math.Floor(n)
}

// Hash3 is the 3D counterpart of Hash2.
func Hash3(x, y, z float64) float64 {
	n := math.Abs(math.Sin(x*12.9898+y*78.233+z*37.719)) * 43758.5453
	return n - math.Floor(n)
}

// FBM sums octaves of Hash2, halving the amplitude and doubling the
// frequency each octave. The result stays within [0,1).
func FBM(x, y float64, octaves int) float64 {
	value := 0.0
	amplitude := 0.5
	for range octaves {
		value += amplitude * Hash2(x, y)
		x *= 2
		y *= 2
		amplitude *= 0.5
	}
	return value
}

// Ridge folds a noise value around its midpoint, turning smooth humps
// into sharp crests. Input and output are both in [0,1].
func Ridge(n float64) float64 {
	return 1 - math.Abs(2*n-1)
}

// RidgedFBM is FBM with each octave ridged, producing mountain-like
// crease patterns.
func RidgedFBM(x, y float64, octaves int) float64 {
	value := 0.0
	amplitude := 0.5
	for range octaves {
		value += amplitude * Ridge(Hash2(x, y))
		x *= 2
		y *= 2
		amplitude *= 0.5
	}
	return value
}

// Cellular returns the distance from (x, y) to the nearest jittered
// feature point on the integer lattice, scanning the 3x3 cell
// neighborhood. Distances near 0 mark cell centers, useful for craters
// and crack networks.
func Cellular(x, y float64) float64 {
	cx := math.Floor(x)
	cy := math.Floor(y)

	minDistSq := math.MaxFloat64
	for j := -1.0; j <= 1; j++ {
		for i := -1.0; i <= 1; i++ {
			nx := cx + i
			ny := cy + j
			fx := nx + Hash2(nx, ny)
			fy := ny + Hash2(nx+17, ny+9)
			dx := x - fx
			dy := y - fy
			if d := dx*dx + dy*dy; d < minDistSq {
				minDistSq = d
			}
		}
	}
	return math.Sqrt(minDistSq)
}

// Smoothstep is the Hermite step between edge0 and edge1.
func Smoothstep(edge0, edge1, x float64) float64 {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// MixF linearly interpolates between a and b by t.
func MixF(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
