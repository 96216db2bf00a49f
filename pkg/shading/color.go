package shading

import "image/color"

// Color is a floating-point RGBA color. Channels nominally live in [0,1]
// but may exceed 1 mid-computation from additive glow terms; conversion
// to 8-bit output clamps.
type Color struct {
	R, G, B, A float64
}

// NewColor creates a color from float channels.
func NewColor(r, g, b, a float64) Color {
	return Color{r, g, b, a}
}

// RGB creates an opaque color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: 1,
	}
}

// Scale multiplies the RGB channels by s, leaving alpha untouched.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A}
}

// Add sums the RGB channels of c and o, keeping c's alpha.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B, c.A}
}

// Mix linearly interpolates between a and b by t across all channels.
func Mix(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// RGBA converts to an 8-bit color, clamping each channel to [0,255].
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: channelByte(c.R),
		G: channelByte(c.G),
		B: channelByte(c.B),
		A: channelByte(c.A),
	}
}

func channelByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
