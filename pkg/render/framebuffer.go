// Package render provides the software rendering pipeline: framebuffer,
// orbit camera, triangle rasterization and terminal presentation.
package render

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/HugoSmits86/nativewebp"
)

// Framebuffer owns the color and depth planes for one frame. It cycles
// Clear -> writes -> Clear; nothing else retains references to the
// arrays between frames.
//
// For terminal output the height is 2x the terminal rows, rendered with
// half-block characters.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []color.RGBA // Row-major pixel data
	Depth  []float64    // Row-major depth, +Inf = empty
}

// NewFramebuffer creates a framebuffer with all depths at +Inf.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
		Depth:  make([]float64, width*height),
	}
	for i := range fb.Depth {
		fb.Depth[i] = math.Inf(1)
	}
	return fb
}

// Clear fills the color plane with c and resets every depth to +Inf.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
		fb.Depth[i] = math.Inf(1)
	}
}

// SetPixel writes a pixel unconditionally, bypassing the depth test.
// Used for line drawing. Out-of-range coordinates are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// SetPixelDepth writes a pixel iff depth is strictly less than the
// stored depth at (x, y). Ties keep the earlier write. Out-of-range
// coordinates are ignored.
func (fb *Framebuffer) SetPixelDepth(x, y int, c color.RGBA, depth float64) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	i := y*fb.Width + x
	if depth < fb.Depth[i] {
		fb.Pixels[i] = c
		fb.Depth[i] = depth
	}
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// GetDepth returns the depth at (x, y), or +Inf if out of bounds.
func (fb *Framebuffer) GetDepth(x, y int) float64 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return math.Inf(1)
	}
	return fb.Depth[y*fb.Width+x]
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
// No depth test, no anti-aliasing.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}

// SaveWebP saves the framebuffer as a lossless WebP file.
func (fb *Framebuffer) SaveWebP(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return nativewebp.Encode(f, fb.ToImage(), nil)
}
