package render

import (
	"math"

	"github.com/taigrr/planetarium/pkg/math3d"
	"github.com/taigrr/planetarium/pkg/models"
	"github.com/taigrr/planetarium/pkg/shading"
)

// Pipeline runs one frame of software rendering: vertex shading, the
// view/projection/viewport transform chain, rasterization and
// depth-tested framebuffer writes. Single-threaded; each frame is one
// fully sequential pass.
type Pipeline struct {
	fb *Framebuffer

	view     math3d.Mat4
	proj     math3d.Mat4
	viewport math3d.Mat4
}

// NewPipeline creates a pipeline writing into fb.
func NewPipeline(fb *Framebuffer) *Pipeline {
	return &Pipeline{
		fb:       fb,
		view:     math3d.Identity(),
		proj:     math3d.Identity(),
		viewport: math3d.Viewport(0, 0, float64(fb.Width), float64(fb.Height)),
	}
}

// SetView derives the frame's transform chain from the camera. Call
// once per frame before drawing.
func (p *Pipeline) SetView(cam *Camera, fovy, near, far float64) {
	aspect := float64(p.fb.Width) / float64(p.fb.Height)
	p.view = cam.ViewMatrix()
	p.proj = math3d.Perspective(fovy, aspect, near, far)
	p.viewport = math3d.Viewport(0, 0, float64(p.fb.Width), float64(p.fb.Height))
}

// project maps a world-space point to pixel space. No frustum clipping
// is performed; triangles straddling the camera plane can land at wild
// screen coordinates.
func (p *Pipeline) project(world math3d.Vec3) math3d.Vec3 {
	return p.viewport.MulVec3(p.proj.MulVec3(p.view.MulVec3(world)))
}

// DrawMesh renders one mesh with the given shader and Y rotation.
// Triangles referencing out-of-range vertex indices are skipped.
func (p *Pipeline) DrawMesh(mesh *models.Mesh, shader shading.Shader, rotation float64, u *shading.Uniforms) {
	model := math3d.RotateY(rotation)
	vertexCount := uint32(len(mesh.Vertices))

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		i1, i2, i3 := mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]
		if i1 >= vertexCount || i2 >= vertexCount || i3 >= vertexCount {
			continue
		}

		tv1 := p.shadeVertex(&mesh.Vertices[i1], shader, model, u)
		tv2 := p.shadeVertex(&mesh.Vertices[i2], shader, model, u)
		tv3 := p.shadeVertex(&mesh.Vertices[i3], shader, model, u)

		for _, f := range RasterizeTriangle(&tv1, &tv2, &tv3) {
			p.fb.SetPixelDepth(f.X, f.Y, f.Color.RGBA(), f.Depth)
		}
	}
}

// shadeVertex runs the vertex shader, the model rotation and the
// transform chain, then evaluates the fragment shader at the vertex for
// Gouraud-style color interpolation.
func (p *Pipeline) shadeVertex(v *models.Vertex, shader shading.Shader, model math3d.Mat4, u *shading.Uniforms) TransformedVertex {
	pos, norm := shader.Vertex(v.Position, v.Normal, v.UV, u)

	world := model.MulVec3(pos)
	worldNormal := model.MulVec3Dir(norm).Normalize()

	return TransformedVertex{
		ScreenPosition: p.project(world),
		WorldPosition:  world,
		Normal:         worldNormal,
		Color:          shader.Fragment(world, worldNormal, v.UV, u),
		UV:             v.UV,
	}
}

// Ring and moon point-cloud tessellation.
const (
	ringSegments = 64
	moonSegments = 16
)

// DrawRings draws the ring system as concentric line loops in the
// equatorial plane. Lines are drawn without depth testing, matching
// plain Bresenham semantics.
func (p *Pipeline) DrawRings(shader shading.Shader, u *shading.Uniforms) {
	up := math3d.Up()

	for ring := 0; ring < shading.RingCount; ring++ {
		radius := shading.RingInnerRadius + float64(ring)*shading.RingWidth

		for seg := 0; seg < ringSegments; seg++ {
			a1 := float64(seg) / ringSegments * 2 * math.Pi
			a2 := float64(seg+1) / ringSegments * 2 * math.Pi

			p1 := math3d.V3(radius*math.Cos(a1), 0, radius*math.Sin(a1))
			p2 := math3d.V3(radius*math.Cos(a2), 0, radius*math.Sin(a2))

			uv := math3d.V2(0.5, 0.5)
			w1, n1 := shader.Vertex(p1, up, uv, u)
			w2, _ := shader.Vertex(p2, up, uv, u)

			c := shader.Fragment(w1, n1, uv, u)
			if c.A == 0 {
				continue
			}

			s1 := p.project(w1)
			s2 := p.project(w2)
			p.fb.DrawLine(int(s1.X), int(s1.Y), int(s2.X), int(s2.Y), c.RGBA())
		}
	}
}

// DrawMoon draws the companion moon as a depth-tested point cloud. The
// shader's vertex stage supplies the orbital offset.
func (p *Pipeline) DrawMoon(shader shading.Shader, u *shading.Uniforms) {
	for i := 0; i < moonSegments; i++ {
		for j := 0; j < moonSegments; j++ {
			phi := float64(i) / moonSegments * math.Pi
			theta := float64(j) / moonSegments * 2 * math.Pi

			dir := math3d.V3(
				math.Sin(phi)*math.Cos(theta),
				math.Cos(phi),
				math.Sin(phi)*math.Sin(theta),
			)
			local := dir.Scale(shading.MoonRadius)
			uv := math3d.V2(float64(j)/moonSegments, float64(i)/moonSegments)

			world, normal := shader.Vertex(local, dir, uv, u)
			c := shader.Fragment(world, normal, uv, u)

			s := p.project(world)
			p.fb.SetPixelDepth(int(s.X), int(s.Y), c.RGBA(), s.Z)
		}
	}
}
