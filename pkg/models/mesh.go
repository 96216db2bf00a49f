// Package models provides mesh data, generation and loading for the
// planet renderer.
package models

import (
	"math"

	"github.com/taigrr/planetarium/pkg/math3d"
)

// Vertex is one mesh vertex with the attributes the shaders consume.
type Vertex struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
	UV       math3d.Vec2
}

// Mesh is indexed triangle geometry. Indices are consumed three at a
// time; out-of-range indices are skipped at draw time, never fatal.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

// NewMesh creates an empty named mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of complete triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() (min, max math3d.Vec3) {
	if len(m.Vertices) == 0 {
		return math3d.Zero3(), math3d.Zero3()
	}
	min = m.Vertices[0].Position
	max = min
	for _, v := range m.Vertices[1:] {
		min = min.Min(v.Position)
		max = max.Max(v.Position)
	}
	return min, max
}

// Center returns the midpoint of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	min, max := m.Bounds()
	return min.Add(max).Scale(0.5)
}

// CalculateSmoothNormals rebuilds vertex normals by averaging the face
// normals of every triangle sharing each vertex. Used when a loaded
// mesh carries no normals.
func (m *Mesh) CalculateSmoothNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = math3d.Zero3()
	}

	n := uint32(len(m.Vertices))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		i1, i2, i3 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		if i1 >= n || i2 >= n || i3 >= n {
			continue
		}
		a := m.Vertices[i1].Position
		b := m.Vertices[i2].Position
		c := m.Vertices[i3].Position

		face := b.Sub(a).Cross(c.Sub(a))
		m.Vertices[i1].Normal = m.Vertices[i1].Normal.Add(face)
		m.Vertices[i2].Normal = m.Vertices[i2].Normal.Add(face)
		m.Vertices[i3].Normal = m.Vertices[i3].Normal.Add(face)
	}

	for i := range m.Vertices {
		if m.Vertices[i].Normal.LenSq() > 0 {
			m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
		}
	}
}

// SphericalUV derives texture coordinates from a position on a sphere
// centered at the origin.
func SphericalUV(position math3d.Vec3) math3d.Vec2 {
	n := position.Normalize()
	u := 0.5 + math.Atan2(n.Z, n.X)/(2*math.Pi)
	v := 0.5 - math.Asin(n.Y)/math.Pi
	return math3d.V2(u, v)
}
