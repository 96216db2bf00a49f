package models

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/taigrr/planetarium/pkg/math3d"
)

// LoadGLB loads a glTF/GLB file, merging every triangle primitive into
// one Mesh. Textures and materials are ignored; the shaders generate
// all surface detail procedurally.
func LoadGLB(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh := NewMesh(filepath.Base(path))

	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}
			if err := appendPrimitive(doc, prim, mesh); err != nil {
				return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
			}
		}
	}

	if len(mesh.Vertices) == 0 {
		return nil, fmt.Errorf("no triangle geometry in %s", path)
	}

	if !hasNormals(mesh) {
		mesh.CalculateSmoothNormals()
	}
	return mesh, nil
}

func appendPrimitive(doc *gltf.Document, prim *gltf.Primitive, mesh *Mesh) error {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil
	}

	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("read positions: %w", err)
	}

	var normals [][3]float32
	if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
		if err != nil {
			return fmt.Errorf("read normals: %w", err)
		}
	}

	var uvs [][2]float32
	if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[uvIdx], nil)
		if err != nil {
			return fmt.Errorf("read uvs: %w", err)
		}
	}

	base := uint32(len(mesh.Vertices))

	for i, p := range positions {
		v := Vertex{Position: math3d.V3(float64(p[0]), float64(p[1]), float64(p[2]))}
		if i < len(normals) {
			n := normals[i]
			v.Normal = math3d.V3(float64(n[0]), float64(n[1]), float64(n[2]))
		}
		if i < len(uvs) {
			// glTF puts V=0 at the top; flip for bottom-left origin.
			v.UV = math3d.V2(float64(uvs[i][0]), 1-float64(uvs[i][1]))
		} else {
			v.UV = SphericalUV(v.Position)
		}
		mesh.Vertices = append(mesh.Vertices, v)
	}

	if prim.Indices != nil {
		indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return fmt.Errorf("read indices: %w", err)
		}
		for _, idx := range indices {
			mesh.Indices = append(mesh.Indices, base+idx)
		}
	} else {
		for i := range uint32(len(positions)) {
			mesh.Indices = append(mesh.Indices, base+i)
		}
	}
	return nil
}

func hasNormals(mesh *Mesh) bool {
	for _, v := range mesh.Vertices {
		if v.Normal.LenSq() > 1e-6 {
			return true
		}
	}
	return false
}
