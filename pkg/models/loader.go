package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Load reads a mesh from path, dispatching on the file extension.
func Load(path string) (*Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return LoadOBJ(path)
	case ".glb", ".gltf":
		return LoadGLB(path)
	default:
		return nil, fmt.Errorf("unsupported format: %s (use .obj or .glb)", path)
	}
}

// LoadOrSphere loads a mesh from path, substituting a default unit
// UV-sphere on any failure. Rendering always has geometry; load errors
// never reach the frame loop.
func LoadOrSphere(path string) *Mesh {
	if path == "" {
		return NewUVSphere(1, DefaultSphereRings, DefaultSphereSectors)
	}
	mesh, err := Load(path)
	if err != nil {
		return NewUVSphere(1, DefaultSphereRings, DefaultSphereSectors)
	}
	return mesh
}
