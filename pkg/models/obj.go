package models

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/planetarium/pkg/math3d"
)

// LoadOBJ parses a Wavefront OBJ file into a Mesh. Faces must be
// triangulated. Missing normals fall back to the radial direction and
// missing UVs to spherical mapping, which suits the sphere meshes this
// renderer feeds on.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh := NewMesh(filepath.Base(path))

	var positions []math3d.Vec3
	var normals []math3d.Vec3
	var uvs []math3d.Vec2

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVec3(fields)
			if err != nil {
				return nil, fmt.Errorf("vertex position: %w", err)
			}
			positions = append(positions, v)

		case "vn":
			v, err := parseVec3(fields)
			if err != nil {
				return nil, fmt.Errorf("vertex normal: %w", err)
			}
			normals = append(normals, v)

		case "vt":
			if len(fields) < 3 {
				continue
			}
			u, err1 := strconv.ParseFloat(fields[1], 64)
			v, err2 := strconv.ParseFloat(fields[2], 64)
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("texture coordinate: %q", line)
			}
			uvs = append(uvs, math3d.V2(u, v))

		case "f":
			if len(fields) < 4 {
				continue
			}
			for _, corner := range fields[1:4] {
				if err := appendCorner(mesh, corner, positions, normals, uvs); err != nil {
					return nil, err
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	if len(mesh.Vertices) == 0 {
		return nil, fmt.Errorf("no vertices in %s", path)
	}
	return mesh, nil
}

// appendCorner resolves one "pos/uv/normal" face corner and appends the
// assembled vertex.
func appendCorner(mesh *Mesh, corner string, positions, normals []math3d.Vec3, uvs []math3d.Vec2) error {
	parts := strings.Split(corner, "/")

	posIdx, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("face position index %q: %w", corner, err)
	}
	posIdx-- // OBJ indices are 1-based
	if posIdx < 0 || posIdx >= len(positions) {
		return nil
	}
	position := positions[posIdx]

	normal := position.Normalize()
	if len(parts) > 2 && parts[2] != "" {
		if idx, err := strconv.Atoi(parts[2]); err == nil && idx >= 1 && idx-1 < len(normals) {
			normal = normals[idx-1]
		}
	}

	uv := SphericalUV(position)
	if len(parts) > 1 && parts[1] != "" {
		if idx, err := strconv.Atoi(parts[1]); err == nil && idx >= 1 && idx-1 < len(uvs) {
			uv = uvs[idx-1]
		}
	}

	mesh.Vertices = append(mesh.Vertices, Vertex{Position: position, Normal: normal, UV: uv})
	mesh.Indices = append(mesh.Indices, uint32(len(mesh.Vertices)-1))
	return nil
}

func parseVec3(fields []string) (math3d.Vec3, error) {
	if len(fields) < 4 {
		return math3d.Vec3{}, fmt.Errorf("want 3 components, got %d", len(fields)-1)
	}
	x, err1 := strconv.ParseFloat(fields[1], 64)
	y, err2 := strconv.ParseFloat(fields[2], 64)
	z, err3 := strconv.ParseFloat(fields[3], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return math3d.Vec3{}, fmt.Errorf("bad float in %v", fields[1:4])
	}
	return math3d.V3(x, y, z), nil
}
