package models

import (
	"math"

	"github.com/taigrr/planetarium/pkg/math3d"
)

// Default sphere tessellation used when a model file cannot be loaded.
const (
	DefaultSphereRings   = 32
	DefaultSphereSectors = 32
)

// NewUVSphere generates a latitude/longitude sphere. Rings run from
// pole to pole, sectors around the equator; normals point radially and
// UVs wrap once around.
func NewUVSphere(radius float64, rings, sectors int) *Mesh {
	mesh := NewMesh("sphere")

	ringStep := math.Pi / float64(rings)
	sectorStep := 2 * math.Pi / float64(sectors)

	for i := 0; i <= rings; i++ {
		ringAngle := math.Pi/2 - float64(i)*ringStep
		xy := radius * math.Cos(ringAngle)
		z := radius * math.Sin(ringAngle)

		for j := 0; j <= sectors; j++ {
			sectorAngle := float64(j) * sectorStep
			position := math3d.V3(xy*math.Cos(sectorAngle), xy*math.Sin(sectorAngle), z)

			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: position,
				Normal:   position.Normalize(),
				UV:       math3d.V2(float64(j)/float64(sectors), float64(i)/float64(rings)),
			})
		}
	}

	for i := 0; i < rings; i++ {
		k1 := uint32(i * (sectors + 1))
		k2 := k1 + uint32(sectors) + 1

		for j := uint32(0); j < uint32(sectors); j++ {
			if i != 0 {
				mesh.Indices = append(mesh.Indices, k1+j, k2+j, k1+j+1)
			}
			if i != rings-1 {
				mesh.Indices = append(mesh.Indices, k1+j+1, k2+j, k2+j+1)
			}
		}
	}

	return mesh
}
