package shading

// Entry describes one body in the demo catalog: its shader, spin rate
// and companion features.
type Entry struct {
	Name          string
	Features      string
	Shader        Shader
	RotationSpeed float64
	HasRings      bool
	HasMoon       bool
}

// Catalog returns the built-in planets in keyboard order.
func Catalog() []Entry {
	return []Entry{
		{
			Name:          "Rocky Planet (Moon)",
			Features:      "ridged mountains, craters, mineral glints",
			Shader:        Rocky{},
			RotationSpeed: 0.5,
			HasMoon:       true,
		},
		{
			Name:          "Gas Giant (Rings)",
			Features:      "cloud bands, turbulence, storm, lightning",
			Shader:        GasGiant{},
			RotationSpeed: 1.2,
			HasRings:      true,
		},
		{
			Name:          "Crystal Planet (Rings)",
			Features:      "facets, specular, fresnel, energy veins",
			Shader:        Crystal{},
			RotationSpeed: 0.8,
			HasRings:      true,
		},
		{
			Name:          "Lava Planet",
			Features:      "temperature ramp, glowing cracks, flicker",
			Shader:        Lava{},
			RotationSpeed: 1.5,
		},
	}
}
