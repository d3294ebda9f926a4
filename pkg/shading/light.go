package shading

import "github.com/taigrr/prism/pkg/math3d"

// PointLight is a light source with no size emitting from a single point.
type PointLight struct {
	Position  math3d.Tuple
	Intensity math3d.Color
}

// NewPointLight creates a point light.
func NewPointLight(position math3d.Tuple, intensity math3d.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
