// Package shading implements surface materials, procedural patterns, point
// lights and the Phong reflection model.
package shading

import (
	"errors"
	"fmt"
	"math"

	"github.com/taigrr/prism/pkg/math3d"
)

// ErrInvalidMaterial is returned when a material has negative or NaN
// reflectance coefficients.
var ErrInvalidMaterial = errors.New("invalid material")

// Material describes how a surface reflects light.
type Material struct {
	Color     math3d.Color
	Ambient   float64  // Fraction of the light's color always reflected
	Diffuse   float64  // Lambertian reflectance
	Specular  float64  // Highlight strength
	Shininess float64  // Highlight tightness (Phong exponent)
	Pattern   *Pattern // Optional; overrides Color when set
}

// DefaultMaterial returns a white, moderately shiny material.
func DefaultMaterial() Material {
	return Material{
		Color:     math3d.White(),
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200,
	}
}

// Validate reports ErrInvalidMaterial for coefficients that would make the
// Phong model meaningless.
func (m Material) Validate() error {
	fields := []struct {
		name string
		val  float64
	}{
		{"ambient", m.Ambient},
		{"diffuse", m.Diffuse},
		{"specular", m.Specular},
		{"shininess", m.Shininess},
		{"color.r", m.Color.R},
		{"color.g", m.Color.G},
		{"color.b", m.Color.B},
	}
	for _, f := range fields {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) || f.val < 0 {
			return fmt.Errorf("%w: %s = %v", ErrInvalidMaterial, f.name, f.val)
		}
	}
	return nil
}

// ColorAt returns the surface color at a point in object space.
func (m Material) ColorAt(objectPoint math3d.Tuple) math3d.Color {
	if m.Pattern == nil {
		return m.Color
	}
	return m.Pattern.ColorAtObject(objectPoint)
}
