// Package geometry implements rays, the sphere and plane primitives, and
// ray/shape intersection.
package geometry

import "github.com/taigrr/prism/pkg/math3d"

// Ray is a half-line starting at Origin travelling along Direction.
type Ray struct {
	Origin    math3d.Tuple // Point
	Direction math3d.Tuple // Vector, not necessarily normalized
}

// NewRay creates a ray.
func NewRay(origin, direction math3d.Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t: origin + direction*t.
func (r Ray) Position(t float64) math3d.Tuple {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform returns the ray with both origin and direction multiplied by m.
func (r Ray) Transform(m math3d.Mat4) Ray {
	return Ray{
		Origin:    m.MulTuple(r.Origin),
		Direction: m.MulTuple(r.Direction),
	}
}
