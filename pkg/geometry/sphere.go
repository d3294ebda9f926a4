package geometry

import (
	"math"

	"github.com/taigrr/prism/pkg/math3d"
)

// intersectSphere solves |O + tD|² = 1 for the unit sphere. Tangent rays
// return the double root twice.
func intersectSphere(r Ray) []float64 {
	sphereToRay := r.Origin.Sub(math3d.Origin())

	a := r.Direction.Dot(r.Direction)
	b := 2 * r.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	// Only a zero direction is degenerate: a shrinks with the square of the
	// shape's scale
	if a == 0 {
		return nil
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sq := math.Sqrt(discriminant)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	return []float64{t1, t2}
}

// sphereNormal is the vector from the center to the surface point.
func sphereNormal(p math3d.Tuple) math3d.Tuple {
	return p.Sub(math3d.Origin())
}
