package geometry

import (
	"math"

	"github.com/taigrr/prism/pkg/math3d"
)

// intersectPlane intersects the xz plane. Parallel rays, including rays lying
// in the plane, miss.
func intersectPlane(r Ray) []float64 {
	if math.Abs(r.Direction.Y) < math3d.Epsilon {
		return nil
	}
	return []float64{-r.Origin.Y / r.Direction.Y}
}

func planeNormal() math3d.Tuple {
	return math3d.Vector(0, 1, 0)
}
