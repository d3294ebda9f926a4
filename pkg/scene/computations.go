package scene

import (
	"github.com/taigrr/prism/pkg/geometry"
	"github.com/taigrr/prism/pkg/math3d"
)

// Computations caches the geometry at an intersection that shading needs.
type Computations struct {
	T           float64
	Object      int
	Point       math3d.Tuple // World-space hit point
	OverPoint   math3d.Tuple // Point nudged along the normal; shadow rays start here
	ObjectPoint math3d.Tuple // Point in the shape's local space
	Eye         math3d.Tuple
	Normal      math3d.Tuple // Flipped to face the eye when the hit is inside
	Inside      bool
}

// PrepareComputations evaluates hit point, eye and normal for hit along r.
func (w *World) PrepareComputations(hit geometry.Intersection, r geometry.Ray) Computations {
	shape := w.Shape(hit.Object)

	point := r.Position(hit.T)
	eye := r.Direction.Negate().Normalize()
	normal := shape.NormalAt(point)

	inside := normal.Dot(eye) < 0
	if inside {
		normal = normal.Negate()
	}

	return Computations{
		T:           hit.T,
		Object:      hit.Object,
		Point:       point,
		OverPoint:   point.Add(normal.Scale(math3d.Epsilon)),
		ObjectPoint: shape.WorldToObject(point),
		Eye:         eye,
		Normal:      normal,
		Inside:      inside,
	}
}
