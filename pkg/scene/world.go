// Package scene holds the World (shapes plus a light), the shading pipeline
// that turns a ray into a color, and the collaborators that build worlds:
// builtin named scenes and glTF import.
package scene

import (
	"fmt"

	"github.com/taigrr/prism/pkg/geometry"
	"github.com/taigrr/prism/pkg/math3d"
	"github.com/taigrr/prism/pkg/shading"
)

// World owns the shapes and the optional light. It is mutated while a scene
// is built and read-only while rendering, so it is safe for concurrent reads.
type World struct {
	Shapes []geometry.Shape
	Light  *shading.PointLight
}

// NewWorld creates an empty world with no light.
func NewWorld() *World {
	return &World{}
}

// DefaultWorld returns the two concentric spheres lit from the upper left
// that the shading tests are calibrated against.
func DefaultWorld() *World {
	w := NewWorld()

	outer := geometry.NewSphere()
	outer.Name = "outer"
	outer.Material.Color = math3d.RGB(0.8, 1.0, 0.6)
	outer.Material.Diffuse = 0.7
	outer.Material.Specular = 0.2

	inner := geometry.NewSphere()
	inner.Name = "inner"
	// Scaling by 0.5 is always invertible
	_ = inner.SetTransform(math3d.Scaling(0.5, 0.5, 0.5))

	w.Shapes = append(w.Shapes, outer, inner)
	w.SetLight(shading.NewPointLight(math3d.Point(-10, 10, -10), math3d.White()))
	return w
}

// Add validates s and appends it, returning its stable index.
func (w *World) Add(s geometry.Shape) (int, error) {
	if err := s.Validate(); err != nil {
		return -1, fmt.Errorf("add shape: %w", err)
	}
	w.Shapes = append(w.Shapes, s)
	return len(w.Shapes) - 1, nil
}

// SetLight replaces the world's light.
func (w *World) SetLight(l shading.PointLight) {
	w.Light = &l
}

// Shape returns the shape at index i.
func (w *World) Shape(i int) *geometry.Shape {
	return &w.Shapes[i]
}

// Validate checks every shape. Call it once before rendering a world whose
// Shapes slice was filled directly.
func (w *World) Validate() error {
	for i := range w.Shapes {
		if err := w.Shapes[i].Validate(); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}
	return nil
}

// Intersect returns every intersection of r with the world, sorted by t.
// Ties keep shape insertion order.
func (w *World) Intersect(r geometry.Ray) geometry.Intersections {
	xs := make(geometry.Intersections, 0, 2*len(w.Shapes))
	for i := range w.Shapes {
		xs = xs.Tag(i, w.Shapes[i].Intersect(r)...)
	}
	xs.Sort()
	return xs
}

// ShadeHit returns the color at a prepared intersection.
func (w *World) ShadeHit(comps Computations) math3d.Color {
	if w.Light == nil {
		return math3d.Black()
	}

	shape := w.Shape(comps.Object)
	surface := shading.Surface{
		Point:       comps.Point,
		ObjectPoint: comps.ObjectPoint,
		Eye:         comps.Eye,
		Normal:      comps.Normal,
	}
	return shading.Lighting(shape.Material, *w.Light, surface, w.IsShadowed(comps.OverPoint))
}

// IsShadowed reports whether any shadow-casting shape lies strictly between
// p and the light.
func (w *World) IsShadowed(p math3d.Tuple) bool {
	if w.Light == nil {
		return false
	}

	v := w.Light.Position.Sub(p)
	distance := v.Magnitude()
	r := geometry.NewRay(p, v.Normalize())

	for i := range w.Shapes {
		s := &w.Shapes[i]
		if s.NoShadow {
			continue
		}
		for _, t := range s.Intersect(r) {
			if t > 0 && t < distance {
				return true
			}
		}
	}
	return false
}

// ColorAt traces r into the world and returns the shaded color of the
// nearest visible hit, or black when nothing is hit.
func (w *World) ColorAt(r geometry.Ray) math3d.Color {
	hit, ok := w.Intersect(r).Hit()
	if !ok {
		return math3d.Black()
	}
	return w.ShadeHit(w.PrepareComputations(hit, r))
}
