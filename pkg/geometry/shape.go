package geometry

import (
	"fmt"

	"github.com/taigrr/prism/pkg/math3d"
	"github.com/taigrr/prism/pkg/shading"
)

// Kind identifies the primitive a Shape represents.
type Kind int

const (
	KindSphere Kind = iota // Unit sphere at the origin
	KindPlane              // The xz plane (y=0)
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindPlane:
		return "plane"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps "sphere" or "plane" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "sphere":
		return KindSphere, nil
	case "plane":
		return KindPlane, nil
	default:
		return 0, fmt.Errorf("unknown shape kind %q", s)
	}
}

// Shape is a primitive placed in the scene. All intersection and normal math
// happens in the shape's canonical local space; the world-space methods move
// rays and points in and out of it with the cached transform.
type Shape struct {
	Kind     Kind
	Name     string
	Material shading.Material
	NoShadow bool // If true the shape never occludes a light

	transform Transform
}

// NewShape creates a shape of the given kind with the identity transform and
// the default material.
func NewShape(kind Kind) Shape {
	return Shape{
		Kind:      kind,
		Material:  shading.DefaultMaterial(),
		transform: IdentityTransform(),
	}
}

// NewSphere creates a unit sphere at the origin.
func NewSphere() Shape {
	return NewShape(KindSphere)
}

// NewPlane creates the xz plane.
func NewPlane() Shape {
	return NewShape(KindPlane)
}

// SetTransform sets the object-to-world transform. It fails without changing
// the shape when m is not invertible.
func (s *Shape) SetTransform(m math3d.Mat4) error {
	t, err := NewTransform(m)
	if err != nil {
		return fmt.Errorf("set %s transform: %w", s.Kind, err)
	}
	s.transform = t
	return nil
}

// Transform returns the object-to-world matrix.
func (s *Shape) Transform() math3d.Mat4 {
	return s.transform.Matrix
}

// Inverse returns the world-to-object matrix.
func (s *Shape) Inverse() math3d.Mat4 {
	return s.transform.Inverse
}

// Validate checks that the shape can be rendered.
func (s *Shape) Validate() error {
	if s.Kind != KindSphere && s.Kind != KindPlane {
		return fmt.Errorf("validate shape: unknown kind %s", s.Kind)
	}
	if err := s.Material.Validate(); err != nil {
		return fmt.Errorf("validate %s %q: %w", s.Kind, s.Name, err)
	}
	return nil
}

// LocalIntersect returns the ray parameters where a local-space ray meets the
// canonical primitive, in ascending order.
func (s *Shape) LocalIntersect(r Ray) []float64 {
	switch s.Kind {
	case KindSphere:
		return intersectSphere(r)
	case KindPlane:
		return intersectPlane(r)
	default:
		return nil
	}
}

// LocalNormalAt returns the normal at a local-space point on the primitive.
func (s *Shape) LocalNormalAt(p math3d.Tuple) math3d.Tuple {
	switch s.Kind {
	case KindSphere:
		return sphereNormal(p)
	case KindPlane:
		return planeNormal()
	default:
		return math3d.Vector(0, 0, 0)
	}
}

// Intersect returns the ray parameters where a world-space ray meets the shape.
func (s *Shape) Intersect(r Ray) []float64 {
	return s.LocalIntersect(r.Transform(s.transform.Inverse))
}

// NormalAt returns the unit world-space normal at a world-space point.
func (s *Shape) NormalAt(p math3d.Tuple) math3d.Tuple {
	localPoint := s.transform.Inverse.MulTuple(p)
	localNormal := s.LocalNormalAt(localPoint)
	worldNormal := s.transform.InverseTranspose.MulTuple(localNormal)
	// Translation leaks into w through the inverse transpose
	worldNormal.W = 0
	return worldNormal.Normalize()
}

// WorldToObject converts a world-space point into the shape's local space.
func (s *Shape) WorldToObject(p math3d.Tuple) math3d.Tuple {
	return s.transform.Inverse.MulTuple(p)
}
