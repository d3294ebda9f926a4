package shading

import (
	"fmt"
	"math"

	"github.com/taigrr/prism/pkg/math3d"
)

// PatternKind selects the procedural pattern function.
type PatternKind int

const (
	PatternStripe   PatternKind = iota // Alternates along x
	PatternGradient                    // Blends along x, repeating every unit
	PatternRing                        // Concentric rings in the xz plane
	PatternChecker                     // 3D checkerboard
)

func (k PatternKind) String() string {
	switch k {
	case PatternStripe:
		return "stripe"
	case PatternGradient:
		return "gradient"
	case PatternRing:
		return "ring"
	case PatternChecker:
		return "checker"
	default:
		return fmt.Sprintf("PatternKind(%d)", int(k))
	}
}

// Pattern is a two-color procedural texture with its own transform relative
// to the object it is applied to.
type Pattern struct {
	Kind PatternKind
	A, B math3d.Color

	transform math3d.Mat4
	inverse   math3d.Mat4
}

// NewPattern creates a pattern with the identity transform.
func NewPattern(kind PatternKind, a, b math3d.Color) *Pattern {
	return &Pattern{
		Kind:      kind,
		A:         a,
		B:         b,
		transform: math3d.Identity(),
		inverse:   math3d.Identity(),
	}
}

// SetTransform sets the pattern transform.
func (p *Pattern) SetTransform(m math3d.Mat4) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("set pattern transform: %w", err)
	}
	p.transform = m
	p.inverse = inv
	return nil
}

// Transform returns the pattern transform.
func (p *Pattern) Transform() math3d.Mat4 {
	return p.transform
}

// ColorAt evaluates the pattern at a point in pattern space.
func (p *Pattern) ColorAt(pt math3d.Tuple) math3d.Color {
	switch p.Kind {
	case PatternGradient:
		fraction := pt.X - math.Floor(pt.X)
		return p.A.Add(p.B.Sub(p.A).Scale(fraction))
	case PatternRing:
		return p.pick(math.Floor(math.Sqrt(pt.X*pt.X + pt.Z*pt.Z)))
	case PatternChecker:
		return p.pick(math.Floor(pt.X) + math.Floor(pt.Y) + math.Floor(pt.Z))
	default:
		return p.pick(math.Floor(pt.X))
	}
}

// ColorAtObject evaluates the pattern at a point in object space.
func (p *Pattern) ColorAtObject(objectPoint math3d.Tuple) math3d.Color {
	return p.ColorAt(p.inverse.MulTuple(objectPoint))
}

// pick returns A for even n and B for odd n.
func (p *Pattern) pick(n float64) math3d.Color {
	if math.Mod(n, 2) == 0 {
		return p.A
	}
	return p.B
}
