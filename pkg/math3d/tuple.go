// Package math3d provides the homogeneous tuple, color and matrix value types
// used by the prism ray tracer.
package math3d

import "math"

// Epsilon is the tolerance used for every floating point comparison in prism.
const Epsilon = 1e-5

// ApproxEqual reports whether a and b differ by less than Epsilon.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Tuple is a homogeneous 4-component value. Points have W=1, vectors W=0.
type Tuple struct {
	X, Y, Z, W float64
}

// T4 creates a Tuple from raw components.
func T4(x, y, z, w float64) Tuple {
	return Tuple{x, y, z, w}
}

// Point creates a point (w=1).
func Point(x, y, z float64) Tuple {
	return Tuple{x, y, z, 1}
}

// Vector creates a vector (w=0).
func Vector(x, y, z float64) Tuple {
	return Tuple{x, y, z, 0}
}

// Origin returns the point (0, 0, 0).
func Origin() Tuple {
	return Point(0, 0, 0)
}

// Up returns the world up vector (0, 1, 0).
func Up() Tuple {
	return Vector(0, 1, 0)
}

// IsPoint reports whether t is a point.
func (t Tuple) IsPoint() bool {
	return ApproxEqual(t.W, 1)
}

// IsVector reports whether t is a vector.
func (t Tuple) IsVector() bool {
	return ApproxEqual(t.W, 0)
}

// Add returns the sum a + b.
//
//nolint:st1016 // a+b naming convention is clearer for vector operations
func (a Tuple) Add(b Tuple) Tuple {
	return Tuple{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the difference a - b. Point minus point yields a vector.
//
//nolint:st1016 // a-b naming convention is clearer for vector operations
func (a Tuple) Sub(b Tuple) Tuple {
	return Tuple{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Negate returns -t.
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Scale returns the scalar product t * s.
func (t Tuple) Scale(s float64) Tuple {
	return Tuple{t.X * s, t.Y * s, t.Z * s, t.W * s}
}

// Div returns the scalar division t / s.
func (t Tuple) Div(s float64) Tuple {
	return Tuple{t.X / s, t.Y / s, t.Z / s, t.W / s}
}

// Dot returns the dot product a · b.
//
//nolint:st1016 // a·b naming convention is clearer for vector operations
func (a Tuple) Dot(b Tuple) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Cross returns the cross product a × b.
// Only defined for vectors; W is ignored and the result is always a vector.
//
//nolint:st1016 // a×b naming convention is clearer for vector operations
func (a Tuple) Cross(b Tuple) Tuple {
	return Vector(
		a.Y*b.Z-a.Z*b.Y,
		a.Z*b.X-a.X*b.Z,
		a.X*b.Y-a.Y*b.X,
	)
}

// Magnitude returns the length of the tuple.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.Dot(t))
}

// Normalize returns the unit tuple in the same direction.
// A zero-length tuple normalizes to the zero vector.
func (t Tuple) Normalize() Tuple {
	l := t.Magnitude()
	if l < Epsilon {
		return Tuple{}
	}
	return t.Div(l)
}

// Reflect returns the reflection of v around normal n.
func (v Tuple) Reflect(n Tuple) Tuple {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Equal reports whether every component is within Epsilon.
//
//nolint:st1016 // a,b naming convention is clearer for comparisons
func (a Tuple) Equal(b Tuple) bool {
	return ApproxEqual(a.X, b.X) &&
		ApproxEqual(a.Y, b.Y) &&
		ApproxEqual(a.Z, b.Z) &&
		ApproxEqual(a.W, b.W)
}
