package math3d

import "math"

// Translation creates a translation matrix.
func Translation(x, y, z float64) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scaling creates a scaling matrix.
func Scaling(x, y, z float64) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotationX creates a rotation matrix around the X axis.
func RotationX(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY creates a rotation matrix around the Y axis.
func RotationY(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotationZ creates a rotation matrix around the Z axis.
func RotationZ(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Shearing creates a shearing matrix. Each parameter moves the first named
// axis in proportion to the second, so xy moves x in proportion to y.
func Shearing(xy, xz, yx, yz, zx, zy float64) Mat4 {
	return Mat4{
		1, yx, zx, 0,
		xy, 1, zy, 0,
		xz, yz, 1, 0,
		0, 0, 0, 1,
	}
}

// Rotation creates a rotation matrix from a unit quaternion (x, y, z, w).
func Rotation(x, y, z, w float64) Mat4 {
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat4{
		1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0,
		2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx), 0,
		2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}

// ViewTransform orients the world relative to an eye at from looking at to.
func ViewTransform(from, to, up Tuple) Mat4 {
	f := to.Sub(from).Normalize() // Forward
	l := f.Cross(up.Normalize())  // Left
	u := l.Cross(f)               // Up (recomputed)

	orientation := Mat4{
		l.X, u.X, -f.X, 0,
		l.Y, u.Y, -f.Y, 0,
		l.Z, u.Z, -f.Z, 0,
		0, 0, 0, 1,
	}
	return orientation.Mul(Translation(-from.X, -from.Y, -from.Z))
}

// The chain methods below left-multiply, so calls read in the order they are
// applied to a point:
//
//	Identity().RotateX(a).Scale(5, 5, 5).Translate(10, 5, 7)

// Translate applies a translation after m.
func (m Mat4) Translate(x, y, z float64) Mat4 {
	return Translation(x, y, z).Mul(m)
}

// Scale applies a scaling after m.
func (m Mat4) Scale(x, y, z float64) Mat4 {
	return Scaling(x, y, z).Mul(m)
}

// RotateX applies a rotation around X after m.
func (m Mat4) RotateX(angle float64) Mat4 {
	return RotationX(angle).Mul(m)
}

// RotateY applies a rotation around Y after m.
func (m Mat4) RotateY(angle float64) Mat4 {
	return RotationY(angle).Mul(m)
}

// RotateZ applies a rotation around Z after m.
func (m Mat4) RotateZ(angle float64) Mat4 {
	return RotationZ(angle).Mul(m)
}

// Shear applies a shearing after m.
func (m Mat4) Shear(xy, xz, yx, yz, zx, zy float64) Mat4 {
	return Shearing(xy, xz, yx, yz, zx, zy).Mul(m)
}
