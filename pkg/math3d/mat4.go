package math3d

import "errors"

// ErrSingular is returned when inverting a matrix whose determinant is within
// Epsilon of zero.
var ErrSingular = errors.New("matrix is not invertible")

// Mat4 is a 4x4 matrix stored in column-major order.
//
// Memory layout (indices):
// | 0  4  8  12 |
// | 1  5  9  13 |
// | 2  6  10 14 |
// | 3  7  11 15 |
//
// For a transform matrix:
// | Xx Yx Zx Tx |   X,Y,Z = basis vectors (rotation/scale)
// | Xy Yy Zy Ty |   T = translation
// | Xz Yz Zz Tz |
// | 0  0  0  1  |
type Mat4 [16]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4FromRows builds a matrix from row-major values, which reads naturally in
// tests and literal tables.
func Mat4FromRows(rows [4][4]float64) Mat4 {
	var m Mat4
	for row := range 4 {
		for col := range 4 {
			m[row+col*4] = rows[row][col]
		}
	}
	return m
}

// Get returns the element at (row, col).
func (m Mat4) Get(row, col int) float64 {
	return m[row+col*4]
}

// Set sets the element at (row, col).
func (m *Mat4) Set(row, col int, val float64) {
	m[row+col*4] = val
}

// Mul multiplies two matrices: a * b. When both are transforms, b is applied
// to a tuple first.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for col := range 4 {
		for row := range 4 {
			var sum float64
			for k := range 4 {
				sum += a[row+k*4] * b[k+col*4]
			}
			m[row+col*4] = sum
		}
	}
	return m
}

// MulTuple transforms a tuple. Points pick up translation, vectors do not.
func (m Mat4) MulTuple(v Tuple) Tuple {
	return Tuple{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Submatrix returns the 3x3 matrix left after removing row and col.
func (m Mat4) Submatrix(row, col int) Mat3 {
	var s Mat3
	dr := 0
	for r := range 4 {
		if r == row {
			continue
		}
		dc := 0
		for c := range 4 {
			if c == col {
				continue
			}
			s.Set(dr, dc, m.Get(r, c))
			dc++
		}
		dr++
	}
	return s
}

// Minor returns the determinant of the submatrix at (row, col).
func (m Mat4) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the signed minor at (row, col).
func (m Mat4) Cofactor(row, col int) float64 {
	if (row+col)%2 == 1 {
		return -m.Minor(row, col)
	}
	return m.Minor(row, col)
}

// Determinant returns the determinant by cofactor expansion along row 0.
func (m Mat4) Determinant() float64 {
	var det float64
	for col := range 4 {
		det += m.Get(0, col) * m.Cofactor(0, col)
	}
	return det
}

// IsInvertible reports whether the determinant is outside Epsilon of zero.
func (m Mat4) IsInvertible() bool {
	return !ApproxEqual(m.Determinant(), 0)
}

// Inverse returns the inverse computed from the adjugate. It fails with
// ErrSingular when the matrix cannot be inverted.
func (m Mat4) Inverse() (Mat4, error) {
	det := m.Determinant()
	if ApproxEqual(det, 0) {
		return Mat4{}, ErrSingular
	}

	invDet := 1.0 / det
	var inv Mat4
	for row := range 4 {
		for col := range 4 {
			// transposed on purpose: inv[col][row] = cofactor(row, col) / det
			inv.Set(col, row, m.Cofactor(row, col)*invDet)
		}
	}
	return inv, nil
}

// MustInverse is like Inverse but panics on a singular matrix. Use it only for
// matrices known to be invertible at compile time.
func (m Mat4) MustInverse() Mat4 {
	inv, err := m.Inverse()
	if err != nil {
		panic(err)
	}
	return inv
}

// Equal reports whether every element is within Epsilon.
//
//nolint:st1016 // a,b naming convention is clearer for comparisons
func (a Mat4) Equal(b Mat4) bool {
	for i := range a {
		if !ApproxEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Translation extracts the translation component.
func (m Mat4) Translation() Tuple {
	return Vector(m[12], m[13], m[14])
}
