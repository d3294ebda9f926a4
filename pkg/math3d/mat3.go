package math3d

// Mat3 is a 3x3 matrix in column-major order. It only exists to support
// cofactor expansion of Mat4.
type Mat3 [9]float64

// Get returns the element at (row, col).
func (m Mat3) Get(row, col int) float64 {
	return m[row+col*3]
}

// Set sets the element at (row, col).
func (m *Mat3) Set(row, col int, val float64) {
	m[row+col*3] = val
}

// Submatrix returns the 2x2 matrix left after removing row and col.
func (m Mat3) Submatrix(row, col int) Mat2 {
	var s Mat2
	dr := 0
	for r := range 3 {
		if r == row {
			continue
		}
		dc := 0
		for c := range 3 {
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
func (m Mat3) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the signed minor at (row, col).
func (m Mat3) Cofactor(row, col int) float64 {
	if (row+col)%2 == 1 {
		return -m.Minor(row, col)
	}
	return m.Minor(row, col)
}

// Determinant returns the determinant by cofactor expansion along row 0.
func (m Mat3) Determinant() float64 {
	var det float64
	for col := range 3 {
		det += m.Get(0, col) * m.Cofactor(0, col)
	}
	return det
}

// Mat2 is a 2x2 matrix in column-major order.
type Mat2 [4]float64

// Get returns the element at (row, col).
func (m Mat2) Get(row, col int) float64 {
	return m[row+col*2]
}

// Set sets the element at (row, col).
func (m *Mat2) Set(row, col int, val float64) {
	m[row+col*2] = val
}

// Determinant returns ad - bc.
func (m Mat2) Determinant() float64 {
	return m.Get(0, 0)*m.Get(1, 1) - m.Get(0, 1)*m.Get(1, 0)
}
