package sphgeom

import "math"

// Matrix3d is a row-major 3x3 matrix of doubles.
//
// Matrix3d is implemented directly against the standard library rather than
// with a general-purpose linear-algebra package: every operation is a fixed
// 3x3 closed-form computation (transpose, cofactor-expansion inverse,
// Frobenius norm), and a dense/sparse-oriented matrix type like gonum's
// mat.Dense would add allocation and dynamic-dispatch overhead a fixed-size
// value type has no use for. No other type in this package uses Matrix3d.
type Matrix3d struct {
	m [3][3]float64
}

// NewMatrix3d builds a Matrix3d from nine row-major entries.
func NewMatrix3d(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) Matrix3d {
	return Matrix3d{[3][3]float64{
		{m00, m01, m02},
		{m10, m11, m12},
		{m20, m21, m22},
	}}
}

// IdentityMatrix3d returns the 3x3 identity matrix.
func IdentityMatrix3d() Matrix3d {
	return NewMatrix3d(1, 0, 0, 0, 1, 0, 0, 0, 1)
}

// At returns the entry at row i, column j.
func (m Matrix3d) At(i, j int) float64 { return m.m[i][j] }

// Row returns row i as a Vector3d.
func (m Matrix3d) Row(i int) Vector3d {
	return Vector3d{m.m[i][0], m.m[i][1], m.m[i][2]}
}

// Col returns column j as a Vector3d.
func (m Matrix3d) Col(j int) Vector3d {
	return Vector3d{m.m[0][j], m.m[1][j], m.m[2][j]}
}

// Transpose returns the transpose of m.
func (m Matrix3d) Transpose() Matrix3d {
	var t Matrix3d
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t.m[j][i] = m.m[i][j]
		}
	}
	return t
}

// Determinant returns the determinant of m.
func (m Matrix3d) Determinant() float64 {
	return m.m[0][0]*(m.m[1][1]*m.m[2][2]-m.m[1][2]*m.m[2][1]) -
		m.m[0][1]*(m.m[1][0]*m.m[2][2]-m.m[1][2]*m.m[2][0]) +
		m.m[0][2]*(m.m[1][0]*m.m[2][1]-m.m[1][1]*m.m[2][0])
}

// Inverse returns the inverse of m via the cofactor/adjugate formula.
// Panics (logicError) if m is singular.
func (m Matrix3d) Inverse() Matrix3d {
	det := m.Determinant()
	if det == 0 {
		logicError("matrix is singular, cannot invert")
	}
	invDet := 1 / det
	a, b, c := m.m[0][0], m.m[0][1], m.m[0][2]
	d, e, f := m.m[1][0], m.m[1][1], m.m[1][2]
	g, h, i := m.m[2][0], m.m[2][1], m.m[2][2]
	return NewMatrix3d(
		(e*i-f*h)*invDet, (c*h-b*i)*invDet, (b*f-c*e)*invDet,
		(f*g-d*i)*invDet, (a*i-c*g)*invDet, (c*d-a*f)*invDet,
		(d*h-e*g)*invDet, (b*g-a*h)*invDet, (a*e-b*d)*invDet,
	)
}

// MulVector returns m * v.
func (m Matrix3d) MulVector(v Vector3d) Vector3d {
	return Vector3d{
		X: m.m[0][0]*v.X + m.m[0][1]*v.Y + m.m[0][2]*v.Z,
		Y: m.m[1][0]*v.X + m.m[1][1]*v.Y + m.m[1][2]*v.Z,
		Z: m.m[2][0]*v.X + m.m[2][1]*v.Y + m.m[2][2]*v.Z,
	}
}

// Mul returns m * n.
func (m Matrix3d) Mul(n Matrix3d) Matrix3d {
	var r Matrix3d
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m.m[i][k] * n.m[k][j]
			}
			r.m[i][j] = sum
		}
	}
	return r
}

// Add returns m + n.
func (m Matrix3d) Add(n Matrix3d) Matrix3d {
	var r Matrix3d
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.m[i][j] = m.m[i][j] + n.m[i][j]
		}
	}
	return r
}

// Scale returns m * s, scalar multiplication.
func (m Matrix3d) Scale(s float64) Matrix3d {
	var r Matrix3d
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.m[i][j] = m.m[i][j] * s
		}
	}
	return r
}

// InnerProduct returns the Frobenius inner product <m, n> = sum_ij m_ij*n_ij.
func (m Matrix3d) InnerProduct(n Matrix3d) float64 {
	var sum float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum += m.m[i][j] * n.m[i][j]
		}
	}
	return sum
}

// Norm returns the Frobenius norm of m.
func (m Matrix3d) Norm() float64 {
	return math.Sqrt(m.InnerProduct(m))
}
