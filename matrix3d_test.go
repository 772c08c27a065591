package sphgeom

import (
	"math"
	"testing"
)

func TestMatrix3dIdentityMul(t *testing.T) {
	m := NewMatrix3d(1, 2, 3, 4, 5, 6, 7, 8, 9)
	id := IdentityMatrix3d()
	got := id.Mul(m)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if got.At(i, j) != m.At(i, j) {
				t.Errorf("identity * m should equal m at (%d,%d): got %v, want %v", i, j, got.At(i, j), m.At(i, j))
			}
		}
	}
}

func TestMatrix3dTranspose(t *testing.T) {
	m := NewMatrix3d(1, 2, 3, 4, 5, 6, 7, 8, 9)
	tr := m.Transpose()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if tr.At(i, j) != m.At(j, i) {
				t.Errorf("transpose mismatch at (%d,%d)", i, j)
			}
		}
	}
}

func TestMatrix3dInverseRoundTrip(t *testing.T) {
	m := NewMatrix3d(2, 0, 0, 0, 3, 0, 0, 0, 4)
	inv := m.Inverse()
	prod := m.Mul(inv)
	id := IdentityMatrix3d()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(prod.At(i, j)-id.At(i, j)) > 1e-9 {
				t.Errorf("m * m^-1 should be identity at (%d,%d), got %v", i, j, prod.At(i, j))
			}
		}
	}
}

func TestMatrix3dInversePanicsOnSingular(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic inverting a singular matrix")
		}
	}()
	NewMatrix3d(1, 2, 3, 2, 4, 6, 0, 0, 0).Inverse()
}

func TestMatrix3dMulVector(t *testing.T) {
	m := NewMatrix3d(2, 0, 0, 0, 3, 0, 0, 0, 4)
	v := Vector3d{X: 1, Y: 1, Z: 1}
	got := m.MulVector(v)
	want := Vector3d{X: 2, Y: 3, Z: 4}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMatrix3dNorm(t *testing.T) {
	m := NewMatrix3d(1, 0, 0, 0, 1, 0, 0, 0, 1)
	if math.Abs(m.Norm()-math.Sqrt(3)) > 1e-9 {
		t.Errorf("expected Frobenius norm sqrt(3), got %v", m.Norm())
	}
}
