package sphgeom

import (
	"math"
	"testing"
)

func TestUnitVector3dAngleTo(t *testing.T) {
	testCases := []struct {
		name     string
		u, w     UnitVector3d
		expected float64
	}{
		{"identical", NewUnitVector3d(1, 0, 0), NewUnitVector3d(1, 0, 0), 0},
		{"orthogonal", NewUnitVector3d(1, 0, 0), NewUnitVector3d(0, 1, 0), math.Pi / 2},
		{"antipodal", NewUnitVector3d(1, 0, 0), NewUnitVector3d(-1, 0, 0), math.Pi},
		{"nearAntipodal", NewUnitVector3d(1, 0, 0), NewUnitVector3d(-1, 1e-8, 0), math.Pi},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.u.AngleTo(tc.w).Radians()
			if math.Abs(got-tc.expected) > 1e-6 {
				t.Errorf("expected angle %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestUnitVector3dSquaredChordLength(t *testing.T) {
	u := NewUnitVector3d(1, 0, 0)
	w := NewUnitVector3d(-1, 0, 0)
	if got := u.SquaredChordLength(w); math.Abs(got-4) > 1e-12 {
		t.Errorf("expected squared chord length 4 for antipodal points, got %v", got)
	}
}

func TestUnitVector3dLonLatRoundTrip(t *testing.T) {
	testCases := []LonLat{
		LonLatFromDegrees(0, 0),
		LonLatFromDegrees(45, 30),
		LonLatFromDegrees(180, -60),
		LonLatFromDegrees(270, 89),
	}
	for _, p := range testCases {
		v := UnitVector3dFromLonLat(p)
		got := v.LonLat()
		if math.Abs(got.Lon.Radians()-p.Lon.Radians()) > 1e-9 {
			t.Errorf("lon round trip: expected %v, got %v", p.Lon.Radians(), got.Lon.Radians())
		}
		if math.Abs(got.Lat.Radians()-p.Lat.Radians()) > 1e-9 {
			t.Errorf("lat round trip: expected %v, got %v", p.Lat.Radians(), got.Lat.Radians())
		}
	}
}

func TestVector3dNormalizedPanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic normalizing the zero vector")
		}
	}()
	Vector3d{}.Normalized()
}

func TestUnitVector3dOrthogonalToIsOrthogonal(t *testing.T) {
	u := NewUnitVector3d(1, 2, 3)
	v := NewUnitVector3d(4, -1, 2)
	o := u.OrthogonalTo(v)
	if math.Abs(o.DotVector(u.Vector())) > 1e-9 {
		t.Errorf("expected OrthogonalTo result to be orthogonal to u, dot = %v", o.DotVector(u.Vector()))
	}
}
