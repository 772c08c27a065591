package sphgeom

import (
	"math"
	"testing"
)

func TestNewLonLatClampsLatitude(t *testing.T) {
	testCases := []struct {
		name    string
		lat     float64
		wantLat float64
	}{
		{"withinRange", 30, 30},
		{"atNorthPole", 90, 90},
		{"beyondNorthPole", 120, 90},
		{"beyondSouthPole", -120, -90},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := LonLatFromDegrees(0, tc.lat)
			if math.Abs(p.Lat.Degrees()-tc.wantLat) > 1e-9 {
				t.Errorf("expected clamped latitude %v, got %v", tc.wantLat, p.Lat.Degrees())
			}
		})
	}
}

func TestLonLatFromDegreesWrapsLongitude(t *testing.T) {
	p := LonLatFromDegrees(370, 0)
	if math.Abs(p.Lon.Degrees()-10) > 1e-9 {
		t.Errorf("expected longitude to wrap to 10 degrees, got %v", p.Lon.Degrees())
	}
	p2 := LonLatFromDegrees(-10, 0)
	if math.Abs(p2.Lon.Degrees()-350) > 1e-9 {
		t.Errorf("expected negative longitude to wrap to 350 degrees, got %v", p2.Lon.Degrees())
	}
}

func TestLonLatFromUnitVector3dRoundTrip(t *testing.T) {
	p := LonLatFromDegrees(123, -45)
	v := UnitVector3dFromLonLat(p)
	got := LonLatFromUnitVector3d(v)
	if math.Abs(got.Lon.Degrees()-p.Lon.Degrees()) > 1e-9 {
		t.Errorf("expected lon %v, got %v", p.Lon.Degrees(), got.Lon.Degrees())
	}
	if math.Abs(got.Lat.Degrees()-p.Lat.Degrees()) > 1e-9 {
		t.Errorf("expected lat %v, got %v", p.Lat.Degrees(), got.Lat.Degrees())
	}
}
