package sphgeom

import (
	"math"
	"testing"
)

func TestCircleContains(t *testing.T) {
	center := NewUnitVector3d(1, 0, 0)
	c := NewCircleFromAngle(center, AngleFromDegrees(10))
	near := UnitVector3dFromLonLat(LonLatFromDegrees(5, 0))
	far := UnitVector3dFromLonLat(LonLatFromDegrees(90, 0))
	if !c.Contains(center) {
		t.Errorf("expected a circle to contain its own center")
	}
	if !c.Contains(near) {
		t.Errorf("expected the circle to contain a point within its radius")
	}
	if c.Contains(far) {
		t.Errorf("expected the circle not to contain a point outside its radius")
	}
}

func TestCircleRelateExactFormula(t *testing.T) {
	a := NewCircleFromAngle(NewUnitVector3d(1, 0, 0), AngleFromDegrees(30))
	bInside := NewCircleFromAngle(NewUnitVector3d(1, 0, 0), AngleFromDegrees(10))
	cFar := NewCircleFromAngle(UnitVector3dFromLonLat(LonLatFromDegrees(180, 0)), AngleFromDegrees(10))
	dOverlap := NewCircleFromAngle(UnitVector3dFromLonLat(LonLatFromDegrees(40, 0)), AngleFromDegrees(20))

	if !a.Relate(bInside).Has(Contains) {
		t.Errorf("expected a to contain the smaller concentric circle")
	}
	if !bInside.Relate(a).Has(Within) {
		t.Errorf("expected the smaller circle to be within a")
	}
	if !a.Relate(cFar).Has(Disjoint) {
		t.Errorf("expected a and a circle on the opposite side of the sphere to be disjoint")
	}
	if !a.Relate(dOverlap).Has(Intersects) {
		t.Errorf("expected a and an overlapping circle to intersect")
	}
	if a.Relate(dOverlap).Has(Contains) || a.Relate(dOverlap).Has(Within) {
		t.Errorf("expected neither circle to contain the other when they merely overlap")
	}
}

func TestCircleOpeningAngleRoundTrip(t *testing.T) {
	r := AngleFromDegrees(42)
	c := NewCircleFromAngle(NewUnitVector3d(0, 1, 0), r)
	got := c.OpeningAngle().Degrees()
	if math.Abs(got-42) > 1e-9 {
		t.Errorf("expected opening angle 42 degrees, got %v", got)
	}
}

func TestCircleEmptyAndFull(t *testing.T) {
	empty := EmptyCircle()
	full := FullCircle()
	if !empty.IsEmpty() {
		t.Errorf("expected EmptyCircle to report IsEmpty")
	}
	if !full.IsFull() {
		t.Errorf("expected FullCircle to report IsFull")
	}
	if empty.Contains(NewUnitVector3d(1, 0, 0)) {
		t.Errorf("empty circle should contain nothing")
	}
	if !full.Contains(NewUnitVector3d(0, 0, 1)) {
		t.Errorf("full circle should contain every point")
	}
}

func TestCircleEncodeDecodeRoundTrip(t *testing.T) {
	c := NewCircleFromAngle(NewUnitVector3d(1, 2, 3), AngleFromDegrees(15))
	decoded, err := DecodeRegion(c.Encode())
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	dc, ok := decoded.(Circle)
	if !ok {
		t.Fatalf("expected a Circle, got %T", decoded)
	}
	if math.Abs(dc.SquaredChordLength()-c.SquaredChordLength()) > 1e-12 {
		t.Errorf("expected matching squared chord length, got %v want %v", dc.SquaredChordLength(), c.SquaredChordLength())
	}
}

func TestCircleDilatedErodedBy(t *testing.T) {
	c := NewCircleFromAngle(NewUnitVector3d(1, 0, 0), AngleFromDegrees(10))
	dilated := c.DilatedBy(AngleFromDegrees(5))
	if math.Abs(dilated.OpeningAngle().Degrees()-15) > 1e-9 {
		t.Errorf("expected dilated opening angle 15 degrees, got %v", dilated.OpeningAngle().Degrees())
	}
	eroded := c.ErodedBy(AngleFromDegrees(5))
	if math.Abs(eroded.OpeningAngle().Degrees()-5) > 1e-9 {
		t.Errorf("expected eroded opening angle 5 degrees, got %v", eroded.OpeningAngle().Degrees())
	}
}
