package sphgeom

import "testing"

func TestBoxContains(t *testing.T) {
	b := BoxFromDegrees(10, -10, 20, 10)
	inside := UnitVector3dFromLonLat(LonLatFromDegrees(15, 0))
	outside := UnitVector3dFromLonLat(LonLatFromDegrees(50, 0))
	if !b.Contains(inside) {
		t.Errorf("expected box to contain the interior point")
	}
	if b.Contains(outside) {
		t.Errorf("expected box not to contain the exterior point")
	}
}

func TestBoxRelate(t *testing.T) {
	outer := BoxFromDegrees(0, -10, 30, 10)
	inner := BoxFromDegrees(10, -5, 20, 5)
	disjoint := BoxFromDegrees(100, -5, 110, 5)

	if !outer.Relate(inner).Has(Contains) {
		t.Errorf("expected outer to contain inner")
	}
	if !inner.Relate(outer).Has(Within) {
		t.Errorf("expected inner to be within outer")
	}
	if !outer.Relate(disjoint).Has(Disjoint) {
		t.Errorf("expected outer and disjoint box to be disjoint")
	}
}

func TestBoxEmptyAndFull(t *testing.T) {
	empty := EmptyBox()
	full := FullBox()
	if !empty.IsEmpty() {
		t.Errorf("expected EmptyBox to report IsEmpty")
	}
	if !full.IsFull() {
		t.Errorf("expected FullBox to report IsFull")
	}
	if empty.Contains(UnitVector3dFromLonLat(LonLatFromDegrees(0, 0))) {
		t.Errorf("empty box should contain nothing")
	}
	if !full.Contains(UnitVector3dFromLonLat(LonLatFromDegrees(123, 45))) {
		t.Errorf("full box should contain every point")
	}
}

func TestBoxEncodeDecodeRoundTrip(t *testing.T) {
	b := BoxFromDegrees(10, -20, 30, 40)
	data := b.Encode()
	decoded, err := DecodeRegion(data)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	db, ok := decoded.(Box)
	if !ok {
		t.Fatalf("expected a Box, got %T", decoded)
	}
	if db.Lon.A() != b.Lon.A() || db.Lon.B() != b.Lon.B() {
		t.Errorf("longitude round trip mismatch: got [%v, %v], want [%v, %v]", db.Lon.A(), db.Lon.B(), b.Lon.A(), b.Lon.B())
	}
	if db.Lat.A() != b.Lat.A() || db.Lat.B() != b.Lat.B() {
		t.Errorf("latitude round trip mismatch: got [%v, %v], want [%v, %v]", db.Lat.A(), db.Lat.B(), b.Lat.A(), b.Lat.B())
	}
}

func TestBoxDilatedErodedBy(t *testing.T) {
	b := BoxFromDegrees(10, -10, 20, 10)
	dilated := b.DilatedBy(AngleFromDegrees(5), AngleFromDegrees(5))
	if dilated.Lon.A().Degrees() > 5.001 || dilated.Lat.A().Radians() > AngleFromDegrees(-15).Radians()+1e-9 {
		t.Errorf("expected dilation to widen both dimensions, got %v", dilated)
	}
	eroded := b.ErodedBy(AngleFromDegrees(4), AngleFromDegrees(4))
	if !eroded.Relate(b).Has(Within) {
		t.Errorf("expected erosion to be within the original box")
	}
}

func TestBoxBoundingCircleContainsBox(t *testing.T) {
	b := BoxFromDegrees(10, -10, 20, 10)
	bc := b.BoundingCircle()
	for _, c := range b.corners() {
		if !bc.Contains(c) {
			t.Errorf("expected bounding circle to contain corner %v", c)
		}
	}
}
