package sphgeom

import "testing"

func TestDecodeRegionRoundTripsEveryKind(t *testing.T) {
	box := BoxFromDegrees(0, -10, 10, 10)
	circle := NewCircleFromAngle(NewUnitVector3d(1, 0, 0), AngleFromDegrees(20))
	ellipse := NewEllipse(NewUnitVector3d(1, 0, 0), UnitVector3dFromLonLat(LonLatFromDegrees(20, 0)), AngleFromDegrees(15))
	polygon := NewConvexPolygon(smallQuadCorners())
	union := NewUnionRegion(box, circle)
	intersection := NewIntersectionRegion(box, polygon)

	regions := []Region{box, circle, ellipse, polygon, union, intersection}
	for _, r := range regions {
		decoded, err := DecodeRegion(r.Encode())
		if err != nil {
			t.Fatalf("unexpected error decoding %T: %v", r, err)
		}
		if decoded == nil {
			t.Fatalf("expected a non-nil decoded region for %T", r)
		}
	}
}

func TestDecodeRegionRejectsEmptyInput(t *testing.T) {
	if _, err := DecodeRegion(nil); err == nil {
		t.Errorf("expected an error decoding an empty byte slice")
	}
}

func TestDecodeRegionRejectsUnrecognizedTag(t *testing.T) {
	if _, err := DecodeRegion([]byte{99, 0, 0, 0}); err == nil {
		t.Errorf("expected an error decoding an unrecognized tag")
	}
}

func TestDecodeRegionRejectsTruncatedPayload(t *testing.T) {
	box := BoxFromDegrees(0, -10, 10, 10)
	full := box.Encode()
	truncated := full[:len(full)-5]
	if _, err := DecodeRegion(truncated); err == nil {
		t.Errorf("expected an error decoding a truncated Box payload")
	}
}

func TestDecodeRegionRejectsCompoundWithTooFewOperands(t *testing.T) {
	op := BoxFromDegrees(0, -10, 10, 10).Encode()
	payload := append([]byte{unionRegionTag, 1, 0, 0, 0, byte(len(op)), 0, 0, 0}, op...)
	if _, err := DecodeRegion(payload); err == nil {
		t.Errorf("expected an error decoding a compound region with too few operands")
	}
}

func TestDecodeRegionRejectsNonFiniteBoxPayload(t *testing.T) {
	box := BoxFromDegrees(0, -10, 10, 10)
	data := box.Encode()
	// Corrupt lon.a into NaN bit pattern (all 1s is a NaN).
	for i := 1; i < 9; i++ {
		data[i] = 0xff
	}
	if _, err := DecodeRegion(data); err == nil {
		t.Errorf("expected an error decoding a Box payload with a non-finite value")
	}
}
