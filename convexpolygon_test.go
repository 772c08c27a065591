package sphgeom

import "testing"

func smallQuadCorners() []UnitVector3d {
	return []UnitVector3d{
		UnitVector3dFromLonLat(LonLatFromDegrees(0, 0)),
		UnitVector3dFromLonLat(LonLatFromDegrees(10, 0)),
		UnitVector3dFromLonLat(LonLatFromDegrees(10, 10)),
		UnitVector3dFromLonLat(LonLatFromDegrees(0, 10)),
	}
}

func TestConvexHullContainsInterior(t *testing.T) {
	hull, err := ConvexHull(smallQuadCorners())
	if err != nil {
		t.Fatalf("unexpected error building hull: %v", err)
	}
	if len(hull.Vertices) != 4 {
		t.Fatalf("expected 4 hull vertices, got %d", len(hull.Vertices))
	}
	inside := UnitVector3dFromLonLat(LonLatFromDegrees(5, 5))
	outside := UnitVector3dFromLonLat(LonLatFromDegrees(50, 50))
	if !hull.Contains(inside) {
		t.Errorf("expected the hull to contain its interior point")
	}
	if hull.Contains(outside) {
		t.Errorf("expected the hull not to contain a distant point")
	}
}

func TestConvexHullRejectsTooFewPoints(t *testing.T) {
	_, err := ConvexHull([]UnitVector3d{NewUnitVector3d(1, 0, 0), NewUnitVector3d(0, 1, 0)})
	if err == nil {
		t.Errorf("expected an error building a hull from fewer than 3 points")
	}
}

func TestNewConvexPolygonPanicsOnTooFewVertices(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic building a polygon with fewer than 3 vertices")
		}
	}()
	NewConvexPolygon([]UnitVector3d{NewUnitVector3d(1, 0, 0), NewUnitVector3d(0, 1, 0)})
}

func TestConvexPolygonContainsVertices(t *testing.T) {
	p := NewConvexPolygon(smallQuadCorners())
	for _, v := range p.Vertices {
		if !p.Contains(v) {
			t.Errorf("expected the polygon to contain its own vertex %v", v)
		}
	}
}

func TestConvexPolygonEncodeDecodeRoundTrip(t *testing.T) {
	p := NewConvexPolygon(smallQuadCorners())
	decoded, err := DecodeRegion(p.Encode())
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	dp, ok := decoded.(ConvexPolygon)
	if !ok {
		t.Fatalf("expected a ConvexPolygon, got %T", decoded)
	}
	if len(dp.Vertices) != len(p.Vertices) {
		t.Fatalf("expected %d vertices, got %d", len(p.Vertices), len(dp.Vertices))
	}
	inside := UnitVector3dFromLonLat(LonLatFromDegrees(5, 5))
	if !dp.Contains(inside) {
		t.Errorf("expected the decoded polygon to still contain the interior point")
	}
}

func TestConvexPolygonBoundingBox3dIsExactAtVertices(t *testing.T) {
	p := NewConvexPolygon(smallQuadCorners())
	bb := p.BoundingBox3d()
	for _, v := range p.Vertices {
		if !bb.Contains(v.Vector()) {
			t.Errorf("expected bounding box3d to contain vertex %v", v)
		}
	}
}
