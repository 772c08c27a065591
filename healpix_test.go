package sphgeom

import (
	"math"
	"testing"
)

// fakeHealpixSource is a deterministic test double for HealpixSource: it
// partitions the sphere into 12 longitude sectors (NSide=1, so NPix=12
// matches the real HEALPix pixel count at that resolution), each spanning a
// generous latitude band so test points well away from the poles land
// unambiguously in one sector.
type fakeHealpixSource struct{}

const fakeHealpixSectorDeg = 30.0

func (fakeHealpixSource) NSide() int { return 1 }

func (fakeHealpixSource) AngToPix(lon, lat float64) uint64 {
	deg := lon * 180 / math.Pi
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	sector := uint64(deg / fakeHealpixSectorDeg)
	if sector > 11 {
		sector = 11
	}
	return sector
}

func (fakeHealpixSource) PixToPolygon(pix uint64) [][2]float64 {
	lonLo := float64(pix) * fakeHealpixSectorDeg * math.Pi / 180
	lonHi := lonLo + fakeHealpixSectorDeg*math.Pi/180
	latLo := -80 * math.Pi / 180
	latHi := 80 * math.Pi / 180
	corners := []UnitVector3d{
		UnitVector3dFromLonLat(LonLat{Lon: NormalizedAngleFromRadians(lonLo), Lat: AngleFromRadians(latLo)}),
		UnitVector3dFromLonLat(LonLat{Lon: NormalizedAngleFromRadians(lonHi), Lat: AngleFromRadians(latLo)}),
		UnitVector3dFromLonLat(LonLat{Lon: NormalizedAngleFromRadians(lonHi), Lat: AngleFromRadians(latHi)}),
		UnitVector3dFromLonLat(LonLat{Lon: NormalizedAngleFromRadians(lonLo), Lat: AngleFromRadians(latHi)}),
	}
	hull, err := ConvexHull(corners)
	if err != nil {
		return nil
	}
	out := make([][2]float64, len(hull.Vertices))
	for i, v := range hull.Vertices {
		ll := v.LonLat()
		out[i] = [2]float64{ll.Lon.Radians(), ll.Lat.Radians()}
	}
	return out
}

func TestHealpixPixelizationIndexAndPixelRoundTrip(t *testing.T) {
	p := NewHealpixPixelization(fakeHealpixSource{})
	v := UnitVector3dFromLonLat(LonLatFromDegrees(45, 10))
	idx := p.Index(v)
	pixel := p.Pixel(idx)
	if !pixel.Contains(v) {
		t.Errorf("expected the pixel for a point's own index to contain that point")
	}
}

func TestHealpixPixelizationUniverseMatchesNPix(t *testing.T) {
	p := NewHealpixPixelization(fakeHealpixSource{})
	u := p.Universe()
	if u.NumRanges() != 1 {
		t.Fatalf("expected a single contiguous range, got %d", u.NumRanges())
	}
	ranges := u.Ranges()
	if ranges[0][0] != 0 || ranges[0][1] != 12 {
		t.Errorf("expected the universe to be [0, 12), got %v", ranges[0])
	}
}

func TestHealpixPixelizationToStringFormat(t *testing.T) {
	p := NewHealpixPixelization(fakeHealpixSource{})
	s := p.ToString(3)
	if s == "" {
		t.Errorf("expected a non-empty rendering of the pixel index")
	}
}

func TestHealpixPixelizationEnvelopeCoversIndexedPoint(t *testing.T) {
	p := NewHealpixPixelization(fakeHealpixSource{})
	center := UnitVector3dFromLonLat(LonLatFromDegrees(45, 10))
	region := NewCircleFromAngle(center, AngleFromDegrees(5))
	envelope := p.Envelope(region, 0)
	if !envelope.Contains(p.Index(center)) {
		t.Errorf("expected the envelope to contain the pixel index of the region's center")
	}
}

func TestHealpixPixelizationInteriorIsSubsetOfEnvelope(t *testing.T) {
	p := NewHealpixPixelization(fakeHealpixSource{})
	region := NewCircleFromAngle(UnitVector3dFromLonLat(LonLatFromDegrees(45, 10)), AngleFromDegrees(5))
	envelope := p.Envelope(region, 0)
	interior := p.Interior(region, 0)
	for _, rng := range interior.Ranges() {
		if !envelope.ContainsRange(rng[0], rng[1]) {
			t.Errorf("expected every interior range to be covered by the envelope, range %v is not", rng)
		}
	}
}
