package sphgeom

import "math"

// Ellipse is the spherical analog of a planar ellipse defined by its foci:
// the locus of points p such that the sum of the great-circle distances
// from p to the two foci is a constant, 2*alpha. Degenerating the two foci
// to the same point recovers a Circle of radius alpha. Relate pairs an
// Ellipse with any region through genericRelate, which samples the
// ellipse's boundary (spec.md §4.3.3).
type Ellipse struct {
	f1, f2 UnitVector3d
	alpha  Angle // negative means empty
}

// EmptyEllipse returns the ellipse containing no points.
func EmptyEllipse() Ellipse {
	return Ellipse{alpha: AngleFromRadians(-1)}
}

// NewEllipse builds the ellipse with foci f1, f2 and focal angular sum
// 2*alpha. Returns the empty ellipse if alpha is negative or smaller than
// half the angular separation between the foci (too small to reach both
// foci from any point).
func NewEllipse(f1, f2 UnitVector3d, alpha Angle) Ellipse {
	if alpha.Radians() < 0 {
		return EmptyEllipse()
	}
	sep := f1.AngleTo(f2).Radians()
	if alpha.Radians() < sep/2-1e-12 {
		return EmptyEllipse()
	}
	return Ellipse{f1: f1, f2: f2, alpha: alpha}
}

// IsEmpty reports whether the ellipse contains no points.
func (e Ellipse) IsEmpty() bool { return e.alpha.Radians() < 0 }

// Foci returns the two focus points.
func (e Ellipse) Foci() (UnitVector3d, UnitVector3d) { return e.f1, e.f2 }

// Alpha returns the focal angular sum parameter (half the constant sum of
// distances to the foci).
func (e Ellipse) Alpha() Angle { return e.alpha }

// Contains reports whether v lies within the ellipse.
func (e Ellipse) Contains(v UnitVector3d) bool {
	if e.IsEmpty() {
		return false
	}
	return e.f1.AngleTo(v).Radians()+e.f2.AngleTo(v).Radians() <= 2*e.alpha.Radians()+1e-12
}

// ContainsVectors is the vectorized form of Contains.
func (e Ellipse) ContainsVectors(x, y, z []float64) []bool {
	out := make([]bool, len(x))
	for i := range x {
		out[i] = e.Contains(NewUnitVector3d(x[i], y[i], z[i]))
	}
	return out
}

// ContainsLonLat is the vectorized form of Contains over (lon, lat) pairs in
// radians.
func (e Ellipse) ContainsLonLat(lon, lat []float64) []bool {
	out := make([]bool, len(lon))
	for i := range lon {
		p := UnitVector3dFromLonLat(LonLat{Lon: NormalizedAngleFromRadians(lon[i]), Lat: clampLat(AngleFromRadians(lat[i]))})
		out[i] = e.Contains(p)
	}
	return out
}

// Relate returns how e relates to other. There is no specialized exact
// formula for a pair of ellipses (or an ellipse and any other kind), so
// this always defers to the documented sampling fallback (spec.md §4.3.3).
func (e Ellipse) Relate(other Region) Relation {
	return genericRelate(e, other)
}

// Overlaps reports whether e and other share any points.
func (e Ellipse) Overlaps(other Region) Overlap {
	return genericOverlaps(e.Relate(other))
}

// center returns the point midway between the two foci along the great
// circle connecting them (or an arbitrary point if the foci coincide).
func (e Ellipse) center() UnitVector3d {
	sum := e.f1.Vector().Add(e.f2.Vector())
	if sum.IsZero() {
		return e.f1.anyOrthogonal()
	}
	return sum.Normalized()
}

// BoundingBox returns a lon/lat Box enclosing e, derived from its bounding
// circle's box (not minimal, but always valid).
func (e Ellipse) BoundingBox() Box {
	return e.BoundingCircle().BoundingBox()
}

// BoundingBox3d returns an axis-aligned Box3d enclosing e, derived from its
// bounding circle's Box3d (not minimal, but always valid).
func (e Ellipse) BoundingBox3d() Box3d {
	if e.IsEmpty() {
		return EmptyBox3d()
	}
	return e.BoundingCircle().BoundingBox3d()
}

// BoundingCircle returns a circle guaranteed to contain e: centered midway
// between the foci, with radius alpha plus half the angular separation
// between the foci (the spherical analog of a planar ellipse's semi-major
// axis bound). Not necessarily minimal.
func (e Ellipse) BoundingCircle() Circle {
	if e.IsEmpty() {
		return EmptyCircle()
	}
	sep := e.f1.AngleTo(e.f2).Angle()
	return NewCircleFromAngle(e.center(), e.alpha+sep/2)
}

// boundarySample returns n points approximating the ellipse's boundary,
// found by bisecting the angular gap between "contains" and "does not
// contain" along n rays from the center -- the sampling technique spec.md
// §4.3.3 prescribes in place of a closed-form boundary parametrization.
func (e Ellipse) boundarySample(n int) []UnitVector3d {
	if e.IsEmpty() || n <= 0 {
		return nil
	}
	c := e.center()
	north := c.NorthFrom()
	east := c.Cross(north)
	cv, nv, ev := c.Vector(), north.Vector(), east
	pts := make([]UnitVector3d, n)
	for i := 0; i < n; i++ {
		phi := 2 * math.Pi * float64(i) / float64(n)
		dir := nv.Scale(math.Cos(phi)).Add(ev.Scale(math.Sin(phi)))
		lo, hi := 0.0, math.Pi
		for iter := 0; iter < 40; iter++ {
			mid := (lo + hi) / 2
			p := cv.Scale(math.Cos(mid)).Add(dir.Scale(math.Sin(mid))).Normalized()
			if e.Contains(p) {
				lo = mid
			} else {
				hi = mid
			}
		}
		pts[i] = cv.Scale(math.Cos(lo)).Add(dir.Scale(math.Sin(lo))).Normalized()
	}
	return pts
}

// Clone returns a copy of e.
func (e Ellipse) Clone() Region { return e }

// ellipseTag is the binary-encoding tag byte for Ellipse (spec.md §4.3.6).
const ellipseTag byte = 3

// Encode returns the tagged binary encoding of e: tag byte, f1 xyz, f2 xyz,
// alpha, all as little-endian float64s.
func (e Ellipse) Encode() []byte {
	out := make([]byte, 1+7*8)
	out[0] = ellipseTag
	if e.IsEmpty() {
		for i := 0; i < 6; i++ {
			putF64(out[1+i*8:], 0)
		}
		putF64(out[1+6*8:], -1)
		return out
	}
	putF64(out[1:], e.f1.X())
	putF64(out[9:], e.f1.Y())
	putF64(out[17:], e.f1.Z())
	putF64(out[25:], e.f2.X())
	putF64(out[33:], e.f2.Y())
	putF64(out[41:], e.f2.Z())
	putF64(out[49:], e.alpha.Radians())
	return out
}

// decodeEllipsePayload decodes the fixed-size payload following the tag
// byte.
func decodeEllipsePayload(data []byte) (Ellipse, error) {
	if len(data) < 56 {
		return Ellipse{}, NewDecodeError("truncated Ellipse payload: need 56 bytes, got %d", len(data))
	}
	vals := make([]float64, 7)
	for i := range vals {
		vals[i] = getF64(data[i*8:])
	}
	if !allFinite(vals...) {
		return Ellipse{}, NewDecodeError("Ellipse payload contains a non-finite value")
	}
	if vals[6] < 0 {
		return EmptyEllipse(), nil
	}
	f1 := UnitVector3dFromNormalized(Vector3d{X: vals[0], Y: vals[1], Z: vals[2]})
	f2 := UnitVector3dFromNormalized(Vector3d{X: vals[3], Y: vals[4], Z: vals[5]})
	return NewEllipse(f1, f2, AngleFromRadians(vals[6])), nil
}
