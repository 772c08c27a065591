package sphgeom

import (
	"encoding/binary"
	"math"
)

// Box is an axis-aligned longitude/latitude region: a NormalizedAngleInterval
// of longitude crossed with an AngleInterval of latitude clipped to
// [-pi/2, +pi/2]. It is empty iff either component is empty.
type Box struct {
	Lon NormalizedAngleInterval
	Lat AngleInterval
}

// FullBox returns the box covering the entire sphere.
func FullBox() Box {
	return Box{Lon: FullNormalizedAngleInterval(), Lat: NewAngleInterval(AngleFromRadians(-math.Pi/2), AngleFromRadians(math.Pi/2))}
}

// EmptyBox returns the empty box.
func EmptyBox() Box {
	return Box{Lon: EmptyNormalizedAngleInterval(), Lat: EmptyAngleInterval()}
}

// NewBox builds a box from a longitude and latitude interval, clamping the
// latitude interval into [-pi/2, +pi/2].
func NewBox(lon NormalizedAngleInterval, lat AngleInterval) Box {
	if lat.IsEmpty() {
		return Box{Lon: lon, Lat: lat}
	}
	clamped := NewAngleInterval(clampLat(lat.A()), clampLat(lat.B()))
	return Box{Lon: lon, Lat: clamped}
}

// NewBoxFromPoint builds the single-point box at p.
func NewBoxFromPoint(p LonLat) Box {
	return Box{
		Lon: NewNormalizedAngleInterval(p.Lon, p.Lon),
		Lat: NewAngleInterval(p.Lat, p.Lat),
	}
}

// BoxFromRadians builds a box from raw radian bounds (lon1, lat1) to
// (lon2, lat2).
func BoxFromRadians(lon1, lat1, lon2, lat2 float64) Box {
	return NewBox(
		NewNormalizedAngleInterval(NormalizedAngleFromRadians(lon1), NormalizedAngleFromRadians(lon2)),
		NewAngleInterval(AngleFromRadians(lat1), AngleFromRadians(lat2)),
	)
}

// BoxFromDegrees builds a box from raw degree bounds.
func BoxFromDegrees(lon1, lat1, lon2, lat2 float64) Box {
	return BoxFromRadians(lon1*math.Pi/180, lat1*math.Pi/180, lon2*math.Pi/180, lat2*math.Pi/180)
}

// IsEmpty reports whether the box is empty.
func (b Box) IsEmpty() bool { return b.Lon.IsEmpty() || b.Lat.IsEmpty() }

// IsFull reports whether the box covers the entire sphere.
func (b Box) IsFull() bool {
	return b.Lon.IsFull() && b.Lat.A().Radians() <= -math.Pi/2+1e-15 && b.Lat.B().Radians() >= math.Pi/2-1e-15
}

// Contains reports whether v lies in the box.
func (b Box) Contains(v UnitVector3d) bool {
	if b.IsEmpty() {
		return false
	}
	p := v.LonLat()
	return b.Lon.Contains(p.Lon) && b.Lat.Contains(p.Lat)
}

// ContainsVectors is the vectorized form of Contains.
func (b Box) ContainsVectors(x, y, z []float64) []bool {
	out := make([]bool, len(x))
	for i := range x {
		out[i] = b.Contains(NewUnitVector3d(x[i], y[i], z[i]))
	}
	return out
}

// ContainsLonLat is the vectorized form of Contains over (lon, lat) pairs
// in radians.
func (b Box) ContainsLonLat(lon, lat []float64) []bool {
	out := make([]bool, len(lon))
	for i := range lon {
		if b.IsEmpty() {
			out[i] = false
			continue
		}
		out[i] = b.Lon.Contains(NormalizedAngleFromRadians(lon[i])) && b.Lat.Contains(clampLat(AngleFromRadians(lat[i])))
	}
	return out
}

// Relate returns how b relates to other.
func (b Box) Relate(other Region) Relation {
	if ob, ok := other.(Box); ok {
		return boxRelate(b, ob)
	}
	return genericRelate(b, other)
}

// Overlaps reports whether b and other share any points.
func (b Box) Overlaps(other Region) Overlap {
	return genericOverlaps(b.Relate(other))
}

func boxRelate(a, b Box) Relation {
	if a.IsEmpty() || b.IsEmpty() {
		if a.IsEmpty() && b.IsEmpty() {
			return Contains | Within | Disjoint
		}
		if a.IsEmpty() {
			return Within | Disjoint
		}
		return Contains | Disjoint
	}
	lonR := a.Lon.Relate(b.Lon)
	latR := a.Lat.Relate(b.Lat)
	var r Relation
	if lonR.Has(Contains) && latR.Has(Contains) {
		r |= Contains
	}
	if lonR.Has(Within) && latR.Has(Within) {
		r |= Within
	}
	if lonR.Has(Disjoint) || latR.Has(Disjoint) {
		r |= Disjoint
	} else {
		r |= Intersects
	}
	return r
}

// BoundingBox returns b itself.
func (b Box) BoundingBox() Box { return b }

// BoundingBox3d returns the smallest Box3d enclosing b. x and y are a
// function of longitude times cos(latitude), and z is sin(latitude), so
// every extreme lies at an edge latitude or the box latitude closest to 0,
// combined with an edge longitude or a multiple of pi/2 inside the box.
func (b Box) BoundingBox3d() Box3d {
	if b.IsEmpty() {
		return EmptyBox3d()
	}
	lat0 := AngleFromRadians(math.Max(b.Lat.A().Radians(), math.Min(b.Lat.B().Radians(), 0)))
	lats := []Angle{b.Lat.A(), b.Lat.B(), lat0}
	lons := []NormalizedAngle{b.Lon.A(), b.Lon.B()}
	for k := 0.0; k < 4; k++ {
		if l := NormalizedAngleFromRadians(k * math.Pi / 2); b.Lon.Contains(l) {
			lons = append(lons, l)
		}
	}
	var pts []UnitVector3d
	for _, lo := range lons {
		for _, la := range lats {
			pts = append(pts, UnitVector3dFromLonLat(LonLat{Lon: lo, Lat: la}))
		}
	}
	return boundingBox3dOf(pts)
}

// corners returns the four corners of the box or, when the box spans a
// full circle of longitude, the points at longitudes 0, pi/2, pi and 3pi/2
// on both latitude edges.
func (b Box) corners() []UnitVector3d {
	if b.IsEmpty() {
		return nil
	}
	lons := []NormalizedAngle{b.Lon.A(), b.Lon.B()}
	if b.Lon.IsFull() {
		lons = []NormalizedAngle{
			0,
			NormalizedAngleFromRadians(math.Pi / 2),
			NormalizedAngleFromRadians(math.Pi),
			NormalizedAngleFromRadians(3 * math.Pi / 2),
		}
	}
	lats := []Angle{b.Lat.A(), b.Lat.B()}
	pts := make([]UnitVector3d, 0, len(lons)*len(lats))
	for _, lo := range lons {
		for _, la := range lats {
			pts = append(pts, UnitVector3dFromLonLat(LonLat{Lon: lo, Lat: la}))
		}
	}
	return pts
}

// BoundingCircle returns a Circle centered at the box's center point, with
// radius equal to the great-circle distance to the farthest corner.
func (b Box) BoundingCircle() Circle {
	if b.IsEmpty() {
		return EmptyCircle()
	}
	if b.IsFull() {
		return FullCircle()
	}
	centerLon := NormalizedAngleFromRadians(float64(b.Lon.A()) + b.Lon.length()/2)
	centerLat := AngleFromRadians((b.Lat.A().Radians() + b.Lat.B().Radians()) / 2)
	center := UnitVector3dFromLonLat(LonLat{Lon: centerLon, Lat: centerLat})
	var maxChord2 float64
	for _, c := range b.corners() {
		if d := center.SquaredChordLength(c); d > maxChord2 {
			maxChord2 = d
		}
	}
	return NewCircleFromSquaredChordLength(center, maxChord2)
}

// DilatedBy widens the box by lonDelta in longitude and latDelta in
// latitude, clamping the resulting latitude interval to the poles.
func (b Box) DilatedBy(lonDelta Angle, latDelta Angle) Box {
	if b.IsEmpty() {
		return b
	}
	return NewBox(b.Lon.DilatedBy(lonDelta), b.Lat.DilatedBy(latDelta))
}

// ErodedBy shrinks the box; equivalent to DilatedBy with negated deltas.
func (b Box) ErodedBy(lonDelta Angle, latDelta Angle) Box {
	return b.DilatedBy(-lonDelta, -latDelta)
}

// ExpandedTo returns the smallest box containing both b and p.
func (b Box) ExpandedTo(p LonLat) Box {
	if b.IsEmpty() {
		return NewBoxFromPoint(p)
	}
	return NewBox(b.Lon.ExpandedTo(p.Lon), b.Lat.ExpandedTo(p.Lat))
}

// ExpandedToBox returns the smallest box containing both b and other.
func (b Box) ExpandedToBox(other Box) Box {
	if b.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return b
	}
	return NewBox(b.Lon.ExpandedToInterval(other.Lon), b.Lat.ExpandedToInterval(other.Lat))
}

// ClippedTo returns b ∩ other.
func (b Box) ClippedTo(other Box) Box {
	return NewBox(b.Lon.ClippedTo(other.Lon), b.Lat.ClippedTo(other.Lat))
}

// Clone returns a copy of b (Box is already an immutable value type, so
// this is just a value copy; the method exists to satisfy Region).
func (b Box) Clone() Region { return b }

// boxTag is the binary-encoding tag byte for Box (spec.md §4.3.6).
const boxTag byte = 1

// Encode returns the tagged binary encoding of b: tag byte followed by
// lon.a, lon.b, lat.a, lat.b as little-endian float64s.
func (b Box) Encode() []byte {
	out := make([]byte, 1+4*8)
	out[0] = boxTag
	putF64(out[1:], float64(b.Lon.A()))
	putF64(out[9:], float64(b.Lon.B()))
	putF64(out[17:], b.Lat.A().Radians())
	putF64(out[25:], b.Lat.B().Radians())
	return out
}

// decodeBoxPayload decodes the fixed-size payload following the tag byte.
func decodeBoxPayload(data []byte) (Box, error) {
	if len(data) < 32 {
		return Box{}, NewDecodeError("truncated Box payload: need 32 bytes, got %d", len(data))
	}
	lonA := getF64(data[0:])
	lonB := getF64(data[8:])
	latA := getF64(data[16:])
	latB := getF64(data[24:])
	if !allFinite(lonA, lonB, latA, latB) {
		return Box{}, NewDecodeError("Box payload contains a non-finite value")
	}
	return NewBox(
		NewNormalizedAngleInterval(NormalizedAngleFromRadians(lonA), NormalizedAngleFromRadians(lonB)),
		NewAngleInterval(AngleFromRadians(latA), AngleFromRadians(latB)),
	), nil
}

func putF64(b []byte, v float64) {
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
}

func getF64(b []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

func allFinite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
