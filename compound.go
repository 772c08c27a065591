package sphgeom

// UnionRegion is the union of two or more operand regions. It implements
// Region exactly like an atomic region (spec.md §4.3.5 capability, not
// inheritance): nothing downstream needs to know a UnionRegion isn't a
// Box or a Circle.
type UnionRegion struct {
	Operands []Region
}

// NewUnionRegion builds the union of the given regions, flattening any
// operand that is itself a UnionRegion so that Operands never nests.
// Panics via logicError if fewer than 2 regions are given.
func NewUnionRegion(regions ...Region) UnionRegion {
	if len(regions) < 2 {
		logicError("a union region needs at least 2 operands, got %d", len(regions))
	}
	var flat []Region
	for _, r := range regions {
		if u, ok := r.(UnionRegion); ok {
			flat = append(flat, u.Operands...)
		} else {
			flat = append(flat, r)
		}
	}
	return UnionRegion{Operands: flat}
}

// Contains reports whether v lies in any operand.
func (u UnionRegion) Contains(v UnitVector3d) bool {
	for _, r := range u.Operands {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

// ContainsVectors is the vectorized form of Contains.
func (u UnionRegion) ContainsVectors(x, y, z []float64) []bool {
	out := make([]bool, len(x))
	for i := range x {
		out[i] = u.Contains(NewUnitVector3d(x[i], y[i], z[i]))
	}
	return out
}

// ContainsLonLat is the vectorized form of Contains over (lon, lat) pairs in
// radians.
func (u UnionRegion) ContainsLonLat(lon, lat []float64) []bool {
	out := make([]bool, len(lon))
	for i := range lon {
		p := UnitVector3dFromLonLat(LonLat{Lon: NormalizedAngleFromRadians(lon[i]), Lat: clampLat(AngleFromRadians(lat[i]))})
		out[i] = u.Contains(p)
	}
	return out
}

// Relate returns how u relates to other. There is no specialized formula
// for compound regions, so this always defers to the sampling fallback
// (spec.md §4.3.5), which is exact whenever every operand's sample points
// fully determine its boundary (true when every operand is a Box or
// ConvexPolygon).
func (u UnionRegion) Relate(other Region) Relation {
	return genericRelate(u, other)
}

// Overlaps reports whether any operand overlaps other -- true as soon as
// one operand is known to intersect, unknown if any operand's answer was
// unknown and none was known true, false only if every operand is known
// disjoint.
func (u UnionRegion) Overlaps(other Region) Overlap {
	sawUnknown := false
	for _, r := range u.Operands {
		switch r.Overlaps(other) {
		case OverlapTrue:
			return OverlapTrue
		case OverlapUnknown:
			sawUnknown = true
		}
	}
	if sawUnknown {
		return OverlapUnknown
	}
	return OverlapFalse
}

// BoundingBox returns the smallest lon/lat Box enclosing every operand.
func (u UnionRegion) BoundingBox() Box {
	b := EmptyBox()
	for _, r := range u.Operands {
		b = b.ExpandedToBox(r.BoundingBox())
	}
	return b
}

// BoundingBox3d returns the smallest axis-aligned Box3d enclosing every
// operand.
func (u UnionRegion) BoundingBox3d() Box3d {
	b := EmptyBox3d()
	for _, r := range u.Operands {
		b = b.ExpandedToBox3d(r.BoundingBox3d())
	}
	return b
}

// BoundingCircle returns a circle guaranteed to contain every operand.
func (u UnionRegion) BoundingCircle() Circle {
	return boundingCircleOf(regionSamplePoints(u))
}

// Clone returns a deep copy of u.
func (u UnionRegion) Clone() Region {
	ops := make([]Region, len(u.Operands))
	for i, r := range u.Operands {
		ops[i] = r.Clone()
	}
	return UnionRegion{Operands: ops}
}

// unionRegionTag is the binary-encoding tag byte for UnionRegion
// (spec.md §4.3.6).
const unionRegionTag byte = 5

// Encode returns the tagged binary encoding of u: tag byte, operand count as
// a little-endian uint32, then each operand's own tagged encoding
// (length-prefixed with a little-endian uint32) in order.
func (u UnionRegion) Encode() []byte {
	return encodeCompound(unionRegionTag, u.Operands)
}

// IntersectionRegion is the intersection of two or more operand regions.
type IntersectionRegion struct {
	Operands []Region
}

// NewIntersectionRegion builds the intersection of the given regions,
// flattening any operand that is itself an IntersectionRegion. Panics via
// logicError if fewer than 2 regions are given.
func NewIntersectionRegion(regions ...Region) IntersectionRegion {
	if len(regions) < 2 {
		logicError("an intersection region needs at least 2 operands, got %d", len(regions))
	}
	var flat []Region
	for _, r := range regions {
		if i, ok := r.(IntersectionRegion); ok {
			flat = append(flat, i.Operands...)
		} else {
			flat = append(flat, r)
		}
	}
	return IntersectionRegion{Operands: flat}
}

// Contains reports whether v lies in every operand.
func (r IntersectionRegion) Contains(v UnitVector3d) bool {
	for _, op := range r.Operands {
		if !op.Contains(v) {
			return false
		}
	}
	return true
}

// ContainsVectors is the vectorized form of Contains.
func (r IntersectionRegion) ContainsVectors(x, y, z []float64) []bool {
	out := make([]bool, len(x))
	for i := range x {
		out[i] = r.Contains(NewUnitVector3d(x[i], y[i], z[i]))
	}
	return out
}

// ContainsLonLat is the vectorized form of Contains over (lon, lat) pairs in
// radians.
func (r IntersectionRegion) ContainsLonLat(lon, lat []float64) []bool {
	out := make([]bool, len(lon))
	for i := range lon {
		p := UnitVector3dFromLonLat(LonLat{Lon: NormalizedAngleFromRadians(lon[i]), Lat: clampLat(AngleFromRadians(lat[i]))})
		out[i] = r.Contains(p)
	}
	return out
}

// Relate returns how r relates to other, via the sampling fallback.
func (r IntersectionRegion) Relate(other Region) Relation {
	return genericRelate(r, other)
}

// Overlaps reports whether the intersection overlaps other: false as soon
// as one operand is known disjoint from other, unknown if any operand's
// answer was unknown and none was known false, true only if every operand
// is known to overlap.
func (r IntersectionRegion) Overlaps(other Region) Overlap {
	sawUnknown := false
	for _, op := range r.Operands {
		switch op.Overlaps(other) {
		case OverlapFalse:
			return OverlapFalse
		case OverlapUnknown:
			sawUnknown = true
		}
	}
	if sawUnknown {
		return OverlapUnknown
	}
	return OverlapTrue
}

// BoundingBox returns the smallest lon/lat Box known to enclose the
// intersection, computed as the clip of all operands' own bounding boxes
// (a valid, if not always minimal, superset).
func (r IntersectionRegion) BoundingBox() Box {
	if len(r.Operands) == 0 {
		return EmptyBox()
	}
	b := r.Operands[0].BoundingBox()
	for _, op := range r.Operands[1:] {
		b = b.ClippedTo(op.BoundingBox())
	}
	return b
}

// BoundingBox3d returns the clip of every operand's own Box3d.
func (r IntersectionRegion) BoundingBox3d() Box3d {
	if len(r.Operands) == 0 {
		return EmptyBox3d()
	}
	b := r.Operands[0].BoundingBox3d()
	for _, op := range r.Operands[1:] {
		b = b.ClippedTo(op.BoundingBox3d())
	}
	return b
}

// BoundingCircle returns the operand bounding circle with the smallest
// opening angle -- any operand's bounding circle is itself a valid superset
// of the intersection, so the tightest one found is kept.
func (r IntersectionRegion) BoundingCircle() Circle {
	if len(r.Operands) == 0 {
		return EmptyCircle()
	}
	best := r.Operands[0].BoundingCircle()
	for _, op := range r.Operands[1:] {
		if c := op.BoundingCircle(); c.OpeningAngle().Radians() < best.OpeningAngle().Radians() {
			best = c
		}
	}
	return best
}

// Clone returns a deep copy of r.
func (r IntersectionRegion) Clone() Region {
	ops := make([]Region, len(r.Operands))
	for i, op := range r.Operands {
		ops[i] = op.Clone()
	}
	return IntersectionRegion{Operands: ops}
}

// intersectionRegionTag is the binary-encoding tag byte for
// IntersectionRegion (spec.md §4.3.6).
const intersectionRegionTag byte = 6

// Encode returns the tagged binary encoding of r, in the same
// length-prefixed operand-list form as UnionRegion.Encode.
func (r IntersectionRegion) Encode() []byte {
	return encodeCompound(intersectionRegionTag, r.Operands)
}

func encodeCompound(tag byte, operands []Region) []byte {
	out := []byte{tag}
	out = append(out, make([]byte, 4)...)
	putU32(out[1:], uint32(len(operands)))
	for _, op := range operands {
		enc := op.Encode()
		lenBuf := make([]byte, 4)
		putU32(lenBuf, uint32(len(enc)))
		out = append(out, lenBuf...)
		out = append(out, enc...)
	}
	return out
}
