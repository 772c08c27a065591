package sphgeom

// Region is the capability shared by every spherical region kind: the four
// atomic kinds (Box, Circle, Ellipse, ConvexPolygon) and the two compound
// kinds (UnionRegion, IntersectionRegion). It is modeled as an interface
// rather than a class hierarchy (spec.md §9 "capability vs inheritance"):
// compound regions implement exactly the same set of methods as the atomic
// ones, adding nothing.
type Region interface {
	// Contains reports whether the region contains the point v.
	Contains(v UnitVector3d) bool

	// ContainsVectors is the vectorized form of Contains over raw
	// Cartesian coordinates; x, y and z must have equal length.
	ContainsVectors(x, y, z []float64) []bool

	// ContainsLonLat is the vectorized form of Contains over (lon, lat)
	// pairs in radians; lon and lat must have equal length.
	ContainsLonLat(lon, lat []float64) []bool

	// Relate returns the Relation bitmask describing how self relates to
	// other: the OR of every one of CONTAINS, WITHIN, DISJOINT,
	// INTERSECTS that holds.
	Relate(other Region) Relation

	// Overlaps reports whether self and other share any points. Unknown
	// is returned only when an exact answer is infeasible to compute in
	// polynomial time, which can only happen for compound regions.
	Overlaps(other Region) Overlap

	// BoundingBox returns an axis-aligned lon/lat Box containing the
	// region (not the smallest one for every kind, e.g. Ellipse).
	BoundingBox() Box

	// BoundingBox3d returns an axis-aligned 3-dimensional Box3d containing
	// the region (not the smallest one for every kind, e.g. Ellipse).
	BoundingBox3d() Box3d

	// BoundingCircle returns a spherical cap guaranteed to contain the
	// region (not necessarily the smallest one for every kind).
	BoundingCircle() Circle

	// Encode returns the tagged binary encoding described in spec.md §6.
	Encode() []byte

	// Clone returns a deep copy of the region.
	Clone() Region
}

// Box3d is an axis-aligned box in R^3, used as a 3-dimensional bounding
// volume for spherical regions (an often tighter fast-reject test than the
// lon/lat Box near the poles, where a lon/lat box becomes degenerate).
type Box3d struct {
	X, Y, Z Interval1d
}

// NewBox3d builds a Box3d from its three coordinate intervals.
func NewBox3d(x, y, z Interval1d) Box3d { return Box3d{X: x, Y: y, Z: z} }

// EmptyBox3d returns the empty Box3d (empty in any one dimension makes the
// whole box empty).
func EmptyBox3d() Box3d { return Box3d{X: EmptyInterval1d(), Y: EmptyInterval1d(), Z: EmptyInterval1d()} }

// IsEmpty reports whether any dimension of the box is empty.
func (b Box3d) IsEmpty() bool { return b.X.IsEmpty() || b.Y.IsEmpty() || b.Z.IsEmpty() }

// Contains reports whether v lies in the box.
func (b Box3d) Contains(v Vector3d) bool {
	return !b.IsEmpty() && b.X.Contains(v.X) && b.Y.Contains(v.Y) && b.Z.Contains(v.Z)
}

// ExpandedTo returns the smallest Box3d containing both b and v.
func (b Box3d) ExpandedTo(v Vector3d) Box3d {
	return Box3d{X: b.X.ExpandedTo(v.X), Y: b.Y.ExpandedTo(v.Y), Z: b.Z.ExpandedTo(v.Z)}
}

// ExpandedToBox3d returns the smallest Box3d containing both b and other.
func (b Box3d) ExpandedToBox3d(other Box3d) Box3d {
	return Box3d{
		X: b.X.ExpandedToInterval(other.X),
		Y: b.Y.ExpandedToInterval(other.Y),
		Z: b.Z.ExpandedToInterval(other.Z),
	}
}

// ClippedTo returns b ∩ other.
func (b Box3d) ClippedTo(other Box3d) Box3d {
	return Box3d{X: b.X.ClippedTo(other.X), Y: b.Y.ClippedTo(other.Y), Z: b.Z.ClippedTo(other.Z)}
}

// boundingBox3dOf computes the smallest Box3d enclosing a finite set of
// points.
func boundingBox3dOf(points []UnitVector3d) Box3d {
	b := EmptyBox3d()
	for _, p := range points {
		b = b.ExpandedTo(p.Vector())
	}
	return b
}

// boundingCircleOf computes a Circle guaranteed to contain every point in
// points, centered at their normalized centroid. Not necessarily minimal,
// but always valid, which is all spec.md requires of BoundingCircle.
func boundingCircleOf(points []UnitVector3d) Circle {
	if len(points) == 0 {
		return EmptyCircle()
	}
	var sum Vector3d
	for _, p := range points {
		sum = sum.Add(p.Vector())
	}
	if sum.IsZero() {
		return FullCircle()
	}
	center := sum.Normalized()
	var maxChord2 float64
	for _, p := range points {
		if c2 := center.SquaredChordLength(p); c2 > maxChord2 {
			maxChord2 = c2
		}
	}
	return NewCircleFromSquaredChordLength(center, maxChord2)
}

// regionSamplePoints returns a finite set of points that is exact for
// polygonal/box-like regions (their vertices fully determine containment)
// and a dense-enough boundary sample for curved regions (Circle, Ellipse)
// to make the generic cross-kind relate below a good approximation. Kinds
// with an exact pairwise formula (Box-Box, Circle-Circle) never call this;
// it backs the documented fallback path spec.md prescribes for Ellipse and
// for mixed-kind pairs generally (spec.md §4.3.3, §4.3.4).
func regionSamplePoints(r Region) []UnitVector3d {
	switch v := r.(type) {
	case Box:
		return v.corners()
	case Circle:
		return v.boundarySample(16)
	case Ellipse:
		return v.boundarySample(32)
	case ConvexPolygon:
		return v.Vertices
	case UnionRegion:
		var pts []UnitVector3d
		for _, op := range v.Operands {
			pts = append(pts, regionSamplePoints(op)...)
		}
		return pts
	case IntersectionRegion:
		var pts []UnitVector3d
		for _, op := range v.Operands {
			pts = append(pts, regionSamplePoints(op)...)
		}
		return pts
	default:
		return nil
	}
}

// genericRelate is the fallback Relate/Overlaps implementation for a pair
// of regions that have no specialized exact formula for each other. It
// first tries a bounding-circle fast rejection (exact: disjoint bounding
// circles imply disjoint regions), then falls back to sampling each
// region's representative points against the other's Contains test, the
// same technique spec.md §4.3.3 documents for Ellipse and §4.3.4 documents
// for ConvexPolygon. CONTAINS/WITHIN results from sampling are exact
// whenever the sampled region's boundary is determined by its sample
// points (true for Box and ConvexPolygon); for Circle and Ellipse they are
// a close approximation bounded by the sample density used above.
func genericRelate(self, other Region) Relation {
	bc1, bc2 := self.BoundingCircle(), other.BoundingCircle()
	if circleRelate(bc1, bc2).Has(Disjoint) {
		return Disjoint
	}
	otherPts := regionSamplePoints(other)
	selfPts := regionSamplePoints(self)
	selfContainsOther := len(otherPts) > 0
	for _, p := range otherPts {
		if !self.Contains(p) {
			selfContainsOther = false
			break
		}
	}
	otherContainsSelf := len(selfPts) > 0
	for _, p := range selfPts {
		if !other.Contains(p) {
			otherContainsSelf = false
			break
		}
	}
	var r Relation
	if selfContainsOther {
		r |= Contains
	}
	if otherContainsSelf {
		r |= Within
	}
	disjoint := true
	for _, p := range otherPts {
		if self.Contains(p) {
			disjoint = false
			break
		}
	}
	if disjoint {
		for _, p := range selfPts {
			if other.Contains(p) {
				disjoint = false
				break
			}
		}
	}
	if disjoint && !selfContainsOther && !otherContainsSelf {
		r |= Disjoint
	} else {
		r |= Intersects
	}
	return r
}

// genericOverlaps derives Overlap from a Relation computed by Relate.
func genericOverlaps(r Relation) Overlap {
	if r.Has(Disjoint) {
		return OverlapFalse
	}
	return OverlapTrue
}
