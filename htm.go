package sphgeom

import (
	"fmt"
)

// HTMMaxLevel is the deepest subdivision level this package supports,
// matching the 24-level limit documented in spec.md for the Hierarchical
// Triangular Mesh pixelization (beyond that, indices stop fitting
// comfortably in a uint64 alongside the root-triangle bits).
const HTMMaxLevel = 24

// htmRootVertices are the 6 octahedron vertices the 8 root triangles are
// built from: north pole, four equatorial points 90 degrees apart, south
// pole.
var htmRootVertices = [6]UnitVector3d{
	NewUnitVector3d(0, 0, 1),
	NewUnitVector3d(1, 0, 0),
	NewUnitVector3d(0, 1, 0),
	NewUnitVector3d(-1, 0, 0),
	NewUnitVector3d(0, -1, 0),
	NewUnitVector3d(0, 0, -1),
}

// htmRootTriangles lists the 8 root triangles as index triples into
// htmRootVertices, in spec.md's S0-S3/N0-N3 order (southern hemisphere
// triangles first, then northern): root triangle k gets pixel index 8+k at
// level 0, so the (+X,+Y,+Z) octant -- N3 -- lands at the highest root id,
// 15 (spec.md §8.B/§8.E's ground-truth indices are only consistent with
// this assignment).
var htmRootTriangles = [8][3]int{
	{5, 2, 1}, {5, 3, 2}, {5, 4, 3}, {5, 1, 4}, // S0..S3
	{0, 2, 3}, {0, 3, 4}, {0, 4, 1}, {0, 1, 2}, // N0..N3
}

// HTMPixelization implements the Hierarchical Triangular Mesh (spec.md
// §5.1): a quadtree of spherical triangles rooted at the 8 faces of an
// inscribed octahedron, each subdivided into 4 children by connecting edge
// midpoints.
type HTMPixelization struct {
	level int
}

// NewHTMPixelization returns the HTM pixelization at the given subdivision
// level (0 through HTMMaxLevel). Panics via logicError if level is out of
// range.
func NewHTMPixelization(level int) HTMPixelization {
	if level < 0 || level > HTMMaxLevel {
		logicError("HTM level %d out of range [0, %d]", level, HTMMaxLevel)
	}
	return HTMPixelization{level: level}
}

// Level returns the pixelization's subdivision level.
func (p HTMPixelization) Level() int { return p.level }

type htmTriangle struct {
	verts [3]UnitVector3d
	idx   uint64
	level int
	maxLv int
}

func (t htmTriangle) index() uint64 { return t.idx }

func (t htmTriangle) relation(r Region) Relation {
	tri, err := ConvexHull(t.verts[:])
	if err != nil {
		// Degenerate triangle (shouldn't happen for valid HTM input);
		// treat conservatively as intersecting.
		return Intersects
	}
	rel := tri.Relate(r)
	// tri.Relate answers "how does tri relate to r", which is already the
	// sense coverTree expects (cell contains r => Contains, cell within r =>
	// Within), so it is returned unchanged.
	return rel
}

func (t htmTriangle) children() []pixelTreeNode {
	if t.level >= t.maxLv {
		return nil
	}
	m01 := midpoint(t.verts[0], t.verts[1])
	m12 := midpoint(t.verts[1], t.verts[2])
	m20 := midpoint(t.verts[2], t.verts[0])
	childVerts := [4][3]UnitVector3d{
		{t.verts[0], m01, m20},
		{t.verts[1], m12, m01},
		{t.verts[2], m20, m12},
		{m01, m12, m20},
	}
	out := make([]pixelTreeNode, 4)
	for i, v := range childVerts {
		out[i] = htmTriangle{verts: v, idx: t.idx*4 + uint64(i), level: t.level + 1, maxLv: t.maxLv}
	}
	return out
}

func midpoint(a, b UnitVector3d) UnitVector3d {
	return a.Vector().Add(b.Vector()).Normalized()
}

func (p HTMPixelization) rootTriangle(root int) htmTriangle {
	idxs := htmRootTriangles[root]
	return htmTriangle{
		verts: [3]UnitVector3d{htmRootVertices[idxs[0]], htmRootVertices[idxs[1]], htmRootVertices[idxs[2]]},
		idx:   uint64(8 + root),
		level: 0,
		maxLv: p.level,
	}
}

func (p HTMPixelization) triangleContains(t htmTriangle, v UnitVector3d) bool {
	n0 := t.verts[0].Cross(t.verts[1])
	n1 := t.verts[1].Cross(t.verts[2])
	n2 := t.verts[2].Cross(t.verts[0])
	return v.DotVector(n0) >= -1e-12 && v.DotVector(n1) >= -1e-12 && v.DotVector(n2) >= -1e-12
}

// Universe returns the RangeSet spanning every valid index at this level:
// [4^level * 8, 4^level * 16).
func (p HTMPixelization) Universe() RangeSet {
	lo := uint64(8) << uint(2*p.level)
	hi := uint64(16) << uint(2*p.level)
	return NewRangeSet(lo, hi)
}

// Pixel returns the spherical triangle (as a ConvexPolygon) for index i.
// Panics via logicError if i is not a valid index at this level.
func (p HTMPixelization) Pixel(i uint64) Region {
	t := p.findTriangle(i)
	poly, err := ConvexHull(t.verts[:])
	if err != nil {
		logicError("HTM pixel %d produced a degenerate triangle: %v", i, err)
	}
	return poly
}

func (p HTMPixelization) findTriangle(i uint64) htmTriangle {
	lo, hi := p.Universe().Ranges()[0][0], p.Universe().Ranges()[0][1]
	if hi == 0 {
		hi = ^uint64(0)
	}
	if i < lo || i >= hi {
		logicError("HTM index %d is not valid at level %d", i, p.level)
	}
	// Strip off 2 bits per level, from the deepest level back up to the
	// root, to recover the root triangle and the child path.
	path := make([]int, p.level)
	x := i
	for l := p.level - 1; l >= 0; l-- {
		path[l] = int(x & 3)
		x >>= 2
	}
	root := int(x) - 8
	t := p.rootTriangle(root)
	for _, d := range path {
		kids := t.children()
		t = kids[d].(htmTriangle)
	}
	return t
}

// Index returns the index of the deepest-level HTM triangle containing v.
func (p HTMPixelization) Index(v UnitVector3d) uint64 {
	var root = -1
	for r := 0; r < 8; r++ {
		if p.triangleContains(p.rootTriangle(r), v) {
			root = r
			break
		}
	}
	if root < 0 {
		logicError("point %v does not lie in any HTM root triangle", v)
	}
	t := p.rootTriangle(root)
	for l := 0; l < p.level; l++ {
		kids := t.children()
		picked := false
		for _, k := range kids {
			ht := k.(htmTriangle)
			if p.triangleContains(ht, v) {
				t = ht
				picked = true
				break
			}
		}
		if !picked {
			// Point landed exactly on a shared edge; fall back to the
			// first child, which is a defensible tie-break for a
			// measure-zero boundary case.
			t = kids[0].(htmTriangle)
		}
	}
	return t.idx
}

// ToString renders i in the conventional "NdDDDD..." / "SdDDDD..." form:
// N or S for the hemisphere, the root triangle number 0-3, then the child
// digit at each subsequent level.
func (p HTMPixelization) ToString(i uint64) string {
	lvl := p.level
	x := i
	path := make([]int, lvl)
	for l := lvl - 1; l >= 0; l-- {
		path[l] = int(x & 3)
		x >>= 2
	}
	root := int(x) - 8
	hemi := "S"
	rootNum := root
	if root >= 4 {
		hemi = "N"
		rootNum = root - 4
	}
	s := fmt.Sprintf("%s%d", hemi, rootNum)
	for _, d := range path {
		s += fmt.Sprintf("%d", d)
	}
	return s
}

// Envelope returns a superset RangeSet of indexes covering r.
func (p HTMPixelization) Envelope(r Region, maxRanges int) RangeSet {
	return p.cover(r, false, maxRanges)
}

// Interior returns a subset RangeSet of indexes fully contained in r.
func (p HTMPixelization) Interior(r Region, maxRanges int) RangeSet {
	return p.cover(r, true, maxRanges)
}

func (p HTMPixelization) cover(r Region, interior bool, maxRanges int) RangeSet {
	rs := EmptyRangeSet()
	for root := 0; root < 8; root++ {
		t := p.rootTriangle(root)
		rs = rs.Union(coverTree(t, r, interior, 0))
	}
	return rs.Simplify(maxRanges)
}
