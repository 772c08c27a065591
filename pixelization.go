package sphgeom

// Pixelization is the capability shared by every hierarchical pixelization
// scheme this package provides (HTM, Q3C, MQ3C, and the external-HEALPix
// wrapper). It is grounded on the LocationIndexer shape the teacher repo
// uses to map a location to a storage key, generalized to the spherical
// domain: instead of indexing rows in a table, a Pixelization indexes
// points on the sky into a quadtree of cells.
type Pixelization interface {
	// Universe returns the RangeSet of every valid pixel index at this
	// pixelization's level.
	Universe() RangeSet

	// Pixel returns the Region covered by the pixel with the given index.
	// Panics via logicError if i is not a valid index for this level.
	Pixel(i uint64) Region

	// Index returns the index of the pixel containing v.
	Index(v UnitVector3d) uint64

	// ToString renders a pixel index in this pixelization's canonical
	// human-readable form.
	ToString(i uint64) string

	// Envelope returns a RangeSet of pixel indexes that is guaranteed to
	// cover r (a superset), simplified to at most maxRanges ranges if
	// maxRanges > 0.
	Envelope(r Region, maxRanges int) RangeSet

	// Interior returns a RangeSet of pixel indexes that are each entirely
	// contained within r (a subset of Envelope's result), simplified to at
	// most maxRanges ranges if maxRanges > 0.
	Interior(r Region, maxRanges int) RangeSet
}

// pixelTreeNode is a cell in coverTree, the shared recursive descent every tree-structured
// pixelization (HTM, Q3C, MQ3C) uses to compute Envelope/Interior: test the
// current cell against the region, and recurse into children only when the
// relationship is not already decided (grounded in spec.md's description of
// hierarchical pixelization range-set queries, and in the teacher's
// LocationIndexer range-scan pattern of narrowing a search space in stages).
type pixelTreeNode interface {
	// relation returns how this cell relates to r.
	relation(r Region) Relation
	// index returns this cell's pixel index.
	index() uint64
	// children returns this cell's child cells, or nil at the maximum
	// level.
	children() []pixelTreeNode
}

func coverTree(root pixelTreeNode, r Region, interior bool, maxRanges int) RangeSet {
	rs := EmptyRangeSet()
	var walk func(n pixelTreeNode)
	walk = func(n pixelTreeNode) {
		rel := n.relation(r)
		switch {
		case rel.Has(Disjoint):
			return
		case rel.Has(Within):
			// The cell is entirely inside r: always valid for both
			// Envelope and Interior.
			rs = rs.Insert(n.index(), n.index()+1)
			return
		default:
			kids := n.children()
			if len(kids) == 0 {
				// Leaf cell that merely intersects r: valid for Envelope
				// (it's a superset), but only valid for Interior if it
				// happens to be fully contained, which Relate already
				// would have reported as Within above.
				if !interior {
					rs = rs.Insert(n.index(), n.index()+1)
				}
				return
			}
			for _, k := range kids {
				walk(k)
			}
		}
	}
	walk(root)
	return rs.Simplify(maxRanges)
}
