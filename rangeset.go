package sphgeom

import (
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// bound is an endpoint in the uint64 range space [0, 2^64). Because Go's
// uint64 cannot itself represent the value 2^64, an exclusive end of 2^64 is
// represented by the inf flag rather than by any uint64 value -- this is
// the Go rendering of the "final end value of 0 means 2^64" wrap encoding
// documented in spec.md's RangeSet data model.
type bound struct {
	v   uint64
	inf bool
}

func (b bound) less(o bound) bool {
	if b.inf {
		return false
	}
	if o.inf {
		return true
	}
	return b.v < o.v
}

// span is one half-open range [begin, end) of the set, where end may be
// the "infinite" bound meaning the range runs through the top of uint64
// space inclusive.
type span struct {
	begin uint64
	end   bound
}

// RangeSet is a sorted, disjoint sequence of half-open ranges of uint64.
// The zero value is the empty set.
type RangeSet struct {
	spans []span
}

// EmptyRangeSet returns the empty RangeSet.
func EmptyRangeSet() RangeSet { return RangeSet{} }

// FullRangeSet returns the RangeSet containing every uint64.
func FullRangeSet() RangeSet {
	return RangeSet{spans: []span{{begin: 0, end: bound{inf: true}}}}
}

// NewRangeSet returns the RangeSet containing the single range [a, b), using
// the wrap convention: b == 0 means the range runs through 2^64 (so a == 0,
// b == 0 denotes the full set); a >= b with b != 0 means the range wraps
// through the top, i.e. [a, 2^64) union [0, b).
func NewRangeSet(a, b uint64) RangeSet {
	return RangeSet{spans: singletonSpans(a, b)}
}

func singletonSpans(a, b uint64) []span {
	if b == 0 {
		return []span{{begin: a, end: bound{inf: true}}}
	}
	if a < b {
		return []span{{begin: a, end: bound{v: b}}}
	}
	// a >= b, b != 0: wraps through the top.
	return []span{
		{begin: 0, end: bound{v: b}},
		{begin: a, end: bound{inf: true}},
	}
}

// RangeSetFromBoundaries reconstructs a RangeSet from the flat boundary
// encoding of spec.md §6/§3: an even-length array where index 2k is an
// inclusive start and 2k+1 is an exclusive end, with a final end value of 0
// meaning 2^64. Returns a DecodeError if the array has odd length, is not
// strictly increasing, or places a wrap-to-max boundary anywhere but last.
func RangeSetFromBoundaries(bounds []uint64) (RangeSet, error) {
	if len(bounds)%2 != 0 {
		return RangeSet{}, NewDecodeError("range set boundary list has odd length %d", len(bounds))
	}
	spans := make([]span, 0, len(bounds)/2)
	for i := 0; i < len(bounds); i += 2 {
		a, b := bounds[i], bounds[i+1]
		if b == 0 {
			if i != len(bounds)-2 {
				return RangeSet{}, NewDecodeError("range set wrap-to-max boundary is only valid in the final range")
			}
			spans = append(spans, span{begin: a, end: bound{inf: true}})
			continue
		}
		if b <= a {
			return RangeSet{}, NewDecodeError("range set boundaries not increasing at index %d", i)
		}
		spans = append(spans, span{begin: a, end: bound{v: b}})
	}
	for i := 1; i < len(spans); i++ {
		prev := spans[i-1]
		if prev.end.inf || spans[i].begin <= prev.end.v {
			return RangeSet{}, NewDecodeError("range set ranges are not sorted and disjoint at index %d", i)
		}
	}
	return RangeSet{spans: spans}, nil
}

// Boundaries returns the flat encoding described in spec.md §6: an even
// length array of uint64 where index 2k is an inclusive start and 2k+1 an
// exclusive end, the last end being 0 if and only if the set reaches 2^64.
func (rs RangeSet) Boundaries() []uint64 {
	out := make([]uint64, 0, 2*len(rs.spans))
	for _, s := range rs.spans {
		e := s.end.v
		if s.end.inf {
			e = 0
		}
		out = append(out, s.begin, e)
	}
	return out
}

// Ranges returns the (begin, end) pairs of the set in ascending order, with
// a final end of 0 meaning 2^64 (mirroring Boundaries but paired up).
func (rs RangeSet) Ranges() [][2]uint64 {
	out := make([][2]uint64, len(rs.spans))
	for i, s := range rs.spans {
		e := s.end.v
		if s.end.inf {
			e = 0
		}
		out[i] = [2]uint64{s.begin, e}
	}
	return out
}

// NumRanges returns the number of disjoint ranges stored.
func (rs RangeSet) NumRanges() int { return len(rs.spans) }

// IsEmpty reports whether the set contains no values.
func (rs RangeSet) IsEmpty() bool { return len(rs.spans) == 0 }

// IsFull reports whether the set contains every uint64.
func (rs RangeSet) IsFull() bool {
	return len(rs.spans) == 1 && rs.spans[0].begin == 0 && rs.spans[0].end.inf
}

// Clone returns a deep copy of rs.
func (rs RangeSet) Clone() RangeSet {
	return RangeSet{spans: append([]span(nil), rs.spans...)}
}

// Contains reports whether x is a member of the set.
func (rs RangeSet) Contains(x uint64) bool {
	idx, _ := slices.BinarySearchFunc(rs.spans, x, func(s span, x uint64) int {
		if s.begin > x {
			return 1
		}
		return -1
	})
	if idx == 0 {
		return false
	}
	s := rs.spans[idx-1]
	return s.end.inf || x < s.end.v
}

// ContainsRange reports whether every value in [a, b) (with the same wrap
// convention as NewRangeSet) is a member of the set.
func (rs RangeSet) ContainsRange(a, b uint64) bool {
	return rs.ContainsSet(NewRangeSet(a, b))
}

// ContainsSet reports whether rs is a superset of other.
func (rs RangeSet) ContainsSet(other RangeSet) bool {
	return other.Difference(rs).IsEmpty()
}

// Within reports whether rs is a subset of other.
func (rs RangeSet) Within(other RangeSet) bool {
	return other.ContainsSet(rs)
}

// Intersects reports whether rs and other share at least one value.
func (rs RangeSet) Intersects(other RangeSet) bool {
	return !rs.Intersection(other).IsEmpty()
}

// IsDisjointFrom reports whether rs and other share no values.
func (rs RangeSet) IsDisjointFrom(other RangeSet) bool {
	return !rs.Intersects(other)
}

// Union returns rs ∪ other.
func (rs RangeSet) Union(other RangeSet) RangeSet {
	return combine(rs, other, func(a, b bool) bool { return a || b })
}

// Intersection returns rs ∩ other.
func (rs RangeSet) Intersection(other RangeSet) RangeSet {
	return combine(rs, other, func(a, b bool) bool { return a && b })
}

// Difference returns rs − other.
func (rs RangeSet) Difference(other RangeSet) RangeSet {
	return combine(rs, other, func(a, b bool) bool { return a && !b })
}

// SymmetricDifference returns rs ⊕ other.
func (rs RangeSet) SymmetricDifference(other RangeSet) RangeSet {
	return combine(rs, other, func(a, b bool) bool { return a != b })
}

// Complement returns [0, 2^64) \ rs.
func (rs RangeSet) Complement() RangeSet {
	var out []span
	prev := uint64(0)
	for _, s := range rs.spans {
		if s.begin > prev {
			out = append(out, span{begin: prev, end: bound{v: s.begin}})
		}
		if s.end.inf {
			return RangeSet{spans: out}
		}
		prev = s.end.v
	}
	out = append(out, span{begin: prev, end: bound{inf: true}})
	return RangeSet{spans: out}
}

// Insert returns rs ∪ [a, b), using NewRangeSet's wrap convention for
// (a, b).
func (rs RangeSet) Insert(a, b uint64) RangeSet {
	return rs.Union(NewRangeSet(a, b))
}

// Erase returns rs − [a, b), using NewRangeSet's wrap convention for
// (a, b).
func (rs RangeSet) Erase(a, b uint64) RangeSet {
	return rs.Difference(NewRangeSet(a, b))
}

// combine implements every pairwise set operation as a single sweep over
// the boundary points of a and b, evaluating op(inA, inB) on each resulting
// sub-interval. a and b must each already be sorted, disjoint and merged,
// which every RangeSet constructor in this file maintains.
func combine(a, b RangeSet, op func(inA, inB bool) bool) RangeSet {
	pointSet := make(map[uint64]struct{}, 2*(len(a.spans)+len(b.spans)))
	addPoints := func(rs RangeSet) {
		for _, s := range rs.spans {
			pointSet[s.begin] = struct{}{}
			if !s.end.inf {
				pointSet[s.end.v] = struct{}{}
			}
		}
	}
	addPoints(a)
	addPoints(b)
	points := maps.Keys(pointSet)
	slices.Sort(points)

	var out []span
	insideA, insideB := false, false
	ai, bi := 0, 0
	curActive := false
	var curStart uint64

	toggle := func(spans []span, idx *int, inside *bool, p uint64) {
		if *idx >= len(spans) {
			return
		}
		sp := spans[*idx]
		if !*inside && sp.begin == p {
			*inside = true
		} else if *inside && !sp.end.inf && sp.end.v == p {
			*inside = false
			*idx++
		}
	}

	for _, p := range points {
		toggle(a.spans, &ai, &insideA, p)
		toggle(b.spans, &bi, &insideB, p)
		want := op(insideA, insideB)
		switch {
		case want && !curActive:
			curStart = p
			curActive = true
		case !want && curActive:
			out = append(out, span{begin: curStart, end: bound{v: p}})
			curActive = false
		}
	}
	if curActive {
		// Still active past the last finite boundary point: the only way
		// that happens is a span from a or b whose end is the infinite
		// bound, left open.
		out = append(out, span{begin: curStart, end: bound{inf: true}})
	}
	return RangeSet{spans: out}
}

// Simplify coalesces ranges, repeatedly merging the adjacent pair with the
// smallest gap (ties broken by the lower index), until at most maxRanges
// ranges remain. Simplify(0) is a no-op.
func (rs RangeSet) Simplify(maxRanges int) RangeSet {
	if maxRanges <= 0 || len(rs.spans) <= maxRanges {
		return rs
	}
	spans := append([]span(nil), rs.spans...)
	for len(spans) > maxRanges {
		minGap := ^uint64(0)
		minIdx := -1
		for i := 0; i < len(spans)-1; i++ {
			if spans[i].end.inf {
				continue
			}
			gap := spans[i+1].begin - spans[i].end.v
			if gap < minGap {
				minGap = gap
				minIdx = i
			}
		}
		if minIdx < 0 {
			break
		}
		merged := span{begin: spans[minIdx].begin, end: spans[minIdx+1].end}
		next := append([]span{merged}, spans[minIdx+2:]...)
		spans = append(spans[:minIdx], next...)
	}
	return RangeSet{spans: spans}
}

func (rs RangeSet) String() string {
	if rs.IsEmpty() {
		return "RangeSet()"
	}
	s := "RangeSet("
	for i, r := range rs.Ranges() {
		if i > 0 {
			s += ", "
		}
		s += "[" + strconv.FormatUint(r[0], 10) + ", "
		if r[1] == 0 {
			s += "2^64)"
		} else {
			s += strconv.FormatUint(r[1], 10) + ")"
		}
	}
	return s + ")"
}
