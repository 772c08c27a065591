package sphgeom

import "math"

// NormalizedAngleInterval is the set {theta : theta in [a, b] (mod 2*pi)}
// with a, b in [0, 2*pi). When a <= b this is the ordinary closed interval
// [a, b]; when a > b the interval wraps through 0, representing
// [a, 2*pi) union [0, b]. Empty and full are both distinguished values
// rather than being encoded via a or b alone, which keeps the wrap-around
// arithmetic below unambiguous.
type NormalizedAngleInterval struct {
	a, b  NormalizedAngle
	empty bool
	full  bool
}

// NewNormalizedAngleInterval builds the arc from a to b, going in the
// direction of increasing angle (wrapping through 0 if b < a).
func NewNormalizedAngleInterval(a, b NormalizedAngle) NormalizedAngleInterval {
	return NormalizedAngleInterval{a: a, b: b}
}

// EmptyNormalizedAngleInterval returns the empty interval.
func EmptyNormalizedAngleInterval() NormalizedAngleInterval {
	return NormalizedAngleInterval{empty: true}
}

// FullNormalizedAngleInterval returns the interval containing every angle.
func FullNormalizedAngleInterval() NormalizedAngleInterval {
	return NormalizedAngleInterval{full: true}
}

// IsEmpty reports whether the interval contains no angles.
func (i NormalizedAngleInterval) IsEmpty() bool { return i.empty }

// IsFull reports whether the interval contains every angle.
func (i NormalizedAngleInterval) IsFull() bool { return i.full }

// A returns the starting bound of the arc. Meaningless if empty or full.
func (i NormalizedAngleInterval) A() NormalizedAngle { return i.a }

// B returns the ending bound of the arc. Meaningless if empty or full.
func (i NormalizedAngleInterval) B() NormalizedAngle { return i.b }

// length returns the arc length in radians: 0 for empty, 2*pi for full.
func (i NormalizedAngleInterval) length() float64 {
	switch {
	case i.empty:
		return 0
	case i.full:
		return twoPi
	default:
		return wrapTwoPi(float64(i.b) - float64(i.a))
	}
}

func offsetFrom(origin, x NormalizedAngle) float64 {
	return wrapTwoPi(float64(x) - float64(origin))
}

// Contains reports whether x lies in the interval, for any representative
// of x modulo 2*pi (spec.md invariant 8).
func (i NormalizedAngleInterval) Contains(x NormalizedAngle) bool {
	if i.empty {
		return false
	}
	if i.full {
		return true
	}
	return offsetFrom(i.a, x) <= i.length()+1e-15
}

// ContainsInterval reports whether other is a subset of i.
func (i NormalizedAngleInterval) ContainsInterval(other NormalizedAngleInterval) bool {
	if other.empty {
		return true
	}
	if i.full {
		return true
	}
	if i.empty || other.full {
		return false
	}
	off := offsetFrom(i.a, other.a)
	return off <= i.length()+1e-15 && off+other.length() <= i.length()+1e-12
}

// Intersects reports whether i and other share at least one angle.
func (i NormalizedAngleInterval) Intersects(other NormalizedAngleInterval) bool {
	if i.empty || other.empty {
		return false
	}
	if i.full || other.full {
		return true
	}
	return i.Contains(other.a) || i.Contains(other.b) || other.Contains(i.a) || other.Contains(i.b)
}

// IsDisjointFrom reports whether i and other share no angles.
func (i NormalizedAngleInterval) IsDisjointFrom(other NormalizedAngleInterval) bool {
	return !i.Intersects(other)
}

// IsWithin reports whether i is a subset of other.
func (i NormalizedAngleInterval) IsWithin(other NormalizedAngleInterval) bool {
	return other.ContainsInterval(i)
}

// Relate returns the Relation bitmask describing how i relates to other.
func (i NormalizedAngleInterval) Relate(other NormalizedAngleInterval) Relation {
	var r Relation
	if i.ContainsInterval(other) {
		r |= Contains
	}
	if i.IsWithin(other) {
		r |= Within
	}
	if i.IsDisjointFrom(other) {
		r |= Disjoint
	} else {
		r |= Intersects
	}
	return r
}

// ExpandedTo returns the smallest arc containing both i and x. When two
// directions of expansion (extending the start backward, or the end
// forward) tie on final arc length, the direction that leaves a fixed
// wins, i.e. the end is extended forward.
func (i NormalizedAngleInterval) ExpandedTo(x NormalizedAngle) NormalizedAngleInterval {
	if i.full {
		return i
	}
	if i.empty {
		return NewNormalizedAngleInterval(x, x)
	}
	if i.Contains(x) {
		return i
	}
	addForward := wrapTwoPi(float64(x) - float64(i.b))
	addBackward := wrapTwoPi(float64(i.a) - float64(x))
	l := i.length()
	if addForward <= addBackward {
		if l+addForward >= twoPi-1e-12 {
			return FullNormalizedAngleInterval()
		}
		return NewNormalizedAngleInterval(i.a, x)
	}
	if l+addBackward >= twoPi-1e-12 {
		return FullNormalizedAngleInterval()
	}
	return NewNormalizedAngleInterval(x, i.b)
}

// ExpandedToInterval returns the smallest arc containing both i and other.
// The minimal covering arc of two arcs always starts and ends at one of
// their four endpoints, so every candidate is tried and the shortest valid
// one (i.e. one that actually contains both inputs) is kept.
func (i NormalizedAngleInterval) ExpandedToInterval(other NormalizedAngleInterval) NormalizedAngleInterval {
	if i.full || other.full {
		return FullNormalizedAngleInterval()
	}
	if i.empty {
		return other
	}
	if other.empty {
		return i
	}
	if i.ContainsInterval(other) {
		return i
	}
	if other.ContainsInterval(i) {
		return other
	}
	starts := [2]NormalizedAngle{i.a, other.a}
	ends := [2]NormalizedAngle{i.b, other.b}
	var best NormalizedAngleInterval
	bestLen := math.Inf(1)
	for _, s := range starts {
		for _, e := range ends {
			cand := NewNormalizedAngleInterval(s, e)
			if cand.ContainsInterval(i) && cand.ContainsInterval(other) && cand.length() < bestLen-1e-15 {
				best = cand
				bestLen = cand.length()
			}
		}
	}
	if math.IsInf(bestLen, 1) {
		return FullNormalizedAngleInterval()
	}
	return best
}

// ClippedTo returns i ∩ other, assuming the intersection is a single arc
// (true whenever i and other are not both "more than half the circle" in a
// way that makes them overlap in two separate places, an edge case this
// type does not attempt to represent since its storage holds only one arc).
func (i NormalizedAngleInterval) ClippedTo(other NormalizedAngleInterval) NormalizedAngleInterval {
	if i.empty || other.empty {
		return EmptyNormalizedAngleInterval()
	}
	if i.full {
		return other
	}
	if other.full {
		return i
	}
	if !i.Intersects(other) {
		return EmptyNormalizedAngleInterval()
	}
	var start, end NormalizedAngle
	if other.Contains(i.a) {
		start = i.a
	} else {
		start = other.a
	}
	if other.Contains(i.b) {
		end = i.b
	} else {
		end = other.b
	}
	return NewNormalizedAngleInterval(start, end)
}

// DilatedBy returns the arc widened by delta on each side (delta may be
// negative, i.e. an erosion).
func (i NormalizedAngleInterval) DilatedBy(delta Angle) NormalizedAngleInterval {
	if i.empty {
		return i
	}
	d := delta.Radians()
	newLen := i.length() + 2*d
	if newLen >= twoPi-1e-12 {
		return FullNormalizedAngleInterval()
	}
	if newLen <= 1e-15 {
		return EmptyNormalizedAngleInterval()
	}
	if i.full {
		return FullNormalizedAngleInterval()
	}
	return NewNormalizedAngleInterval(
		NormalizedAngleFromRadians(float64(i.a)-d),
		NormalizedAngleFromRadians(float64(i.b)+d),
	)
}

// ErodedBy shrinks the arc by delta on each side; equivalent to
// DilatedBy(-delta).
func (i NormalizedAngleInterval) ErodedBy(delta Angle) NormalizedAngleInterval {
	return i.DilatedBy(-delta)
}

func (i NormalizedAngleInterval) String() string {
	switch {
	case i.empty:
		return "NormalizedAngleInterval(empty)"
	case i.full:
		return "NormalizedAngleInterval(full)"
	default:
		return "NormalizedAngleInterval(" + formatFloat(float64(i.a)) + ", " + formatFloat(float64(i.b)) + ")"
	}
}
