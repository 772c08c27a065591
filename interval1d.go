package sphgeom

import "golang.org/x/exp/constraints"

// numeric is satisfied by every scalar this package builds intervals over:
// plain float64 (Interval1d) and Angle (AngleInterval). NormalizedAngleInterval
// is not an instantiation of this generic core -- its wrap-around semantics
// when a > b are fundamentally different from "empty" and get their own type.
type numeric = constraints.Float

// genInterval[T] is the shared implementation behind Interval1d and
// AngleInterval: a closed interval [a, b] of T, with a canonical empty value
// (ok == false, with a and b left at zero) distinguished from every
// non-empty interval.
type genInterval[T numeric] struct {
	a, b T
	ok   bool // false means empty
}

func newInterval[T numeric](a, b T) genInterval[T] {
	if a > b {
		return genInterval[T]{}
	}
	return genInterval[T]{a: a, b: b, ok: true}
}

// Interval1d is a closed interval [a, b] of plain real numbers, with a
// distinguished empty value.
type Interval1d = genInterval[float64]

// NewInterval1d builds the interval [a, b]. If a > b the result is empty.
func NewInterval1d(a, b float64) Interval1d { return newInterval(a, b) }

// EmptyInterval1d returns the empty Interval1d.
func EmptyInterval1d() Interval1d { return Interval1d{} }

// AngleInterval is a closed interval [a, b] of Angle, with a distinguished
// empty value. Unlike NormalizedAngleInterval it has no wrap-around: a must
// be <= b or the interval is empty.
type AngleInterval = genInterval[Angle]

// NewAngleInterval builds the interval [a, b]. If a > b the result is empty.
func NewAngleInterval(a, b Angle) AngleInterval { return newInterval(a, b) }

// EmptyAngleInterval returns the empty AngleInterval.
func EmptyAngleInterval() AngleInterval { return AngleInterval{} }

// IsEmpty reports whether the interval is the distinguished empty value.
func (i genInterval[T]) IsEmpty() bool { return !i.ok }

// A returns the lower bound. Meaningless if IsEmpty.
func (i genInterval[T]) A() T { return i.a }

// B returns the upper bound. Meaningless if IsEmpty.
func (i genInterval[T]) B() T { return i.b }

// Center returns the midpoint (a+b)/2. Meaningless if IsEmpty.
func (i genInterval[T]) Center() T { return (i.a + i.b) / 2 }

// Size returns b - a, or 0 if empty.
func (i genInterval[T]) Size() T {
	if i.IsEmpty() {
		return 0
	}
	return i.b - i.a
}

// Contains reports whether x lies in [a, b].
func (i genInterval[T]) Contains(x T) bool {
	return i.ok && i.a <= x && x <= i.b
}

// ContainsInterval reports whether other is a subset of i (i ⊇ other). The
// empty interval is a subset of every interval, including itself.
func (i genInterval[T]) ContainsInterval(other genInterval[T]) bool {
	if other.IsEmpty() {
		return true
	}
	return i.ok && i.a <= other.a && other.b <= i.b
}

// Intersects reports whether i and other share at least one point.
func (i genInterval[T]) Intersects(other genInterval[T]) bool {
	if i.IsEmpty() || other.IsEmpty() {
		return false
	}
	return i.a <= other.b && other.a <= i.b
}

// IsDisjointFrom reports whether i and other share no points. The empty
// interval is disjoint from everything, including itself.
func (i genInterval[T]) IsDisjointFrom(other genInterval[T]) bool {
	return !i.Intersects(other)
}

// IsWithin reports whether i is a subset of other (i ⊆ other).
func (i genInterval[T]) IsWithin(other genInterval[T]) bool {
	return other.ContainsInterval(i)
}

// Relate returns the Relation bitmask describing how i relates to other.
func (i genInterval[T]) Relate(other genInterval[T]) Relation {
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

// ExpandedTo returns the smallest interval containing both i and the point
// x.
func (i genInterval[T]) ExpandedTo(x T) genInterval[T] {
	if i.IsEmpty() {
		return newInterval(x, x)
	}
	a, b := i.a, i.b
	if x < a {
		a = x
	}
	if x > b {
		b = x
	}
	return newInterval(a, b)
}

// ExpandedToInterval returns the smallest interval containing both i and
// other.
func (i genInterval[T]) ExpandedToInterval(other genInterval[T]) genInterval[T] {
	if i.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return i
	}
	a, b := i.a, i.b
	if other.a < a {
		a = other.a
	}
	if other.b > b {
		b = other.b
	}
	return newInterval(a, b)
}

// ClippedTo returns i ∩ other.
func (i genInterval[T]) ClippedTo(other genInterval[T]) genInterval[T] {
	if i.IsEmpty() || other.IsEmpty() {
		return genInterval[T]{}
	}
	a, b := i.a, i.b
	if other.a > a {
		a = other.a
	}
	if other.b < b {
		b = other.b
	}
	return newInterval(a, b)
}

// DilatedBy returns [a-delta, b+delta]. delta may be negative, in which case
// this is an erosion; an erosion that would invert the interval produces
// the empty interval.
func (i genInterval[T]) DilatedBy(delta T) genInterval[T] {
	if i.IsEmpty() {
		return i
	}
	return newInterval(i.a-delta, i.b+delta)
}

// ErodedBy returns the interval shrunk by delta on each side; equivalent to
// DilatedBy(-delta).
func (i genInterval[T]) ErodedBy(delta T) genInterval[T] {
	return i.DilatedBy(-delta)
}
