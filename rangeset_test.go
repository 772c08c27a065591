package sphgeom

import (
	"slices"
	"testing"
)

func TestRangeSetFromBoundariesRoundTrip(t *testing.T) {
	testCases := []struct {
		name   string
		bounds []uint64
	}{
		{"single", []uint64{10, 20}},
		{"multiple", []uint64{10, 20, 30, 40, 100, 200}},
		{"wrapsToMax", []uint64{10, 20, 1000, 0}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rs, err := RangeSetFromBoundaries(tc.bounds)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := rs.Boundaries()
			if !slices.Equal(got, tc.bounds) {
				t.Errorf("expected boundaries %v, got %v", tc.bounds, got)
			}
		})
	}
}

func TestRangeSetFromBoundariesRejectsInvalid(t *testing.T) {
	testCases := []struct {
		name   string
		bounds []uint64
	}{
		{"oddLength", []uint64{10, 20, 30}},
		{"notIncreasing", []uint64{10, 5}},
		{"overlapping", []uint64{10, 20, 15, 30}},
		{"wrapNotLast", []uint64{10, 0, 20, 30}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := RangeSetFromBoundaries(tc.bounds); err == nil {
				t.Errorf("expected an error for %v", tc.bounds)
			}
		})
	}
}

func TestRangeSetContains(t *testing.T) {
	rs := NewRangeSet(10, 20).Union(NewRangeSet(30, 40))
	testCases := []struct {
		x    uint64
		want bool
	}{
		{5, false},
		{10, true},
		{19, true},
		{20, false},
		{35, true},
		{40, false},
	}
	for _, tc := range testCases {
		if got := rs.Contains(tc.x); got != tc.want {
			t.Errorf("Contains(%d) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestRangeSetUnionIntersectionDifference(t *testing.T) {
	a := NewRangeSet(0, 10).Union(NewRangeSet(20, 30))
	b := NewRangeSet(5, 25)

	union := a.Union(b)
	if !union.Contains(0) || !union.Contains(7) || !union.Contains(22) || !union.Contains(29) {
		t.Errorf("union missing expected members: %v", union)
	}

	intersection := a.Intersection(b)
	if intersection.Contains(0) || !intersection.Contains(7) || !intersection.Contains(20) || intersection.Contains(29) {
		t.Errorf("unexpected intersection contents: %v", intersection)
	}

	diff := a.Difference(b)
	if !diff.Contains(0) || diff.Contains(7) || diff.Contains(20) {
		t.Errorf("unexpected difference contents: %v", diff)
	}

	symDiff := a.SymmetricDifference(b)
	if symDiff.Contains(7) || !symDiff.Contains(0) || !symDiff.Contains(15) {
		t.Errorf("unexpected symmetric difference contents: %v", symDiff)
	}
}

func TestRangeSetComplement(t *testing.T) {
	rs := NewRangeSet(10, 20)
	comp := rs.Complement()
	if comp.Contains(15) {
		t.Errorf("complement should not contain values in the original set")
	}
	if !comp.Contains(0) || !comp.Contains(25) {
		t.Errorf("complement should contain values outside the original set")
	}
	if !rs.Union(comp).IsFull() {
		t.Errorf("a set unioned with its complement should be full")
	}
	if !rs.Intersection(comp).IsEmpty() {
		t.Errorf("a set intersected with its complement should be empty")
	}
}

func TestRangeSetSimplifyMergesSmallestGapFirst(t *testing.T) {
	rs, err := RangeSetFromBoundaries([]uint64{0, 10, 11, 20, 100, 200})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := rs.Simplify(2)
	if got.NumRanges() != 2 {
		t.Fatalf("expected 2 ranges after simplification, got %d", got.NumRanges())
	}
	ranges := got.Ranges()
	if ranges[0][0] != 0 || ranges[0][1] != 20 {
		t.Errorf("expected the two closest ranges to merge into [0, 20), got %v", ranges[0])
	}
}

func TestRangeSetSimplifyNoOpWhenAlreadySmallEnough(t *testing.T) {
	rs := NewRangeSet(0, 10).Union(NewRangeSet(20, 30))
	got := rs.Simplify(5)
	if got.NumRanges() != 2 {
		t.Errorf("expected simplify to be a no-op, got %d ranges", got.NumRanges())
	}
	if got := rs.Simplify(0); got.NumRanges() != 2 {
		t.Errorf("expected Simplify(0) to be a no-op")
	}
}

func TestFullRangeSetContainsEverything(t *testing.T) {
	full := FullRangeSet()
	if !full.IsFull() {
		t.Errorf("expected FullRangeSet to report IsFull")
	}
	if !full.Contains(0) || !full.Contains(^uint64(0)) {
		t.Errorf("expected the full set to contain both uint64 extremes")
	}
}
