package gg

import "testing"

// TestEnsureEvenParity_DropsClosestPairOnOddCount exercises the
// structural-degeneracy guard directly: three true-intersection
// records (an odd count) on the same shape should come back as two,
// with the two closest records collapsed into one.
func TestEnsureEvenParity_DropsClosestPairOnOddCount(t *testing.T) {
	shape := NewCircle(Pt(0, 0), 10)

	records := []xRecord{
		{a: curveParam{curve: 0, t: 0.10}, b: curveParam{curve: 0, t: 0.10}, class: classIntersection},
		{a: curveParam{curve: 0, t: 0.11}, b: curveParam{curve: 0, t: 0.11}, class: classIntersection},
		{a: curveParam{curve: 2, t: 0.50}, b: curveParam{curve: 2, t: 0.50}, class: classIntersection},
	}

	got := ensureEvenParity(shape, records)

	if len(got) != 2 {
		t.Fatalf("ensureEvenParity() returned %d records, want 2", len(got))
	}

	// The surviving record must be the one far from the close pair:
	// one of the two near-duplicates at curve 0 was dropped.
	foundFar := false
	for _, r := range got {
		if r.a.curve == 2 {
			foundFar = true
		}
	}
	if !foundFar {
		t.Errorf("ensureEvenParity() dropped the far record instead of a near-duplicate: %+v", got)
	}
}

// TestEnsureEvenParity_LeavesEvenCountAlone confirms the guard is a
// no-op whenever the true-intersection count is already even,
// including when Common/CommonIntersection touches are mixed in.
func TestEnsureEvenParity_LeavesEvenCountAlone(t *testing.T) {
	shape := NewCircle(Pt(0, 0), 10)

	records := []xRecord{
		{a: curveParam{curve: 0, t: 0.25}, b: curveParam{curve: 0, t: 0.25}, class: classIntersection},
		{a: curveParam{curve: 1, t: 0.75}, b: curveParam{curve: 1, t: 0.75}, class: classIntersection},
		{a: curveParam{curve: 2, t: 0}, b: curveParam{curve: 2, t: 0}, class: classCommon},
	}

	got := ensureEvenParity(shape, records)

	if len(got) != len(records) {
		t.Errorf("ensureEvenParity() changed an already-even record set: got %d, want %d", len(got), len(records))
	}
}
