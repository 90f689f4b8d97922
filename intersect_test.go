package gg

import "testing"

func TestIntersectCubics_Lines(t *testing.T) {
	a := NewCubicBez(Pt(0, 0), Pt(3, 3), Pt(7, 7), Pt(10, 10))
	b := NewCubicBez(Pt(0, 10), Pt(3, 7), Pt(7, 3), Pt(10, 0))

	res := intersectCubics(a, b, true, true)
	if res.Kind != intersectPts {
		t.Fatalf("expected intersectPts, got %v", res.Kind)
	}
	if len(res.Points) != 1 {
		t.Fatalf("expected exactly one crossing, got %d", len(res.Points))
	}
	if !approxEqualPoint(res.Points[0].Point, Pt(5, 5)) {
		t.Errorf("crossing point = %v, want (5,5)", res.Points[0].Point)
	}
}

func TestIntersectCubics_ParallelLinesNoCrossing(t *testing.T) {
	a := NewCubicBez(Pt(0, 0), Pt(3, 0), Pt(7, 0), Pt(10, 0))
	b := NewCubicBez(Pt(0, 5), Pt(3, 5), Pt(7, 5), Pt(10, 5))

	res := intersectCubics(a, b, true, true)
	if res.Kind != intersectNone {
		t.Fatalf("expected intersectNone for disjoint parallel lines, got %v", res.Kind)
	}
}

func TestIntersectCubics_Curves(t *testing.T) {
	a := NewCubicBez(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0))
	b := NewCubicBez(Pt(0, 5), Pt(5, 5), Pt(5, 5), Pt(10, 5))

	res := intersectCubics(a, b, false, false)
	if res.Kind != intersectPts || len(res.Points) == 0 {
		t.Fatalf("expected at least one crossing between the curves, got kind=%v points=%d", res.Kind, len(res.Points))
	}
	for _, p := range res.Points {
		if !approxEqualPoint(a.Eval(p.TA), b.Eval(p.TB)) {
			t.Errorf("reported intersection does not evaluate consistently on both curves: a.Eval(%v)=%v b.Eval(%v)=%v",
				p.TA, a.Eval(p.TA), p.TB, b.Eval(p.TB))
		}
	}
}

func TestBoxesOverlap(t *testing.T) {
	a := NewRect(Pt(0, 0), Pt(10, 10))
	b := NewRect(Pt(5, 5), Pt(15, 15))
	c := NewRect(Pt(20, 20), Pt(30, 30))

	if !boxesOverlap(a, b) {
		t.Errorf("expected overlapping boxes to report true")
	}
	if boxesOverlap(a, c) {
		t.Errorf("expected disjoint boxes to report false")
	}
}
