package gg

import "math"

// intersectKind tags the outcome of intersecting two cubics.
type intersectKind int

const (
	intersectNone intersectKind = iota
	intersectASmallerInsideB
	intersectBSmallerInsideA
	intersectPts
)

// curveIntersection is one (point, t_A, t_B) triple produced by
// intersecting two cubics.
type curveIntersection struct {
	Point  Point
	TA, TB float64
}

// curveIntersectResult is the L3 public contract: either the curves
// don't meet, one lies entirely on the other (reported via the smaller
// bounding box), or a list of transverse/touching intersection points.
type curveIntersectResult struct {
	Kind   intersectKind
	Points []curveIntersection
}

// overlapSampleTs are 11 parameter values chosen to land on no anchor
// of either curve and spread irregularly across (0,1), used by the
// overlap pre-check below.
var overlapSampleTs = [11]float64{
	0.006263, 0.108011, 0.278309, 0.347826, 0.406593,
	0.437851, 0.548986, 0.686813, 0.85558, 0.935159, 0.977084,
}

// maxIntersectIterations is a hard cap protecting the recursive
// subdivision worklist against pathological curve overlap.
const maxIntersectIterations = 50000

// maxIntersectDepth caps recursion depth independent of the iteration
// budget, so a single deeply-nested pair can't starve the worklist.
const maxIntersectDepth = 30

// intersectCubics computes the intersection of two cubic Bezier
// curves. aIsLine and bIsLine report whether the caller's identity
// test (isLineSegment) classified each curve as a straight segment;
// when both are true the analytic line/line shortcut is used instead
// of recursive subdivision.
func intersectCubics(a, b CubicBez, aIsLine, bIsLine bool) curveIntersectResult {
	result := curveIntersectResult{Kind: intersectPts}
	result.Points = append(result.Points, endpointCoincidences(a, b)...)

	if aIsLine && bIsLine {
		if pt, ta, tb, ok := intersectLineLine(a, b); ok {
			return curveIntersectResult{Kind: intersectPts, Points: []curveIntersection{{pt, ta, tb}}}
		}
		if len(result.Points) > 0 {
			return result
		}
		return curveIntersectResult{Kind: intersectNone}
	}

	if kind, ok := overlapPreCheck(a, b); ok {
		return curveIntersectResult{Kind: kind}
	}

	pts, degenerate := subdivisionIntersect(a, b)
	for _, p := range pts {
		if !containsApproxPoint(result.Points, p) {
			result.Points = append(result.Points, p)
		}
	}
	if degenerate {
		Logger().Warn("gg: overlapping curves; stopping")
		return curveIntersectResult{Kind: intersectNone}
	}
	if len(result.Points) == 0 {
		return curveIntersectResult{Kind: intersectNone}
	}
	return result
}

// endpointCoincidences records any of the four endpoint pairs that
// already coincide, with the appropriate t-values in {0, 1}.
func endpointCoincidences(a, b CubicBez) []curveIntersection {
	var out []curveIntersection
	pairs := []struct {
		p      Point
		ta, tb float64
		q      Point
	}{
		{a.P0, 0, 0, b.P0},
		{a.P0, 0, 1, b.P3},
		{a.P3, 1, 0, b.P0},
		{a.P3, 1, 1, b.P3},
	}
	for _, pr := range pairs {
		if approxEqualPoint(pr.p, pr.q) {
			out = append(out, curveIntersection{Point: pr.p, TA: pr.ta, TB: pr.tb})
		}
	}
	return out
}

// intersectLineLine analytically intersects two curves already known
// to be straight, via the 2x2 determinant of their endpoint chords.
func intersectLineLine(a, b CubicBez) (pt Point, ta, tb float64, ok bool) {
	d1 := a.P3.Sub(a.P0)
	d2 := b.P3.Sub(b.P0)
	denom := d1.Cross(d2)

	if denom == 0 {
		// Parallel or collinear: report at most one shared endpoint.
		for _, pr := range endpointCoincidences(a, b) {
			return pr.Point, pr.TA, pr.TB, true
		}
		return Point{}, 0, 0, false
	}

	w := b.P0.Sub(a.P0)
	t := w.Cross(d2) / denom
	u := w.Cross(d1) / denom

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, 0, 0, false
	}
	return a.P0.Lerp(a.P3, t), t, u, true
}

// overlapPreCheck samples one curve at 11 irregular parameter values
// and checks whether every sample lies on the other curve; if so, one
// curve lies entirely on the other and the smaller (by tight bounding
// box) is reported as the contained curve.
func overlapPreCheck(a, b CubicBez) (intersectKind, bool) {
	aOnB := curveLiesOn(a, b)
	bOnA := curveLiesOn(b, a)

	if !aOnB && !bOnA {
		return intersectNone, false
	}

	abox := a.BoundingBox()
	bbox := b.BoundingBox()
	aArea := abox.Width() * abox.Height()
	bArea := bbox.Width() * bbox.Height()

	switch {
	case aOnB && bOnA:
		if aArea <= bArea {
			return intersectASmallerInsideB, true
		}
		return intersectBSmallerInsideA, true
	case aOnB:
		return intersectASmallerInsideB, true
	default:
		return intersectBSmallerInsideA, true
	}
}

// curveLiesOn reports whether every overlap sample of a lies
// (approximately) on curve other, by intersecting the sample's height
// with other and checking for a coincident point.
func curveLiesOn(a, other CubicBez) bool {
	for _, t := range overlapSampleTs {
		p := a.Eval(t)
		found := false
		for _, ty := range intersectHorizontalClosed(other, p.Y) {
			if approxEqualPoint(p, other.Eval(ty)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// intersectHorizontalClosed is IntersectHorizontal's closed-interval
// sibling: used by containment pre-checks, not the even-odd fill rule,
// so endpoint hits at t=0/t=1 are kept rather than discarded.
func intersectHorizontalClosed(c CubicBez, y float64) []float64 {
	a := -c.P0.Y + 3*c.P1.Y - 3*c.P2.Y + c.P3.Y
	b := 3 * (c.P0.Y - 2*c.P1.Y + c.P2.Y)
	cc := 3 * (c.P1.Y - c.P0.Y)
	dd := c.P0.Y - y

	if a == 0 && b == 0 && cc == 0 {
		if dd == 0 {
			return []float64{0, 1}
		}
		return nil
	}
	return SolveCubicInUnitInterval(a, b, cc, dd)
}

// subdivideWorkItem is one pending pair in the recursive subdivision
// worklist.
type subdivideWorkItem struct {
	aSub, bSub   CubicBez
	tMidA, tMidB float64
	depth        int
}

// subdivisionIntersect runs the recursive bounding-box subdivision
// algorithm over the full iteration budget, returning accumulated
// intersection points and whether the iteration cap was exceeded
// (a recoverable degenerate-overlap condition).
func subdivisionIntersect(a, b CubicBez) ([]curveIntersection, bool) {
	worklist := []subdivideWorkItem{{aSub: a, bSub: b, tMidA: 0.5, tMidB: 0.5, depth: 1}}
	var out []curveIntersection
	iterations := 0

	for len(worklist) > 0 {
		iterations++
		if iterations > maxIntersectIterations {
			return out, true
		}

		item := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		aBox := item.aSub.quickBoundingBox()
		bBox := item.bSub.quickBoundingBox()
		if !boxesOverlap(aBox, bBox) {
			continue
		}

		enclosing := aBox.Union(bBox)
		diag := enclosing.Max.Sub(enclosing.Min)
		diagSq := diag.X*diag.X + diag.Y*diag.Y

		if diagSq < PRECISION*PRECISION*0.5 || item.depth > maxIntersectDepth {
			pt := item.aSub.Eval(0.5)
			cand := curveIntersection{Point: pt, TA: item.tMidA, TB: item.tMidB}
			if !containsApproxPoint(out, cand) {
				out = append(out, cand)
			}
			continue
		}

		aLo, aHi := item.aSub.Subdivide()
		bLo, bHi := item.bSub.Subdivide()
		half := math.Exp2(-float64(item.depth + 1))

		worklist = append(worklist,
			subdivideWorkItem{aLo, bLo, item.tMidA - half, item.tMidB - half, item.depth + 1},
			subdivideWorkItem{aLo, bHi, item.tMidA - half, item.tMidB + half, item.depth + 1},
			subdivideWorkItem{aHi, bLo, item.tMidA + half, item.tMidB - half, item.depth + 1},
			subdivideWorkItem{aHi, bHi, item.tMidA + half, item.tMidB + half, item.depth + 1},
		)
	}

	return out, false
}

// quickBoundingBox is the AABB of the four control coordinates,
// cheaper than the tight extrema-based BoundingBox and sufficient for
// the hot recursion in subdivisionIntersect.
func (c CubicBez) quickBoundingBox() Rect {
	box := NewRect(c.P0, c.P1)
	box = box.Union(NewRect(c.P2, c.P3))
	return box
}

// boxesOverlap is an inclusive AABB overlap test on both axes.
func boxesOverlap(a, b Rect) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y
}

func containsApproxPoint(pts []curveIntersection, cand curveIntersection) bool {
	for _, p := range pts {
		if approxEqualPoint(p.Point, cand.Point) {
			return true
		}
	}
	return false
}
