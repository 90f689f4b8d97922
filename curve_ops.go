package gg

import "math"

// IntersectHorizontal returns the parameter values t in the open
// interval (0, 1) where the curve crosses the horizontal line y=k.
// Endpoint hits (t=0 or t=1) are deliberately excluded: the even-odd
// fill rule must not double-count a vertex shared by two segments.
//
// If the curve is itself horizontal (every y-coefficient vanishes) and
// coincides with the line, both endpoints are reported as a degenerate
// crossing pair; otherwise a horizontal curve carries no crossing.
//
// Roots within float32 epsilon of each other are de-duplicated.
func (c CubicBez) IntersectHorizontal(y float64) []float64 {
	// Bernstein-to-power-basis coefficients of B_y(t) - y.
	d0 := c.P1.Y - c.P0.Y

	a := -c.P0.Y + 3*c.P1.Y - 3*c.P2.Y + c.P3.Y
	b := 3 * (c.P0.Y - 2*c.P1.Y + c.P2.Y)
	cc := 3 * d0
	dd := c.P0.Y - y

	if a == 0 && b == 0 && cc == 0 {
		// Horizontal curve: either lies entirely on the line or misses it.
		if dd == 0 {
			return []float64{0, 1}
		}
		return nil
	}

	roots := SolveCubicInUnitInterval(a, b, cc, dd)
	return dedupOpenInterval(roots)
}

// dedupOpenInterval strips t=0/t=1 endpoint hits and collapses roots
// that lie within float32 epsilon of one another.
func dedupOpenInterval(roots []float64) []float64 {
	const epsilon = 1.1920929e-7
	var out []float64
	for _, t := range roots {
		if t <= epsilon || t >= 1-epsilon {
			continue
		}
		dup := false
		for _, u := range out {
			if math.Abs(t-u) <= epsilon {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, t)
		}
	}
	return out
}

// ClosestPoint returns the parameter t*, distance, and point on the
// curve closest to q. The strategy samples the curve uniformly, then
// locally refines around the best sample with a tightening bisection;
// this is deterministic and precise enough for interactive picking
// without a general-purpose numerical optimizer.
func (c CubicBez) ClosestPoint(q Point) (t float64, dist float64, pt Point) {
	const samples = 32
	bestT := 0.0
	bestD := math.Inf(1)
	for i := 0; i <= samples; i++ {
		s := float64(i) / samples
		d := c.Eval(s).Distance(q)
		if d < bestD {
			bestD = d
			bestT = s
		}
	}

	// Local refinement: ternary-search-style narrowing around bestT.
	step := 1.0 / samples
	for iter := 0; iter < 24; iter++ {
		lo := math.Max(0, bestT-step)
		hi := math.Min(1, bestT+step)
		mid1 := lo + (hi-lo)/3
		mid2 := hi - (hi-lo)/3
		d1 := c.Eval(mid1).Distance(q)
		d2 := c.Eval(mid2).Distance(q)
		if d1 < d2 {
			hi = mid2
		} else {
			lo = mid1
		}
		cand := (lo + hi) / 2
		if d := c.Eval(cand).Distance(q); d < bestD {
			bestT, bestD = cand, d
		}
		step /= 2
	}

	return bestT, bestD, c.Eval(bestT)
}

// isLineSegment reports whether the cubic segment spanning the four
// DbCoords (anchor, control, control, anchor) should be treated as a
// straight line: both control points' identifiers equal the nearer
// endpoint's identifier. This is the authoritative, position-
// independent straightness test; dragging an anchor together with its
// identity-joined handles preserves it.
func isLineSegment(p0, c0, c1, p1 DbCoord) bool {
	return c0.ID == p0.ID && c1.ID == p1.ID
}
