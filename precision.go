package gg

import "math"

// PRECISION is the module-wide tolerance for approximate geometric
// equality, on the order of 100*float32 epsilon. Every structural
// decision in L2-L4 (subdivision termination, intersection
// deduplication, overlap pre-checks, entry/exit sampling) compares
// against this single constant rather than an ad-hoc epsilon, so that
// robustness can be tuned from one place.
//
// approxEqual is reflexive and symmetric but not transitive: callers
// must not chain comparisons and expect transitivity to hold.
const PRECISION = 100 * 1.1920929e-7

// approxEqual reports whether a and b differ by no more than PRECISION.
func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= PRECISION
}

// approxEqualPoint reports whether p and q are within PRECISION of each
// other in both coordinates.
func approxEqualPoint(p, q Point) bool {
	return approxEqual(p.X, q.X) && approxEqual(p.Y, q.Y)
}

// approxEqualEps reports whether a and b differ by no more than eps.
// Used where a caller needs a tolerance other than PRECISION (e.g. the
// de-duplication window on root finding, which is stated in spec terms
// of float32 epsilon rather than PRECISION itself).
func approxEqualEps(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
