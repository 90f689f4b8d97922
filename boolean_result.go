package gg

// UnionResult is the outcome of Union: exactly one of UnionNone,
// UnionA, UnionB, or UnionNew, following the teacher's sealed-interface
// pattern for PathElement in path.go (an unexported marker method
// closes the set of implementations).
type UnionResult interface {
	isUnionResult()
}

// UnionNone reports that the two shapes do not touch and cannot be
// merged into a single boundary.
type UnionNone struct{}

func (UnionNone) isUnionResult() {}

// UnionA reports that B lies entirely inside A; A is the union.
type UnionA struct{ Shape *Shape }

func (UnionA) isUnionResult() {}

// UnionB reports that A lies entirely inside B; B is the union.
type UnionB struct{ Shape *Shape }

func (UnionB) isUnionResult() {}

// UnionNew carries a freshly traced union boundary.
type UnionNew struct{ Shape *Shape }

func (UnionNew) isUnionResult() {}

// IntersectionResult is the outcome of Intersection: IntersectionNone,
// IntersectionA, IntersectionB, or IntersectionNew.
type IntersectionResult interface {
	isIntersectionResult()
}

// IntersectionNone reports the shapes do not overlap.
type IntersectionNone struct{}

func (IntersectionNone) isIntersectionResult() {}

// IntersectionA reports A lies entirely inside B; A is the overlap.
type IntersectionA struct{ Shape *Shape }

func (IntersectionA) isIntersectionResult() {}

// IntersectionB reports B lies entirely inside A; B is the overlap.
type IntersectionB struct{ Shape *Shape }

func (IntersectionB) isIntersectionResult() {}

// IntersectionNew carries the overlap region(s) traced from the
// boundary crossings; two shapes can overlap in more than one disjoint
// region (e.g. two 'C's whose tips cross twice), hence the slice.
type IntersectionNew struct{ Shapes []*Shape }

func (IntersectionNew) isIntersectionResult() {}

// DifferenceResult is the outcome of Difference (A minus B):
// DifferenceA, DifferenceErased, DifferenceAWithBHole, or
// DifferenceNew.
type DifferenceResult interface {
	isDifferenceResult()
}

// DifferenceA reports the shapes are disjoint; A is unchanged.
type DifferenceA struct{ Shape *Shape }

func (DifferenceA) isDifferenceResult() {}

// DifferenceErased reports A lies entirely inside B; nothing remains.
type DifferenceErased struct{}

func (DifferenceErased) isDifferenceResult() {}

// DifferenceAWithBHole reports B lies entirely inside A: the result is
// A's outer boundary with B as a cutout. This package does not model
// multi-contour shapes, so the hole is reported as a second shape the
// caller renders as an even-odd cutout layer over A, per the spec's
// suggested minimal representation.
type DifferenceAWithBHole struct{ A, B *Shape }

func (DifferenceAWithBHole) isDifferenceResult() {}

// DifferenceNew carries the traced remainder of A after removing B;
// subtracting a shape that clips through A can leave several disjoint
// pieces.
type DifferenceNew struct{ Shapes []*Shape }

func (DifferenceNew) isDifferenceResult() {}
