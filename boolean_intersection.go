package gg

// Intersection computes the set intersection of two closed shapes.
// Unlike Union, the result can be several disjoint shapes (two 'C's
// whose tips cross twice leave two separate overlap regions).
func Intersection(a, b *Shape) (IntersectionResult, error) {
	if !a.IsClosed() || !b.IsClosed() {
		return nil, ErrPathNotClosed
	}

	if boxesDisjoint(a, b) {
		return IntersectionNone{}, nil
	}

	records, _ := gatherIntersections(a, b)
	if len(records) == 0 {
		switch shapeRelation(a, b) {
		case relAInsideB:
			return IntersectionA{Shape: a}, nil
		case relBInsideA:
			return IntersectionB{Shape: b}, nil
		case relDegenerate:
			Logger().Warn("gg: Intersection: shapes coincide everywhere")
			return nil, ErrDegenerateShapes
		default:
			return IntersectionNone{}, nil
		}
	}

	gA, gB := buildBoolGraphs(a, b, records)
	if err := markEntryExit(gA, gB, a, b); err != nil {
		return nil, err
	}

	paths, overflowed := traverseBoolean(gA, gB, forwardOnEntry, forwardOnEntry)
	if overflowed {
		Logger().Warn("gg: Intersection: infinite loop detected, returning None")
		return IntersectionNone{}, nil
	}
	if len(paths) == 0 {
		return IntersectionNone{}, nil
	}

	return IntersectionNew{Shapes: pathsToShapes(paths, a, b)}, nil
}
