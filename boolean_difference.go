package gg

// Difference computes A minus B: the part of A not covered by B.
func Difference(a, b *Shape) (DifferenceResult, error) {
	if !a.IsClosed() || !b.IsClosed() {
		return nil, ErrPathNotClosed
	}

	if boxesDisjoint(a, b) {
		return DifferenceA{Shape: a}, nil
	}

	records, _ := gatherIntersections(a, b)
	if len(records) == 0 {
		switch shapeRelation(a, b) {
		case relBInsideA:
			return DifferenceAWithBHole{A: a, B: b}, nil
		case relAInsideB:
			return DifferenceErased{}, nil
		case relDegenerate:
			Logger().Warn("gg: Difference: shapes coincide everywhere")
			return nil, ErrDegenerateShapes
		default:
			return DifferenceA{Shape: a}, nil
		}
	}

	gA, gB := buildBoolGraphs(a, b, records)
	if err := markEntryExit(gA, gB, a, b); err != nil {
		return nil, err
	}

	// On A: entry -> backward, not-entry -> forward (same rule union
	// uses on its single side). On B: entry -> forward, not-entry ->
	// backward (same rule intersection uses).
	paths, overflowed := traverseBoolean(gA, gB, forwardOnNotEntry, forwardOnEntry)
	if overflowed {
		Logger().Warn("gg: Difference: infinite loop detected, returning A unchanged")
		return DifferenceA{Shape: a}, nil
	}
	if len(paths) == 0 {
		return DifferenceA{Shape: a}, nil
	}

	return DifferenceNew{Shapes: pathsToShapes(paths, a, b)}, nil
}
