package gg

// Union computes the set union of two closed shapes. Both operands
// must satisfy Shape.IsClosed; the result is always zero or one shape.
func Union(a, b *Shape) (UnionResult, error) {
	if !a.IsClosed() || !b.IsClosed() {
		return nil, ErrPathNotClosed
	}

	if boxesDisjoint(a, b) {
		return UnionNone{}, nil
	}

	records, _ := gatherIntersections(a, b)
	if len(records) == 0 {
		switch shapeRelation(a, b) {
		case relAInsideB:
			return UnionB{Shape: b}, nil
		case relBInsideA:
			return UnionA{Shape: a}, nil
		case relDegenerate:
			Logger().Warn("gg: Union: shapes coincide everywhere")
			return nil, ErrDegenerateShapes
		default:
			Logger().Warn("gg: Union: no merge possible although bounding boxes overlap")
			return UnionNone{}, nil
		}
	}

	gA, gB := buildBoolGraphs(a, b, records)
	if err := markEntryExit(gA, gB, a, b); err != nil {
		return nil, err
	}

	paths, overflowed := traverseBoolean(gA, gB, forwardOnNotEntry, forwardOnNotEntry)
	if overflowed {
		Logger().Warn("gg: Union: infinite loop detected, returning None")
		return UnionNone{}, nil
	}
	if len(paths) == 0 {
		Logger().Warn("gg: Union: no merge possible although bounding boxes overlap")
		return UnionNone{}, nil
	}

	shapes := pathsToShapes(paths, a, b)
	return UnionNew{Shape: shapes[0]}, nil
}
