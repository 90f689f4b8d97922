package gg

// stepRule picks the traversal direction (+3 forward, -3 backward) at
// a node given its entry flag, per the table in spec step 4.6.
type stepRule func(entry bool) int

func forwardOnNotEntry(entry bool) int {
	if entry {
		return -3
	}
	return 3
}

func forwardOnEntry(entry bool) int {
	if entry {
		return 3
	}
	return -3
}

// traverseBoolean runs the shared boolean-traversal driver (spec step
// 4.6's numbered algorithm) over both enriched graphs, returning one
// DbCoord path per completed output boundary. overflowed reports that
// the iteration cap was exceeded; callers must then fall back to their
// operation's most-conservative safe result.
func traverseBoolean(gA, gB *boolGraph, stepA, stepB stepRule) (paths [][]DbCoord, overflowed bool) {
	nA := gA.ringLen()
	done := make([]bool, nA)
	for i := 0; i < nA; i++ {
		switch gA.Nodes[i].Class {
		case classIntersection, classCommonIntersection:
			// starts false: a valid traversal seed.
		default:
			done[i] = true
		}
	}

	iterCap := 3 * (gA.ringLen() + gB.ringLen())
	iterations := 0

	for {
		start := -1
		for i := 0; i < nA; i++ {
			if !done[i] {
				start = i
				break
			}
		}
		if start == -1 {
			break
		}
		done[start] = true

		path := []DbCoord{gA.Nodes[start].Coord}
		onA := true
		cur := gA
		other := gB
		idx := start
		dir := 0

	walk:
		for {
			iterations++
			if iterations > iterCap {
				return paths, true
			}

			// The direction is decided at intersection nodes only and
			// kept while walking the plain nodes in between.
			switch cur.Nodes[idx].Class {
			case classIntersection, classCommonIntersection:
				if onA {
					dir = stepA(cur.Nodes[idx].Entry)
				} else {
					dir = stepB(cur.Nodes[idx].Entry)
				}
			}
			step := 1
			if dir < 0 {
				step = -1
			}
			for s := 0; s < 3; s++ {
				idx = cur.modIdx(idx + step)
				path = append(path, cur.Nodes[idx].Coord)
			}

			switch cur.Nodes[idx].Class {
			case classIntersection, classCommonIntersection:
				// Back at the start node, on either side: the path is closed.
				if (onA && idx == start) || (!onA && cur.Nodes[idx].Neighbor == start) {
					break walk
				}
				if onA {
					done[idx] = true
				} else if nb := cur.Nodes[idx].Neighbor; nb >= 0 {
					done[nb] = true
				}
				if nb := cur.Nodes[idx].Neighbor; nb >= 0 {
					cur, other = other, cur
					idx = nb
					onA = !onA
				}
			}

			if onA && idx == start {
				break
			}
		}

		paths = append(paths, path)
	}

	return paths, false
}

// pathsToShapes wraps each traced path as a Shape. The result fill is
// the blend of both operands' fills; the stroke style is carried over
// from a, since the two operands are not guaranteed to share one.
func pathsToShapes(paths [][]DbCoord, a, b *Shape) []*Shape {
	shapes := make([]*Shape, 0, len(paths))
	for _, p := range paths {
		s := NewFromPath(p)
		if a != nil {
			s.Fill = a.Fill
			s.Stroke = a.Stroke
			if b != nil {
				s.Fill = a.Fill.Blend(b.Fill)
			}
		}
		shapes = append(shapes, s)
	}
	return shapes
}
