package gg

import (
	"math"
	"sort"
)

// nodeClass tags what an enriched-graph anchor represents.
type nodeClass int

const (
	classNone nodeClass = iota
	classCommon
	classCommonIntersection
	classIntersection
)

// graphNode is one element of an enriched boolean graph. Control-point
// nodes always carry classNone; only anchor nodes (every third index)
// carry a meaningful class, Entry flag, and cross-shape Neighbor link.
type graphNode struct {
	Coord    DbCoord
	Class    nodeClass
	Entry    bool
	Neighbor int // index into the other shape's graph, -1 if none
}

// boolGraph is one shape's path after splicing in every intersection
// with the other operand, in the same cubic-segment layout as
// Shape.Path (anchor, control, control, anchor, ...), closed by
// repeating the first node at the end.
type boolGraph struct {
	Nodes []graphNode
}

func (g *boolGraph) ringLen() int { return len(g.Nodes) - 1 }

func (g *boolGraph) modIdx(i int) int {
	n := g.ringLen()
	return ((i % n) + n) % n
}

// curveAt reconstructs the cubic segment starting at anchor index i.
func (g *boolGraph) curveAt(i int) CubicBez {
	i = g.modIdx(i)
	return CubicBez{
		P0: g.Nodes[i].Coord.Coord,
		P1: g.Nodes[g.modIdx(i+1)].Coord.Coord,
		P2: g.Nodes[g.modIdx(i+2)].Coord.Coord,
		P3: g.Nodes[g.modIdx(i+3)].Coord.Coord,
	}
}

// curveParam is a normalized (curve index, local t) position along a
// shape's ring: collapsing onto a vertex always yields t == 0.
type curveParam struct {
	curve int
	t     float64
}

// normalizeParam collapses a parameter landing on or past a segment's
// end onto the start of the following segment, per spec step 4.4.1.
func normalizeParam(curve int, t float64, nCurves int) curveParam {
	const eps = 1e-9
	switch {
	case t >= 1-eps:
		return curveParam{curve: (curve + 1) % nCurves, t: 0}
	case t <= eps:
		return curveParam{curve: curve, t: 0}
	default:
		return curveParam{curve: curve, t: t}
	}
}

func sameParam(p, q curveParam) bool {
	const eps = 1e-9
	return p.curve == q.curve && (p.t-q.t) < eps && (q.t-p.t) < eps
}

// xRecord is one twin intersection record between a curve of A and a
// curve of B, already classified per the table in spec step 4.4.1.
type xRecord struct {
	a, b  curveParam
	class nodeClass
}

func combineClass(existing, next nodeClass) nodeClass {
	if next > existing {
		return next
	}
	return existing
}

// gatherIntersections enumerates every (curveA, curveB) pair and
// collects twin records for true point intersections. It also reports
// whether any curve pair was found to wholly overlap (ASmallerInsideB
// or BSmallerInsideA): those carry no records of their own. Union,
// Intersection and Difference discard this flag; when no records exist
// they decide the outcome with shapeRelation alone.
func gatherIntersections(a, b *Shape) (records []xRecord, anyOverlap bool) {
	nA, nB := a.CurveCount(), b.CurveCount()
	for ai := 0; ai < nA; ai++ {
		ca := a.Curve(ai)
		aLine := a.curveIsLine(ai)
		for bi := 0; bi < nB; bi++ {
			cb := b.Curve(bi)
			bLine := b.curveIsLine(bi)
			res := intersectCubics(ca, cb, aLine, bLine)
			switch res.Kind {
			case intersectASmallerInsideB, intersectBSmallerInsideA:
				anyOverlap = true
			case intersectPts:
				for _, p := range res.Points {
					pa := normalizeParam(ai, p.TA, nA)
					pb := normalizeParam(bi, p.TB, nB)
					class := classIntersection
					switch {
					case pa.t == 0 && pb.t == 0:
						class = classCommon
					case pa.t == 0 || pb.t == 0:
						class = classCommonIntersection
					}
					records = append(records, xRecord{a: pa, b: pb, class: class})
				}
			}
		}
	}

	var uniq []xRecord
	for _, r := range records {
		dup := false
		for _, u := range uniq {
			if sameParam(r.a, u.a) && sameParam(r.b, u.b) {
				dup = true
				break
			}
		}
		if !dup {
			uniq = append(uniq, r)
		}
	}
	return ensureEvenParity(a, uniq), anyOverlap
}

// ensureEvenParity guards against the structural-degeneracy case: two
// closed shapes cross each other's boundary an even number of times,
// so an odd count of true crossing records (classIntersection; Common
// and CommonIntersection records are touches, not crossings, and don't
// participate in this count) means curve-intersection precision lost
// one side of a pair. Rather than fail the whole operation, find the
// closest pair of true-intersection records, drop one record of that
// pair, and let the caller proceed with the reduced, even set.
func ensureEvenParity(a *Shape, records []xRecord) []xRecord {
	count := 0
	for _, r := range records {
		if r.class == classIntersection {
			count++
		}
	}
	if count%2 == 0 {
		return records
	}

	best := -1
	bestDist := math.MaxFloat64
	for i, ri := range records {
		if ri.class != classIntersection {
			continue
		}
		pi := a.Curve(ri.a.curve).Eval(ri.a.t)
		for j, rj := range records {
			if i == j || rj.class != classIntersection {
				continue
			}
			pj := a.Curve(rj.a.curve).Eval(rj.a.t)
			if d := pi.Distance(pj); d < bestDist {
				bestDist = d
				best = i
			}
		}
	}
	if best < 0 {
		return records
	}

	Logger().Warn("gg: odd intersection count, dropping one record of the closest pair to restore parity")
	out := make([]xRecord, 0, len(records)-1)
	out = append(out, records[:best]...)
	out = append(out, records[best+1:]...)
	return out
}

// buildSideGraph splices shape's path at every record's side parameter,
// returning the resulting boolGraph plus, per record index, the node
// index that landed on that record's anchor (-1 if the record fell on
// the other shape only, which never happens here since every record
// names both sides, but kept for symmetry with the link-up step).
func buildSideGraph(shape *Shape, records []xRecord, side func(xRecord) curveParam) (*boolGraph, []int) {
	nCurves := shape.CurveCount()
	nodeIdx := make([]int, len(records))
	for i := range nodeIdx {
		nodeIdx[i] = -1
	}

	hitsByCurve := make([][]int, nCurves)
	for i, r := range records {
		p := side(r)
		if p.t > 0 && p.t < 1 {
			hitsByCurve[p.curve] = append(hitsByCurve[p.curve], i)
		}
	}
	for c := range hitsByCurve {
		sort.Slice(hitsByCurve[c], func(i, j int) bool {
			return side(records[hitsByCurve[c][i]]).t < side(records[hitsByCurve[c][j]]).t
		})
	}

	nodes := []graphNode{{Coord: shape.Path[0]}}

	for c := 0; c < nCurves; c++ {
		p0, c0, c1, p1 := shape.dbCurve(c)
		isLine := shape.curveIsLine(c)
		cur := CubicBez{P0: p0.Coord, P1: c0.Coord, P2: c1.Coord, P3: p1.Coord}
		tPrev := 0.0
		segStart := p0

		for _, recIdx := range hitsByCurve[c] {
			t := side(records[recIdx]).t
			tLocal := (t - tPrev) / (1 - tPrev)
			left, right := cur.SubdivideAt(tLocal)
			newAnchor := NewDbCoord(left.P3)

			var n0, n1 DbCoord
			if isLine {
				n0 = DbCoord{ID: segStart.ID, Coord: segStart.Coord}
				n1 = DbCoord{ID: newAnchor.ID, Coord: newAnchor.Coord}
			} else {
				n0 = NewDbCoord(left.P1)
				n1 = NewDbCoord(left.P2)
			}

			nodes = append(nodes,
				graphNode{Coord: n0},
				graphNode{Coord: n1},
				graphNode{Coord: newAnchor, Class: records[recIdx].class},
			)
			nodeIdx[recIdx] = len(nodes) - 1

			cur = right
			tPrev = t
			segStart = newAnchor
		}

		var n0, n1 DbCoord
		if isLine {
			n0 = DbCoord{ID: segStart.ID, Coord: segStart.Coord}
			n1 = DbCoord{ID: p1.ID, Coord: p1.Coord}
		} else {
			n0 = NewDbCoord(cur.P1)
			n1 = NewDbCoord(cur.P2)
		}
		nodes = append(nodes, graphNode{Coord: n0}, graphNode{Coord: n1}, graphNode{Coord: p1})

		boundaryIdx := len(nodes) - 1
		next := (c + 1) % nCurves
		for i, r := range records {
			p := side(r)
			if p.curve == next && p.t == 0 {
				nodes[boundaryIdx].Class = combineClass(nodes[boundaryIdx].Class, r.class)
				nodeIdx[i] = boundaryIdx
			}
		}
	}

	last := len(nodes) - 1
	nodes[0].Class = combineClass(nodes[0].Class, nodes[last].Class)
	nodes[last] = nodes[0]
	for i := range nodeIdx {
		if nodeIdx[i] == last {
			nodeIdx[i] = 0
		}
	}

	for i := range nodes {
		nodes[i].Neighbor = -1
	}

	return &boolGraph{Nodes: nodes}, nodeIdx
}

// buildBoolGraphs runs spec steps 4.4.1-4.4.3 for operands a and b.
// Callers must only invoke this once gatherIntersections has reported
// at least one record; the all-disjoint-or-contained case is handled
// by shapeRelation before a graph is ever built.
func buildBoolGraphs(a, b *Shape, records []xRecord) (*boolGraph, *boolGraph) {
	gA, idxA := buildSideGraph(a, records, func(r xRecord) curveParam { return r.a })
	gB, idxB := buildSideGraph(b, records, func(r xRecord) curveParam { return r.b })

	for i := range records {
		if idxA[i] >= 0 && idxB[i] >= 0 {
			gA.Nodes[idxA[i]].Neighbor = idxB[i]
			gB.Nodes[idxB[i]].Neighbor = idxA[i]
		}
	}
	return gA, gB
}

// markEntryExit runs spec step 4.5 over both graphs.
func markEntryExit(gA, gB *boolGraph, a, b *Shape) error {
	promoteTangentialCommons(gA, gB)
	if err := seedAndMark(gA, b); err != nil {
		return err
	}
	return seedAndMark(gB, a)
}

// tOffset is the small parameter offset past a shared vertex used to
// sample whether two curves merely touch or run tangent to each other.
const tOffset = 0.1

// promoteTangentialCommons lifts every Common node to
// CommonIntersection unless sampling shows the two curves coincide
// (rather than merely touch) past the shared vertex.
func promoteTangentialCommons(gA, gB *boolGraph) {
	for ia := range gA.Nodes {
		if ia%3 != 0 || gA.Nodes[ia].Class != classCommon {
			continue
		}
		ib := gA.Nodes[ia].Neighbor
		if ib < 0 {
			continue
		}

		pA := gA.curveAt(ia).Eval(tOffset)
		pBforward := gB.curveAt(ib).Eval(tOffset)
		pBback := gB.curveAt(gB.modIdx(ib - 3)).Eval(1 - tOffset)

		if !approxEqualPoint(pA, pBforward) && !approxEqualPoint(pA, pBback) {
			gA.Nodes[ia].Class = classCommonIntersection
			gB.Nodes[ib].Class = classCommonIntersection
		}
	}
}

// seedAndMark runs spec steps 4.5.2-4.5.3 for one graph.
func seedAndMark(g *boolGraph, other *Shape) error {
	n := g.ringLen()
	seed := -1
	for i := 0; i < n; i++ {
		if g.Nodes[i].Class == classNone {
			seed = i
			break
		}
	}
	if seed == -1 {
		return ErrDegenerateShapes
	}

	status := !other.Contains(g.Nodes[seed].Coord.Coord)
	for k := 0; k < n; k++ {
		idx := (seed + k) % n
		switch g.Nodes[idx].Class {
		case classIntersection, classCommonIntersection:
			g.Nodes[idx].Entry = status
			status = !status
		}
	}
	return nil
}

// boxesDisjoint reports whether a and b's bounding boxes share no
// area, letting callers skip the O(curvesA * curvesB) intersection
// search entirely for shapes that plainly can't touch.
func boxesDisjoint(a, b *Shape) bool {
	return !a.ToPath().BoundingBox().Overlaps(b.ToPath().BoundingBox())
}

// shapeRelationKind classifies two shapes with no boundary
// intersections at all.
type shapeRelationKind int

const (
	relDisjoint shapeRelationKind = iota
	relAInsideB
	relBInsideA
	relDegenerate
)

// shapeRelation decides containment between two shapes known to share
// no crossing points, by testing a representative vertex of each
// against the other.
func shapeRelation(a, b *Shape) shapeRelationKind {
	if a.CurveCount() == 0 || b.CurveCount() == 0 {
		return relDisjoint
	}
	aInB := b.Contains(a.Curve(0).P0)
	bInA := a.Contains(b.Curve(0).P0)
	switch {
	case aInB && bInA:
		return relDegenerate
	case aInB:
		return relAInsideB
	case bInA:
		return relBInsideA
	default:
		return relDisjoint
	}
}
