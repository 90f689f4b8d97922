package gg

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// StrokeStyle describes the stroke a Drawing collaborator should apply
// to a Shape's path. Stroking (offset-curve generation) itself is out
// of this package's scope; StrokeStyle only carries the description an
// external renderer needs.
type StrokeStyle struct {
	Color RGBA
	Width float64
}

// circleA, circleB, circleC are the tangent-magnitude constants for the
// four-cubic circle approximation, recovered from the original
// Shape::new_circle construction (see DESIGN.md): slightly off the
// textbook k=0.5522847 constant to correct the area error of the
// generic four-arc approximation.
const (
	circleA = 1.00005519
	circleB = 0.55342686
	circleC = 0.99873585
)

// Shape is a closed path of identity-bearing coordinates plus a fill
// and stroke description. Shapes are the operand of boolean
// operations.
type Shape struct {
	Path   []DbCoord
	Fill   RGBA
	Stroke StrokeStyle
}

// CurveCount returns the number of cubic segments in the shape's path.
func (s *Shape) CurveCount() int {
	if len(s.Path) < 4 {
		return 0
	}
	return (len(s.Path) - 1) / 3
}

// Curve returns the i'th cubic segment as a plain CubicBez.
func (s *Shape) Curve(i int) CubicBez {
	idx := 3 * i
	return CubicBez{
		P0: s.Path[idx].Coord,
		P1: s.Path[idx+1].Coord,
		P2: s.Path[idx+2].Coord,
		P3: s.Path[idx+3].Coord,
	}
}

// dbCurve returns the i'th segment's four DbCoords (anchor, control,
// control, anchor), preserving identity.
func (s *Shape) dbCurve(i int) (p0, c0, c1, p1 DbCoord) {
	idx := 3 * i
	return s.Path[idx], s.Path[idx+1], s.Path[idx+2], s.Path[idx+3]
}

// curveIsLine reports whether the i'th segment satisfies the identity
// straightness test.
func (s *Shape) curveIsLine(i int) bool {
	p0, c0, c1, p1 := s.dbCurve(i)
	return isLineSegment(p0, c0, c1, p1)
}

// IsClosed reports whether the path's first and last DbCoords share an
// identifier (and therefore position).
func (s *Shape) IsClosed() bool {
	if len(s.Path) < 4 {
		return false
	}
	return s.Path[0].ID == s.Path[len(s.Path)-1].ID
}

// ringLen is the number of unique coordinates in a closed path (the
// stored path duplicates the first coordinate at the end to mark
// closure; ringLen excludes that duplicate).
func (s *Shape) ringLen() int {
	return len(s.Path) - 1
}

// modIdx normalizes i into [0, ringLen) so that editing operations can
// step across the closing seam without special-casing it.
func (s *Shape) modIdx(i int) int {
	n := s.ringLen()
	return ((i % n) + n) % n
}

// indexOf returns a path index carrying identifier id. Handles joined
// onto an anchor carry the anchor's identifier too, so an anchor slot
// (index%3 == 0) is preferred; otherwise the first match is returned.
func (s *Shape) indexOf(id CoordID) (int, bool) {
	first := -1
	for i, d := range s.Path {
		if d.ID == id {
			if i%3 == 0 {
				return i, true
			}
			if first < 0 {
				first = i
			}
		}
	}
	return first, first >= 0
}

// CoordSelect returns the coordinate carrying identifier id.
func (s *Shape) CoordSelect(id CoordID) (Point, bool) {
	idx, ok := s.indexOf(id)
	if !ok {
		return Point{}, false
	}
	return s.Path[idx].Coord, true
}

// CoordSet moves the coordinate carrying identifier id to c, leaving
// its identity unchanged. If id appears more than once (joined
// handles), every occurrence is moved.
func (s *Shape) CoordSet(id CoordID, c Point) error {
	if !c.IsFinite() {
		return ErrNonFiniteCoord
	}
	found := false
	for i := range s.Path {
		if s.Path[i].ID == id {
			s.Path[i].Coord = c
			found = true
		}
	}
	if !found {
		return ErrCoordNotFound
	}
	return nil
}

// CoordDelete removes the coordinate carrying identifier id. Deleting
// an anchor removes it and its two adjacent control points, stitching
// the ring; deleting a control point collapses its identity and
// position onto the adjacent anchor. If deleting an anchor would leave
// fewer than one cubic segment, the shape is emptied and
// ErrShapeEmptied is returned.
func (s *Shape) CoordDelete(id CoordID) error {
	idx, ok := s.indexOf(id)
	if !ok {
		return ErrCoordNotFound
	}
	idx = s.modIdx(idx)

	if idx%3 != 0 {
		var anchorIdx int
		if idx%3 == 1 {
			anchorIdx = s.modIdx(idx - 1)
		} else {
			anchorIdx = s.modIdx(idx + 1)
		}
		anchor := s.Path[anchorIdx]
		s.Path[idx] = DbCoord{ID: anchor.ID, Coord: anchor.Coord}
		return nil
	}

	if s.ringLen() <= 3 {
		s.Path = nil
		return ErrShapeEmptied
	}

	// The merged curve bridges the anchor's surviving neighbors using
	// their own outer control points (idx-2 and idx+2), but the rest of
	// the ring must still come out with anchors on indices that are
	// multiples of 3: a plain contiguous copy starting at idx+2 would
	// excise the right 3 entries yet land every surviving anchor 2
	// positions out of phase. Seed the new ring at the previous anchor
	// instead, splice in the merged curve's two control points by hand,
	// then resume the untouched remainder of the ring from the next
	// anchor onward.
	kept := s.ringLen() - 3
	newRing := make([]DbCoord, 0, kept)
	newRing = append(newRing, s.Path[s.modIdx(idx-3)], s.Path[s.modIdx(idx-2)], s.Path[s.modIdx(idx+2)])
	for i := 0; i < kept-3; i++ {
		newRing = append(newRing, s.Path[s.modIdx(idx+3+i)])
	}
	s.Path = append(newRing, newRing[0])
	return nil
}

// CurveInsertSmooth subdivides segment curveIndex at parameter t (via
// de Casteljau, see CubicBez.SubdivideAt) and splices the new interior
// coordinates into the path. If the segment satisfies the straight-
// line identity test, the new control points collapse onto their
// adjacent anchors (corner handles) so the straightness invariant
// survives the split; otherwise fresh control-point identities are
// minted and the segment's endpoint identities are preserved.
func (s *Shape) CurveInsertSmooth(curveIndex int, t float64) error {
	if curveIndex < 0 || curveIndex >= s.CurveCount() {
		return ErrCoordNotFound
	}
	if t <= 0 || t >= 1 {
		return fmt.Errorf("gg: CurveInsertSmooth: t=%v out of (0,1)", t)
	}

	p0, _, _, p1 := s.dbCurve(curveIndex)
	isLine := s.curveIsLine(curveIndex)
	cubic := s.Curve(curveIndex)
	left, right := cubic.SubdivideAt(t)

	mid := NewDbCoord(left.P3)
	var newCoords []DbCoord
	if isLine {
		newCoords = []DbCoord{
			p0,
			{ID: p0.ID, Coord: p0.Coord},
			{ID: mid.ID, Coord: mid.Coord},
			mid,
			{ID: mid.ID, Coord: mid.Coord},
			{ID: p1.ID, Coord: p1.Coord},
			p1,
		}
	} else {
		newCoords = []DbCoord{
			p0,
			NewDbCoord(left.P1),
			NewDbCoord(left.P2),
			mid,
			NewDbCoord(right.P1),
			NewDbCoord(right.P2),
			p1,
		}
	}

	idx0 := 3 * curveIndex
	rebuilt := make([]DbCoord, 0, len(s.Path)+3)
	rebuilt = append(rebuilt, s.Path[:idx0]...)
	rebuilt = append(rebuilt, newCoords...)
	rebuilt = append(rebuilt, s.Path[idx0+4:]...)
	s.Path = rebuilt
	return nil
}

// CurveInsertLine splices a corner DbCoord at coord into segment
// curveIndex, replacing the segment's curvature with two straight
// sub-segments: both of the new anchor's control points collapse onto
// it (zero-length handles), matching "insert coord (corner)".
func (s *Shape) CurveInsertLine(curveIndex int, coord Point) error {
	if curveIndex < 0 || curveIndex >= s.CurveCount() {
		return ErrCoordNotFound
	}
	if !coord.IsFinite() {
		return ErrNonFiniteCoord
	}

	p0, _, _, p1 := s.dbCurve(curveIndex)
	mid := NewDbCoord(coord)
	newCoords := []DbCoord{
		p0,
		{ID: p0.ID, Coord: p0.Coord},
		{ID: mid.ID, Coord: mid.Coord},
		mid,
		{ID: mid.ID, Coord: mid.Coord},
		{ID: p1.ID, Coord: p1.Coord},
		p1,
	}

	idx0 := 3 * curveIndex
	rebuilt := make([]DbCoord, 0, len(s.Path)+3)
	rebuilt = append(rebuilt, s.Path[:idx0]...)
	rebuilt = append(rebuilt, newCoords...)
	rebuilt = append(rebuilt, s.Path[idx0+4:]...)
	s.Path = rebuilt
	return nil
}

// ToggleSeparateJoinHandle joins or separates the two control points
// adjacent to the anchor carrying identifier anchorID. If both
// controls currently share the anchor's identity it separates them
// (computing a symmetric tangent from the surrounding cubics and
// placing each control a quarter of the longer adjacent chord away,
// with fresh identities); otherwise it joins them onto the anchor.
func (s *Shape) ToggleSeparateJoinHandle(anchorID CoordID) error {
	idx, ok := s.indexOf(anchorID)
	if !ok {
		return ErrCoordNotFound
	}
	idx = s.modIdx(idx)
	if idx%3 != 0 {
		return fmt.Errorf("gg: ToggleSeparateJoinHandle: %d is not an anchor", anchorID)
	}

	prevCtrlIdx := s.modIdx(idx - 1)
	nextCtrlIdx := s.modIdx(idx + 1)
	anchor := s.Path[idx]
	prevCtrl := s.Path[prevCtrlIdx]
	nextCtrl := s.Path[nextCtrlIdx]

	joined := prevCtrl.ID == anchor.ID && nextCtrl.ID == anchor.ID
	if joined {
		prevAnchorIdx := s.modIdx(idx - 3)
		nextAnchorIdx := s.modIdx(idx + 3)
		prevAnchor := s.Path[prevAnchorIdx].Coord
		nextAnchor := s.Path[nextAnchorIdx].Coord

		// The new handle direction is the symmetric tangent at the
		// shared anchor: the incoming cubic's derivative at its end
		// plus the outgoing cubic's derivative at its start, not the
		// straight chord between the surrounding anchors (the two only
		// coincide when both neighboring segments are lines). Both
		// curves currently meet the anchor with a collapsed handle, so
		// EndTangent looks a fraction of a step inside each curve
		// rather than reading the (zero) derivative at the anchor
		// itself.
		n := s.CurveCount()
		anchorCurveIdx := idx / 3
		prevCurveIdx := (anchorCurveIdx - 1 + n) % n
		nextCurveIdx := anchorCurveIdx
		in := s.Curve(prevCurveIdx).EndTangent(1)
		out := s.Curve(nextCurveIdx).EndTangent(0)
		tangent := in.Bisector(out).ToPoint()
		if tangent.Length() == 0 {
			tangent = nextAnchor.Sub(prevAnchor)
			if tangent.Length() == 0 {
				tangent = Point{X: 1, Y: 0}
			} else {
				tangent = tangent.Normalize()
			}
		}

		prevLen := anchor.Coord.Distance(prevAnchor)
		nextLen := anchor.Coord.Distance(nextAnchor)
		longer := math.Max(prevLen, nextLen)
		quarter := longer / 4

		s.Path[prevCtrlIdx] = NewDbCoord(anchor.Coord.Sub(tangent.Mul(quarter)))
		s.Path[nextCtrlIdx] = NewDbCoord(anchor.Coord.Add(tangent.Mul(quarter)))
	} else {
		s.Path[prevCtrlIdx] = DbCoord{ID: anchor.ID, Coord: anchor.Coord}
		s.Path[nextCtrlIdx] = DbCoord{ID: anchor.ID, Coord: anchor.Coord}
	}
	return nil
}

// Contains reports whether q lies inside the shape by the even-odd
// rule: cast a ray toward x=+infinity at height q.Y and count crossings
// on the open parameter interval of every segment.
func (s *Shape) Contains(q Point) bool {
	count := 0
	for i := 0; i < s.CurveCount(); i++ {
		c := s.Curve(i)
		for _, t := range c.IntersectHorizontal(q.Y) {
			if c.Eval(t).X > q.X {
				count++
			}
		}
	}
	return count%2 == 1
}

// ClosestCurve returns the segment index, parameter, distance, and
// point closest to q across every segment of the shape.
func (s *Shape) ClosestCurve(q Point) (curveIndex int, t float64, dist float64, pt Point) {
	bestDist := math.Inf(1)
	for i := 0; i < s.CurveCount(); i++ {
		ct, cd, cp := s.Curve(i).ClosestPoint(q)
		if cd < bestDist {
			bestDist = cd
			curveIndex, t, pt = i, ct, cp
		}
	}
	return curveIndex, t, bestDist, pt
}

// NewCircle builds a closed four-segment approximation of a circle of
// the given radius centered at center.
func NewCircle(center Point, radius float64) *Shape {
	return NewEllipse(center, radius, radius)
}

// NewEllipse builds a closed four-segment approximation of an ellipse
// with the given per-axis radii centered at center, generalizing
// NewCircle's four-cubic construction to independent x/y scale.
func NewEllipse(center Point, rx, ry float64) *Shape {
	dirs := [4]Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}}
	axisRadius := func(d Point) float64 {
		if d.X != 0 {
			return rx
		}
		return ry
	}
	// The handle at an anchor runs perpendicular to its radial
	// direction, so its length tracks the OTHER axis's radius.
	handleRadius := func(d Point) float64 {
		if d.X != 0 {
			return ry
		}
		return rx
	}

	anchors := make([]DbCoord, 4)
	for i, d := range dirs {
		anchors[i] = NewDbCoord(center.Add(d.Mul(axisRadius(d) * circleC)))
	}

	path := make([]DbCoord, 0, 13)
	path = append(path, anchors[0])
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		perpI := Vec2(dirs[i]).Perp().ToPoint()
		perpJ := Vec2(dirs[j]).Perp().ToPoint()
		c0 := anchors[i].Coord.Add(perpI.Mul(handleRadius(dirs[i]) * circleB * circleA))
		c1 := anchors[j].Coord.Sub(perpJ.Mul(handleRadius(dirs[j]) * circleB * circleA))
		path = append(path, NewDbCoord(c0), NewDbCoord(c1))
		if j == 0 {
			path = append(path, DbCoord{ID: anchors[0].ID, Coord: anchors[0].Coord})
		} else {
			path = append(path, anchors[j])
		}
	}

	return &Shape{Path: path}
}

// NewFromLines builds a closed straight-edged shape through vertices,
// giving every vertex a zero-length handle pair on both sides so the
// result satisfies the straight-line identity test from its first
// edit.
func NewFromLines(vertices []Point) *Shape {
	if len(vertices) < 2 {
		return &Shape{}
	}
	anchors := make([]DbCoord, len(vertices))
	for i, v := range vertices {
		anchors[i] = NewDbCoord(v)
	}

	path := make([]DbCoord, 0, 3*len(vertices)+1)
	path = append(path, anchors[0])
	for i := range vertices {
		j := (i + 1) % len(vertices)
		path = append(path,
			DbCoord{ID: anchors[i].ID, Coord: anchors[i].Coord},
			DbCoord{ID: anchors[j].ID, Coord: anchors[j].Coord},
		)
		if j == 0 {
			path = append(path, DbCoord{ID: anchors[0].ID, Coord: anchors[0].Coord})
		} else {
			path = append(path, anchors[j])
		}
	}
	return &Shape{Path: path}
}

// Transform returns a new Shape with m applied to every coordinate of
// s's path, preserving every coordinate's identifier and s's fill and
// stroke style.
func (s *Shape) Transform(m Matrix) *Shape {
	out := make([]DbCoord, len(s.Path))
	for i, c := range s.Path {
		out[i] = m.TransformDbCoord(c)
	}
	return &Shape{Path: out, Fill: s.Fill, Stroke: s.Stroke}
}

// NewFromPath wraps an already-built sequence of identity-bearing
// coordinates as a Shape, without minting new identifiers.
func NewFromPath(coords []DbCoord) *Shape {
	cp := make([]DbCoord, len(coords))
	copy(cp, coords)
	return &Shape{Path: cp}
}

// PathText serializes the shape's path to the "M x y C ... Z" text
// format: successive cubics omit the leading "C" token after the
// first, and the path is always closed with "Z".
func (s *Shape) PathText() string {
	if s.CurveCount() == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "M %s %s", fmtFloat(s.Path[0].Coord.X), fmtFloat(s.Path[0].Coord.Y))
	for i := 0; i < s.CurveCount(); i++ {
		c := s.Curve(i)
		if i == 0 {
			b.WriteString(" C")
		}
		fmt.Fprintf(&b, " %s %s %s %s %s %s",
			fmtFloat(c.P1.X), fmtFloat(c.P1.Y),
			fmtFloat(c.P2.X), fmtFloat(c.P2.Y),
			fmtFloat(c.P3.X), fmtFloat(c.P3.Y))
	}
	b.WriteString(" Z")
	return b.String()
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ParsePathText parses the "M x y C ... Z" text format described in
// SPEC_FULL.md, accepting both the fully-explicit form (a "C" token
// before every sextuple) and the first-C-elidable compact form.
// Parsed coordinates are minted fresh identifiers.
func ParsePathText(text string) (*Shape, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, fmt.Errorf("gg: ParsePathText: empty input")
	}
	i := 0
	readFloat := func() (float64, error) {
		if i >= len(fields) {
			return 0, fmt.Errorf("gg: ParsePathText: unexpected end of input")
		}
		v, err := strconv.ParseFloat(fields[i], 64)
		i++
		return v, err
	}

	if fields[i] != "M" {
		return nil, fmt.Errorf("gg: ParsePathText: expected M, got %q", fields[i])
	}
	i++
	x0, err := readFloat()
	if err != nil {
		return nil, err
	}
	y0, err := readFloat()
	if err != nil {
		return nil, err
	}
	start := NewDbCoord(Point{X: x0, Y: y0})
	path := []DbCoord{start}
	prev := start

	for i < len(fields) {
		switch fields[i] {
		case "C":
			i++
		case "Z":
			i++
			continue
		}
		if i+6 > len(fields) {
			break
		}
		var vals [6]float64
		for k := range vals {
			v, err := readFloat()
			if err != nil {
				return nil, err
			}
			vals[k] = v
		}
		c0 := NewDbCoord(Point{X: vals[0], Y: vals[1]})
		c1 := NewDbCoord(Point{X: vals[2], Y: vals[3]})
		p1 := NewDbCoord(Point{X: vals[4], Y: vals[5]})
		path = append(path, c0, c1, p1)
		prev = p1
	}

	if len(path) < 4 {
		return nil, ErrPathNotClosed
	}
	path = append(path, DbCoord{ID: start.ID, Coord: start.Coord})
	_ = prev

	return &Shape{Path: path}, nil
}
