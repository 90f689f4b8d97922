package gg

// ToPath renders s's cubic segments into a Path, the teacher's opaque
// drawing-command sequence. This hands a boolean-operation result
// access to Path's Area/Length/BoundingBox/Flatten utilities (e.g. for
// a diagnostic dump or a debug rasterizer that prefers polylines over
// raw cubics) without requiring Shape itself to duplicate them.
func (s *Shape) ToPath() *Path {
	b := BuildPath()
	if s.CurveCount() == 0 {
		return b.Build()
	}
	start := s.Path[0].Coord
	b.MoveTo(start.X, start.Y)
	for i := 0; i < s.CurveCount(); i++ {
		c := s.Curve(i)
		b.CubicTo(c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y)
	}
	b.Close()
	return b.Build()
}
