package gg

// DrawTarget is the capability interface a drawing collaborator
// implements to turn Shapes into pixels, vector output, or any other
// presentation. This package depends on the interface but never
// implements it itself, the same structural role the teacher's
// Renderer interface played for the GPU pipeline this package no
// longer carries.
type DrawTarget interface {
	// Begin starts a new drawing pass, e.g. clearing a backing surface.
	Begin()

	// SetFill and SetStroke configure the paint used by subsequent
	// FillEvenOdd/Stroke calls.
	SetFill(RGBA)
	SetStroke(StrokeStyle)

	// MoveTo starts a new subpath at p without drawing.
	MoveTo(p Point)
	// CubicTo appends a cubic Bezier segment ending at p3.
	CubicTo(c1, c2, p3 Point)
	// LineTo appends a straight segment ending at p.
	LineTo(p Point)
	// ClosePath closes the current subpath back to its start point.
	ClosePath()

	// FillEvenOdd fills every subpath accumulated since the last Begin
	// using the even-odd rule, matching Shape.Contains's semantics.
	FillEvenOdd()
	// Stroke strokes every subpath accumulated since the last Begin.
	Stroke()

	// End finalizes the drawing pass.
	End()
}

// DrawShape replays shape's path onto target via MoveTo/CubicTo/
// ClosePath, then fills and strokes it according to its own style.
func DrawShape(target DrawTarget, shape *Shape) {
	if shape.CurveCount() == 0 {
		return
	}
	target.SetFill(shape.Fill)
	target.SetStroke(shape.Stroke)
	target.MoveTo(shape.Path[0].Coord)
	for i := 0; i < shape.CurveCount(); i++ {
		c := shape.Curve(i)
		target.CubicTo(c.P1, c.P2, c.P3)
	}
	target.ClosePath()
	target.FillEvenOdd()
	if shape.Stroke.Width > 0 {
		target.Stroke()
	}
}

// DrawScene replays every layer of sc onto target, back to front,
// bracketed by a single Begin/End pass.
func DrawScene(target DrawTarget, sc *Scene) {
	target.Begin()
	for _, layer := range sc.Layers {
		DrawShape(target, layer.Shape)
	}
	target.End()
}
