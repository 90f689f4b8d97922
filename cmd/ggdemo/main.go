// Command ggdemo renders a small scene of shapes through the gg
// boolean-geometry engine, traces Intersection/Difference between
// two of them, and writes the whole stack out as a PNG using
// golang.org/x/image/vector as a debug rasterizer.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/gogpu/gg"
	"golang.org/x/image/vector"
)

func main() {
	var (
		width  = flag.Int("width", 480, "image width")
		height = flag.Int("height", 360, "image height")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	sc := gg.NewScene()

	a := gg.NewCircle(gg.Pt(180, 160), 90)
	a.Fill = gg.RGBA{R: 0.86, G: 0.25, B: 0.25, A: 0.6}
	a.Stroke = gg.StrokeStyle{Color: gg.RGBA{A: 1}, Width: 2}
	b := gg.NewCircle(gg.Pt(260, 160), 90)
	b.Fill = gg.RGBA{R: 0.25, G: 0.4, B: 0.86, A: 0.6}
	b.Stroke = gg.StrokeStyle{Color: gg.RGBA{A: 1}, Width: 2}

	sc.InsertShape(a)
	sc.InsertShape(b)
	log.Printf("circle A: area=%.1f perimeter=%.1f", a.ToPath().Area(), a.ToPath().Length(0.01))

	if diff, err := gg.Difference(a, b); err != nil {
		log.Printf("difference failed: %v", err)
	} else if n, ok := diff.(gg.DifferenceNew); ok {
		for _, piece := range n.Shapes {
			s := piece.Transform(gg.Translate(0, 220))
			s.Fill = gg.RGBA{R: 0.95, G: 0.75, B: 0.1, A: 0.9}
			sc.InsertShape(s)
			log.Printf("difference piece: area=%.1f", s.ToPath().Area())
		}
	}

	if inter, err := gg.Intersection(a, b); err != nil {
		log.Printf("intersection failed: %v", err)
	} else if n, ok := inter.(gg.IntersectionNew); ok {
		for _, piece := range n.Shapes {
			s := piece.Transform(gg.Translate(320, 220))
			s.Fill = gg.RGBA{R: 0.2, G: 0.8, B: 0.4, A: 0.9}
			sc.InsertShape(s)
		}
	}

	canvas := image.NewRGBA(image.Rect(0, 0, *width, *height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	target := &rasterTarget{canvas: canvas, w: *width, h: *height}
	gg.DrawScene(target, sc)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("create output: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, canvas); err != nil {
		log.Fatalf("encode png: %v", err)
	}
	log.Printf("demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// rasterTarget is a minimal gg.DrawTarget backed by
// golang.org/x/image/vector, good enough for golden-file and manual
// inspection but not a production rasterizer: it fills every subpath
// with the vector package's nonzero rule (even-odd is not exposed),
// which agrees with even-odd for the simple, non-self-intersecting
// contours this package's boolean operations produce.
type rasterTarget struct {
	canvas      *image.RGBA
	w, h        int
	raster      *vector.Rasterizer
	fill        color.Color
	strokeColor color.Color
	strokeWidth float64
	outline     *gg.PathBuilder
}

func (t *rasterTarget) Begin() {}

func (t *rasterTarget) SetFill(c gg.RGBA) {
	t.fill = color.NRGBA64{
		R: uint16(c.R * 0xffff),
		G: uint16(c.G * 0xffff),
		B: uint16(c.B * 0xffff),
		A: uint16(c.A * 0xffff),
	}
}

func (t *rasterTarget) SetStroke(s gg.StrokeStyle) {
	t.strokeColor = color.NRGBA64{
		R: uint16(s.Color.R * 0xffff),
		G: uint16(s.Color.G * 0xffff),
		B: uint16(s.Color.B * 0xffff),
		A: uint16(s.Color.A * 0xffff),
	}
	t.strokeWidth = s.Width
}

func (t *rasterTarget) MoveTo(p gg.Point) {
	t.raster = vector.NewRasterizer(t.w, t.h)
	t.raster.MoveTo(float32(p.X), float32(p.Y))
	t.outline = gg.BuildPath()
	t.outline.MoveTo(p.X, p.Y)
}

func (t *rasterTarget) CubicTo(c1, c2, p3 gg.Point) {
	t.raster.CubicTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(p3.X), float32(p3.Y))
	t.outline.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p3.X, p3.Y)
}

func (t *rasterTarget) LineTo(p gg.Point) {
	t.raster.LineTo(float32(p.X), float32(p.Y))
	t.outline.LineTo(p.X, p.Y)
}

func (t *rasterTarget) ClosePath() {
	if t.raster != nil {
		t.raster.ClosePath()
	}
	if t.outline != nil {
		t.outline.Close()
	}
}

func (t *rasterTarget) FillEvenOdd() {
	if t.raster == nil {
		return
	}
	t.raster.Draw(t.canvas, t.canvas.Bounds(), image.NewUniform(t.fill), image.Point{})
}

// Stroke approximates a stroked outline by flattening the just-filled
// subpath (golang.org/x/image/vector has no stroke of its own) and
// rasterizing a thin quad along each resulting segment.
func (t *rasterTarget) Stroke() {
	if t.outline == nil || t.strokeWidth <= 0 {
		return
	}
	half := float32(t.strokeWidth / 2)
	var prev gg.Point
	has := false
	stroker := vector.NewRasterizer(t.w, t.h)
	t.outline.Build().FlattenCallback(0.5, func(pt gg.Point) {
		if !has {
			prev, has = pt, true
			return
		}
		dx, dy := pt.X-prev.X, pt.Y-prev.Y
		length := math.Hypot(dx, dy)
		if length > 0 {
			nx, ny := float32(-dy/length)*half, float32(dx/length)*half
			x0, y0 := float32(prev.X), float32(prev.Y)
			x1, y1 := float32(pt.X), float32(pt.Y)
			stroker.MoveTo(x0-nx, y0-ny)
			stroker.LineTo(x1-nx, y1-ny)
			stroker.LineTo(x1+nx, y1+ny)
			stroker.LineTo(x0+nx, y0+ny)
			stroker.ClosePath()
		}
		prev = pt
	})
	stroker.Draw(t.canvas, t.canvas.Bounds(), image.NewUniform(t.strokeColor), image.Point{})
}

func (t *rasterTarget) End() {}
