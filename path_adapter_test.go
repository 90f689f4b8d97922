package gg

import (
	"math"
	"testing"
)

func TestShape_ToPath_CircleArea(t *testing.T) {
	radius := 10.0
	c := NewCircle(Pt(0, 0), radius)

	got := math.Abs(c.ToPath().Area())
	want := math.Pi * radius * radius
	if math.Abs(got-want) > want*0.01 {
		t.Errorf("ToPath().Area() = %v, want ~%v", got, want)
	}
}

func TestShape_ToPath_SquarePerimeter(t *testing.T) {
	sq := NewFromLines([]Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}})

	got := sq.ToPath().Length(0.01)
	want := 40.0
	if math.Abs(got-want) > 0.1 {
		t.Errorf("ToPath().Length() = %v, want ~%v", got, want)
	}
}

func TestShape_ToPath_EmptyShape(t *testing.T) {
	empty := &Shape{}
	p := empty.ToPath()
	if p.Area() != 0 {
		t.Errorf("ToPath() of an empty shape should have zero area, got %v", p.Area())
	}
}
