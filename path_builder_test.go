package gg

import (
	"testing"
)

func TestPathBuilder_Basic(t *testing.T) {
	path := BuildPath().
		MoveTo(0, 0).
		LineTo(100, 0).
		LineTo(100, 100).
		Close().
		Build()

	if path == nil {
		t.Fatal("expected non-nil path")
	}

	// Check path has elements
	count := len(path.Elements())
	if count != 4 { // MoveTo, LineTo, LineTo, Close
		t.Errorf("expected 4 elements, got %d", count)
	}
}

func TestPathBuilder_QuadTo(t *testing.T) {
	path := BuildPath().
		MoveTo(0, 0).
		QuadTo(50, 100, 100, 0).
		Build()

	if path == nil {
		t.Fatal("expected non-nil path")
	}

	count := len(path.Elements())
	if count != 2 { // MoveTo, QuadTo
		t.Errorf("expected 2 elements, got %d", count)
	}
}

func TestPathBuilder_CubicTo(t *testing.T) {
	path := BuildPath().
		MoveTo(0, 0).
		CubicTo(25, 100, 75, 100, 100, 0).
		Build()

	if path == nil {
		t.Fatal("expected non-nil path")
	}

	count := len(path.Elements())
	if count != 2 { // MoveTo, CubicTo
		t.Errorf("expected 2 elements, got %d", count)
	}
}

func TestPathBuilder_Chaining(t *testing.T) {
	// Test that MoveTo/LineTo/CubicTo/Close chain across multiple subpaths,
	// the pattern rasterTarget's stroke outline relies on in cmd/ggdemo.
	path := BuildPath().
		MoveTo(0, 0).
		CubicTo(10, 20, 30, 20, 40, 0).
		Close().
		MoveTo(100, 0).
		LineTo(200, 0).
		LineTo(200, 100).
		Close().
		Build()

	if path == nil {
		t.Fatal("expected non-nil path")
	}

	count := len(path.Elements())
	// First subpath: MoveTo, CubicTo, Close = 3
	// Second subpath: MoveTo, LineTo, LineTo, Close = 4
	if count != 7 {
		t.Errorf("expected 7 elements from chained subpaths, got %d", count)
	}
}

func TestPathBuilder_PathAlias(t *testing.T) {
	builder := BuildPath().MoveTo(0, 0).LineTo(100, 100)

	// Both Build() and Path() should return the same path
	pathFromBuild := builder.Build()
	pathFromPath := builder.Path()

	if pathFromBuild != pathFromPath {
		t.Error("Build() and Path() should return the same path")
	}
}

func TestPathBuilder_EmptyPath(t *testing.T) {
	path := BuildPath().Build()

	if path == nil {
		t.Fatal("expected non-nil path")
	}

	count := len(path.Elements())
	if count != 0 {
		t.Errorf("expected 0 elements for empty path, got %d", count)
	}
}
