// Package gg is a deterministic, CPU-only 2D vector geometry engine.
//
// # Overview
//
// gg models vector shapes as closed sequences of cubic Bezier curves whose
// endpoint coordinates carry stable identity across edits and boolean
// operations. It provides curve evaluation and subdivision, curve-curve
// intersection, even-odd point-in-region testing, the boolean set
// operations union, intersection and difference over shapes, and direct
// editing operations (insert, delete, join/separate handles) that preserve
// coordinate identity wherever the source geometry survives.
//
// # Quick Start
//
//	import "github.com/gogpu/gg"
//
//	a := gg.NewCircle(gg.Pt(0, 0), 50)
//	b := gg.NewCircle(gg.Pt(40, 0), 50)
//
//	result, err := gg.Union(a, b)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Scope
//
// This package does not stroke, rasterize, shade or render. Producing
// pixels from a Shape's Path is the job of an external Drawing
// collaborator (see the DrawTarget interface); gg only computes geometry.
//
// # Coordinate System
//
// Coordinates are plain Cartesian float64 pairs; gg imposes no particular
// origin or axis direction convention beyond what callers choose.
//
// # Determinism
//
// Every operation in this package is deterministic and single-threaded.
// The only shared mutable state is a monotonic coordinate identifier
// generator and the logger installed with SetLogger; all other
// computation is pure with respect to its inputs.
package gg
