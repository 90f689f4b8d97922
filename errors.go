package gg

import "errors"

// Programmer errors: reported by returning an error value, never by
// panicking in library code. Callers are expected to treat these as
// bugs in the calling code, following the sentinel-error convention
// the teacher establishes in accelerator.go (ErrFallbackToCPU).
var (
	// ErrShapeNotFound is returned when a lookup by CoordID or LayerID
	// finds no match.
	ErrShapeNotFound = errors.New("gg: shape not found")

	// ErrCoordNotFound is returned when an editing operation is given a
	// CoordID that does not appear in the target path.
	ErrCoordNotFound = errors.New("gg: coordinate not found")

	// ErrPathNotClosed is returned when a boolean operation or editing
	// operation requires a closed path and the operand is open.
	ErrPathNotClosed = errors.New("gg: path is not closed")

	// ErrNonFiniteCoord is returned when a coordinate fed to a Shape
	// constructor or editing operation is NaN or infinite.
	ErrNonFiniteCoord = errors.New("gg: non-finite coordinate")

	// ErrShapeEmptied is returned by CoordDelete when removing the
	// requested anchor would leave fewer than one cubic segment; the
	// caller (scene layer) is expected to remove the now-empty shape.
	ErrShapeEmptied = errors.New("gg: shape emptied by deletion")

	// ErrDegenerateShapes is the structural-degeneracy error logged
	// when two closed shapes coincide everywhere, leaving no node from
	// which to seed entry/exit marking.
	ErrDegenerateShapes = errors.New("gg: shapes coincide everywhere")
)
