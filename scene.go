package gg

// LayerID is an opaque, process-wide unique identifier for a Layer,
// minted from the same kind of counter as CoordID.
type LayerID uint64

// Layer binds a Shape to its stacking position via ID; the Scene's
// Layers slice order is the paint order, back to front.
type Layer struct {
	ID    LayerID
	Shape *Shape
}

// Scene is an ordered stack of shape layers. It has no rendering
// behavior of its own; a DrawTarget collaborator turns it into pixels.
type Scene struct {
	Layers []Layer

	ids idSource
}

// NewScene creates an empty Scene. By default layer identifiers are
// drawn from the package-wide monotonic generator; pass WithIDSource to
// override this, e.g. for deterministic tests. Coordinate identifiers
// always come from the package-wide generator.
func NewScene(opts ...SceneOption) *Scene {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Scene{ids: o.ids}
}

// InsertShape appends shape as a new top-most layer and returns its
// freshly minted LayerID.
func (s *Scene) InsertShape(shape *Shape) LayerID {
	id := LayerID(s.ids.next())
	s.Layers = append(s.Layers, Layer{ID: id, Shape: shape})
	return id
}

// DeleteLayer removes the layer carrying id, if present.
func (s *Scene) DeleteLayer(id LayerID) error {
	for i, l := range s.Layers {
		if l.ID == id {
			s.Layers = append(s.Layers[:i], s.Layers[i+1:]...)
			return nil
		}
	}
	return ErrShapeNotFound
}

// MoveLayerBefore repositions the layer carrying id so that it sits
// immediately before the layer carrying before in paint order. Passing
// an invalid before moves id to the front of the stack.
func (s *Scene) MoveLayerBefore(id, before LayerID) error {
	srcIdx := -1
	for i, l := range s.Layers {
		if l.ID == id {
			srcIdx = i
			break
		}
	}
	if srcIdx == -1 {
		return ErrShapeNotFound
	}

	layer := s.Layers[srcIdx]
	s.Layers = append(s.Layers[:srcIdx], s.Layers[srcIdx+1:]...)

	dstIdx := len(s.Layers)
	for i, l := range s.Layers {
		if l.ID == before {
			dstIdx = i
			break
		}
	}
	s.Layers = append(s.Layers[:dstIdx], append([]Layer{layer}, s.Layers[dstIdx:]...)...)
	return nil
}

// LayerPosition returns the stacking index (0 = bottom-most) of the
// layer carrying id.
func (s *Scene) LayerPosition(id LayerID) (int, bool) {
	for i, l := range s.Layers {
		if l.ID == id {
			return i, true
		}
	}
	return 0, false
}

// ShapeByID returns the shape of the layer carrying id.
func (s *Scene) ShapeByID(id LayerID) (*Shape, bool) {
	for _, l := range s.Layers {
		if l.ID == id {
			return l.Shape, true
		}
	}
	return nil, false
}

// ShapeContaining returns the topmost layer whose shape contains q,
// searching front-to-back so the layer the user would actually click
// on is returned first.
func (s *Scene) ShapeContaining(q Point) (LayerID, bool) {
	for i := len(s.Layers) - 1; i >= 0; i-- {
		if s.Layers[i].Shape.Contains(q) {
			return s.Layers[i].ID, true
		}
	}
	return 0, false
}
