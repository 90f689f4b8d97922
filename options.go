package gg

// SceneOption configures a Scene during creation.
// Use functional options to customize Scene behavior.
//
// Example:
//
//	// Default scene
//	sc := gg.NewScene()
//
//	// Scene with a deterministic layer identifier source (useful for
//	// tests, where reproducible layer identifiers matter)
//	sc := gg.NewScene(gg.WithIDSource(idsrc))
type SceneOption func(*sceneOptions)

// sceneOptions holds optional configuration for Scene creation.
type sceneOptions struct {
	ids idSource
}

// defaultOptions returns the default scene options.
func defaultOptions() sceneOptions {
	return sceneOptions{
		ids: globalIDSource,
	}
}

// WithIDSource overrides the layer identifier source for a Scene. By
// default every Scene draws from the package-wide monotonic generator;
// a dedicated idSource lets tests produce reproducible LayerID
// sequences without interference from other tests. Coordinate
// identifiers are not affected: NewDbCoord always uses the package-wide
// generator.
func WithIDSource(ids idSource) SceneOption {
	return func(o *sceneOptions) {
		if ids != nil {
			o.ids = ids
		}
	}
}
