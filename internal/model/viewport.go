package model

// Projection represents the camera projection mode of the host viewport
type Projection int

const (
	// ProjectionOrthographic is a parallel projection; the overlay is pushed
	// just inside the near clip plane
	ProjectionOrthographic Projection = iota

	// ProjectionPerspective is a perspective projection; the overlay is pinned
	// at world origin depth
	ProjectionPerspective
)

// String returns the string representation of Projection
func (p Projection) String() string {
	if p == ProjectionOrthographic {
		return "orthographic"
	}
	return "perspective"
}

// ViewportMetrics describes the host's active viewport at the moment of a
// redraw. It is refetched from the host on every redraw cycle and never
// persisted.
type ViewportMetrics struct {
	PixelWidth  int        // viewport width in pixels, > 0
	PixelHeight int        // viewport height in pixels, > 0
	ScaleFactor float64    // current zoom/display scale, > 0
	NearClip    float64    // near clip plane distance
	Projection  Projection // camera projection mode
}

// Vec3 is a point in the host's normalized display space
type Vec3 struct {
	X, Y, Z float64
}

// Color is an RGB color with channels in [0,1]
type Color struct {
	R, G, B float64
}

// Sum returns the scalar sum of the three channels, used as a cheap
// luminance estimate by the foreground color policy
func (c Color) Sum() float64 {
	return c.R + c.G + c.B
}
