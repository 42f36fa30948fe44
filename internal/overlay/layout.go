package overlay

import (
	"github.com/danmichaelo/statusindicator/internal/model"
)

// Geometry constants, expressed as fractions of the display-space extent
const (
	// VerticalFootprint fixes the overlay's display height at one quarter of
	// the viewport pixel height
	VerticalFootprint = 0.25

	// ClipMargin keeps the overlay just inside the clip volume in
	// orthographic projection
	ClipMargin = 0.001

	// BarThicknessFrac is the progress bar thickness relative to the full
	// display height (2*displayHeight)
	BarThicknessFrac = 0.02

	// BarMarginFrac is the gap between the bar and the bottom edge
	BarMarginFrac = 0.01

	// BarWidthFrac is the horizontal extent of the bar relative to the
	// display half-width
	BarWidthFrac = 0.95
)

// Rect is an axis-aligned rectangle in display space at a fixed depth
type Rect struct {
	Left, Bottom, Right, Top float64
	Z                        float64
}

// Width returns the horizontal extent of the rectangle
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle
func (r Rect) Height() float64 {
	return r.Top - r.Bottom
}

// Layout is the computed placement of all overlay primitives for one redraw.
// Invariants: Inner is strictly contained in Outer, Fill spans Inner's left
// edge proportionally to the percentage, and Outer.Z > Inner.Z > Fill.Z.
type Layout struct {
	Outer Rect // gray border rectangle, farthest layer
	Inner Rect // white box inset by one pixel-unit, middle layer
	Fill  Rect // silver progress fill, front layer

	TimeAnchor   model.Vec3 // anchor of the time label, just above the bar
	HeaderAnchor model.Vec3 // anchor of the header text, near the top edge

	DisplayWidth  float64 // display-space half-width of the viewport
	DisplayHeight float64 // display-space half-height of the viewport

	// Display-space length of one screen pixel at the current zoom
	PixelWidthUnit  float64
	PixelHeightUnit float64

	Front float64 // depth of the front layer
}

// Compute lays out the overlay for the given viewport and progress. It is a
// total function; percentage must already be clamped to [0,1] by the caller.
func Compute(m model.ViewportMetrics, percentage float64) Layout {
	displayHeight := VerticalFootprint * float64(m.PixelHeight) / m.ScaleFactor
	displayWidth := displayHeight * float64(m.PixelWidth) / float64(m.PixelHeight)

	// In orthographic projection the overlay sits just inside the near clip
	// plane; in perspective it stays at world origin depth.
	front := 0.0
	if m.Projection == model.ProjectionOrthographic {
		front = (2 - m.NearClip - ClipMargin) / m.ScaleFactor
	}

	thickness := BarThicknessFrac * 2 * displayHeight
	margin := BarMarginFrac * 2 * displayHeight
	bottom := -displayHeight + margin
	top := bottom + thickness
	left := -BarWidthFrac * displayWidth
	right := BarWidthFrac * displayWidth

	// One-pixel border insets, expressed in display units
	pw := 2 * displayWidth / float64(m.PixelWidth)
	ph := 2 * displayHeight / float64(m.PixelHeight)

	outer := Rect{Left: left, Bottom: bottom, Right: right, Top: top, Z: front + 2*pw}
	inner := Rect{Left: left + pw, Bottom: bottom + ph, Right: right - pw, Top: top - ph, Z: front + pw}
	fill := Rect{
		Left:   inner.Left,
		Bottom: inner.Bottom,
		Right:  inner.Left + percentage*inner.Width(),
		Top:    inner.Top,
		Z:      front,
	}

	return Layout{
		Outer:           outer,
		Inner:           inner,
		Fill:            fill,
		TimeAnchor:      model.Vec3{X: left, Y: top + margin, Z: front},
		HeaderAnchor:    model.Vec3{X: left, Y: displayHeight - thickness - margin, Z: front},
		DisplayWidth:    displayWidth,
		DisplayHeight:   displayHeight,
		PixelWidthUnit:  pw,
		PixelHeightUnit: ph,
		Front:           front,
	}
}
