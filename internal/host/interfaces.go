package host

import (
	"github.com/danmichaelo/statusindicator/internal/model"
)

// Subscription is a handle to a registered event callback. Cancel removes the
// callback; it is safe to call more than once.
type Subscription interface {
	Cancel()
}

// Drawable is a sink for overlay primitives owned by the engine. All
// coordinates are in the host's normalized display space.
type Drawable interface {
	// Clear removes every primitive previously added to this drawable
	Clear()

	// AddTriangle adds one filled triangle in the current draw color
	AddTriangle(p1, p2, p3 model.Vec3)

	// AddText adds a text string anchored at pos with the given relative size
	AddText(pos model.Vec3, text string, size float64)

	// SetColor sets the draw color for subsequent primitives
	SetColor(c model.Color)
}

// Host is the interface the overlay engine consumes. Event callbacks are
// dispatched synchronously on the host's single event goroutine; the engine
// performs a full redraw cycle inside the callback before returning.
type Host interface {
	// OnFrameChanged registers a callback fired after the current animation
	// frame changes. The new frame index is passed to the callback.
	OnFrameChanged(fn func(frame int)) Subscription

	// OnQuitRequested registers a callback fired when the host begins tearing
	// down. Drawables must not be destroyed from inside the callback.
	OnQuitRequested(fn func()) Subscription

	// ActiveViewport returns the metrics of the currently active viewport
	ActiveViewport() model.ViewportMetrics

	// CurrentFrame returns the index of the current animation frame
	CurrentFrame() int

	// TotalFrames returns the number of frames in the loaded trajectory
	TotalFrames() int

	// CreateDrawable creates a new empty drawable layered over the viewport
	CreateDrawable() (Drawable, error)

	// DestroyDrawable removes a drawable created by CreateDrawable
	DestroyDrawable(d Drawable) error

	// BackgroundColor returns the viewport background color
	BackgroundColor() model.Color
}
