package sim

import (
	"fmt"

	"github.com/danmichaelo/statusindicator/internal/host"
	"github.com/danmichaelo/statusindicator/internal/model"
)

// Host is a scriptable in-memory visualization host. It dispatches events
// synchronously from the calling goroutine, matching the single-threaded
// model the overlay engine assumes.
type Host struct {
	frame      int
	total      int
	metrics    model.ViewportMetrics
	background model.Color

	frameSubs map[int]func(int)
	quitSubs  map[int]func()
	nextSub   int

	drawables map[*Drawable]struct{}
}

// New creates a host holding a trajectory of totalFrames frames and an
// 800x600 perspective viewport at scale 1
func New(totalFrames int) *Host {
	return &Host{
		total: totalFrames,
		metrics: model.ViewportMetrics{
			PixelWidth:  800,
			PixelHeight: 600,
			ScaleFactor: 1.0,
			NearClip:    0.5,
			Projection:  model.ProjectionPerspective,
		},
		frameSubs: make(map[int]func(int)),
		quitSubs:  make(map[int]func()),
		drawables: make(map[*Drawable]struct{}),
	}
}

// SetViewport replaces the reported viewport metrics
func (h *Host) SetViewport(m model.ViewportMetrics) { h.metrics = m }

// SetBackground replaces the reported background color
func (h *Host) SetBackground(c model.Color) { h.background = c }

// OnFrameChanged registers a frame-change callback
func (h *Host) OnFrameChanged(fn func(int)) host.Subscription {
	id := h.nextSub
	h.nextSub++
	h.frameSubs[id] = fn
	return &subscription{cancel: func() { delete(h.frameSubs, id) }}
}

// OnQuitRequested registers a teardown callback
func (h *Host) OnQuitRequested(fn func()) host.Subscription {
	id := h.nextSub
	h.nextSub++
	h.quitSubs[id] = fn
	return &subscription{cancel: func() { delete(h.quitSubs, id) }}
}

// ActiveViewport returns the configured viewport metrics
func (h *Host) ActiveViewport() model.ViewportMetrics { return h.metrics }

// CurrentFrame returns the current frame index
func (h *Host) CurrentFrame() int { return h.frame }

// TotalFrames returns the trajectory length
func (h *Host) TotalFrames() int { return h.total }

// BackgroundColor returns the configured background color
func (h *Host) BackgroundColor() model.Color { return h.background }

// CreateDrawable creates a recording drawable
func (h *Host) CreateDrawable() (host.Drawable, error) {
	d := &Drawable{}
	h.drawables[d] = struct{}{}
	return d, nil
}

// DestroyDrawable removes a drawable created by this host
func (h *Host) DestroyDrawable(d host.Drawable) error {
	rec, ok := d.(*Drawable)
	if !ok {
		return fmt.Errorf("sim: foreign drawable %T", d)
	}
	if _, exists := h.drawables[rec]; !exists {
		return fmt.Errorf("sim: drawable already destroyed")
	}
	delete(h.drawables, rec)
	return nil
}

// DrawableCount returns the number of live drawables
func (h *Host) DrawableCount() int { return len(h.drawables) }

// Seek jumps to the given frame and fires the frame-change event
func (h *Host) Seek(frame int) {
	h.frame = frame
	for _, fn := range h.frameSubs {
		fn(frame)
	}
}

// Advance steps to the next frame, wrapping at the end of the trajectory
func (h *Host) Advance() {
	next := h.frame + 1
	if h.total > 0 {
		next %= h.total
	}
	h.Seek(next)
}

// Quit fires the quit event, as the real host does during teardown
func (h *Host) Quit() {
	for _, fn := range h.quitSubs {
		fn()
	}
}

type subscription struct {
	cancel func()
}

func (s *subscription) Cancel() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
