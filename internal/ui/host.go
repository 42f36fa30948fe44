package ui

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/danmichaelo/statusindicator/internal/host"
	"github.com/danmichaelo/statusindicator/internal/model"
)

// PlaybackHost implements the host contract on top of a Viewport widget,
// adding trajectory playback: a frame counter advanced by a timer or by the
// frame slider. Event callbacks always run on the Fyne main goroutine; timer
// ticks are marshaled there with fyne.Do.
type PlaybackHost struct {
	viewport *Viewport
	frame    int
	total    int

	frameSubs map[int]func(int)
	quitSubs  map[int]func()
	nextSub   int

	stop chan struct{} // non-nil while playing
}

// NewPlaybackHost creates a paused host over the given viewport
func NewPlaybackHost(viewport *Viewport, totalFrames int) *PlaybackHost {
	return &PlaybackHost{
		viewport:  viewport,
		total:     totalFrames,
		frameSubs: make(map[int]func(int)),
		quitSubs:  make(map[int]func()),
	}
}

// OnFrameChanged registers a frame-change callback
func (h *PlaybackHost) OnFrameChanged(fn func(int)) host.Subscription {
	id := h.nextSub
	h.nextSub++
	h.frameSubs[id] = fn
	return &subscription{cancel: func() { delete(h.frameSubs, id) }}
}

// OnQuitRequested registers a teardown callback
func (h *PlaybackHost) OnQuitRequested(fn func()) host.Subscription {
	id := h.nextSub
	h.nextSub++
	h.quitSubs[id] = fn
	return &subscription{cancel: func() { delete(h.quitSubs, id) }}
}

// ActiveViewport returns the live viewport metrics
func (h *PlaybackHost) ActiveViewport() model.ViewportMetrics {
	return h.viewport.Metrics()
}

// CurrentFrame returns the current frame index
func (h *PlaybackHost) CurrentFrame() int { return h.frame }

// TotalFrames returns the trajectory length
func (h *PlaybackHost) TotalFrames() int { return h.total }

// BackgroundColor returns the viewport background color
func (h *PlaybackHost) BackgroundColor() model.Color {
	return h.viewport.Background()
}

// CreateDrawable delegates to the viewport registry
func (h *PlaybackHost) CreateDrawable() (host.Drawable, error) {
	return h.viewport.CreateDrawable()
}

// DestroyDrawable delegates to the viewport registry
func (h *PlaybackHost) DestroyDrawable(d host.Drawable) error {
	return h.viewport.DestroyDrawable(d)
}

// Seek jumps to the given frame, clamped to the trajectory, and fires the
// frame-change event. Must be called on the Fyne main goroutine.
func (h *PlaybackHost) Seek(frame int) {
	if frame < 0 {
		frame = 0
	}
	if h.total > 0 && frame > h.total-1 {
		frame = h.total - 1
	}
	h.frame = frame
	for _, fn := range h.frameSubs {
		fn(frame)
	}
}

// Advance steps to the next frame, wrapping at the trajectory end
func (h *PlaybackHost) Advance() {
	if h.total == 0 {
		return
	}
	h.frame = (h.frame + 1) % h.total
	for _, fn := range h.frameSubs {
		fn(h.frame)
	}
}

// Playing returns true while the playback timer runs
func (h *PlaybackHost) Playing() bool { return h.stop != nil }

// Play starts advancing frames at the given interval until Pause or Quit
func (h *PlaybackHost) Play(interval time.Duration) {
	if h.stop != nil {
		return
	}
	stop := make(chan struct{})
	h.stop = stop

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				fyne.Do(h.Advance)
			}
		}
	}()
}

// Pause stops the playback timer
func (h *PlaybackHost) Pause() {
	if h.stop == nil {
		return
	}
	close(h.stop)
	h.stop = nil
}

// Quit stops playback and fires the quit event, as the real host does when
// tearing down
func (h *PlaybackHost) Quit() {
	h.Pause()
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
