package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"

	"github.com/danmichaelo/statusindicator/internal/model"
	"github.com/danmichaelo/statusindicator/internal/overlay"
)

func newTestHost(t *testing.T, frames int) (*PlaybackHost, *Viewport) {
	t.Helper()
	test.NewApp()
	v := NewViewport()
	return NewPlaybackHost(v, frames), v
}

func TestPlaybackHost_SeekClamps(t *testing.T) {
	h, _ := newTestHost(t, 10)

	h.Seek(-3)
	if h.CurrentFrame() != 0 {
		t.Errorf("Seek(-3): frame = %d, expected 0", h.CurrentFrame())
	}

	h.Seek(50)
	if h.CurrentFrame() != 9 {
		t.Errorf("Seek(50): frame = %d, expected 9", h.CurrentFrame())
	}
}

func TestPlaybackHost_AdvanceWraps(t *testing.T) {
	h, _ := newTestHost(t, 3)

	h.Seek(2)
	h.Advance()
	if h.CurrentFrame() != 0 {
		t.Errorf("frame = %d after wrap, expected 0", h.CurrentFrame())
	}
}

func TestPlaybackHost_QuitStopsPlayback(t *testing.T) {
	h, _ := newTestHost(t, 10)

	quits := 0
	h.OnQuitRequested(func() { quits++ })

	h.Play(DefaultPlayInterval)
	if !h.Playing() {
		t.Fatal("host not playing after Play")
	}
	h.Quit()

	if h.Playing() {
		t.Error("host still playing after Quit")
	}
	if quits != 1 {
		t.Errorf("quit callbacks fired %d times, expected 1", quits)
	}
}

func TestOverlayOverPlaybackHost(t *testing.T) {
	h, v := newTestHost(t, 101)

	cfg := model.IndicatorConfig{Timestep: 0.001, Unit: model.UnitPicoseconds}
	svc := overlay.NewService(h, cfg, zerolog.Nop())
	svc.Enable()

	if got := v.sortedTriangles(); len(got) != 6 {
		t.Fatalf("expected 6 triangles in the scene, got %d", len(got))
	}
	texts := v.allTexts()
	if len(texts) != 1 || texts[0].value != "Time: 0.00 / 0.10 ps" {
		t.Fatalf("unexpected scene texts: %+v", texts)
	}

	h.Seek(100)
	if svc.State().Percentage != 1 {
		t.Errorf("Percentage = %v after seeking to last frame, expected 1", svc.State().Percentage)
	}

	// The three layers must arrive farthest-first so the fill paints on top
	tris := v.sortedTriangles()
	if !(tris[0].p1.Z > tris[2].p1.Z && tris[2].p1.Z > tris[4].p1.Z) {
		t.Errorf("layer depths not descending: %v, %v, %v",
			tris[0].p1.Z, tris[2].p1.Z, tris[4].p1.Z)
	}

	h.Quit()
	if svc.Enabled() {
		t.Error("overlay still enabled after host quit")
	}
	// Quit skips cleanup; the drawable handle stays registered
	if len(v.drawables) != 1 {
		t.Errorf("expected 1 abandoned drawable after quit, got %d", len(v.drawables))
	}
}
