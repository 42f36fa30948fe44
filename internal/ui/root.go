package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/danmichaelo/statusindicator/internal/config"
	"github.com/danmichaelo/statusindicator/internal/model"
	"github.com/danmichaelo/statusindicator/internal/overlay"
)

// Background choices offered in the toolbar
var backgrounds = map[string]model.Color{
	"Black": {},
	"Gray":  {R: 0.35, G: 0.35, B: 0.35},
	"White": {R: 1, G: 1, B: 1},
}

// RootUI wires the playback controls, the viewport and the settings dialog
type RootUI struct {
	window   fyne.Window
	viewport *Viewport
	host     *PlaybackHost
	overlay  *overlay.Service
	settings *config.Settings
	log      zerolog.Logger

	playBtn     *widget.Button
	frameSlider *widget.Slider
	frameLabel  *widget.Label
}

// NewRootUI builds the main window content and close handling
func NewRootUI(window fyne.Window, viewport *Viewport, h *PlaybackHost, svc *overlay.Service, settings *config.Settings, log zerolog.Logger) *RootUI {
	ui := &RootUI{
		window:   window,
		viewport: viewport,
		host:     h,
		overlay:  svc,
		settings: settings,
		log:      log,
	}
	ui.createUI()

	// Mirror the real host teardown: quit event first, no drawable cleanup.
	window.SetCloseIntercept(func() {
		h.Quit()
		window.Close()
	})
	return ui
}

func (ui *RootUI) createUI() {
	ui.playBtn = widget.NewButton("Play", ui.onPlayPause)

	total := ui.host.TotalFrames()
	ui.frameSlider = widget.NewSlider(0, float64(maxInt(total-1, 0)))
	ui.frameSlider.Step = 1
	ui.frameSlider.OnChanged = func(v float64) {
		ui.host.Seek(int(v))
	}
	ui.frameLabel = widget.NewLabel(ui.frameText())

	// Keep slider and label in sync with playback; this subscription lives
	// for the window lifetime, independent of the overlay's enabled state.
	ui.host.OnFrameChanged(func(frame int) {
		ui.frameSlider.SetValue(float64(frame))
		ui.frameLabel.SetText(ui.frameText())
	})

	projection := widget.NewSelect([]string{
		model.ProjectionPerspective.String(),
		model.ProjectionOrthographic.String(),
	}, func(selected string) {
		p := model.ProjectionPerspective
		if selected == model.ProjectionOrthographic.String() {
			p = model.ProjectionOrthographic
		}
		ui.viewport.SetProjection(p)
		ui.overlay.Redraw()
	})
	projection.SetSelected(model.ProjectionPerspective.String())

	backgroundNames := []string{"Black", "Gray", "White"}
	background := widget.NewSelect(backgroundNames, func(selected string) {
		ui.viewport.SetBackground(backgrounds[selected])
		ui.overlay.ResetForeground()
	})
	background.SetSelected("Black")

	zoom := widget.NewSlider(MinScaleFactor, MaxScaleFactor)
	zoom.Step = 0.05
	zoom.SetValue(DefaultScaleFactor)
	zoom.OnChanged = func(v float64) {
		ui.viewport.SetScaleFactor(v)
		ui.overlay.Redraw()
	}

	settingsBtn := widget.NewButton("Settings", func() {
		NewSettingsDialog(ui.overlay, ui.settings, ui.window, ui.log).Show()
	})

	toolbar := container.NewVBox(
		container.NewHBox(ui.playBtn, ui.frameLabel, settingsBtn),
		ui.frameSlider,
		container.NewHBox(widget.NewLabel("Projection"), projection,
			widget.NewLabel("Background"), background),
		container.NewHBox(widget.NewLabel("Zoom"), zoom),
	)

	ui.window.SetContent(container.NewBorder(toolbar, nil, nil, nil, ui.viewport))
}

func (ui *RootUI) onPlayPause() {
	if ui.host.Playing() {
		ui.host.Pause()
		ui.playBtn.SetText("Play")
		return
	}
	ui.host.Play(DefaultPlayInterval)
	ui.playBtn.SetText("Pause")
}

func (ui *RootUI) frameText() string {
	return fmt.Sprintf("Frame %d / %d", ui.host.CurrentFrame(), ui.host.TotalFrames())
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
