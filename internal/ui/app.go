package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"github.com/danmichaelo/statusindicator/internal/config"
	"github.com/danmichaelo/statusindicator/internal/model"
	"github.com/danmichaelo/statusindicator/internal/overlay"
)

// Application identity
const (
	AppID   = "com.danmichaelo.statusindicator"
	AppName = "Status Indicator"
)

// RunApp builds and runs the reference host application. fileCfg, when
// non-nil, overrides the persisted preferences for this session and is
// written back to them. Blocks until the window closes.
func RunApp(fileCfg *model.IndicatorConfig, totalFrames int, log zerolog.Logger) {
	a := app.NewWithID(AppID)
	a.Settings().SetTheme(NewCompactTheme())

	window := a.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(a)
	cfg := settings.GetConfig()
	if fileCfg != nil {
		cfg = *fileCfg
		settings.SetConfig(cfg)
	}

	viewport := NewViewport()
	playback := NewPlaybackHost(viewport, totalFrames)
	svc := overlay.NewService(playback, cfg, log)

	NewRootUI(window, viewport, playback, svc, settings, log)
	svc.Toggle(cfg.Enabled)

	log.Info().Int("frames", totalFrames).Bool("enabled", cfg.Enabled).Msg("starting reference host")
	window.ShowAndRun()
}
