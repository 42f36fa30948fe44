package config

import (
	"fyne.io/fyne/v2"

	"github.com/danmichaelo/statusindicator/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyTimestep = "indicator_timestep"
	KeyHeader   = "indicator_header"
	KeyUnit     = "indicator_unit"
	KeyEnabled  = "indicator_enabled"
)

// Settings manages persisted indicator configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetConfig reads the persisted indicator configuration, applying defaults
// for unset or invalid values
func (s *Settings) GetConfig() model.IndicatorConfig {
	p := s.app.Preferences()

	cfg := model.IndicatorConfig{
		Timestep: p.FloatWithFallback(KeyTimestep, model.DefaultTimestep),
		Header:   p.StringWithFallback(KeyHeader, model.DefaultHeader),
		Unit:     model.TimeUnit(p.StringWithFallback(KeyUnit, model.DefaultUnit.String())),
		Enabled:  p.Bool(KeyEnabled),
	}
	if !cfg.Unit.IsValid() {
		cfg.Unit = model.DefaultUnit
	}
	return cfg
}

// SetConfig persists the indicator configuration
func (s *Settings) SetConfig(cfg model.IndicatorConfig) {
	p := s.app.Preferences()
	p.SetFloat(KeyTimestep, cfg.Timestep)
	p.SetString(KeyHeader, cfg.Header)
	p.SetString(KeyUnit, cfg.Unit.String())
	p.SetBool(KeyEnabled, cfg.Enabled)
}

// SetEnabled persists only the enabled flag
func (s *Settings) SetEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeyEnabled, enabled)
}
