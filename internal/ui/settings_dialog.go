package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/danmichaelo/statusindicator/internal/config"
	"github.com/danmichaelo/statusindicator/internal/model"
	"github.com/danmichaelo/statusindicator/internal/overlay"
)

// SettingsDialog is the indicator configuration dialog: a simple form binding
// entry widgets to IndicatorConfig fields and the enabled flag
type SettingsDialog struct {
	overlay  *overlay.Service
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	log      zerolog.Logger

	// UI components
	timestepEntry *widget.Entry
	headerEntry   *widget.Entry
	unitSelect    *widget.Select
	enabledCheck  *widget.Check
}

// NewSettingsDialog creates the settings dialog bound to the overlay service
func NewSettingsDialog(svc *overlay.Service, settings *config.Settings, window fyne.Window, log zerolog.Logger) *SettingsDialog {
	sd := &SettingsDialog{
		overlay:  svc,
		settings: settings,
		window:   window,
		log:      log,
	}
	sd.createUI()
	return sd
}

// Show loads current values and displays the dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrent()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	sd.timestepEntry = widget.NewEntry()
	sd.timestepEntry.SetPlaceHolder("time per frame, e.g. 0.002")

	sd.headerEntry = widget.NewEntry()
	sd.headerEntry.SetPlaceHolder("header text")

	units := []string{}
	for _, u := range model.TimeUnits() {
		units = append(units, u.String())
	}
	sd.unitSelect = widget.NewSelect(units, nil)

	sd.enabledCheck = widget.NewCheck("Show progress overlay", nil)

	form := widget.NewForm(
		widget.NewFormItem("Timestep", sd.timestepEntry),
		widget.NewFormItem("Unit", sd.unitSelect),
		widget.NewFormItem("Header", sd.headerEntry),
		widget.NewFormItem("", sd.enabledCheck),
	)

	sd.dialog = dialog.NewCustomConfirm("Indicator Settings", "Apply", "Cancel", form,
		func(confirmed bool) {
			if confirmed {
				sd.apply()
			}
		}, sd.window)
}

func (sd *SettingsDialog) loadCurrent() {
	cfg := sd.overlay.Config()
	sd.timestepEntry.SetText(strconv.FormatFloat(cfg.Timestep, 'g', -1, 64))
	sd.headerEntry.SetText(cfg.Header)
	sd.unitSelect.SetSelected(cfg.Unit.String())
	sd.enabledCheck.SetChecked(sd.overlay.Enabled())
}

// apply pushes the form values into the overlay service and persists them.
// Non-numeric timestep input keeps the previous value, matching the command
// surface behavior.
func (sd *SettingsDialog) apply() {
	if v, err := strconv.ParseFloat(sd.timestepEntry.Text, 64); err == nil {
		sd.overlay.SetTimestep(v)
	} else {
		sd.log.Warn().Str("input", sd.timestepEntry.Text).Msg("ignoring non-numeric timestep")
	}

	sd.overlay.SetHeader(sd.headerEntry.Text)
	if u := model.TimeUnit(sd.unitSelect.Selected); u.IsValid() {
		sd.overlay.SetUnit(u)
	}
	sd.overlay.Toggle(sd.enabledCheck.Checked)

	sd.settings.SetConfig(sd.overlay.Config())
}
