package model

// Default configuration values
const (
	DefaultTimestep = 1.0
	DefaultHeader   = ""
	DefaultUnit     = UnitPicoseconds
)

// IndicatorConfig holds the user-facing configuration of the overlay.
// It is owned by the overlay service for the lifetime of the process and
// mutated only through the service setters, the command surface, or the
// settings dialog.
type IndicatorConfig struct {
	Timestep float64  // physical time per frame, in Unit; must be > 0 to render
	Header   string   // free-form header text drawn near the top of the viewport
	Unit     TimeUnit // unit the timestep and time label are expressed in
	Enabled  bool     // whether the overlay is attached and drawing
}

// DefaultConfig returns an IndicatorConfig with default values applied
func DefaultConfig() IndicatorConfig {
	return IndicatorConfig{
		Timestep: DefaultTimestep,
		Header:   DefaultHeader,
		Unit:     DefaultUnit,
	}
}
