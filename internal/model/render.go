package model

// Foreground represents the text color chosen against the host background
type Foreground string

const (
	// ForegroundBlack is used over light backgrounds
	ForegroundBlack Foreground = "black"

	// ForegroundWhite is used over dark backgrounds
	ForegroundWhite Foreground = "white"
)

// String returns the string representation of Foreground
func (f Foreground) String() string {
	return string(f)
}

// Color returns the RGB value of the foreground color
func (f Foreground) Color() Color {
	if f == ForegroundBlack {
		return Color{}
	}
	return Color{R: 1, G: 1, B: 1}
}

// RenderState is the derived state of one redraw cycle. It is recomputed
// from scratch on every cycle; nothing is carried between frames except the
// configuration.
type RenderState struct {
	Percentage   float64    // playback progress in [0,1]
	TimeLabel    string     // formatted "Time: current / total unit" label
	ErrorMessage string     // non-empty when the state is unrenderable
	Foreground   Foreground // text color, sampled from the background at enable time
}

// Renderable returns true if primitives may be emitted for this state
func (rs RenderState) Renderable() bool {
	return rs.ErrorMessage == ""
}
