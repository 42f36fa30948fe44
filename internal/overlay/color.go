package overlay

import (
	"github.com/danmichaelo/statusindicator/internal/model"
)

// LuminanceThreshold is the background channel sum above which black text is
// used instead of white. The comparison is strict: a sum of exactly 1.2
// selects white.
const LuminanceThreshold = 1.2

// PickForeground derives a legible text color from the background luminance,
// given as the sum of the background's R+G+B channels (each in [0,1]). The
// background is sampled at enable time and on explicit reset, not per frame.
func PickForeground(backgroundSum float64) model.Foreground {
	if backgroundSum > LuminanceThreshold {
		return model.ForegroundBlack
	}
	return model.ForegroundWhite
}
