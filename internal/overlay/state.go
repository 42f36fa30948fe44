package overlay

import (
	"fmt"

	"github.com/danmichaelo/statusindicator/internal/model"
)

// TimeLabelFormat renders "Time: current / total unit" with two decimals
const TimeLabelFormat = "Time: %.2f / %.2f %s"

// deriveState computes the render state for one redraw cycle from the host
// frame counters and the current configuration. Progress is defined only for
// trajectories with more than one frame; everything else surfaces as an
// error message that suppresses drawing for this cycle.
func deriveState(frame, total int, cfg model.IndicatorConfig) model.RenderState {
	var st model.RenderState

	switch {
	case total == 0:
		st.ErrorMessage = ErrNoFrames.Error()
	case total == 1:
		st.ErrorMessage = ErrSingleFrame.Error()
	case cfg.Timestep <= 0:
		st.ErrorMessage = ErrNonPositiveTimestep.Error()
	default:
		// The host guarantees frame indices in [0, total-1], but nothing
		// enforces it; clamp so the fill can never escape the inner box.
		if frame < 0 {
			frame = 0
		}
		if frame > total-1 {
			frame = total - 1
		}
		st.Percentage = float64(frame) / float64(total-1)
		current := float64(frame) * cfg.Timestep
		end := float64(total-1) * cfg.Timestep
		st.TimeLabel = fmt.Sprintf(TimeLabelFormat, current, end, cfg.Unit)
	}

	return st
}
