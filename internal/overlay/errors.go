package overlay

import "errors"

// Unrenderable-state conditions. These suppress drawing for one redraw cycle
// and clear automatically once the underlying condition goes away; none of
// them is fatal to the host.
var (
	// ErrNoFrames is reported when the trajectory holds no frames at all
	ErrNoFrames = errors.New("trajectory has no frames")

	// ErrSingleFrame is reported when progress is undefined because the
	// trajectory holds a single frame
	ErrSingleFrame = errors.New("trajectory has only one frame")

	// ErrNonPositiveTimestep is reported when the configured timestep is
	// zero or negative
	ErrNonPositiveTimestep = errors.New("timestep must be positive")
)
