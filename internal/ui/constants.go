package ui

import "time"

// UI-wide constants to avoid magic numbers scattered across the codebase.

// Window sizing
const (
	WindowWidth  float32 = 900
	WindowHeight float32 = 640
)

// Viewport defaults
const (
	ViewportMinWidth  float32 = 320
	ViewportMinHeight float32 = 240

	DefaultScaleFactor = 1.0
	DefaultNearClip    = 0.5

	MinScaleFactor = 0.25
	MaxScaleFactor = 4.0
)

// Playback
const (
	DefaultTotalFrames  = 101
	DefaultPlayInterval = 50 * time.Millisecond
)

// Text rendering
const (
	// BaseTextSize is multiplied by the relative size a drawable text
	// primitive carries
	BaseTextSize float32 = 14
)
