package constants

import "time"

// Frame Loop Timing Constants
const (
	// TargetFPS is the default display refresh rate the frame loop aims for
	TargetFPS = 120

	// FrameUpdateInterval is the nominal duration of one frame at TargetFPS
	FrameUpdateInterval = time.Second / TargetFPS

	// MaxFrameScale caps how many nominal frames a single late tick may advance
	MaxFrameScale = 4.0

	// SandboxInputBuffer is the capacity of the per-sandbox input queue
	SandboxInputBuffer = 64
)

// Canvas Constants (world units, mirrors the p5 canvas of the web gallery)
const (
	CanvasWidth  = 800
	CanvasHeight = 600
)

// Recording Constants
const (
	// RecordFrameDelay is the display time of one exported frame, in hundredths of a second
	RecordFrameDelay = 4
)
