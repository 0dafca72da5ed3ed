package render

import "time"

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Frame is the number of simulation frames advanced so far
	Frame uint64

	// Time is the noise time coordinate of the current frame
	Time float64

	// DeltaTime is the wall-clock duration of the last tick
	DeltaTime time.Duration
}
