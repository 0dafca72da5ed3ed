// Package experiment defines the contract between the gallery and the
// animations it hosts, and the Stage an experiment draws on.
package experiment

import "time"

// Experiment is a hosted animation. Setup runs once after the stage's
// libraries are loaded; Draw runs once per frame on the sandbox loop
type Experiment interface {
	Setup(st *Stage) error
	Draw(st *Stage, dt time.Duration)
}

// PressHandler is optionally implemented to receive pointer presses in world units
type PressHandler interface {
	MousePressed(st *Stage, x, y float64)
}

// ResizeHandler is optionally implemented to react to viewport size changes
type ResizeHandler interface {
	WindowResized(st *Stage, pxW, pxH int)
}

// Factory creates a fresh experiment instance per sandbox
type Factory func() Experiment

// Audio is the sound surface offered by the audio library
type Audio interface {
	Activate() error
	Trigger()
}

type silentAudio struct{}

func (silentAudio) Activate() error { return nil }
func (silentAudio) Trigger()        {}

// Silent is an Audio that does nothing
var Silent Audio = silentAudio{}
