package constants

// UI Layout Constants
const (
	// TabRowHeight is the number of terminal rows used by the experiment tabs
	TabRowHeight = 1

	// ControlRowHeight is the number of terminal rows used by experiment buttons
	ControlRowHeight = 1

	// ControlGap is the spacing between adjacent buttons
	ControlGap = 1
)

// Control labels of the galaxy experiment
const (
	LabelSupernova = "Go boom"
	LabelZoom      = "Zoom to star"
	LabelMove      = "Move Galaxy"
)
