package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/galaxy-gallery/canvas"
)

// Chrome holds the colors of the host UI around the canvas
type Chrome struct {
	Background    canvas.RGB
	TabText       canvas.RGB
	TabActiveBg   canvas.RGB
	TabActiveText canvas.RGB
	ButtonBg      canvas.RGB
	ButtonText    canvas.RGB
	ButtonOnBg    canvas.RGB
	ButtonOnText  canvas.RGB
}

// DefaultChrome is used when no theme overrides it
func DefaultChrome() Chrome {
	return Chrome{
		Background:    canvas.RGB{R: 26, G: 27, B: 38},    // Tokyo Night background
		TabText:       canvas.RGB{R: 180, G: 180, B: 180}, // Brighter gray
		TabActiveBg:   canvas.RGB{R: 135, G: 206, B: 250}, // Light sky blue
		TabActiveText: canvas.RGB{R: 0, G: 0, B: 0},
		ButtonBg:      canvas.RGB{R: 60, G: 60, B: 80},
		ButtonText:    canvas.RGB{R: 255, G: 255, B: 255},
		ButtonOnBg:    canvas.RGB{R: 255, G: 165, B: 0}, // Orange
		ButtonOnText:  canvas.RGB{R: 0, G: 0, B: 0},
	}
}

// Color converts a canvas color to a tcell true color
func Color(c canvas.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Style builds a foreground/background style
func Style(fg, bg canvas.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(Color(fg)).Background(Color(bg))
}
