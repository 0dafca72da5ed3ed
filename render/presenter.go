package render

import (
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// halfBlock draws the top pixel as foreground and the bottom pixel as background
const halfBlock = '▀'

// Viewport is a rectangle of terminal cells
type Viewport struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether a cell lies inside the viewport
func (v Viewport) Contains(cx, cy int) bool {
	return cx >= v.X && cx < v.X+v.Width && cy >= v.Y && cy < v.Y+v.Height
}

// PixelSize returns the raster resolution that maps one-to-one onto the viewport
// Every cell carries two vertically stacked pixels
func (v Viewport) PixelSize() (int, int) {
	return v.Width, v.Height * 2
}

// CellToPixel maps a screen cell to the center of its raster footprint
func (v Viewport) CellToPixel(cx, cy int) (float64, float64) {
	return float64(cx-v.X) + 0.5, float64(cy-v.Y)*2 + 1
}

// Presenter copies canvas rasters onto a tcell screen
type Presenter struct {
	screen tcell.Screen
}

// NewPresenter creates a presenter for the given screen
func NewPresenter(screen tcell.Screen) *Presenter {
	return &Presenter{screen: screen}
}

// Screen returns the underlying screen
func (p *Presenter) Screen() tcell.Screen {
	return p.screen
}

// Present writes img into the viewport; pixels outside img render as black
func (p *Presenter) Present(img *image.RGBA, vp Viewport) {
	b := img.Bounds()
	for cy := 0; cy < vp.Height; cy++ {
		top := cy * 2
		bottom := top + 1
		for cx := 0; cx < vp.Width; cx++ {
			fg := pixelColor(img, b, cx, top)
			bg := pixelColor(img, b, cx, bottom)
			style := tcell.StyleDefault.Foreground(fg).Background(bg)
			p.screen.SetContent(vp.X+cx, vp.Y+cy, halfBlock, nil, style)
		}
	}
}

// Fill paints the viewport with blank cells in the given style
func (p *Presenter) Fill(vp Viewport, style tcell.Style) {
	for y := vp.Y; y < vp.Y+vp.Height; y++ {
		for x := vp.X; x < vp.X+vp.Width; x++ {
			p.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Show flushes pending cells to the terminal
func (p *Presenter) Show() {
	p.screen.Show()
}

func pixelColor(img *image.RGBA, b image.Rectangle, x, y int) tcell.Color {
	if !image.Pt(x, y).In(b) {
		return tcell.NewRGBColor(0, 0, 0)
	}
	i := img.PixOffset(x, y)
	return tcell.NewRGBColor(int32(img.Pix[i]), int32(img.Pix[i+1]), int32(img.Pix[i+2]))
}

// DrawText writes text starting at (x, y), clipped to maxWidth cells
// Returns the number of cells written
func DrawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) int {
	written := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if written+w > maxWidth {
			break
		}
		screen.SetContent(x+written, y, r, nil, style)
		written += w
	}
	return written
}
