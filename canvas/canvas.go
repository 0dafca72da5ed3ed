// Package canvas is the retained drawing surface of an experiment. Callers
// draw in world units; the canvas owns a raster whose pixel resolution is
// chosen by the presenter and can change on resize.
package canvas

import (
	"image"
	"math"

	"github.com/fogleman/gg"
)

// minPointRadius keeps sub-pixel points visible on coarse rasters
const minPointRadius = 0.5

// Canvas draws world-space primitives onto an RGBA raster
type Canvas struct {
	img *image.RGBA
	dc  *gg.Context

	width, height float64 // world size
	sx, sy        float64 // pixels per world unit
}

// New creates a canvas of the given world size backed by a pxW x pxH raster
func New(width, height float64, pxW, pxH int) *Canvas {
	c := &Canvas{width: width, height: height}
	c.Resize(pxW, pxH)
	return c
}

// Resize reallocates the raster, keeping the world size
func (c *Canvas) Resize(pxW, pxH int) {
	if pxW < 1 {
		pxW = 1
	}
	if pxH < 1 {
		pxH = 1
	}
	c.img = image.NewRGBA(image.Rect(0, 0, pxW, pxH))
	c.dc = gg.NewContextForRGBA(c.img)
	c.sx = float64(pxW) / c.width
	c.sy = float64(pxH) / c.height
	c.Background(RGBBlack)
}

// Width returns the world width
func (c *Canvas) Width() float64 { return c.width }

// Height returns the world height
func (c *Canvas) Height() float64 { return c.height }

// PixelSize returns the raster dimensions
func (c *Canvas) PixelSize() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image exposes the raster; it is overwritten by the next draw
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// ToWorld maps a pixel center to world coordinates
func (c *Canvas) ToWorld(px, py int) (float64, float64) {
	return (float64(px) + 0.5) / c.sx, (float64(py) + 0.5) / c.sy
}

// ToPixel maps world coordinates to raster coordinates
func (c *Canvas) ToPixel(x, y float64) (float64, float64) {
	return x * c.sx, y * c.sy
}

// Background fills the raster with an opaque color
func (c *Canvas) Background(col RGB) {
	c.dc.SetColor(col.RGBA(1))
	c.dc.Clear()
}

// Wash paints a translucent full-canvas rectangle, used for fading trails
func (c *Canvas) Wash(col RGB, alpha float64) {
	w, h := c.PixelSize()
	c.dc.SetColor(col.RGBA(alpha))
	c.dc.DrawRectangle(0, 0, float64(w), float64(h))
	c.dc.Fill()
}

// Circle fills a disk of world radius r
func (c *Canvas) Circle(x, y, r float64, col RGB, alpha float64) {
	px, py := c.ToPixel(x, y)
	c.dc.SetColor(col.RGBA(alpha))
	c.dc.DrawEllipse(px, py, math.Max(r*c.sx, minPointRadius), math.Max(r*c.sy, minPointRadius))
	c.dc.Fill()
}

// Ring strokes a circle outline of world radius r
func (c *Canvas) Ring(x, y, r, weight float64, col RGB, alpha float64) {
	px, py := c.ToPixel(x, y)
	c.dc.SetColor(col.RGBA(alpha))
	c.dc.SetLineWidth(math.Max(weight*c.sx, 1))
	c.dc.DrawEllipse(px, py, r*c.sx, r*c.sy)
	c.dc.Stroke()
}

// Point draws a dot of world diameter size
func (c *Canvas) Point(x, y, size float64, col RGB, alpha float64) {
	c.Circle(x, y, size/2, col, alpha)
}

// Line strokes a segment
func (c *Canvas) Line(x1, y1, x2, y2, weight float64, col RGB, alpha float64) {
	ax, ay := c.ToPixel(x1, y1)
	bx, by := c.ToPixel(x2, y2)
	c.dc.SetColor(col.RGBA(alpha))
	c.dc.SetLineWidth(math.Max(weight*c.sx, 1))
	c.dc.DrawLine(ax, ay, bx, by)
	c.dc.Stroke()
}

// SetPixel writes an opaque raster pixel directly, for per-pixel shading passes
func (c *Canvas) SetPixel(px, py int, col RGB) {
	if !image.Pt(px, py).In(c.img.Rect) {
		return
	}
	i := c.img.PixOffset(px, py)
	c.img.Pix[i] = col.R
	c.img.Pix[i+1] = col.G
	c.img.Pix[i+2] = col.B
	c.img.Pix[i+3] = 255
}

// At reads a raster pixel as opaque RGB
func (c *Canvas) At(px, py int) RGB {
	if !image.Pt(px, py).In(c.img.Rect) {
		return RGBBlack
	}
	i := c.img.PixOffset(px, py)
	return RGB{c.img.Pix[i], c.img.Pix[i+1], c.img.Pix[i+2]}
}
