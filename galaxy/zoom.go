package galaxy

import (
	"math"

	"github.com/lixenwraith/galaxy-gallery/canvas"
	"github.com/lixenwraith/galaxy-gallery/constants"
	"github.com/lixenwraith/galaxy-gallery/render"
)

// zoomRenderer replaces the scene with a magnified, noise-shaded disk of the
// zoom target centered on the canvas
type zoomRenderer struct {
	w *World
}

func (r *zoomRenderer) IsVisible() bool { return r.w.zoom != nil }

// Render shades every raster pixel inside ZoomRadius individually
func (r *zoomRenderer) Render(_ render.RenderContext, cv *canvas.Canvas) {
	star := r.w.zoom
	cv.Background(canvas.RGBBlack)

	cx, cy := r.w.cfg.Width/2, r.w.cfg.Height/2
	radius := float64(constants.ZoomRadius)

	x0, y0 := cv.ToPixel(cx-radius, cy-radius)
	x1, y1 := cv.ToPixel(cx+radius, cy+radius)

	for py := int(math.Floor(y0)); py <= int(math.Ceil(y1)); py++ {
		for px := int(math.Floor(x0)); px <= int(math.Ceil(x1)); px++ {
			wx, wy := cv.ToWorld(px, py)
			d := math.Hypot(wx-cx, wy-cy)
			if d > radius {
				continue
			}
			cv.SetPixel(px, py, canvas.Scale(star.Color, r.w.zoomShade(star, wx, wy, d/radius)))
		}
	}
}

// zoomShade is the brightness factor of one pixel of the magnified star;
// edge is the normalized distance from the disk center
func (w *World) zoomShade(star *Star, wx, wy, edge float64) float64 {
	n := w.noise.Noise(
		wx*constants.ZoomNoiseScale+star.Offset,
		wy*constants.ZoomNoiseScale+star.Offset,
		w.zoomTime,
	)
	return n * (0.35 + 0.65*math.Sqrt(1-edge))
}
