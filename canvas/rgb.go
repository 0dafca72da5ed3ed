package canvas

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/galaxy-gallery/vmath"
)

// RGB is an opaque 8-bit color; transparency is passed separately as alpha
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Gray returns a neutral color of the given level
func Gray(v uint8) RGB {
	return RGB{v, v, v}
}

// RGBA converts to a standard library color with the given alpha in [0, 1]
func (c RGB) RGBA(alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: clamp(alpha * 255)}
}

// Colorful converts to a go-colorful color for perceptual operations
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// FromColorful converts back, clamping out-of-gamut values
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// ParseHex parses "#rrggbb"
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, err
	}
	return FromColorful(c), nil
}

// Hex formats as "#rrggbb"
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 || math.IsNaN(v) {
		return 0
	}
	return uint8(v + 0.5)
}

// Blend alpha-composites src over c
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}
	inv := 1.0 - alpha
	return RGB{
		R: clamp(float64(src.R)*alpha + float64(c.R)*inv),
		G: clamp(float64(src.G)*alpha + float64(c.G)*inv),
		B: clamp(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies all channels by factor, saturating at 255
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// Lerp interpolates in linear RGB space; t=0 returns a, t=1 returns b
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return FromColorful(a.Colorful().BlendLinearRgb(b.Colorful(), t))
}

// StarColor picks white half of the time, otherwise a random pastel in [lo, 255] per channel
func StarColor(rng *vmath.FastRand, lo uint8) RGB {
	if rng.Chance(0.5) {
		return RGBWhite
	}
	span := 256 - int(lo)
	return RGB{
		R: lo + uint8(rng.Intn(span)),
		G: lo + uint8(rng.Intn(span)),
		B: lo + uint8(rng.Intn(span)),
	}
}

// Tint returns a pastel of the given hue, used for supernova and theme accents
func Tint(hue float64) RGB {
	return FromColorful(colorful.Hsv(math.Mod(hue, 360), 0.35, 1))
}
