package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/galaxy-gallery/vmath"
)

func TestCanvasCoordinateMapping(t *testing.T) {
	c := New(800, 600, 200, 100)

	w, h := c.PixelSize()
	require.Equal(t, 200, w)
	require.Equal(t, 100, h)

	px, py := c.ToPixel(400, 300)
	assert.Equal(t, 100.0, px)
	assert.Equal(t, 50.0, py)

	x, y := c.ToWorld(0, 0)
	assert.InDelta(t, 2.0, x, 1e-9)
	assert.InDelta(t, 3.0, y, 1e-9)
}

func TestCanvasCircleFillsCenter(t *testing.T) {
	c := New(800, 600, 160, 120)
	c.Background(RGBBlack)
	c.Circle(400, 300, 50, RGBWhite, 1)

	assert.Equal(t, RGBWhite, c.At(80, 60))
	assert.Equal(t, RGBBlack, c.At(0, 0))
}

func TestCanvasWashDarkens(t *testing.T) {
	c := New(100, 100, 10, 10)
	c.Background(RGBWhite)
	c.Wash(RGBBlack, 0.5)

	got := c.At(5, 5)
	assert.InDelta(t, 128, int(got.R), 2)
}

func TestCanvasSetPixelBounds(t *testing.T) {
	c := New(100, 100, 10, 10)
	c.SetPixel(-1, 3, RGBWhite)
	c.SetPixel(10, 3, RGBWhite)
	c.SetPixel(3, 3, RGB{10, 20, 30})

	assert.Equal(t, RGB{10, 20, 30}, c.At(3, 3))
	assert.Equal(t, RGBBlack, c.At(99, 99))
}

func TestCanvasResizeKeepsWorld(t *testing.T) {
	c := New(800, 600, 80, 60)
	c.Resize(40, 30)

	assert.Equal(t, 800.0, c.Width())
	assert.Equal(t, 600.0, c.Height())
	px, _ := c.ToPixel(800, 0)
	assert.Equal(t, 40.0, px)
}

func TestBlend(t *testing.T) {
	assert.Equal(t, RGBWhite, Blend(RGBBlack, RGBWhite, 1))
	assert.Equal(t, RGBBlack, Blend(RGBBlack, RGBWhite, 0))
	assert.Equal(t, Gray(128), Blend(RGBBlack, RGBWhite, 0.5))
}

func TestScale(t *testing.T) {
	assert.Equal(t, RGB{50, 100, 127}, Scale(RGB{100, 200, 254}, 0.5))
	assert.Equal(t, RGB{255, 255, 255}, Scale(RGB{200, 200, 200}, 2))
}

func TestLerpEndpoints(t *testing.T) {
	a := RGB{10, 20, 30}
	b := RGB{200, 100, 50}
	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
}

func TestHexRoundTrip(t *testing.T) {
	c, err := ParseHex("#1a1b26")
	require.NoError(t, err)
	assert.Equal(t, RGB{26, 27, 38}, c)
	assert.Equal(t, "#1a1b26", c.Hex())

	_, err = ParseHex("nope")
	assert.Error(t, err)
}

func TestStarColorRange(t *testing.T) {
	rng := vmath.NewFastRand(1)
	for i := 0; i < 200; i++ {
		c := StarColor(rng, 200)
		assert.GreaterOrEqual(t, c.R, uint8(200))
		assert.GreaterOrEqual(t, c.G, uint8(200))
		assert.GreaterOrEqual(t, c.B, uint8(200))
	}
}
