package galaxy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/galaxy-gallery/noise"
	"github.com/lixenwraith/galaxy-gallery/vmath"
)

func constNoise(v float64) noise.Source {
	return noise.Func(func(x, y, t float64) float64 { return v })
}

func TestFlowFieldGridCoversCanvas(t *testing.T) {
	f := NewFlowField(800, 600, 20, 0.1)
	assert.Equal(t, 40, f.Cols())
	assert.Equal(t, 30, f.Rows())

	g := NewFlowField(810, 590, 20, 0.1)
	assert.Equal(t, 41, g.Cols())
	assert.Equal(t, 30, g.Rows())
}

func TestFlowFieldAngleFromNoise(t *testing.T) {
	f := NewFlowField(800, 600, 20, 0.1)

	// 0.125 * 2 * 2π = π/2
	f.Update(constNoise(0.125), 0)
	v := f.At(3, 4)
	assert.InDelta(t, 0, v.X, 1e-9)
	assert.InDelta(t, 1, v.Y, 1e-9)

	// 0.25 * 2 * 2π = π
	f.Update(constNoise(0.25), 0)
	v = f.At(3, 4)
	assert.InDelta(t, -1, v.X, 1e-9)
	assert.InDelta(t, 0, v.Y, 1e-9)

	// 0.5 * 2 * 2π = 2π
	f.Update(constNoise(0.5), 0)
	v = f.At(3, 4)
	assert.InDelta(t, 1, v.X, 1e-9)
	assert.InDelta(t, 0, v.Y, 1e-9)
}

func TestFlowFieldVectorsAreUnit(t *testing.T) {
	f := NewFlowField(800, 600, 20, 0.1)
	f.Update(noise.NewPerlin(3), 1.5)
	for row := 0; row < f.Rows(); row++ {
		for col := 0; col < f.Cols(); col++ {
			assert.InDelta(t, 1, vmath.V2Mag(f.At(col, row)), 1e-9)
		}
	}
}

func TestFlowFieldSamplesGridCoordinates(t *testing.T) {
	f := NewFlowField(40, 40, 20, 0.5)
	var seen [][3]float64
	f.Update(noise.Func(func(x, y, t float64) float64 {
		seen = append(seen, [3]float64{x, y, t})
		return 0
	}), 7)
	assert.ElementsMatch(t, [][3]float64{{0, 0, 7}, {0.5, 0, 7}, {0, 0.5, 7}, {0.5, 0.5, 7}}, seen)
}

func TestFlowFieldLookupClamps(t *testing.T) {
	f := NewFlowField(800, 600, 20, 0.1)
	f.Update(noise.Func(func(x, y, t float64) float64 {
		// Unique angle per cell
		return (x*10 + y*10*40) / (40 * 30)
	}), 0)

	assert.Equal(t, f.At(0, 0), f.Lookup(-500, -500))
	assert.Equal(t, f.At(39, 29), f.Lookup(5000, 5000))
	assert.Equal(t, f.At(39, 0), f.Lookup(math.MaxFloat32, -1))
	assert.Equal(t, f.At(2, 3), f.Lookup(45, 61))
}
