package galaxy

import (
	"math"

	"github.com/lixenwraith/galaxy-gallery/noise"
	"github.com/lixenwraith/galaxy-gallery/vmath"
)

// FlowField is a grid of unit vectors covering the canvas, resampled from
// noise every frame so it evolves continuously with the time coordinate
type FlowField struct {
	cols, rows int
	cellSize   float64
	scale      float64
	vectors    []vmath.Vec2 // row-major
}

// NewFlowField sizes the grid to cover width x height with square cells
func NewFlowField(width, height, cellSize, scale float64) *FlowField {
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &FlowField{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		scale:    scale,
		vectors:  make([]vmath.Vec2, cols*rows),
	}
}

// Cols returns the grid width in cells
func (f *FlowField) Cols() int { return f.cols }

// Rows returns the grid height in cells
func (f *FlowField) Rows() int { return f.rows }

// CellSize returns the side of one cell in world units
func (f *FlowField) CellSize() float64 { return f.cellSize }

// Update recomputes every cell: angle = noise(col*scale, row*scale, t) * 2 * 2π
func (f *FlowField) Update(src noise.Source, t float64) {
	for row := 0; row < f.rows; row++ {
		for col := 0; col < f.cols; col++ {
			n := src.Noise(float64(col)*f.scale, float64(row)*f.scale, t)
			f.vectors[row*f.cols+col] = vmath.FromAngle(n * 2 * vmath.TwoPi)
		}
	}
}

// At returns the vector of a cell; indices are clamped into the grid
func (f *FlowField) At(col, row int) vmath.Vec2 {
	col = vmath.ClampInt(col, 0, f.cols-1)
	row = vmath.ClampInt(row, 0, f.rows-1)
	return f.vectors[row*f.cols+col]
}

// Lookup returns the vector of the cell under a world position
// Positions outside the canvas saturate to the nearest edge cell
func (f *FlowField) Lookup(x, y float64) vmath.Vec2 {
	return f.At(f.cellIndex(x, f.cols), f.cellIndex(y, f.rows))
}

// cellIndex clamps in float space so far out-of-range or NaN positions
// cannot overflow the int conversion
func (f *FlowField) cellIndex(v float64, n int) int {
	c := math.Floor(v / f.cellSize)
	if math.IsNaN(c) {
		return 0
	}
	return int(vmath.Clamp(c, 0, float64(n-1)))
}
