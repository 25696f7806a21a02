package contour

import "math"

// Dimensions returns the grid size covering a width x height viewport with
// cells of res pixels. Both results are at least 1.
func Dimensions(width, height, res int) (cols, rows int) {
	if res < 1 {
		res = 1
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return width/res + 1, height/res + 1
}

// Grid stores one frame of sampled scalar values in row-major order.
type Grid struct {
	Cols, Rows int
	Res        float64 // Cell size in pixels
	Values     []float64

	// Empirical range of the last sample
	Min, Max float64
}

// NewGrid allocates a grid of cols x rows samples spaced res pixels apart.
func NewGrid(cols, rows int, res float64) *Grid {
	return &Grid{
		Cols:   cols,
		Rows:   rows,
		Res:    res,
		Values: make([]float64, cols*rows),
		Min:    math.Inf(1),
		Max:    math.Inf(-1),
	}
}

// At returns the value at column x, row y.
func (g *Grid) At(x, y int) float64 {
	return g.Values[y*g.Cols+x]
}

// Set writes the value at column x, row y.
func (g *Grid) Set(x, y int, v float64) {
	g.Values[y*g.Cols+x] = v
}

// resetRange clears the empirical range before a new sample.
func (g *Grid) resetRange() {
	g.Min = math.Inf(1)
	g.Max = math.Inf(-1)
}
