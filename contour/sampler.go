package contour

import (
	"math"

	"github.com/pthm-cable/topo/noise"
)

// Sampler fills a grid from a noise source.
type Sampler struct {
	Source noise.Source
	Params *Params
}

// Coords returns the noise-space coordinates for cell (x, y). The domain
// drifts on two axes at different frequencies and shifts slightly with scroll.
func (s *Sampler) Coords(x, y int, elapsed, scrollDomain float64) (nx, ny float64) {
	p := s.Params
	nx = float64(x)*p.SpatialFrequency +
		math.Sin(elapsed*p.WarpFreqX)*p.DomainWarp +
		scrollDomain*p.ScrollShiftX
	ny = float64(y)*p.SpatialFrequency +
		math.Cos(elapsed*p.WarpFreqY)*p.DomainWarp -
		scrollDomain*p.ScrollShiftY
	return nx, ny
}

// Sample writes a value for every cell of g and records its empirical range.
// The perturbation of each cell feeds the depth coordinate and is decayed
// after use. g and f must have the same dimensions.
func (s *Sampler) Sample(g *Grid, f *Field, elapsed, scrollDomain float64) {
	p := s.Params
	g.resetRange()
	for y := 0; y < g.Rows; y++ {
		row := y * g.Cols
		for x := 0; x < g.Cols; x++ {
			i := row + x
			nx, ny := s.Coords(x, y, elapsed, scrollDomain)
			v := s.Source.Noise3D(nx, ny, elapsed+f.values[i]) * p.Amplitude
			g.Values[i] = v
			if v < g.Min {
				g.Min = v
			}
			if v > g.Max {
				g.Max = v
			}
			f.values[i] *= p.Decay
		}
	}
}
