package contour

import "math"

// Probe describes the grid node nearest a canvas point.
type Probe struct {
	Col, Row int
	Value    float64 // Sampled field value
	Perturb  float64 // Perturbation field value
	Level    float64 // Highest contour level at or below Value
	Inside   bool
}

// Probe samples the most recent frame at canvas point (x, y). Same calling
// rules as State.
func (r *Renderer) Probe(x, y float64) Probe {
	if r == nil || r.res <= 0 {
		return Probe{}
	}
	res := float64(r.res)
	col := int(math.Round(x / res))
	row := int(math.Round(y / res))
	p := Probe{Col: col, Row: row}
	if col < 0 || row < 0 || col >= r.grid.Cols || row >= r.grid.Rows {
		return p
	}
	p.Inside = true
	p.Value = r.grid.At(col, row)
	p.Perturb = r.field.At(col, row)
	if step := r.params.ThresholdStep; step > 0 {
		p.Level = math.Floor(p.Value/step) * step
	}
	return p
}

// Grid returns the most recently sampled grid. Same calling rules as State.
func (r *Renderer) Grid() *Grid {
	if r == nil {
		return nil
	}
	return r.grid
}

// Field returns the perturbation field. Same calling rules as State.
func (r *Renderer) Field() *Field {
	if r == nil {
		return nil
	}
	return r.field
}
