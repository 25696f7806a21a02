package contour

import "math"

// Field is the pointer perturbation field. Cells are non-negative, boosted
// near the pointer and decayed every frame by the sampler. No upper bound
// is enforced.
type Field struct {
	Cols, Rows int
	values     []float64
}

// NewField allocates a zeroed field.
func NewField(cols, rows int) *Field {
	return &Field{
		Cols:   cols,
		Rows:   rows,
		values: make([]float64, cols*rows),
	}
}

// At returns the perturbation at column x, row y.
func (f *Field) At(x, y int) float64 {
	return f.values[y*f.Cols+x]
}

// Add increments the perturbation at column x, row y.
func (f *Field) Add(x, y int, v float64) {
	f.values[y*f.Cols+x] += v
}

// Boost adds a Gaussian falloff exp(-d²/r²) * strength to every cell within
// radius cells of (cx, cy). Cells outside the grid are skipped. Returns the
// number of cells touched.
func (f *Field) Boost(cx, cy, radius int, strength float64) int {
	if radius < 0 {
		return 0
	}
	r2 := float64(radius * radius)
	touched := 0
	for dy := -radius; dy <= radius; dy++ {
		gy := cy + dy
		if gy < 0 || gy >= f.Rows {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			gx := cx + dx
			if gx < 0 || gx >= f.Cols {
				continue
			}
			d2 := float64(dx*dx + dy*dy)
			if d2 > r2 {
				continue
			}
			falloff := 1.0
			if r2 > 0 {
				falloff = math.Exp(-d2 / r2)
			}
			f.values[gy*f.Cols+gx] += falloff * strength
			touched++
		}
	}
	return touched
}

// Decay multiplies every cell by factor.
func (f *Field) Decay(factor float64) {
	for i := range f.values {
		f.values[i] *= factor
	}
}

// Peak returns the largest perturbation value.
func (f *Field) Peak() float64 {
	var peak float64
	for _, v := range f.values {
		if v > peak {
			peak = v
		}
	}
	return peak
}

// IsZero reports whether every cell is exactly zero.
func (f *Field) IsZero() bool {
	for _, v := range f.values {
		if v != 0 {
			return false
		}
	}
	return true
}

// Values returns a copy of the field in row-major order.
func (f *Field) Values() []float64 {
	out := make([]float64, len(f.values))
	copy(out, f.values)
	return out
}

// Load replaces the field contents. It reports false and leaves the field
// unchanged when len(values) does not match the field size.
func (f *Field) Load(values []float64) bool {
	if len(values) != len(f.values) {
		return false
	}
	copy(f.values, values)
	return true
}
