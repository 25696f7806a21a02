package noise

import "github.com/ojrac/opensimplex-go"

// Simplex adapts OpenSimplex noise to Source.
type Simplex struct {
	n opensimplex.Noise
}

// NewSimplex creates an OpenSimplex source for seed.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{n: opensimplex.New(seed)}
}

// Noise3D returns the noise value at (x, y, z).
func (s *Simplex) Noise3D(x, y, z float64) float64 {
	return s.n.Eval3(x, y, z)
}
