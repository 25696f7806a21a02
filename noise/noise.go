// Package noise provides continuous 3-D noise sources for the contour sampler.
package noise

import (
	"fmt"
	"strings"
)

// Source is a deterministic, continuous 3-D noise function with output
// roughly in [-1, 1].
type Source interface {
	Noise3D(x, y, z float64) float64
}

// Kinds accepted by New.
const (
	KindPerlin  = "perlin"
	KindSimplex = "simplex"
)

// New returns the noise source registered under kind.
func New(kind string, seed int64) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindPerlin:
		return NewPerlin(seed), nil
	case KindSimplex:
		return NewSimplex(seed), nil
	default:
		return nil, fmt.Errorf("unknown noise kind %q (want %s or %s)", kind, KindPerlin, KindSimplex)
	}
}
