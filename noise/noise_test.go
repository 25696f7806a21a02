package noise

import (
	"math"
	"testing"
)

func TestNewKinds(t *testing.T) {
	tests := []struct {
		kind    string
		wantErr bool
	}{
		{"perlin", false},
		{"", false},
		{"Simplex", false},
		{" simplex ", false},
		{"worley", true},
	}

	for _, tt := range tests {
		src, err := New(tt.kind, 1)
		if tt.wantErr {
			if err == nil {
				t.Errorf("New(%q): expected error", tt.kind)
			}
			continue
		}
		if err != nil || src == nil {
			t.Errorf("New(%q): unexpected error %v", tt.kind, err)
		}
	}
}

func TestSourcesDeterministic(t *testing.T) {
	for _, kind := range []string{KindPerlin, KindSimplex} {
		a, _ := New(kind, 42)
		b, _ := New(kind, 42)
		for i := 0; i < 50; i++ {
			x, y, z := float64(i)*0.37, float64(i)*0.11, float64(i)*0.05
			if a.Noise3D(x, y, z) != b.Noise3D(x, y, z) {
				t.Fatalf("%s: same seed produced different values at %d", kind, i)
			}
		}
	}
}

func TestSourcesRange(t *testing.T) {
	for _, kind := range []string{KindPerlin, KindSimplex} {
		src, _ := New(kind, 7)
		for i := 0; i < 2000; i++ {
			x := float64(i%50) * 0.13
			y := float64(i/50) * 0.17
			v := src.Noise3D(x, y, float64(i)*0.001)
			if math.IsNaN(v) || v < -1.5 || v > 1.5 {
				t.Fatalf("%s: value %v out of range at (%v, %v)", kind, v, x, y)
			}
		}
	}
}

func TestPerlinZeroAtLatticePoints(t *testing.T) {
	p := NewPerlin(3)
	for i := 0; i < 10; i++ {
		f := float64(i)
		if v := p.Noise3D(f, f*2, f*3); v != 0 {
			t.Errorf("expected 0 at integer lattice point %d, got %v", i, v)
		}
	}
}

func TestPerlinContinuity(t *testing.T) {
	p := NewPerlin(9)
	const eps = 1e-4
	for i := 0; i < 100; i++ {
		x := float64(i) * 0.173
		a := p.Noise3D(x, 0.5, 0.25)
		b := p.Noise3D(x+eps, 0.5, 0.25)
		if math.Abs(a-b) > 0.01 {
			t.Errorf("discontinuity at x=%v: %v vs %v", x, a, b)
		}
	}
}
