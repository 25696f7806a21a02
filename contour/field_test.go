package contour

import (
	"math"
	"testing"
)

func TestBoostGaussianFalloff(t *testing.T) {
	f := NewField(41, 41)
	f.Boost(20, 20, 10, 0.08)

	if got := f.At(20, 20); math.Abs(got-0.08) > 1e-12 {
		t.Errorf("expected center boost 0.08, got %v", got)
	}

	// Cell 5 to the right: exp(-25/100) * 0.08
	want := math.Exp(-0.25) * 0.08
	if got := f.At(25, 20); math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %v at distance 5, got %v", want, got)
	}

	// Rim is included, corners of the square are not
	if f.At(30, 20) == 0 {
		t.Error("expected boost at distance exactly radius")
	}
	if f.At(30, 30) != 0 {
		t.Error("expected no boost outside the radius")
	}
}

func TestBoostSkipsOutOfBounds(t *testing.T) {
	f := NewField(5, 5)
	touched := f.Boost(0, 0, 3, 1)

	// Quarter disc of radius 3 inside the grid: cells with dx,dy in [0,3] and dx²+dy² <= 9
	want := 0
	for dy := 0; dy <= 3; dy++ {
		for dx := 0; dx <= 3; dx++ {
			if dx*dx+dy*dy <= 9 {
				want++
			}
		}
	}
	if touched != want {
		t.Errorf("expected %d cells touched, got %d", want, touched)
	}

	// Pointer entirely outside the grid touches nothing
	if n := f.Boost(-20, -20, 3, 1); n != 0 {
		t.Errorf("expected 0 cells for off-grid center, got %d", n)
	}
}

func TestBoostAccumulatesWithoutBound(t *testing.T) {
	f := NewField(3, 3)
	for i := 0; i < 1000; i++ {
		f.Boost(1, 1, 1, 0.08)
	}
	if got := f.At(1, 1); math.Abs(got-80) > 1e-6 {
		t.Errorf("expected accumulated 80, got %v", got)
	}
}

func TestDecayAndPeak(t *testing.T) {
	f := NewField(4, 4)
	f.Add(2, 3, 2)
	f.Decay(0.5)
	if got := f.Peak(); got != 1 {
		t.Errorf("expected peak 1, got %v", got)
	}
	if f.IsZero() {
		t.Error("expected non-zero field")
	}
}
