package contour

import (
	"math"
	"testing"
)

func TestSmootherConverges(t *testing.T) {
	tests := []struct {
		name          string
		start, target float64
		ease          float64
	}{
		{"scroll down", 0, -300, 0.08},
		{"scroll back up", -300, 0, 0.08},
		{"snappy", 10, 50, 0.9},
		{"sluggish", 0, 1, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Smoother{Offset: tt.start, Target: tt.target, Ease: tt.ease}
			prevDist := math.Abs(tt.target - tt.start)
			for i := 0; i < 5000; i++ {
				before := s.Offset
				got := s.Step()
				dist := math.Abs(tt.target - got)
				if dist > prevDist {
					t.Fatalf("step %d: distance grew from %v to %v", i, prevDist, dist)
				}
				// No overshoot: offset stays on the start side of the target
				if (before-tt.target)*(got-tt.target) < 0 {
					t.Fatalf("step %d: overshoot from %v to %v past %v", i, before, got, tt.target)
				}
				prevDist = dist
			}
			if prevDist > 1e-6 {
				t.Errorf("expected convergence within 1e-6, still %v away", prevDist)
			}
		})
	}
}

func TestSmootherConvergedIsNoop(t *testing.T) {
	s := Smoother{Offset: -42, Target: -42, Ease: 0.08}
	for i := 0; i < 10; i++ {
		if got := s.Step(); got != -42 {
			t.Fatalf("expected offset to stay at -42, got %v", got)
		}
	}
}
