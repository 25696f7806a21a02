package contour

// Smoother eases an offset toward a target by a fixed fraction per step.
// For 0 < Ease < 1 the offset converges monotonically and never overshoots.
type Smoother struct {
	Offset float64
	Target float64
	Ease   float64
}

// Step advances the offset one frame and returns it.
func (s *Smoother) Step() float64 {
	s.Offset += (s.Target - s.Offset) * s.Ease
	return s.Offset
}
