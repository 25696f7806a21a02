package session

import "math"

// Autopilot scripts input for unattended runs. It scrolls down the page and
// back in a triangle wave while the pointer traces a figure eight, lifting
// off the canvas for the rest of each pointer cycle.
type Autopilot struct {
	ScrollPeriod  uint64  // Frames for one down-and-up pass (0 = no scrolling)
	PointerPeriod uint64  // Frames per pointer cycle (0 = no pointer)
	PointerDuty   float64 // Fraction of each cycle with the pointer on the canvas
}

// DefaultAutopilot returns the script used by headless runs.
func DefaultAutopilot() Autopilot {
	return Autopilot{
		ScrollPeriod:  1200,
		PointerPeriod: 300,
		PointerDuty:   0.6,
	}
}

// ScrollAt returns the scroll position for frame on a page that scrolls up
// to maxScroll.
func (a Autopilot) ScrollAt(frame uint64, maxScroll float64) float64 {
	if a.ScrollPeriod == 0 || maxScroll <= 0 {
		return 0
	}
	p := float64(frame%a.ScrollPeriod) / float64(a.ScrollPeriod)
	return (1 - math.Abs(2*p-1)) * maxScroll
}

// PointerAt returns the screen position of the pointer at frame, and false
// while it is lifted.
func (a Autopilot) PointerAt(frame uint64, width, height float64) (x, y float64, ok bool) {
	if a.PointerPeriod == 0 {
		return 0, 0, false
	}
	phase := frame % a.PointerPeriod
	if float64(phase) >= a.PointerDuty*float64(a.PointerPeriod) {
		return 0, 0, false
	}
	t := 2 * math.Pi * float64(phase) / float64(a.PointerPeriod)
	x = width * (0.5 + 0.4*math.Sin(t))
	y = height * (0.5 + 0.4*math.Sin(2*t))
	return x, y, true
}

// Apply feeds the scripted input for frame into s.
func (a Autopilot) Apply(s *Session, frame uint64) {
	vp := s.Viewport()
	s.ScrollTo(a.ScrollAt(frame, float64(vp.MaxScroll())))

	if x, y, ok := a.PointerAt(frame, float64(vp.Width), float64(vp.Height)); ok {
		s.PointerAt(x, y)
	} else {
		s.PointerLeave()
	}
}
