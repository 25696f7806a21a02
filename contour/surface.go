package contour

import "image/color"

// Surface is an immediate-mode 2-D drawing target.
type Surface interface {
	// Clear erases the whole surface.
	Clear()
	BeginPath()
	SetStrokeColor(c color.NRGBA)
	SetLineWidth(w float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Stroke draws the current path.
	Stroke()
	// SetTranslateY moves the painted surface vertically without repainting.
	SetTranslateY(dy float64)
}

// Presenter is implemented by surfaces that need an explicit flush once a
// frame has been painted.
type Presenter interface {
	Present()
}

// PhaseTimer receives phase boundaries while a frame runs.
type PhaseTimer interface {
	StartPhase(phase string)
}

// Frame phases reported to a PhaseTimer.
const (
	PhasePerturb = "perturb"
	PhaseSample  = "sample"
	PhaseContour = "contour"
	PhasePresent = "present"
)
