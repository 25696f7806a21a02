// Package contour renders an animated topographic contour field: a noise
// grid sampled every frame, perturbed around the pointer, traced with
// marching squares and translated with a smoothed parallax offset.
package contour

import (
	"image/color"

	"github.com/pthm-cable/topo/config"
)

// Params holds every tunable used by the renderer.
type Params struct {
	// Grid
	Resolution       int // Cell size in pixels
	MobileResolution int // Cell size for viewports narrower than MobileBreakpoint
	MobileBreakpoint int

	// Levels and styling
	ThresholdStep  float64
	MajorMultiple  int
	Amplitude      float64
	LineColor      color.NRGBA
	LineWidth      float64
	MajorLineWidth float64

	// Sampling motion
	TimeDrift        float64
	SpatialFrequency float64
	DomainWarp       float64
	WarpFreqX        float64
	WarpFreqY        float64
	ScrollDrift      float64
	ScrollShiftX     float64
	ScrollShiftY     float64

	// Parallax
	ParallaxFactor float64
	Ease           float64

	// Perturbation
	PointerRadius   int
	PointerStrength float64
	Decay           float64
}

// DefaultParams returns the params built from the embedded default config.
func DefaultParams() Params {
	return ParamsFromConfig(config.Defaults())
}

// ParamsFromConfig maps a loaded config onto renderer params.
func ParamsFromConfig(c *config.Config) Params {
	return Params{
		Resolution:       c.Contour.Resolution,
		MobileResolution: c.Contour.MobileResolution,
		MobileBreakpoint: c.Contour.MobileBreakpoint,
		ThresholdStep:    c.Contour.ThresholdStep,
		MajorMultiple:    c.Contour.MajorMultiple,
		Amplitude:        c.Contour.Amplitude,
		LineColor:        c.Derived.LineColor,
		LineWidth:        c.Contour.LineWidth,
		MajorLineWidth:   c.Contour.MajorLineWidth,
		TimeDrift:        c.Motion.TimeDrift,
		SpatialFrequency: c.Motion.SpatialFrequency,
		DomainWarp:       c.Motion.DomainWarp,
		WarpFreqX:        c.Motion.WarpFreqX,
		WarpFreqY:        c.Motion.WarpFreqY,
		ScrollDrift:      c.Motion.ScrollDrift,
		ScrollShiftX:     c.Motion.ScrollShiftX,
		ScrollShiftY:     c.Motion.ScrollShiftY,
		ParallaxFactor:   c.Motion.ParallaxFactor,
		Ease:             c.Motion.Ease,
		PointerRadius:    c.Pointer.Radius,
		PointerStrength:  c.Pointer.Strength,
		Decay:            c.Pointer.Decay,
	}
}

// resolutionFor returns the cell size for a viewport width.
func (p *Params) resolutionFor(width int) int {
	res := p.Resolution
	if width < p.MobileBreakpoint && p.MobileResolution > 0 {
		res = p.MobileResolution
	}
	if res < 1 {
		res = 1
	}
	return res
}
