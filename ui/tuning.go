package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pthm-cable/topo/contour"
)

// slider binds one float param to a raygui slider.
type slider struct {
	label    string
	min, max float32
	format   string
	get      func(*contour.Params) float64
	set      func(*contour.Params, float64)
}

var tuningSliders = []slider{
	{
		label: "Ease", min: 0.01, max: 0.5, format: "%.2f",
		get: func(p *contour.Params) float64 { return p.Ease },
		set: func(p *contour.Params, v float64) { p.Ease = v },
	},
	{
		label: "Parallax", min: 0, max: 1, format: "%.2f",
		get: func(p *contour.Params) float64 { return p.ParallaxFactor },
		set: func(p *contour.Params, v float64) { p.ParallaxFactor = v },
	},
	{
		label: "Pointer strength", min: 0, max: 0.5, format: "%.3f",
		get: func(p *contour.Params) float64 { return p.PointerStrength },
		set: func(p *contour.Params, v float64) { p.PointerStrength = v },
	},
	{
		label: "Pointer radius", min: 0, max: 30, format: "%.0f",
		get: func(p *contour.Params) float64 { return float64(p.PointerRadius) },
		set: func(p *contour.Params, v float64) { p.PointerRadius = int(v + 0.5) },
	},
	{
		label: "Threshold step", min: 1, max: 20, format: "%.1f",
		get: func(p *contour.Params) float64 { return p.ThresholdStep },
		set: func(p *contour.Params, v float64) { p.ThresholdStep = v },
	},
	{
		label: "Decay", min: 0.5, max: 0.99, format: "%.2f",
		get: func(p *contour.Params) float64 { return p.Decay },
		set: func(p *contour.Params, v float64) { p.Decay = v },
	},
}

// TuningPanel edits renderer params live with raygui sliders.
type TuningPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	defaults contour.Params
}

// NewTuningPanel creates a tuning panel. defaults is restored by the reset button.
func NewTuningPanel(x, y, width int32, defaults contour.Params) *TuningPanel {
	return &TuningPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		defaults: defaults,
	}
}

// SetPosition updates the panel position.
func (t *TuningPanel) SetPosition(x, y int32) {
	t.x = x
	t.y = y
}

const tuningRowHeight = 36

// Height returns the panel height.
func (t *TuningPanel) Height() int32 {
	padding := t.renderer.Theme.Padding
	return padding*3 + t.renderer.Theme.LineHeight + int32(len(tuningSliders))*tuningRowHeight + 24
}

// Draw renders the sliders for p and returns the edited params and whether
// anything changed.
func (t *TuningPanel) Draw(p contour.Params) (contour.Params, bool) {
	r := t.renderer
	padding := r.Theme.Padding
	rowHeight := int32(tuningRowHeight)

	r.DrawPanel(t.x, t.y, t.width, t.Height())

	x := float32(t.x + padding)
	y := t.y + padding
	y = r.DrawSectionHeader(t.x+padding, y, "Tuning")

	sliderWidth := float32(t.width - padding*2 - 60)
	changed := false
	for _, s := range tuningSliders {
		current := float32(s.get(&p))
		rl.DrawText(s.label, int32(x), y, r.Theme.FontSize, r.Theme.LabelColor)
		next := gui.SliderBar(
			rl.Rectangle{X: x, Y: float32(y + 14), Width: sliderWidth, Height: 14},
			"", "",
			current, s.min, s.max,
		)
		rl.DrawText(fmt.Sprintf(s.format, next), int32(x+sliderWidth+8), y+14, r.Theme.FontSize, r.Theme.ValueColor)
		if next != current {
			s.set(&p, float64(next))
			changed = true
		}
		y += rowHeight
	}

	if gui.Button(rl.Rectangle{X: x, Y: float32(y + padding/2), Width: 100, Height: 22}, "Reset") {
		p = t.defaults
		changed = true
	}

	return p, changed
}
