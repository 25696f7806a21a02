package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pthm-cable/topo/contour"
	"github.com/pthm-cable/topo/telemetry"
)

// HUDData holds all the data needed to render the debug HUD.
type HUDData struct {
	Stats      contour.FrameStats
	Resolution int
	ScrollY    float64
	Progress   float64 // Scroll position through the page, [0, 1]
	FPS        int32
	Paused     bool
}

var hudSections = []SectionDescriptor{
	{
		ID:    "frame",
		Title: "Frame",
		Fields: []FieldDescriptor{
			{ID: "frame", Label: "Frame", Widget: WidgetText, TextGetter: func(d any) string {
				return fmt.Sprintf("%d", d.(HUDData).Stats.Frame)
			}},
			{ID: "fps", Label: "FPS", Widget: WidgetText, TextGetter: func(d any) string {
				return fmt.Sprintf("%d", d.(HUDData).FPS)
			}},
			{ID: "grid", Label: "Grid", Widget: WidgetText, TextGetter: func(d any) string {
				h := d.(HUDData)
				return fmt.Sprintf("%dx%d @ %dpx", h.Stats.Cols, h.Stats.Rows, h.Resolution)
			}},
		},
	},
	{
		ID:    "contours",
		Title: "Contours",
		Fields: []FieldDescriptor{
			{ID: "levels", Label: "Levels", Widget: WidgetText, TextGetter: func(d any) string {
				s := d.(HUDData).Stats
				return fmt.Sprintf("%d (%d major)", s.Levels, s.MajorLevels)
			}},
			{ID: "segments", Label: "Segments", Widget: WidgetText, TextGetter: func(d any) string {
				return fmt.Sprintf("%d", d.(HUDData).Stats.Segments)
			}},
			{ID: "range", Label: "Range", Widget: WidgetText, TextGetter: func(d any) string {
				s := d.(HUDData).Stats
				return fmt.Sprintf("%.1f .. %.1f", s.Min, s.Max)
			}},
		},
	},
	{
		ID:    "parallax",
		Title: "Parallax",
		Fields: []FieldDescriptor{
			{ID: "scroll", Label: "Scroll", Widget: WidgetText, Format: "%.0f", Getter: func(d any) float32 {
				return float32(d.(HUDData).ScrollY)
			}},
			{ID: "progress", Label: "Page", Widget: WidgetBar, Range: DefaultRange(), Getter: func(d any) float32 {
				return float32(d.(HUDData).Progress)
			}},
			{ID: "offset", Label: "Offset", Widget: WidgetText, TextGetter: func(d any) string {
				s := d.(HUDData).Stats
				return fmt.Sprintf("%.1f -> %.1f", s.Offset, s.Target)
			}},
			{ID: "lag", Label: "Lag", Widget: WidgetCenteredBar, Range: FieldRange{Min: -100, Max: 100}, Getter: func(d any) float32 {
				s := d.(HUDData).Stats
				return float32(s.Target - s.Offset)
			}},
		},
	},
	{
		ID:    "pointer",
		Title: "Pointer",
		Fields: []FieldDescriptor{
			{ID: "active", Label: "Active", Widget: WidgetText, TextGetter: func(d any) string {
				if d.(HUDData).Stats.PointerActive {
					return "yes"
				}
				return "no"
			}},
			{ID: "peak", Label: "Peak", Widget: WidgetBar, Range: FieldRange{Min: 0, Max: 1}, Getter: func(d any) float32 {
				return float32(d.(HUDData).Stats.PerturbPeak)
			}},
		},
	},
}

// HUD renders the debug heads-up display.
type HUD struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewHUD creates a new HUD renderer.
func NewHUD(x, y, width int32) *HUD {
	return &HUD{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the HUD position.
func (h *HUD) SetPosition(x, y int32) {
	h.x = x
	h.y = y
}

// Draw renders the HUD panel and returns the Y below it.
func (h *HUD) Draw(data HUDData) int32 {
	r := h.renderer
	padding := r.Theme.Padding

	height := padding*2 + r.Theme.LineHeight
	for _, sd := range hudSections {
		height += r.SectionHeight(sd, data)
	}
	r.DrawPanel(h.x, h.y, h.width, height)

	y := h.y + padding
	status := "Running"
	statusColor := r.Theme.SectionHeader
	if data.Paused {
		status = "PAUSED"
		statusColor = rl.Yellow
	}
	rl.DrawText(status, h.x+padding, y, 16, statusColor)
	y += r.Theme.LineHeight

	for _, sd := range hudSections {
		y = r.DrawSection(h.x+padding, y, sd, data, h.width-padding*2)
	}
	return h.y + height
}

// DrawControls renders the control legend at the bottom of the screen.
func DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders the per-phase frame timing panel.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y, width int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the timing panel and returns the Y below it.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) int32 {
	r := p.renderer
	padding := r.Theme.Padding
	phases := []string{contour.PhasePerturb, contour.PhaseSample, contour.PhaseContour, contour.PhasePresent}

	height := padding*2 + r.Theme.LineHeight*3 + int32(len(phases))*(r.Theme.LineHeight+2)
	r.DrawPanel(p.x, p.y, p.width, height)

	x := p.x + padding
	y := p.y + padding
	y = r.DrawSectionHeader(x, y, "Frame Timing")
	y = r.DrawLabelValue(x, y, "Avg", stats.AvgFrameDuration.Round(time.Microsecond).String())
	y = r.DrawLabelValue(x, y, "Max", stats.MaxFrameDuration.Round(time.Microsecond).String())

	for _, phase := range phases {
		y = r.DrawBar(x, y, phase, float32(stats.PhasePct[phase]), FieldRange{Min: 0, Max: 100}, p.width-padding*2)
	}
	return p.y + height
}
