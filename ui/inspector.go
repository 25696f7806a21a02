package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pthm-cable/topo/contour"
)

var inspectorSection = SectionDescriptor{
	ID:    "probe",
	Title: "Field",
	Fields: []FieldDescriptor{
		{ID: "node", Label: "Node", Widget: WidgetText, TextGetter: func(d any) string {
			p := d.(contour.Probe)
			return fmt.Sprintf("%d, %d", p.Col, p.Row)
		}},
		{ID: "value", Label: "Value", Widget: WidgetCenteredBar, Range: FieldRange{Min: -100, Max: 100}, Getter: func(d any) float32 {
			return float32(d.(contour.Probe).Value)
		}},
		{ID: "level", Label: "Level", Widget: WidgetText, Format: "%.0f", Getter: func(d any) float32 {
			return float32(d.(contour.Probe).Level)
		}},
		{ID: "perturb", Label: "Perturb", Widget: WidgetText, Format: "%.4f", Getter: func(d any) float32 {
			return float32(d.(contour.Probe).Perturb)
		}},
	},
}

// Inspector shows the field under the pointer.
type Inspector struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewInspector creates a new inspector panel.
func NewInspector(x, y, width int32) *Inspector {
	return &Inspector{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the inspector position.
func (ins *Inspector) SetPosition(x, y int32) {
	ins.x = x
	ins.y = y
}

// Draw renders the probe, or a hint when the pointer is off the grid.
func (ins *Inspector) Draw(p contour.Probe) int32 {
	r := ins.renderer
	padding := r.Theme.Padding

	if !p.Inside {
		height := padding*2 + r.Theme.LineHeight
		r.DrawPanel(ins.x, ins.y, ins.width, height)
		rl.DrawText("Pointer off canvas", ins.x+padding, ins.y+padding, r.Theme.FontSize, r.Theme.LabelColor)
		return ins.y + height
	}

	height := padding*2 + r.SectionHeight(inspectorSection, p)
	r.DrawPanel(ins.x, ins.y, ins.width, height)
	r.DrawSection(ins.x+padding, ins.y+padding, inspectorSection, p, ins.width-padding*2)
	return ins.y + height
}
