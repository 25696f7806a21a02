package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyColumn is the width reserved for "[Home/End]".
const keyColumn = 76

// KeyHint is a host key listed under the overlay toggles.
type KeyHint struct {
	Label  string
	Action string
}

// ControlsPanel is the key reference toggled with H.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewControlsPanel creates a hidden controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition moves the panel.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x, c.y = x, y
}

// IsVisible reports whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle flips visibility and returns the new state.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Draw lists every overlay toggle, grouped by kind, then the host keys.
// Returns the Y below the panel.
func (c *ControlsPanel) Draw(set *OverlaySet, keys []KeyHint) int32 {
	if !c.visible {
		return c.y
	}

	r := c.renderer
	pad := r.Theme.Padding
	line := r.Theme.LineHeight
	kinds := []OverlayKind{KindPanel, KindFieldView}

	rows := len(keys) + 1
	for _, k := range kinds {
		rows += len(set.OfKind(k)) + 1
	}
	height := int32(rows)*line + pad*2
	r.DrawPanel(c.x, c.y, c.width, height)

	x := c.x + pad
	y := c.y + pad
	for _, k := range kinds {
		y = r.DrawSectionHeader(x, y, k.String())
		for _, o := range set.OfKind(k) {
			c.drawKey(x, y, o.Label, o.Name, set.IsEnabled(o.ID))
			y += line
		}
	}
	y = r.DrawSectionHeader(x, y, "Keys")
	for _, k := range keys {
		c.drawKey(x, y, k.Label, k.Action, false)
		y += line
	}
	return c.y + height
}

// drawKey draws "[K] name" with a lit marker for enabled toggles.
func (c *ControlsPanel) drawKey(x, y int32, label, name string, on bool) {
	t := c.renderer.Theme
	nameColor := t.LabelColor
	if on {
		rl.DrawRectangle(x, y+3, 6, 6, t.BarFillPositive)
		nameColor = t.ValueColor
	}
	rl.DrawText("["+label+"]", x+12, y, t.FontSize, t.SectionHeader)
	rl.DrawText(name, x+12+keyColumn, y, t.FontSize, nameColor)
}
