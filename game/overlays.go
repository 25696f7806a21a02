package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/topo/ui"
)

// handleOverlayKeys checks for overlay toggle key presses.
func (g *Game) handleOverlayKeys() {
	for _, o := range g.overlays.All() {
		if o.Key != 0 && rl.IsKeyPressed(o.Key) {
			g.overlays.Toggle(o.ID)
		}
	}
}

// drawFieldOverlays renders the debug views that sit under the contours.
func (g *Game) drawFieldOverlays() {
	r := g.s.Renderer()
	switch {
	case g.overlays.IsEnabled(ui.OverlayField):
		g.fieldOverlay.UpdatePerturbation(r.Field())
	case g.overlays.IsEnabled(ui.OverlayGrid):
		g.fieldOverlay.UpdateGrid(r.Grid(), r.Params().Amplitude)
	default:
		return
	}
	g.fieldOverlay.Draw(float32(r.Resolution()), g.surface.TranslateY())
}

// drawPanels renders the enabled panels. Left-column panels stack
// downward; right-column panels do the same from the other edge.
func (g *Game) drawPanels() {
	leftY := int32(panelMargin)
	rightY := int32(panelMargin)
	rightX := g.screenWidth - panelWidth - panelMargin

	for _, id := range g.overlays.Enabled() {
		switch id {
		case ui.OverlayHUD:
			g.hud.SetPosition(panelMargin, leftY)
			leftY = g.hud.Draw(g.hudData()) + panelMargin
		case ui.OverlayPerf:
			g.perfPanel.SetPosition(panelMargin, leftY)
			leftY = g.perfPanel.Draw(g.s.Perf().Stats()) + panelMargin
		case ui.OverlayTuning:
			g.tuning.SetPosition(rightX, rightY)
			// Edits apply at the next frame, so the panel works from its own copy
			if p, changed := g.tuning.Draw(g.params); changed {
				g.params = p
				g.s.Renderer().SetParams(p)
			}
			rightY += g.tuning.Height() + panelMargin
		case ui.OverlayInspector:
			g.inspector.SetPosition(rightX, rightY)
			probe, _ := g.s.Probe(float64(g.lastMouse.X), float64(g.lastMouse.Y))
			if !g.mouseInside {
				probe.Inside = false
			}
			rightY = g.inspector.Draw(probe) + panelMargin
		}
	}

	g.controlsPanel.SetPosition(panelMargin, leftY)
	g.controlsPanel.Draw(g.overlays, hostKeys)
}

// hostKeys are the non-overlay keys listed in the controls panel.
var hostKeys = []ui.KeyHint{
	{Label: "Wheel", Action: "scroll"},
	{Label: "PgUp/Dn", Action: "page"},
	{Label: "Home/End", Action: "top / bottom"},
	{Label: "Space", Action: "pause"},
	{Label: "S", Action: "save snapshot"},
	{Label: "H", Action: "this panel"},
	{Label: "F11", Action: "fullscreen"},
}

// hudData gathers the HUD readouts.
func (g *Game) hudData() ui.HUDData {
	vp := g.s.Viewport()
	return ui.HUDData{
		Stats:      g.lastStats,
		Resolution: g.s.Renderer().Resolution(),
		ScrollY:    float64(vp.ScrollY),
		Progress:   float64(vp.Progress()),
		FPS:        rl.GetFPS(),
		Paused:     g.paused,
	}
}
