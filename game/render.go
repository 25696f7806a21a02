package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/topo/ui"
)

// Scroll bar geometry
const (
	scrollBarWidth  = 6
	scrollBarMargin = 4
	scrollBarMinLen = 24
)

const controlsLegend = "Wheel/arrows/PgUp/PgDn scroll  Space pause  S snapshot  H help  F11 fullscreen"

// Draw composes the frame: background, debug field views, the contour
// texture, the page scroll bar and the panels.
func (g *Game) Draw() {
	rl.BeginDrawing()

	vp := g.s.Viewport()

	g.timePass("background", func() {
		g.background.Draw(vp.Progress())
	})
	g.timePass("field_overlay", g.drawFieldOverlays)
	g.timePass("contours", g.surface.Draw)
	g.timePass("ui", func() {
		g.drawScrollBar()
		g.drawPanels()
		if g.overlays.IsEnabled(ui.OverlayHUD) {
			ui.DrawControls(g.screenHeight, controlsLegend)
		}
	})

	rl.EndDrawing()
	g.s.Perf().RecordPresent()
}

// timePass runs fn and records its duration under name.
func (g *Game) timePass(name string, fn func()) {
	start := time.Now()
	fn()
	g.drawPerf.Record(name, time.Since(start))
}

// drawScrollBar renders a ghost scroll bar for the virtual page.
func (g *Game) drawScrollBar() {
	vp := g.s.Viewport()
	if vp.MaxScroll() == 0 {
		return
	}

	trackX := g.screenWidth - scrollBarWidth - scrollBarMargin
	trackH := g.screenHeight - scrollBarMargin*2
	thumbH := int32(float32(trackH) * vp.Height / vp.PageHeight)
	if thumbH < scrollBarMinLen {
		thumbH = scrollBarMinLen
	}
	thumbY := scrollBarMargin + int32(vp.Progress()*float32(trackH-thumbH))

	rl.DrawRectangle(trackX, scrollBarMargin, scrollBarWidth, trackH, rl.Color{R: 255, G: 255, B: 255, A: 12})
	rl.DrawRectangleRounded(
		rl.Rectangle{X: float32(trackX), Y: float32(thumbY), Width: scrollBarWidth, Height: float32(thumbH)},
		1, 4,
		rl.Color{R: 237, G: 237, B: 237, A: 60},
	)
}
