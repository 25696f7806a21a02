package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/topo/viewport"
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	if rl.IsKeyPressed(rl.KeyH) {
		g.controlsPanel.Toggle()
	}

	if rl.IsKeyPressed(rl.KeyS) {
		g.saveSnapshot()
	}

	g.handleOverlayKeys()
	g.handleScrollInput()
	g.handlePointer()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.surface.Resize(w, h)
	g.background.Resize(w, h)
	g.s.Resize(int(w), int(h))

	x := w - panelWidth - panelMargin
	g.tuning.SetPosition(x, panelMargin)
	g.inspector.SetPosition(x, panelMargin)

	slog.Debug("window resized", "width", w, "height", h)
}

// handleScrollInput maps the wheel and navigation keys onto the page.
func (g *Game) handleScrollInput() {
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.s.ScrollBy(float64(-wheel * viewport.LineStep))
	}

	if keyPressed(rl.KeyDown) {
		g.s.ScrollBy(float64(viewport.LineStep))
	}
	if keyPressed(rl.KeyUp) {
		g.s.ScrollBy(float64(-viewport.LineStep))
	}
	if keyPressed(rl.KeyPageDown) {
		g.s.ScrollPage(1)
	}
	if keyPressed(rl.KeyPageUp) {
		g.s.ScrollPage(-1)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		g.s.ScrollHome()
	}
	if rl.IsKeyPressed(rl.KeyEnd) {
		g.s.ScrollEnd()
	}
}

// handlePointer forwards mouse motion and marks the pointer absent when
// the cursor leaves the window.
func (g *Game) handlePointer() {
	if !rl.IsCursorOnScreen() {
		if g.mouseInside {
			g.mouseInside = false
			g.s.PointerLeave()
		}
		return
	}

	pos := rl.GetMousePosition()
	if g.mouseInside && pos == g.lastMouse {
		return
	}
	g.mouseInside = true
	g.lastMouse = pos
	g.s.PointerAt(float64(pos.X), float64(pos.Y))
}

// keyPressed reports a press or an auto-repeat of a held key.
func keyPressed(key int32) bool {
	return rl.IsKeyPressed(key) || rl.IsKeyPressedRepeat(key)
}
