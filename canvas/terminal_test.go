package canvas

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init failed: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

// One dot per canvas pixel keeps the expected runes easy to derive.
func newTestTerminal(t *testing.T) (*TerminalSurface, tcell.SimulationScreen) {
	screen := newTestScreen(t, 10, 5)
	s := NewTerminalSurface(screen, dotsX, dotsY, color.NRGBA{R: 0x11, G: 0x14, B: 0x17, A: 0xff})
	return s, screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestTerminalSurfaceCanvasSize(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	s := NewTerminalSurface(screen, 8, 16, color.NRGBA{A: 0xff})
	w, h := s.CanvasSize()
	if w != 640 || h != 384 {
		t.Errorf("expected 640x384, got %dx%d", w, h)
	}
	x, y := s.CellToCanvas(1, 1)
	if x != 12 || y != 24 {
		t.Errorf("expected cell center (12,24), got (%v,%v)", x, y)
	}
}

func TestTerminalSurfaceHorizontalLine(t *testing.T) {
	s, screen := newTestTerminal(t)

	s.Clear()
	s.BeginPath()
	s.SetStrokeColor(testLine)
	s.SetLineWidth(1)
	s.MoveTo(0, 0)
	s.LineTo(3, 0)
	s.Stroke()
	s.Present()

	// Top row of both dot columns
	want := rune(brailleBase | 0x01 | 0x08)
	if got := runeAt(screen, 0, 0); got != want {
		t.Errorf("cell (0,0): expected %q, got %q", want, got)
	}
	if got := runeAt(screen, 1, 0); got != want {
		t.Errorf("cell (1,0): expected %q, got %q", want, got)
	}
	if got := runeAt(screen, 2, 0); got != ' ' {
		t.Errorf("cell (2,0): expected blank, got %q", got)
	}
}

func TestTerminalSurfaceVerticalLine(t *testing.T) {
	s, screen := newTestTerminal(t)

	s.Clear()
	s.MoveTo(0, 0)
	s.LineTo(0, 3)
	s.Stroke()
	s.Present()

	want := rune(brailleBase | 0x01 | 0x02 | 0x04 | 0x40)
	if got := runeAt(screen, 0, 0); got != want {
		t.Errorf("expected left column %q, got %q", want, got)
	}
}

func TestTerminalSurfaceTranslateShiftsRows(t *testing.T) {
	s, screen := newTestTerminal(t)

	s.Clear()
	s.MoveTo(0, 0)
	s.LineTo(1, 0)
	s.Stroke()
	s.SetTranslateY(dotsY)
	s.Present()

	if got := runeAt(screen, 0, 0); got != ' ' {
		t.Errorf("expected row 0 blank after shift, got %q", got)
	}
	want := rune(brailleBase | 0x01 | 0x08)
	if got := runeAt(screen, 0, 1); got != want {
		t.Errorf("expected shifted row %q, got %q", want, got)
	}
}

func TestTerminalSurfacePartialShift(t *testing.T) {
	s, screen := newTestTerminal(t)

	s.Clear()
	s.MoveTo(0, 0)
	s.LineTo(1, 0)
	s.Stroke()
	s.SetTranslateY(1)
	s.Present()

	// Top dot row moves to the second dot row of the same cell
	want := rune(brailleBase | 0x02 | 0x10)
	if got := runeAt(screen, 0, 0); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestTerminalSurfaceHeavyStyle(t *testing.T) {
	s, screen := newTestTerminal(t)

	s.Clear()
	s.SetStrokeColor(testLine)
	s.SetLineWidth(1)
	s.MoveTo(0, 0)
	s.LineTo(1, 0)
	s.Stroke()
	s.SetLineWidth(2)
	s.MoveTo(0, 4)
	s.LineTo(1, 4)
	s.Stroke()
	s.Present()

	_, _, light, _ := screen.GetContent(0, 0)
	_, _, heavy, _ := screen.GetContent(0, 1)
	lightFG, _, _ := light.Decompose()
	heavyFG, _, _ := heavy.Decompose()
	if lightFG == heavyFG {
		t.Errorf("expected heavy stroke to use a brighter color, both %v", lightFG)
	}
}

func TestTerminalSurfaceClipsOutside(t *testing.T) {
	s, _ := newTestTerminal(t)

	s.Clear()
	s.MoveTo(-5, -5)
	s.LineTo(100, 100)
	s.Stroke()
	s.Present()
}

func TestTerminalSurfaceResize(t *testing.T) {
	s, _ := newTestTerminal(t)
	s.Resize(20, 8)
	w, h := s.CanvasSize()
	if w != 20*dotsX || h != 8*dotsY {
		t.Errorf("expected %dx%d, got %dx%d", 20*dotsX, 8*dotsY, w, h)
	}
}
