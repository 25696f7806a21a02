package session

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/topo/canvas"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init failed: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

// newTestTerminal wires a terminal without starting its loops.
func newTestTerminal(t *testing.T) *terminal {
	t.Helper()
	cfg := testConfig()
	screen := newSimScreen(t, 40, 12)
	surface := canvas.NewTerminalSurface(screen, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight, cfg.Derived.Background)
	w, h := surface.CanvasSize()
	s, err := New(cfg, surface, w, h, Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return &terminal{s: s, screen: screen, surface: surface, cancel: func() {}}
}

func TestRunTerminalDrawsBraille(t *testing.T) {
	screen := newSimScreen(t, 40, 12)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := RunTerminal(ctx, testConfig(), Options{MaxFrames: 5}, screen); err != nil {
		t.Fatalf("RunTerminal failed: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("expected run to stop at max frames before the timeout")
	}

	braille := 0
	for y := 0; y < 12; y++ {
		for x := 0; x < 40; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			if r > 0x2800 && r <= 0x28ff {
				braille++
			}
		}
	}
	if braille == 0 {
		t.Error("expected contour dots on screen")
	}
}

func TestRunTerminalQuitKey(t *testing.T) {
	screen := newSimScreen(t, 40, 12)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := RunTerminal(ctx, testConfig(), Options{}, screen); err != nil {
		t.Fatalf("RunTerminal failed: %v", err)
	}
	if ctx.Err() != nil {
		t.Error("expected q to stop the run before the timeout")
	}
}

func TestPollEventsStopsOnQuit(t *testing.T) {
	testCases := []struct {
		name string
		key  tcell.Key
		ch   rune
	}{
		{"q", tcell.KeyRune, 'q'},
		{"escape", tcell.KeyEscape, 0},
		{"ctrl-c", tcell.KeyCtrlC, 0},
	}

	for _, tc := range testCases {
		term := newTestTerminal(t)
		cancelled := make(chan struct{})
		term.cancel = func() { close(cancelled) }

		// A non-quit key first keeps the loop running
		screen := term.screen.(tcell.SimulationScreen)
		screen.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
		screen.InjectKey(tc.key, tc.ch, tcell.ModNone)

		stopped := make(chan struct{})
		go func() {
			defer close(stopped)
			term.pollEvents(make(chan struct{}))
		}()

		select {
		case <-stopped:
		case <-time.After(2 * time.Second):
			t.Fatalf("%s: expected the event loop to return", tc.name)
		}
		select {
		case <-cancelled:
		default:
			t.Errorf("%s: expected the run to be cancelled", tc.name)
		}
		if got := term.s.Viewport().ScrollY; got != float32(term.lineStep()) {
			t.Errorf("%s: expected the key before quit to scroll %d, got %v", tc.name, term.lineStep(), got)
		}
	}
}

func TestTerminalResizeWaitsForFrameBoundary(t *testing.T) {
	term := newTestTerminal(t)

	term.handleEvent(tcell.NewEventResize(20, 6))

	if w, h := term.surface.CanvasSize(); w != 320 || h != 192 {
		t.Errorf("expected surface untouched before the frame boundary, got %dx%d", w, h)
	}
	if vp := term.s.Viewport(); vp.Width != 160 || vp.Height != 96 {
		t.Errorf("expected viewport 160x96, got %vx%v", vp.Width, vp.Height)
	}

	term.applyResize()
	if w, h := term.surface.CanvasSize(); w != 160 || h != 96 {
		t.Errorf("expected surface 160x96 after the frame boundary, got %dx%d", w, h)
	}

	// A second boundary without a new event is a no-op
	term.surface.Resize(40, 12)
	term.applyResize()
	if w, _ := term.surface.CanvasSize(); w != 320 {
		t.Errorf("expected no repeated resize, got width %d", w)
	}
}

func TestTerminalMouse(t *testing.T) {
	term := newTestTerminal(t)
	term.s.Start()

	term.handleEvent(tcell.NewEventMouse(5, 3, tcell.ButtonNone, tcell.ModNone))
	fs, _ := term.s.Step()
	if !fs.PointerActive {
		t.Error("expected pointer after mouse motion")
	}

	term.handleEvent(tcell.NewEventMouse(5, 3, tcell.WheelDown, tcell.ModNone))
	if got := term.s.Viewport().ScrollY; got != float32(term.lineStep()) {
		t.Errorf("expected one wheel notch to scroll %d, got %v", term.lineStep(), got)
	}

	term.handleEvent(tcell.NewEventFocus(false))
	fs, _ = term.s.Step()
	if fs.PointerActive {
		t.Error("expected pointer absent after focus loss")
	}
}
