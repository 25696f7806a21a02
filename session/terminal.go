package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/topo/canvas"
	"github.com/pthm-cable/topo/config"
	"github.com/pthm-cable/topo/contour"
)

// terminal couples a session to a tcell screen. Input is handled on the
// event goroutine; the braille surface is only touched between frames.
type terminal struct {
	s       *Session
	screen  tcell.Screen
	surface *canvas.TerminalSurface
	cancel  context.CancelFunc

	mu          sync.Mutex
	resizeCols  int
	resizeRows  int
	resizeReady bool
}

// RunTerminal draws the field in braille on an initialized screen until
// ctx is done, opts.MaxFrames is reached or the user quits with q, Esc or
// Ctrl-C. The caller owns the screen and finalizes it.
func RunTerminal(ctx context.Context, cfg *config.Config, opts Options, screen tcell.Screen) error {
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	surface := canvas.NewTerminalSurface(screen, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight, cfg.Derived.Background)
	width, height := surface.CanvasSize()
	s, err := New(cfg, surface, width, height, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	t := &terminal{s: s, screen: screen, surface: surface, cancel: cancel}

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		t.pollEvents(done)
	}()
	defer func() {
		// Unblock PollEvent so the event goroutine can observe done
		close(done)
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		<-stopped
	}()

	cols, rows := screen.Size()
	slog.Info("starting terminal run",
		"noise", s.NoiseKind(),
		"seed", s.Seed(),
		"cols", cols,
		"rows", rows,
		"canvas_width", width,
		"canvas_height", height,
	)

	err = s.Run(ctx, s.FrameInterval(), func(contour.FrameStats) {
		t.applyResize()
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pollEvents forwards screen events until done is closed or an event asks
// the run to stop.
func (t *terminal) pollEvents(done <-chan struct{}) {
	for {
		ev := t.screen.PollEvent()
		select {
		case <-done:
			return
		default:
		}
		if ev == nil {
			// Screen finalized
			t.cancel()
			return
		}
		if !t.handleEvent(ev) {
			return
		}
	}
}

// handleEvent applies one input event. Returns false when the event asks
// the run to stop.
func (t *terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev)
	case *tcell.EventMouse:
		t.handleMouse(ev)
	case *tcell.EventFocus:
		if !ev.Focused {
			t.s.PointerLeave()
		}
	case *tcell.EventResize:
		t.screen.Sync()
		cols, rows := ev.Size()
		t.requestResize(cols, rows)
	}
	return true
}

func (t *terminal) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.cancel()
		return false
	case tcell.KeyUp:
		t.s.ScrollBy(-float64(t.lineStep()))
	case tcell.KeyDown:
		t.s.ScrollBy(float64(t.lineStep()))
	case tcell.KeyPgUp:
		t.s.ScrollPage(-1)
	case tcell.KeyPgDn:
		t.s.ScrollPage(1)
	case tcell.KeyHome:
		t.s.ScrollHome()
	case tcell.KeyEnd:
		t.s.ScrollEnd()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			t.cancel()
			return false
		case ' ':
			t.s.ScrollPage(1)
		}
	}
	return true
}

func (t *terminal) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		t.s.ScrollBy(-float64(t.lineStep()))
	case buttons&tcell.WheelDown != 0:
		t.s.ScrollBy(float64(t.lineStep()))
	}

	cx, cy := ev.Position()
	cols, rows := t.screen.Size()
	if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
		t.s.PointerLeave()
		return
	}
	x, y := t.surface.CellToCanvas(cx, cy)
	t.s.PointerAt(x, y)
}

// lineStep is the scroll distance of one key press or wheel notch.
func (t *terminal) lineStep() int {
	return 2 * t.s.cfg.Terminal.CellHeight
}

// requestResize records a new screen size for the next frame boundary and
// resizes the session, whose renderer defers the change itself.
func (t *terminal) requestResize(cols, rows int) {
	t.mu.Lock()
	t.resizeCols, t.resizeRows = cols, rows
	t.resizeReady = true
	t.mu.Unlock()

	cellW, cellH := t.s.cfg.Terminal.CellWidth, t.s.cfg.Terminal.CellHeight
	t.s.Resize(cols*cellW, rows*cellH)
}

// applyResize resizes the braille surface between frames.
func (t *terminal) applyResize() {
	t.mu.Lock()
	ready := t.resizeReady
	cols, rows := t.resizeCols, t.resizeRows
	t.resizeReady = false
	t.mu.Unlock()

	if ready {
		t.surface.Resize(cols, rows)
	}
}
