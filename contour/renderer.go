package contour

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pthm-cable/topo/noise"
)

// FrameStats summarizes one rendered frame.
type FrameStats struct {
	Frame         uint64
	Cols, Rows    int
	Levels        int
	MajorLevels   int
	Segments      int
	Min, Max      float64
	Offset        float64 // Smoothed translation applied this frame
	Target        float64 // Scroll-derived translation target
	PerturbPeak   float64
	PointerActive bool
}

// inputs is written by event handlers and consumed once at the top of each
// frame. Handlers may run on a different goroutine than the frame loop.
type inputs struct {
	mu sync.Mutex

	pointerX, pointerY float64
	pointerOK          bool

	scrollY float64

	resizeW, resizeH int
	resizePending    bool

	params        Params
	paramsPending bool
}

// Renderer owns all contour field state for one drawing surface.
type Renderer struct {
	surface   Surface
	presenter Presenter
	timer     PhaseTimer
	sampler   Sampler
	params    Params

	width, height int
	res           int
	grid          *Grid
	field         *Field
	smoother      Smoother

	elapsed      float64
	scrollY      float64
	scrollDomain float64
	frame        uint64
	last         FrameStats

	in      inputs
	running atomic.Bool
}

// New creates a renderer painting onto surface for a width x height viewport.
// A nil surface yields a nil renderer, on which every method is a no-op.
// A nil source falls back to Perlin noise seeded with 0.
func New(surface Surface, src noise.Source, p Params, width, height int) *Renderer {
	if surface == nil {
		return nil
	}
	if src == nil {
		src = noise.NewPerlin(0)
	}
	r := &Renderer{
		surface: surface,
		params:  p,
	}
	if pr, ok := surface.(Presenter); ok {
		r.presenter = pr
	}
	r.sampler = Sampler{Source: src, Params: &r.params}
	r.smoother.Ease = p.Ease
	r.resize(width, height)
	return r
}

// SetPhaseTimer attaches an optional timer notified at each frame phase.
func (r *Renderer) SetPhaseTimer(t PhaseTimer) {
	if r == nil {
		return
	}
	r.timer = t
}

// Start marks the loop as running.
func (r *Renderer) Start() {
	if r == nil {
		return
	}
	r.running.Store(true)
}

// Stop ends the loop. The next Step returns false and Run returns.
func (r *Renderer) Stop() {
	if r == nil {
		return
	}
	r.running.Store(false)
}

// Running reports whether the loop is active.
func (r *Renderer) Running() bool {
	return r != nil && r.running.Load()
}

// Step renders one frame if the loop is running.
func (r *Renderer) Step() (FrameStats, bool) {
	if !r.Running() {
		return FrameStats{}, false
	}
	return r.Frame(), true
}

// Run starts the loop and renders a frame every interval until ctx is done
// or Stop is called. A zero interval renders back to back. onFrame may be nil.
func (r *Renderer) Run(ctx context.Context, interval time.Duration, onFrame func(FrameStats)) error {
	if r == nil {
		return nil
	}
	r.Start()
	defer r.Stop()

	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		stats, ok := r.Step()
		if !ok {
			return nil
		}
		if onFrame != nil {
			onFrame(stats)
		}
	}
}

// PointerMove records a canvas-relative pointer position. Negative
// coordinates mean the pointer is off the canvas.
func (r *Renderer) PointerMove(x, y float64) {
	if r == nil {
		return
	}
	r.in.mu.Lock()
	r.in.pointerX, r.in.pointerY = x, y
	r.in.pointerOK = x >= 0 && y >= 0
	r.in.mu.Unlock()
}

// PointerLeave marks the pointer as absent.
func (r *Renderer) PointerLeave() {
	if r == nil {
		return
	}
	r.in.mu.Lock()
	r.in.pointerOK = false
	r.in.mu.Unlock()
}

// Scroll records the page's vertical scroll position.
func (r *Renderer) Scroll(scrollY float64) {
	if r == nil {
		return
	}
	r.in.mu.Lock()
	r.in.scrollY = scrollY
	r.in.mu.Unlock()
}

// Resize requests new viewport dimensions. The grid and perturbation field
// are reallocated at the start of the next frame.
func (r *Renderer) Resize(width, height int) {
	if r == nil {
		return
	}
	r.in.mu.Lock()
	r.in.resizeW, r.in.resizeH = width, height
	r.in.resizePending = true
	r.in.mu.Unlock()
}

// SetParams replaces the tuning params from the next frame on.
func (r *Renderer) SetParams(p Params) {
	if r == nil {
		return
	}
	r.in.mu.Lock()
	r.in.params = p
	r.in.paramsPending = true
	r.in.mu.Unlock()
}

// Params returns the params in effect.
func (r *Renderer) Params() Params {
	if r == nil {
		return Params{}
	}
	return r.params
}

// Dimensions returns the current grid size.
func (r *Renderer) Dimensions() (cols, rows int) {
	if r == nil {
		return 0, 0
	}
	return r.grid.Cols, r.grid.Rows
}

// Resolution returns the current cell size in pixels.
func (r *Renderer) Resolution() int {
	if r == nil {
		return 0
	}
	return r.res
}

// LastStats returns the stats of the most recent frame.
func (r *Renderer) LastStats() FrameStats {
	if r == nil {
		return FrameStats{}
	}
	return r.last
}

// Frame renders one frame regardless of the running flag.
func (r *Renderer) Frame() FrameStats {
	if r == nil {
		return FrameStats{}
	}
	px, py, pointerOK := r.consumeInputs()
	p := &r.params

	r.phase(PhasePerturb)
	if pointerOK {
		res := float64(r.res)
		r.field.Boost(int(px/res), int(py/res), p.PointerRadius, p.PointerStrength)
	}

	r.surface.Clear()

	r.phase(PhaseSample)
	r.elapsed += p.TimeDrift
	r.sampler.Sample(r.grid, r.field, r.elapsed, r.scrollDomain)

	r.phase(PhaseContour)
	levels := Levels(r.grid.Min, r.grid.Max, p.ThresholdStep, p.MajorMultiple)
	segments, major := 0, 0
	for _, lvl := range levels {
		width := p.LineWidth
		if lvl.Major {
			width = p.MajorLineWidth
			major++
		}
		r.surface.BeginPath()
		r.surface.SetStrokeColor(p.LineColor)
		r.surface.SetLineWidth(width)
		segments += Extract(r.grid, lvl.Value, r.emit)
		r.surface.Stroke()
	}

	r.phase(PhasePresent)
	offset := r.smoother.Step()
	r.surface.SetTranslateY(offset)
	if r.presenter != nil {
		r.presenter.Present()
	}

	r.frame++
	r.last = FrameStats{
		Frame:         r.frame,
		Cols:          r.grid.Cols,
		Rows:          r.grid.Rows,
		Levels:        len(levels),
		MajorLevels:   major,
		Segments:      segments,
		Min:           r.grid.Min,
		Max:           r.grid.Max,
		Offset:        offset,
		Target:        r.smoother.Target,
		PerturbPeak:   r.field.Peak(),
		PointerActive: pointerOK,
	}
	return r.last
}

func (r *Renderer) emit(s Segment) {
	r.surface.MoveTo(s.X0, s.Y0)
	r.surface.LineTo(s.X1, s.Y1)
}

func (r *Renderer) phase(name string) {
	if r.timer != nil {
		r.timer.StartPhase(name)
	}
}

// consumeInputs applies pending params, resize and scroll, and returns the
// pointer snapshot for this frame.
func (r *Renderer) consumeInputs() (px, py float64, ok bool) {
	r.in.mu.Lock()
	defer r.in.mu.Unlock()

	needResize := false
	if r.in.paramsPending {
		oldRes := r.params.resolutionFor(r.width)
		r.params = r.in.params
		r.smoother.Ease = r.params.Ease
		r.in.paramsPending = false
		needResize = r.params.resolutionFor(r.width) != oldRes
	}
	if r.in.resizePending {
		r.width, r.height = r.in.resizeW, r.in.resizeH
		r.in.resizePending = false
		needResize = true
	}
	if needResize {
		r.resize(r.width, r.height)
	}

	r.scrollY = r.in.scrollY
	r.smoother.Target = -r.scrollY * r.params.ParallaxFactor
	r.scrollDomain = r.scrollY * r.params.ScrollDrift

	return r.in.pointerX, r.in.pointerY, r.in.pointerOK
}

// resize reallocates the grid and a zeroed perturbation field.
func (r *Renderer) resize(width, height int) {
	r.width, r.height = width, height
	r.res = r.params.resolutionFor(width)
	cols, rows := Dimensions(width, height, r.res)
	r.grid = NewGrid(cols, rows, float64(r.res))
	r.field = NewField(cols, rows)
}
