// Package session hosts one contour renderer together with the page
// viewport and the telemetry pipeline. The window, headless and terminal
// front ends all drive a Session.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pthm-cable/topo/config"
	"github.com/pthm-cable/topo/contour"
	"github.com/pthm-cable/topo/noise"
	"github.com/pthm-cable/topo/telemetry"
	"github.com/pthm-cable/topo/viewport"
)

// Options configures a run. Zero values fall back to the config.
type Options struct {
	NoiseKind      string
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	SnapshotDir    string // Bookmark snapshots; defaults to <OutputDir>/snapshots
	OutputDir      string
	MaxFrames      uint64 // Stop after this many frames in this run (0 = unlimited)
	RestorePath    string // Snapshot to resume from
}

// Session owns a renderer and everything fed from its frames.
type Session struct {
	cfg  *config.Config
	opts Options

	noiseKind string
	seed      int64

	renderer *contour.Renderer

	// mu guards viewport; input may arrive on a different goroutine than
	// the frame loop.
	mu       sync.Mutex
	viewport *viewport.Viewport
	offset   atomic.Uint64 // float64 bits of the last applied translation

	perf      *telemetry.PerfCollector
	collector *telemetry.Collector
	bookmarks *telemetry.BookmarkDetector
	output    *telemetry.OutputManager

	statsCallback func(telemetry.WindowStats)
	frames        uint64
}

// New creates a session painting onto surface for a width x height canvas.
func New(cfg *config.Config, surface contour.Surface, width, height int, opts Options) (*Session, error) {
	if surface == nil {
		return nil, errors.New("session: nil surface")
	}

	var restored *telemetry.Snapshot
	if opts.RestorePath != "" {
		snap, err := telemetry.LoadSnapshot(opts.RestorePath)
		if err != nil {
			return nil, fmt.Errorf("loading snapshot: %w", err)
		}
		restored = snap
	}

	kind, seed := resolveNoise(cfg, opts, restored)
	src, err := noise.New(kind, seed)
	if err != nil {
		return nil, fmt.Errorf("creating noise source: %w", err)
	}

	s := &Session{
		cfg:       cfg,
		opts:      opts,
		noiseKind: kind,
		seed:      seed,
		renderer:  contour.New(surface, src, contour.ParamsFromConfig(cfg), width, height),
		viewport:  viewport.New(float32(width), float32(height), float32(cfg.Screen.PageHeight)),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		bookmarks: telemetry.NewBookmarkDetector(10),
	}
	s.renderer.SetPhaseTimer(frameTimer{s.perf})

	windowSec := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		windowSec = opts.StatsWindowSec
	}
	s.collector = telemetry.NewCollector(windowSec, cfg.Derived.FrameDT)

	if s.output, err = telemetry.NewOutputManager(opts.OutputDir); err != nil {
		return nil, err
	}
	if err := s.output.WriteConfig(cfg); err != nil {
		s.output.Close()
		return nil, fmt.Errorf("writing config: %w", err)
	}

	if restored != nil {
		s.restore(restored, width, height)
	}
	return s, nil
}

// resolveNoise picks the noise source: a restored snapshot wins, then the
// options, then the config.
func resolveNoise(cfg *config.Config, opts Options, restored *telemetry.Snapshot) (string, int64) {
	if restored != nil {
		return restored.NoiseKind, restored.NoiseSeed
	}
	kind := cfg.Noise.Kind
	if opts.NoiseKind != "" {
		kind = opts.NoiseKind
	}
	seed := cfg.Noise.Seed
	if opts.Seed != 0 {
		seed = opts.Seed
	}
	return kind, seed
}

func (s *Session) restore(snap *telemetry.Snapshot, width, height int) {
	st := snap.State
	if !s.renderer.Restore(st) {
		slog.Warn("snapshot field does not match grid, perturbation reset",
			"cols", st.Cols,
			"rows", st.Rows,
			"values", len(st.Field),
		)
	}
	s.collector.StartAt(st.Frame)
	s.offset.Store(math.Float64bits(st.Offset))

	s.mu.Lock()
	s.viewport.ScrollTo(float32(st.ScrollY))
	s.mu.Unlock()

	if st.Width != width || st.Height != height {
		slog.Warn("snapshot size differs from canvas",
			"snapshot_width", st.Width,
			"snapshot_height", st.Height,
			"width", width,
			"height", height,
		)
		s.renderer.Resize(width, height)
	}
	slog.Info("snapshot restored", "path", s.opts.RestorePath, "frame", st.Frame)
}

// Renderer returns the hosted renderer.
func (s *Session) Renderer() *contour.Renderer { return s.renderer }

// Perf returns the frame timing collector.
func (s *Session) Perf() *telemetry.PerfCollector { return s.perf }

// Output returns the output manager, nil when output is disabled.
func (s *Session) Output() *telemetry.OutputManager { return s.output }

// NoiseKind returns the name of the noise source in use.
func (s *Session) NoiseKind() string { return s.noiseKind }

// Seed returns the noise seed in use.
func (s *Session) Seed() int64 { return s.seed }

// Frames returns the number of frames rendered in this run.
func (s *Session) Frames() uint64 { return s.frames }

// FrameInterval returns the configured time between frames.
func (s *Session) FrameInterval() time.Duration {
	return time.Duration(s.cfg.Derived.FrameDT * float64(time.Second))
}

// SetStatsCallback registers fn to receive every flushed stats window.
func (s *Session) SetStatsCallback(fn func(telemetry.WindowStats)) {
	s.statsCallback = fn
}

// Offset returns the translation applied by the most recent frame.
func (s *Session) Offset() float64 {
	return math.Float64frombits(s.offset.Load())
}

// Viewport returns a copy of the current viewport.
func (s *Session) Viewport() viewport.Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.viewport
}

// Resize adopts new canvas dimensions.
func (s *Session) Resize(width, height int) {
	s.mu.Lock()
	changed := s.viewport.Resize(float32(width), float32(height))
	scrollY := s.viewport.ScrollY
	s.mu.Unlock()

	if !changed {
		return
	}
	s.renderer.Resize(width, height)
	s.renderer.Scroll(float64(scrollY))
}

// ScrollBy moves the page and reports whether the position changed.
func (s *Session) ScrollBy(dy float64) bool {
	s.mu.Lock()
	changed := s.viewport.Scroll(float32(dy))
	scrollY := s.viewport.ScrollY
	s.mu.Unlock()

	s.renderer.Scroll(float64(scrollY))
	return changed
}

// ScrollTo jumps to a page position and reports whether it changed.
func (s *Session) ScrollTo(y float64) bool {
	s.mu.Lock()
	changed := s.viewport.ScrollTo(float32(y))
	scrollY := s.viewport.ScrollY
	s.mu.Unlock()

	s.renderer.Scroll(float64(scrollY))
	return changed
}

// ScrollPage moves by pages, negative to scroll up.
func (s *Session) ScrollPage(pages float64) bool {
	s.mu.Lock()
	step := s.viewport.PageStep()
	s.mu.Unlock()
	return s.ScrollBy(pages * float64(step))
}

// ScrollHome jumps to the top of the page.
func (s *Session) ScrollHome() bool {
	return s.ScrollTo(0)
}

// ScrollEnd jumps to the bottom of the page.
func (s *Session) ScrollEnd() bool {
	s.mu.Lock()
	end := s.viewport.MaxScroll()
	s.mu.Unlock()
	return s.ScrollTo(float64(end))
}

// CanvasPoint maps a screen point onto the translated canvas.
func (s *Session) CanvasPoint(sx, sy float64) (cx, cy float64, ok bool) {
	s.mu.Lock()
	x, y, ok := s.viewport.ScreenToCanvas(float32(sx), float32(sy), float32(s.Offset()))
	s.mu.Unlock()
	return float64(x), float64(y), ok
}

// PointerAt feeds a screen-space pointer position to the renderer. Points
// off the canvas mark the pointer absent. Returns whether it landed.
func (s *Session) PointerAt(sx, sy float64) bool {
	cx, cy, ok := s.CanvasPoint(sx, sy)
	if !ok {
		s.renderer.PointerLeave()
		return false
	}
	s.renderer.PointerMove(cx, cy)
	return true
}

// PointerLeave marks the pointer absent.
func (s *Session) PointerLeave() {
	s.renderer.PointerLeave()
}

// Probe samples the field under a screen point.
func (s *Session) Probe(sx, sy float64) (contour.Probe, bool) {
	cx, cy, ok := s.CanvasPoint(sx, sy)
	if !ok {
		return contour.Probe{}, false
	}
	return s.renderer.Probe(cx, cy), true
}

// Start marks the renderer as running for callers that drive Step.
func (s *Session) Start() { s.renderer.Start() }

// Stop ends the run.
func (s *Session) Stop() { s.renderer.Stop() }

// Step renders one frame when running and feeds it to telemetry.
func (s *Session) Step() (contour.FrameStats, bool) {
	fs, ok := s.renderer.Step()
	if ok {
		s.observe(fs)
	}
	return fs, ok
}

// Run drives the renderer every interval until ctx is done, Stop is
// called or MaxFrames is reached. onFrame runs on the frame goroutine
// after telemetry has seen the frame.
func (s *Session) Run(ctx context.Context, interval time.Duration, onFrame func(contour.FrameStats)) error {
	return s.renderer.Run(ctx, interval, func(fs contour.FrameStats) {
		s.observe(fs)
		if onFrame != nil {
			onFrame(fs)
		}
	})
}

// observe records a finished frame.
func (s *Session) observe(fs contour.FrameStats) {
	s.perf.EndFrame()
	s.offset.Store(math.Float64bits(fs.Offset))
	s.collector.Record(fs)
	s.frames++

	s.flushTelemetry(fs.Frame)

	if s.opts.MaxFrames > 0 && s.frames >= s.opts.MaxFrames {
		slog.Info("max frames reached", "frame", fs.Frame, "frames", s.frames)
		s.renderer.Stop()
	}
}

// Close releases output files.
func (s *Session) Close() error {
	return s.output.Close()
}

// frameTimer opens a perf frame at the first phase so frames driven by
// Renderer.Run are timed without the ticker wait.
type frameTimer struct {
	perf *telemetry.PerfCollector
}

func (t frameTimer) StartPhase(name string) {
	if name == contour.PhasePerturb {
		t.perf.StartFrame()
	}
	t.perf.StartPhase(name)
}
