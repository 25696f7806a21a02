// Package game runs the contour background in a raylib window: it turns
// window input into scroll, pointer and resize events for a session and
// composes the contour texture with the background and debug panels.
package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/topo/config"
	"github.com/pthm-cable/topo/contour"
	"github.com/pthm-cable/topo/renderer"
	"github.com/pthm-cable/topo/session"
	"github.com/pthm-cable/topo/ui"
)

// Panel layout
const (
	panelMargin = 10
	panelWidth  = 260
)

// Game holds the window state around one session.
type Game struct {
	cfg *config.Config
	s   *session.Session

	// Rendering
	surface      *renderer.RaylibSurface
	background   *renderer.BackgroundRenderer
	fieldOverlay *renderer.FieldOverlay

	// UI
	overlays      *ui.OverlaySet
	controlsPanel *ui.ControlsPanel
	hud           *ui.HUD
	tuning        *ui.TuningPanel
	perfPanel     *ui.PerfPanel
	inspector     *ui.Inspector

	// Params as last edited in the tuning panel
	params contour.Params

	// Draw pass timing
	drawPerf *PerfStats
	logStats bool

	// State
	paused       bool
	done         bool
	mouseInside  bool
	lastMouse    rl.Vector2
	lastStats    contour.FrameStats
	screenWidth  int32
	screenHeight int32
}

// NewGame creates the window-side state. The raylib window must already be open.
func NewGame(cfg *config.Config, opts session.Options) (*Game, error) {
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())

	surface := renderer.NewRaylibSurface(w, h)
	s, err := session.New(cfg, surface, int(w), int(h), opts)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	g := &Game{
		cfg:          cfg,
		s:            s,
		surface:      surface,
		background:   renderer.NewBackgroundRenderer(w, h, cfg.Derived.Background),
		fieldOverlay: renderer.NewFieldOverlay(150),
		params:       s.Renderer().Params(),
		drawPerf:     NewPerfStats(cfg.Telemetry.PerfCollectorWindow),
		logStats:     opts.LogStats,
		screenWidth:  w,
		screenHeight: h,
	}
	g.initUI()

	surface.Init()
	g.background.Init()
	s.Start()

	g.logStartup()
	return g, nil
}

// initUI creates the panels, stacked from the top-left corner.
func (g *Game) initUI() {
	defaults := contour.ParamsFromConfig(g.cfg)

	g.overlays = ui.NewOverlaySet(ui.DefaultOverlays)
	g.hud = ui.NewHUD(panelMargin, panelMargin, panelWidth)
	g.perfPanel = ui.NewPerfPanel(panelMargin, panelMargin, panelWidth)
	g.tuning = ui.NewTuningPanel(g.screenWidth-panelWidth-panelMargin, panelMargin, panelWidth, defaults)
	g.inspector = ui.NewInspector(g.screenWidth-panelWidth-panelMargin, panelMargin, panelWidth)
	g.controlsPanel = ui.NewControlsPanel(panelMargin, panelMargin, panelWidth)
}

// Update handles input and renders the next contour frame.
func (g *Game) Update() {
	g.handleInput()

	if g.paused || g.done {
		return
	}

	fs, ok := g.s.Step()
	if !ok {
		g.done = true
		return
	}
	g.lastStats = fs

	if g.logStats && fs.Frame%uint64(g.statsEvery()) == 0 {
		g.logDrawPerf()
	}
}

// statsEvery returns how many frames pass between draw timing logs.
func (g *Game) statsEvery() int {
	n := int(g.cfg.Telemetry.StatsWindow / g.cfg.Derived.FrameDT)
	if n < 1 {
		n = 1
	}
	return n
}

// Done reports whether the session has stopped, e.g. after max frames.
func (g *Game) Done() bool {
	return g.done
}

// Frame returns the number of frames rendered so far.
func (g *Game) Frame() uint64 {
	return g.lastStats.Frame
}

// Session returns the underlying session.
func (g *Game) Session() *session.Session {
	return g.s
}
