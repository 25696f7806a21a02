package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pthm-cable/topo/canvas"
	"github.com/pthm-cable/topo/config"
	"github.com/pthm-cable/topo/contour"
)

// RunHeadless renders onto an offscreen SVG surface under pilot until ctx
// is done or opts.MaxFrames frames are drawn. With MaxFrames set, frames
// run back to back; otherwise at the configured rate. The final frame is
// written to svgPath when it is not empty.
func RunHeadless(ctx context.Context, cfg *config.Config, opts Options, pilot Autopilot, svgPath string) error {
	surface := canvas.NewSVGSurface(cfg.Screen.Width, cfg.Screen.Height, cfg.Derived.Background)
	s, err := New(cfg, surface, cfg.Screen.Width, cfg.Screen.Height, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	interval := s.FrameInterval()
	if opts.MaxFrames > 0 {
		interval = 0
	}

	slog.Info("starting headless run",
		"noise", s.NoiseKind(),
		"seed", s.Seed(),
		"width", cfg.Screen.Width,
		"height", cfg.Screen.Height,
		"max_frames", opts.MaxFrames,
		"interval", interval,
	)

	start := time.Now()
	pilot.Apply(s, s.Renderer().State().Frame)
	err = s.Run(ctx, interval, func(fs contour.FrameStats) {
		pilot.Apply(s, fs.Frame)
	})
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	last := s.Renderer().LastStats()
	slog.Info("headless run finished",
		"frames", s.Frames(),
		"elapsed", time.Since(start).Round(time.Millisecond),
		"segments", last.Segments,
		"levels", last.Levels,
	)

	if svgPath != "" {
		if werr := surface.WriteFile(svgPath); werr != nil {
			return errors.Join(err, fmt.Errorf("writing svg: %w", werr))
		}
		slog.Info("svg written", "path", svgPath, "paths", surface.Paths(), "segments", surface.Segments())
	}
	return err
}
