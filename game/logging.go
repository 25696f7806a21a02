package game

import (
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// logStartup logs the window and session setup.
func (g *Game) logStartup() {
	cols, rows := g.s.Renderer().Dimensions()
	slog.Info("starting window",
		"width", g.screenWidth,
		"height", g.screenHeight,
		"resolution", g.s.Renderer().Resolution(),
		"cols", cols,
		"rows", rows,
		"noise", g.s.NoiseKind(),
		"seed", g.s.Seed(),
		"output_dir", g.s.Output().Dir(),
	)
}

// logDrawPerf logs the draw pass breakdown.
func (g *Game) logDrawPerf() {
	total := g.drawPerf.Total()
	attrs := []any{
		"frame", g.lastStats.Frame,
		"fps", rl.GetFPS(),
		"total_us", total.Microseconds(),
	}
	for _, name := range g.drawPerf.SortedNames() {
		avg := g.drawPerf.Avg(name)
		pct := float64(0)
		if total > 0 {
			pct = float64(avg) / float64(total) * 100
		}
		attrs = append(attrs, slog.Group(name,
			"avg", avg.Round(time.Microsecond).String(),
			"peak", g.drawPerf.Peak(name).Round(time.Microsecond).String(),
			"pct", pct,
		))
	}
	slog.Info("draw_perf", attrs...)
}
