package game

import "log/slog"

// saveSnapshot writes the current renderer state on request.
func (g *Game) saveSnapshot() {
	path, err := g.s.SaveSnapshot()
	if err != nil {
		slog.Error("failed to save snapshot", "error", err)
		return
	}
	if path == "" {
		slog.Warn("snapshot skipped", "reason", "no -snapshot-dir or -output-dir set")
		return
	}
	slog.Info("snapshot saved", "path", path, "frame", g.lastStats.Frame)
}

// Unload frees GPU resources and closes output files.
func (g *Game) Unload() {
	g.s.Stop()
	g.surface.Unload()
	g.background.Unload()
	g.fieldOverlay.Unload()
	if err := g.s.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
