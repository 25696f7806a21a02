package session

import (
	"log/slog"

	"github.com/pthm-cable/topo/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (s *Session) flushTelemetry(frame uint64) {
	if !s.collector.ShouldFlush(frame) {
		return
	}

	stats := s.collector.Flush(frame)
	perfStats := s.perf.Stats()

	if s.statsCallback != nil {
		s.statsCallback(stats)
	}

	if s.opts.LogStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := s.output.WriteWindow(stats); err != nil {
		slog.Error("failed to write frames", "error", err)
	}
	if err := s.output.WritePerf(perfStats, stats.WindowEndFrame); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	for _, bm := range s.bookmarks.Check(stats) {
		if s.opts.LogStats {
			bm.LogBookmark()
		}
		if err := s.output.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
		if s.opts.SnapshotDir != "" || s.output != nil {
			s.saveSnapshot(&bm)
		}
	}
}

// Snapshot captures the current renderer state, tagged with bookmark when set.
func (s *Session) Snapshot(bookmark *telemetry.Bookmark) *telemetry.Snapshot {
	snap := telemetry.NewSnapshot(s.renderer, s.noiseKind, s.seed)
	snap.Bookmark = bookmark
	return snap
}

// SaveSnapshot writes a snapshot of the current state and returns its path.
// It goes to SnapshotDir, or the output directory when that is unset. The
// path is empty when both are disabled.
func (s *Session) SaveSnapshot() (string, error) {
	snap := s.Snapshot(nil)
	if s.opts.SnapshotDir != "" {
		return telemetry.SaveSnapshot(snap, s.opts.SnapshotDir)
	}
	return s.output.WriteSnapshot(snap)
}

// saveSnapshot writes a bookmark snapshot and logs the outcome.
func (s *Session) saveSnapshot(bookmark *telemetry.Bookmark) {
	snap := s.Snapshot(bookmark)

	var path string
	var err error
	if s.opts.SnapshotDir != "" {
		path, err = telemetry.SaveSnapshot(snap, s.opts.SnapshotDir)
	} else {
		path, err = s.output.WriteSnapshot(snap)
	}
	if err != nil {
		slog.Error("failed to save snapshot", "error", err)
		return
	}

	slog.Info("snapshot saved", "path", path, "frame", snap.State.Frame)
}
