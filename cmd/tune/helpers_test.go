package main

import "github.com/pthm-cable/topo/telemetry"

func telemetryWindow(cols, rows int, levels, segments float64) telemetry.WindowStats {
	return telemetry.WindowStats{
		Cols:         cols,
		Rows:         rows,
		LevelsMean:   levels,
		SegmentsMean: segments,
	}
}

func windowsOf(w telemetry.WindowStats, n int) []telemetry.WindowStats {
	out := make([]telemetry.WindowStats, n)
	for i := range out {
		out[i] = w
	}
	return out
}
