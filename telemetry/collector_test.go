package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/topo/contour"
)

func TestCollectorWindowLength(t *testing.T) {
	c := NewCollector(2.0, 1.0/60)
	if got := c.WindowDurationFrames(); got != 120 && got != 119 {
		t.Errorf("expected ~120 frames per window, got %d", got)
	}

	c = NewCollector(0.001, 1.0/60)
	if got := c.WindowDurationFrames(); got != 1 {
		t.Errorf("expected minimum window of 1 frame, got %d", got)
	}
}

func TestCollectorShouldFlush(t *testing.T) {
	c := NewCollector(1.0, 0.25) // 4 frames
	if c.ShouldFlush(3) {
		t.Error("expected no flush before window end")
	}
	if !c.ShouldFlush(4) {
		t.Error("expected flush at window end")
	}
	c.Flush(4)
	if c.ShouldFlush(7) {
		t.Error("expected window to restart after flush")
	}
}

func TestCollectorFlushAggregates(t *testing.T) {
	c := NewCollector(1.0, 0.25)

	frames := []contour.FrameStats{
		{Frame: 1, Cols: 10, Rows: 8, Levels: 4, MajorLevels: 1, Segments: 100, Min: -12, Max: 20, Offset: 0, Target: -10, PerturbPeak: 0.1, PointerActive: true},
		{Frame: 2, Cols: 10, Rows: 8, Levels: 6, MajorLevels: 2, Segments: 200, Min: -18, Max: 15, Offset: -2, Target: -10, PerturbPeak: 0.3, PointerActive: true},
		{Frame: 3, Cols: 10, Rows: 8, Levels: 5, MajorLevels: 1, Segments: 300, Min: -5, Max: 25, Offset: -4, Target: -10, PerturbPeak: 0.2},
	}
	for _, fs := range frames {
		c.Record(fs)
	}

	stats := c.Flush(3)

	if stats.Frames != 3 {
		t.Errorf("expected 3 frames, got %d", stats.Frames)
	}
	if stats.WindowEndFrame != 3 || stats.WindowStartFrame != 0 {
		t.Errorf("expected window [0,3], got [%d,%d]", stats.WindowStartFrame, stats.WindowEndFrame)
	}
	if math.Abs(stats.TimeSec-0.75) > 1e-9 {
		t.Errorf("expected time 0.75, got %v", stats.TimeSec)
	}
	if stats.SegmentsMean != 200 {
		t.Errorf("expected segment mean 200, got %v", stats.SegmentsMean)
	}
	if stats.LevelsMean != 5 || stats.LevelsMax != 6 {
		t.Errorf("expected levels mean 5 max 6, got %v %d", stats.LevelsMean, stats.LevelsMax)
	}
	if stats.FieldMin != -18 || stats.FieldMax != 25 {
		t.Errorf("expected field range [-18,25], got [%v,%v]", stats.FieldMin, stats.FieldMax)
	}
	if stats.OffsetEnd != -4 || stats.TargetEnd != -10 {
		t.Errorf("expected offset -4 target -10, got %v %v", stats.OffsetEnd, stats.TargetEnd)
	}
	if math.Abs(stats.OffsetLagMean-8) > 1e-9 {
		t.Errorf("expected lag mean 8, got %v", stats.OffsetLagMean)
	}
	if stats.PerturbPeakMax != 0.3 {
		t.Errorf("expected peak 0.3, got %v", stats.PerturbPeakMax)
	}
	if stats.PointerFrames != 2 {
		t.Errorf("expected 2 pointer frames, got %d", stats.PointerFrames)
	}
	if stats.Cols != 10 || stats.Rows != 8 {
		t.Errorf("expected 10x8 grid, got %dx%d", stats.Cols, stats.Rows)
	}

	// Counters reset
	empty := c.Flush(6)
	if empty.Frames != 0 || empty.PointerFrames != 0 || empty.FieldMin != 0 || empty.FieldMax != 0 {
		t.Errorf("expected reset window, got %+v", empty)
	}
	if empty.WindowStartFrame != 3 {
		t.Errorf("expected next window to start at 3, got %d", empty.WindowStartFrame)
	}
}

func TestCollectorStartAt(t *testing.T) {
	c := NewCollector(1.0, 0.25) // 4 frames
	c.Record(contour.FrameStats{Frame: 1, Segments: 50})
	c.StartAt(5000)

	if c.ShouldFlush(5003) {
		t.Error("expected window to open at the restored frame")
	}
	stats := c.Flush(5004)
	if stats.WindowStartFrame != 5000 {
		t.Errorf("expected window start 5000, got %d", stats.WindowStartFrame)
	}
	if stats.Frames != 0 {
		t.Errorf("expected discarded samples, got %d frames", stats.Frames)
	}
}
