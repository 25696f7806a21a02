package telemetry

import (
	"math"

	"github.com/pthm-cable/topo/contour"
)

// Collector accumulates per-frame stats within time windows and produces
// WindowStats.
type Collector struct {
	windowDurationSec    float64
	windowDurationFrames uint64
	dt                   float64

	windowStartFrame uint64

	// Per-frame samples for the current window
	levels      []float64
	majorLevels []float64
	segments    []float64
	lags        []float64

	levelsMax     int
	fieldMin      float64
	fieldMax      float64
	peakMax       float64
	pointerFrames int
	last          contour.FrameStats
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in seconds of frames
// dt: seconds per frame (used for frame-to-time conversion)
func NewCollector(windowDurationSec, dt float64) *Collector {
	framesPerWindow := uint64(1)
	if dt > 0 {
		framesPerWindow = uint64(windowDurationSec / dt)
	}
	if framesPerWindow < 1 {
		framesPerWindow = 1
	}

	c := &Collector{
		windowDurationSec:    windowDurationSec,
		windowDurationFrames: framesPerWindow,
		dt:                   dt,
	}
	c.reset()
	return c
}

// Record adds one frame to the current window.
func (c *Collector) Record(fs contour.FrameStats) {
	c.levels = append(c.levels, float64(fs.Levels))
	c.majorLevels = append(c.majorLevels, float64(fs.MajorLevels))
	c.segments = append(c.segments, float64(fs.Segments))
	c.lags = append(c.lags, math.Abs(fs.Target-fs.Offset))

	if fs.Levels > c.levelsMax {
		c.levelsMax = fs.Levels
	}
	if fs.Cols > 0 {
		c.fieldMin = math.Min(c.fieldMin, fs.Min)
		c.fieldMax = math.Max(c.fieldMax, fs.Max)
	}
	c.peakMax = math.Max(c.peakMax, fs.PerturbPeak)
	if fs.PointerActive {
		c.pointerFrames++
	}
	c.last = fs
}

// ShouldFlush returns true if enough frames have passed to flush the window.
func (c *Collector) ShouldFlush(currentFrame uint64) bool {
	return currentFrame-c.windowStartFrame >= c.windowDurationFrames
}

// Flush produces a WindowStats and resets for the next window.
func (c *Collector) Flush(currentFrame uint64) WindowStats {
	segMean, segStd, segP10, segP50, segP90 := ComputeDistribution(c.segments)
	levelsMean, _, _, _, _ := ComputeDistribution(c.levels)
	majorMean, _, _, _, _ := ComputeDistribution(c.majorLevels)
	lagMean, _, _, _, _ := ComputeDistribution(c.lags)

	fieldMin, fieldMax := c.fieldMin, c.fieldMax
	if math.IsInf(fieldMin, 0) || math.IsInf(fieldMax, 0) {
		fieldMin, fieldMax = 0, 0
	}

	stats := WindowStats{
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   currentFrame,
		TimeSec:          float64(currentFrame) * c.dt,
		Frames:           len(c.segments),

		Cols: c.last.Cols,
		Rows: c.last.Rows,

		LevelsMean:      levelsMean,
		LevelsMax:       c.levelsMax,
		MajorLevelsMean: majorMean,

		SegmentsMean: segMean,
		SegmentsStd:  segStd,
		SegmentsP10:  segP10,
		SegmentsP50:  segP50,
		SegmentsP90:  segP90,

		FieldMin: fieldMin,
		FieldMax: fieldMax,

		OffsetEnd:     c.last.Offset,
		TargetEnd:     c.last.Target,
		OffsetLagMean: lagMean,

		PerturbPeakMax: c.peakMax,
		PointerFrames:  c.pointerFrames,
	}

	c.windowStartFrame = currentFrame
	c.reset()

	return stats
}

func (c *Collector) reset() {
	c.levels = c.levels[:0]
	c.majorLevels = c.majorLevels[:0]
	c.segments = c.segments[:0]
	c.lags = c.lags[:0]
	c.levelsMax = 0
	c.fieldMin = math.Inf(1)
	c.fieldMax = math.Inf(-1)
	c.peakMax = 0
	c.pointerFrames = 0
}

// StartAt discards the current window and opens a new one at frame.
func (c *Collector) StartAt(frame uint64) {
	c.windowStartFrame = frame
	c.reset()
}

// WindowDurationFrames returns the number of frames per window.
func (c *Collector) WindowDurationFrames() uint64 {
	return c.windowDurationFrames
}
