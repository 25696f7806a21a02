package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated frame statistics for a time window.
type WindowStats struct {
	WindowStartFrame uint64  `csv:"-"`
	WindowEndFrame   uint64  `csv:"window_end"`
	TimeSec          float64 `csv:"time"`
	Frames           int     `csv:"frames"`

	// Grid at window end
	Cols int `csv:"cols"`
	Rows int `csv:"rows"`

	// Level counts
	LevelsMean      float64 `csv:"levels_mean"`
	LevelsMax       int     `csv:"levels_max"`
	MajorLevelsMean float64 `csv:"major_levels_mean"`

	// Segment distribution
	SegmentsMean float64 `csv:"segments_mean"`
	SegmentsStd  float64 `csv:"segments_std"`
	SegmentsP10  float64 `csv:"segments_p10"`
	SegmentsP50  float64 `csv:"segments_p50"`
	SegmentsP90  float64 `csv:"segments_p90"`

	// Field range over the window
	FieldMin float64 `csv:"field_min"`
	FieldMax float64 `csv:"field_max"`

	// Parallax
	OffsetEnd     float64 `csv:"offset_end"`
	TargetEnd     float64 `csv:"target_end"`
	OffsetLagMean float64 `csv:"offset_lag_mean"` // Mean |target - offset|

	// Perturbation
	PerturbPeakMax float64 `csv:"perturb_peak_max"`
	PointerFrames  int     `csv:"pointer_frames"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeDistribution calculates mean, population std, and percentiles.
func ComputeDistribution(values []float64) (mean, std, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0, 0
	}

	mean, std = stat.PopMeanStdDev(values, nil)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("window_start", s.WindowStartFrame),
		slog.Uint64("window_end", s.WindowEndFrame),
		slog.Float64("time", s.TimeSec),
		slog.Int("frames", s.Frames),
		slog.Int("cols", s.Cols),
		slog.Int("rows", s.Rows),
		slog.Float64("levels_mean", s.LevelsMean),
		slog.Int("levels_max", s.LevelsMax),
		slog.Float64("major_levels_mean", s.MajorLevelsMean),
		slog.Float64("segments_mean", s.SegmentsMean),
		slog.Float64("segments_std", s.SegmentsStd),
		slog.Float64("segments_p10", s.SegmentsP10),
		slog.Float64("segments_p50", s.SegmentsP50),
		slog.Float64("segments_p90", s.SegmentsP90),
		slog.Float64("field_min", s.FieldMin),
		slog.Float64("field_max", s.FieldMax),
		slog.Float64("offset_end", s.OffsetEnd),
		slog.Float64("target_end", s.TargetEnd),
		slog.Float64("offset_lag_mean", s.OffsetLagMean),
		slog.Float64("perturb_peak_max", s.PerturbPeakMax),
		slog.Int("pointer_frames", s.PointerFrames),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndFrame,
		"time", s.TimeSec,
		"frames", s.Frames,
		"grid", [2]int{s.Cols, s.Rows},
		"levels_mean", s.LevelsMean,
		"segments_mean", s.SegmentsMean,
		"segments_p90", s.SegmentsP90,
		"field_min", s.FieldMin,
		"field_max", s.FieldMax,
		"offset_end", s.OffsetEnd,
		"offset_lag_mean", s.OffsetLagMean,
		"perturb_peak_max", s.PerturbPeakMax,
		"pointer_frames", s.PointerFrames,
	)
}
