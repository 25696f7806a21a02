package main

import (
	"context"
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/topo/canvas"
	"github.com/pthm-cable/topo/config"
	"github.com/pthm-cable/topo/contour"
	"github.com/pthm-cable/topo/session"
	"github.com/pthm-cable/topo/telemetry"
)

// Targets describe the look the tuner steers towards.
type Targets struct {
	Levels  float64 // Mean visible levels per frame
	Density float64 // Mean segments per grid cell per frame
}

// Score is the breakdown of one evaluation.
type Score struct {
	Levels    float64
	Density   float64
	Stability float64
	Quality   float64
}

// Quality component weights.
const (
	qualityWeightLevels    = 0.40
	qualityWeightDensity   = 0.40
	qualityWeightStability = 0.20

	qualityWarmupWindows = 1 // skip the first window while the parallax settles
)

// FitnessEvaluator runs headless sessions and scores their window stats.
type FitnessEvaluator struct {
	params      *ParamVector
	frames      uint64
	seeds       []int64
	baseConfig  *config.Config
	targets     Targets
	statsWindow float64

	mu        sync.Mutex
	lastScore Score
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, frames uint64, seeds []int64, baseCfg *config.Config, targets Targets) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		frames:      frames,
		seeds:       seeds,
		baseConfig:  baseCfg,
		targets:     targets,
		statsWindow: 1.0,
	}
}

// LastScore returns the breakdown from the most recent evaluation.
func (fe *FitnessEvaluator) LastScore() Score {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastScore
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Seeds run in parallel; each owns its session.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)
	if err := cfg.Validate(); err != nil {
		return 0
	}

	scores := make([]Score, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			scores[idx] = fe.score(fe.runSession(cfg, s))
		}(i, seed)
	}
	wg.Wait()

	var avg Score
	for _, s := range scores {
		avg.Levels += s.Levels
		avg.Density += s.Density
		avg.Stability += s.Stability
		avg.Quality += s.Quality
	}
	n := float64(len(scores))
	avg.Levels /= n
	avg.Density /= n
	avg.Stability /= n
	avg.Quality /= n

	fe.mu.Lock()
	fe.lastScore = avg
	fe.mu.Unlock()

	return -avg.Quality
}

// runSession renders fe.frames frames under the default autopilot and
// returns the window stats it produced.
func (fe *FitnessEvaluator) runSession(cfg *config.Config, seed int64) []telemetry.WindowStats {
	w, h := cfg.Screen.Width, cfg.Screen.Height
	surface := canvas.NewSVGSurface(w, h, cfg.Derived.Background)
	s, err := session.New(cfg, surface, w, h, session.Options{
		Seed:           seed,
		StatsWindowSec: fe.statsWindow,
		MaxFrames:      fe.frames,
	})
	if err != nil {
		return nil
	}
	defer s.Close()

	var windows []telemetry.WindowStats
	s.SetStatsCallback(func(ws telemetry.WindowStats) {
		windows = append(windows, ws)
	})

	pilot := session.DefaultAutopilot()
	pilot.Apply(s, 0)
	_ = s.Run(context.Background(), 0, func(fs contour.FrameStats) {
		pilot.Apply(s, fs.Frame)
	})
	return windows
}

// copyConfig returns an independent copy of the base config.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// score turns window stats into a quality in [0, 1].
func (fe *FitnessEvaluator) score(windows []telemetry.WindowStats) Score {
	if len(windows) <= qualityWarmupWindows {
		return Score{}
	}
	valid := windows[qualityWarmupWindows:]

	levels := make([]float64, 0, len(valid))
	density := make([]float64, 0, len(valid))
	segments := make([]float64, 0, len(valid))
	for _, w := range valid {
		cells := float64((w.Cols - 1) * (w.Rows - 1))
		if cells <= 0 {
			continue
		}
		levels = append(levels, w.LevelsMean)
		density = append(density, w.SegmentsMean/cells)
		segments = append(segments, w.SegmentsMean)
	}
	if len(levels) == 0 {
		return Score{}
	}

	var sc Score
	sc.Levels = logGaussian(stat.Mean(levels, nil), fe.targets.Levels, 0.5)
	sc.Density = logGaussian(stat.Mean(density, nil), fe.targets.Density, 0.5)

	// Segment counts should not swing wildly between windows
	if len(segments) >= 2 {
		mean, std := stat.MeanStdDev(segments, nil)
		if mean > 0 {
			cv := std / mean
			sc.Stability = math.Exp(-4 * cv * cv)
		}
	}

	sc.Quality = clamp01(qualityWeightLevels*sc.Levels +
		qualityWeightDensity*sc.Density +
		qualityWeightStability*sc.Stability)
	return sc
}

// logGaussian scores how close v is to target on a log scale; 1 at target.
func logGaussian(v, target, width float64) float64 {
	if v <= 0 || target <= 0 {
		return 0
	}
	e := math.Log(v / target)
	return math.Exp(-e * e / width)
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
