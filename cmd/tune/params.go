// Package main provides CMA-ES tuning of contour field parameters.
package main

import (
	"github.com/pthm-cable/topo/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name string  // Human-readable name
	Path string  // Config path for logging
	Min  float64 // Lower bound
	Max  float64 // Upper bound
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable parameters.
// Amplitude is left out: only its ratio to threshold_step matters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "spatial_frequency", Path: "motion.spatial_frequency", Min: 0.005, Max: 0.08},
			{Name: "domain_warp", Path: "motion.domain_warp", Min: 0.0, Max: 2.0},
			{Name: "time_drift", Path: "motion.time_drift", Min: 0.0002, Max: 0.005},
			{Name: "threshold_step", Path: "contour.threshold_step", Min: 1.0, Max: 20.0},
			{Name: "pointer_strength", Path: "pointer.strength", Min: 0.01, Max: 0.3},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig writes clamped parameter values onto cfg.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)
	cfg.Motion.SpatialFrequency = clamped[0]
	cfg.Motion.DomainWarp = clamped[1]
	cfg.Motion.TimeDrift = clamped[2]
	cfg.Contour.ThresholdStep = clamped[3]
	cfg.Pointer.Strength = clamped[4]
}

// ExtractFromConfig reads the current parameter values from cfg.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Motion.SpatialFrequency,
		cfg.Motion.DomainWarp,
		cfg.Motion.TimeDrift,
		cfg.Contour.ThresholdStep,
		cfg.Pointer.Strength,
	}
}
