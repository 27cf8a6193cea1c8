package hydro

import (
	"fmt"
	"math"
)

// Params holds the thresholds and volumes of the hydrology pass.
type Params struct {
	// SourceCount caps how many river sources are simulated.
	SourceCount int
	// RiverThreshold is the accumulation a land cell needs to carry a river.
	RiverThreshold float64
	// MoistureInfluence blends source weight between elevation (0) and moisture (1).
	MoistureInfluence float64
	// LakeThreshold is the accumulation a sink needs to become a lake.
	LakeThreshold float64
	// LakeTolerance is how much higher than the sink a neighbour may be and
	// still flood into its lake.
	LakeTolerance float64

	MinSourceElevation float64
	MinSourceWeight    float64

	// Water released at a source is BaseWater + moisture*MoistureWater and
	// grows by StepGain per cell travelled.
	BaseWater     float64
	MoistureWater float64
	StepGain      float64
}

// DefaultParams returns the standard hydrology tuning.
func DefaultParams() Params {
	return Params{
		SourceCount:        50,
		RiverThreshold:     0.15,
		MoistureInfluence:  0.5,
		LakeThreshold:      0.05,
		LakeTolerance:      0.02,
		MinSourceElevation: 0.47,
		MinSourceWeight:    0.5,
		BaseWater:          0.02,
		MoistureWater:      0.03,
		StepGain:           0.001,
	}
}

// Validate rejects parameters that would divide by zero or make no sense.
func (p Params) Validate() error {
	if p.SourceCount < 0 {
		return fmt.Errorf("hydro: source count must not be negative, got %d", p.SourceCount)
	}
	if !(p.RiverThreshold > 0) || math.IsInf(p.RiverThreshold, 0) {
		return fmt.Errorf("hydro: river threshold must be positive, got %v", p.RiverThreshold)
	}
	if !(p.LakeThreshold > 0) || math.IsInf(p.LakeThreshold, 0) {
		return fmt.Errorf("hydro: lake threshold must be positive, got %v", p.LakeThreshold)
	}
	if p.MoistureInfluence < 0 || p.MoistureInfluence > 1 || math.IsNaN(p.MoistureInfluence) {
		return fmt.Errorf("hydro: moisture influence must be within [0, 1], got %v", p.MoistureInfluence)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"lake tolerance", p.LakeTolerance},
		{"base water", p.BaseWater},
		{"moisture water", p.MoistureWater},
		{"step gain", p.StepGain},
		{"min source elevation", p.MinSourceElevation},
		{"min source weight", p.MinSourceWeight},
	} {
		if f.v < 0 || math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("hydro: %s must be a non-negative number, got %v", f.name, f.v)
		}
	}
	return nil
}
