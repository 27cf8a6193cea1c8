package gen

import (
	"fmt"
	"math"

	"terragen/internal/biome"
	"terragen/internal/hydro"
	"terragen/internal/noise"
)

// Seeds holds one independent seed per generated field. Distinct values keep
// the fields decorrelated.
type Seeds struct {
	Elevation   uint64
	Moisture    uint64
	Temperature uint64
	Hydrology   uint64
}

// SeedsFrom derives four consecutive seeds from base.
func SeedsFrom(base uint64) Seeds {
	return Seeds{Elevation: base, Moisture: base + 1, Temperature: base + 2, Hydrology: base + 3}
}

// ElevationParams shapes the elevation field.
type ElevationParams struct {
	Continental noise.Layer
	Hills       noise.Layer
	Detail      noise.Layer

	ContinentalWeight float64
	HillsWeight       float64
	DetailWeight      float64

	// The island mask fades from 1 to 0 between IslandInner and IslandOuter
	// (distance from the grid centre in normalised units). IslandFloor is
	// the share of raw elevation kept where the mask is 0.
	IslandInner float64
	IslandOuter float64
	IslandFloor float64
}

// MoistureParams shapes the moisture field.
type MoistureParams struct {
	Layer noise.Layer
	// Cells below CoastLevel elevation gain CoastBoost moisture.
	CoastLevel float64
	CoastBoost float64
}

// TemperatureParams shapes the temperature field.
type TemperatureParams struct {
	Layer       noise.Layer
	NoiseWeight float64
	Offset      float64
	// LatitudeWeight blends in a gradient that is warmest on the horizontal
	// centre line and coldest at the top and bottom edges.
	LatitudeWeight float64

	CoolingStart  float64
	CoolingEnd    float64
	CoolingAmount float64
}

// Config controls a terrain generation run.
type Config struct {
	Width  int
	Height int

	Seeds   Seeds
	Backend string
	RuleSet string

	Elevation   ElevationParams
	Moisture    MoistureParams
	Temperature TemperatureParams
	Hydrology   hydro.Params

	// Workers bounds the goroutines used to fill the grid. 0 and 1 both run
	// the field stage on the calling goroutine.
	Workers int
}

// DefaultConfig returns the single-continent configuration.
func DefaultConfig() Config {
	return Config{
		Width:   256,
		Height:  256,
		Seeds:   SeedsFrom(1),
		Backend: noise.BackendPerlin,
		RuleSet: biome.Continent.Name,
		Elevation: ElevationParams{
			Continental:       noise.Layer{Frequency: 2.2, Octaves: 3, Lacunarity: 2.0, Persistence: 0.5},
			Hills:             noise.Layer{Frequency: 5.0, Octaves: 4, Lacunarity: 2.0, Persistence: 0.5},
			Detail:            noise.Layer{Frequency: 12.0, Octaves: 3, Lacunarity: 2.0, Persistence: 0.4},
			ContinentalWeight: 0.55,
			HillsWeight:       0.3,
			DetailWeight:      0.15,
			IslandInner:       0.25,
			IslandOuter:       0.48,
			IslandFloor:       0.3,
		},
		Moisture: MoistureParams{
			Layer:      noise.Layer{Frequency: 3.5, Octaves: 4, Lacunarity: 2.1, Persistence: 0.5},
			CoastLevel: 0.45,
			CoastBoost: 0.3,
		},
		Temperature: TemperatureParams{
			Layer:         noise.Layer{Frequency: 2.8, Octaves: 4, Lacunarity: 2.0, Persistence: 0.5},
			NoiseWeight:   0.85,
			Offset:        0.15,
			CoolingStart:  0.5,
			CoolingEnd:    0.85,
			CoolingAmount: 0.35,
		},
		Hydrology: hydro.DefaultParams(),
		Workers:   1,
	}
}

// Validate reports the first configuration problem that would make
// generation fail or produce non-finite values.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("gen: invalid dimensions %dx%d", c.Width, c.Height)
	}
	if c.Workers < 0 {
		return fmt.Errorf("gen: workers must not be negative, got %d", c.Workers)
	}
	if _, err := noise.NewSampler(c.Backend, 0); err != nil {
		return fmt.Errorf("gen: %w", err)
	}
	if _, ok := biome.Lookup(c.RuleSet); !ok {
		return fmt.Errorf("gen: unknown rule set %q", c.RuleSet)
	}

	layers := []struct {
		name  string
		layer noise.Layer
	}{
		{"continental elevation", c.Elevation.Continental},
		{"hills elevation", c.Elevation.Hills},
		{"detail elevation", c.Elevation.Detail},
		{"moisture", c.Moisture.Layer},
		{"temperature", c.Temperature.Layer},
	}
	for _, l := range layers {
		if err := l.layer.Validate(); err != nil {
			return fmt.Errorf("gen: %s layer: %w", l.name, err)
		}
	}

	e := c.Elevation
	if !finite(e.ContinentalWeight, e.HillsWeight, e.DetailWeight, e.IslandFloor) {
		return fmt.Errorf("gen: elevation weights must be finite")
	}
	if !(e.IslandInner < e.IslandOuter) {
		return fmt.Errorf("gen: island mask inner edge %v must be below outer edge %v", e.IslandInner, e.IslandOuter)
	}
	if !finite(c.Moisture.CoastLevel, c.Moisture.CoastBoost) {
		return fmt.Errorf("gen: moisture shaping must be finite")
	}
	t := c.Temperature
	if !finite(t.NoiseWeight, t.Offset, t.LatitudeWeight, t.CoolingAmount) {
		return fmt.Errorf("gen: temperature shaping must be finite")
	}
	if t.LatitudeWeight < 0 || t.LatitudeWeight > 1 {
		return fmt.Errorf("gen: latitude weight must be within [0, 1], got %v", t.LatitudeWeight)
	}
	if !(t.CoolingStart < t.CoolingEnd) {
		return fmt.Errorf("gen: cooling start %v must be below cooling end %v", t.CoolingStart, t.CoolingEnd)
	}
	if err := c.Hydrology.Validate(); err != nil {
		return fmt.Errorf("gen: %w", err)
	}
	return nil
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
