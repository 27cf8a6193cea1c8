package gen

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"terragen/internal/core"
	"terragen/internal/noise"
)

// FromMap populates a config from flag-style key/value pairs. A "preset"
// entry selects the starting point; every other key is applied on top in
// sorted order. Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if name, ok := cfg["preset"]; ok {
		if p, ok := Preset(name); ok {
			c = p
		}
	}
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		if k != "preset" {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	for _, k := range keys {
		_ = c.Set(k, cfg[k])
	}
	return c
}

// Set assigns a single tunable by its parameter key.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	if prefix, field, ok := layerKey(key); ok {
		return setLayer(c.layer(prefix), field, value)
	}

	var err error
	switch key {
	case "w":
		err = parseInt(value, 1, &c.Width)
	case "h":
		err = parseInt(value, 1, &c.Height)
	case "workers":
		err = parseInt(value, 0, &c.Workers)
	case "seed":
		var base uint64
		if err = parseUint(value, &base); err == nil {
			c.Seeds = SeedsFrom(base)
		}
	case "seed_elevation":
		err = parseUint(value, &c.Seeds.Elevation)
	case "seed_moisture":
		err = parseUint(value, &c.Seeds.Moisture)
	case "seed_temperature":
		err = parseUint(value, &c.Seeds.Temperature)
	case "seed_hydrology":
		err = parseUint(value, &c.Seeds.Hydrology)
	case "noise":
		c.Backend = value
	case "ruleset":
		c.RuleSet = value
	case "elev_continental_weight":
		err = parseFloat(value, &c.Elevation.ContinentalWeight)
	case "elev_hills_weight":
		err = parseFloat(value, &c.Elevation.HillsWeight)
	case "elev_detail_weight":
		err = parseFloat(value, &c.Elevation.DetailWeight)
	case "island_inner":
		err = parseFloat(value, &c.Elevation.IslandInner)
	case "island_outer":
		err = parseFloat(value, &c.Elevation.IslandOuter)
	case "island_floor":
		err = parseFloat(value, &c.Elevation.IslandFloor)
	case "moisture_coast_level":
		err = parseFloat(value, &c.Moisture.CoastLevel)
	case "moisture_coast_boost":
		err = parseFloat(value, &c.Moisture.CoastBoost)
	case "temperature_noise_weight":
		err = parseFloat(value, &c.Temperature.NoiseWeight)
	case "temperature_offset":
		err = parseFloat(value, &c.Temperature.Offset)
	case "temperature_latitude":
		err = parseFloat(value, &c.Temperature.LatitudeWeight)
	case "cooling_start":
		err = parseFloat(value, &c.Temperature.CoolingStart)
	case "cooling_end":
		err = parseFloat(value, &c.Temperature.CoolingEnd)
	case "cooling_amount":
		err = parseFloat(value, &c.Temperature.CoolingAmount)
	case "river_sources":
		err = parseInt(value, 0, &c.Hydrology.SourceCount)
	case "river_threshold":
		err = parseFloat(value, &c.Hydrology.RiverThreshold)
	case "river_moisture_influence":
		err = parseFloat(value, &c.Hydrology.MoistureInfluence)
	case "lake_threshold":
		err = parseFloat(value, &c.Hydrology.LakeThreshold)
	case "lake_tolerance":
		err = parseFloat(value, &c.Hydrology.LakeTolerance)
	case "source_min_elevation":
		err = parseFloat(value, &c.Hydrology.MinSourceElevation)
	case "source_min_weight":
		err = parseFloat(value, &c.Hydrology.MinSourceWeight)
	case "river_base_water":
		err = parseFloat(value, &c.Hydrology.BaseWater)
	case "river_moisture_water":
		err = parseFloat(value, &c.Hydrology.MoistureWater)
	case "river_step_gain":
		err = parseFloat(value, &c.Hydrology.StepGain)
	default:
		return fmt.Errorf("gen: unknown parameter %q", key)
	}
	if err != nil {
		return fmt.Errorf("gen: parameter %s=%q: %w", key, value, err)
	}
	return nil
}

// Parameters exposes every tunable of the config, grouped for display.
func (c Config) Parameters() core.ParameterSnapshot {
	e, m, t, hy := c.Elevation, c.Moisture, c.Temperature, c.Hydrology
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", c.Width),
				intParam("h", "Height", c.Height),
				intParam("workers", "Workers", c.Workers),
				stringParam("noise", "Noise backend", c.Backend),
				stringParam("ruleset", "Biome rule set", c.RuleSet),
				uintParam("seed_elevation", "Elevation seed", c.Seeds.Elevation),
				uintParam("seed_moisture", "Moisture seed", c.Seeds.Moisture),
				uintParam("seed_temperature", "Temperature seed", c.Seeds.Temperature),
				uintParam("seed_hydrology", "Hydrology seed", c.Seeds.Hydrology),
			},
		},
		{
			Name: "Elevation",
			Params: append(append(append(
				layerParams("elev_continental", "Continental", e.Continental),
				layerParams("elev_hills", "Hills", e.Hills)...),
				layerParams("elev_detail", "Detail", e.Detail)...),
				floatParam("elev_continental_weight", "Continental weight", e.ContinentalWeight),
				floatParam("elev_hills_weight", "Hills weight", e.HillsWeight),
				floatParam("elev_detail_weight", "Detail weight", e.DetailWeight),
				floatParam("island_inner", "Island mask inner edge", e.IslandInner),
				floatParam("island_outer", "Island mask outer edge", e.IslandOuter),
				floatParam("island_floor", "Island mask floor", e.IslandFloor),
			),
		},
		{
			Name: "Moisture",
			Params: append(layerParams("moisture", "Moisture", m.Layer),
				floatParam("moisture_coast_level", "Coastal boost below", m.CoastLevel),
				floatParam("moisture_coast_boost", "Coastal boost", m.CoastBoost),
			),
		},
		{
			Name: "Temperature",
			Params: append(layerParams("temperature", "Temperature", t.Layer),
				floatParam("temperature_noise_weight", "Noise weight", t.NoiseWeight),
				floatParam("temperature_offset", "Offset", t.Offset),
				floatParam("temperature_latitude", "Latitude weight", t.LatitudeWeight),
				floatParam("cooling_start", "Altitude cooling start", t.CoolingStart),
				floatParam("cooling_end", "Altitude cooling end", t.CoolingEnd),
				floatParam("cooling_amount", "Altitude cooling amount", t.CoolingAmount),
			),
		},
		{
			Name: "Hydrology",
			Params: []core.Parameter{
				intParam("river_sources", "River sources", hy.SourceCount),
				floatParam("river_threshold", "River threshold", hy.RiverThreshold),
				floatParam("river_moisture_influence", "Moisture influence", hy.MoistureInfluence),
				floatParam("lake_threshold", "Lake threshold", hy.LakeThreshold),
				floatParam("lake_tolerance", "Lake flood tolerance", hy.LakeTolerance),
				floatParam("source_min_elevation", "Source min elevation", hy.MinSourceElevation),
				floatParam("source_min_weight", "Source min weight", hy.MinSourceWeight),
				floatParam("river_base_water", "Base water", hy.BaseWater),
				floatParam("river_moisture_water", "Moisture water", hy.MoistureWater),
				floatParam("river_step_gain", "Water gain per step", hy.StepGain),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

var layerPrefixes = []string{"elev_continental", "elev_hills", "elev_detail", "moisture", "temperature"}

func layerKey(key string) (prefix, field string, ok bool) {
	for _, p := range layerPrefixes {
		rest, found := strings.CutPrefix(key, p+"_")
		if !found {
			continue
		}
		switch rest {
		case "freq", "octaves", "lacunarity", "persistence":
			return p, rest, true
		}
	}
	return "", "", false
}

func (c *Config) layer(prefix string) *noise.Layer {
	switch prefix {
	case "elev_continental":
		return &c.Elevation.Continental
	case "elev_hills":
		return &c.Elevation.Hills
	case "elev_detail":
		return &c.Elevation.Detail
	case "moisture":
		return &c.Moisture.Layer
	default:
		return &c.Temperature.Layer
	}
}

func setLayer(l *noise.Layer, field, value string) error {
	var err error
	switch field {
	case "freq":
		err = parseFloat(value, &l.Frequency)
	case "octaves":
		err = parseInt(value, 1, &l.Octaves)
	case "lacunarity":
		err = parseFloat(value, &l.Lacunarity)
	case "persistence":
		err = parseFloat(value, &l.Persistence)
	}
	if err != nil {
		return fmt.Errorf("gen: layer %s=%q: %w", field, value, err)
	}
	return nil
}

func layerParams(prefix, label string, l noise.Layer) []core.Parameter {
	return []core.Parameter{
		floatParam(prefix+"_freq", label+" frequency", l.Frequency),
		intParam(prefix+"_octaves", label+" octaves", l.Octaves),
		floatParam(prefix+"_lacunarity", label+" lacunarity", l.Lacunarity),
		floatParam(prefix+"_persistence", label+" persistence", l.Persistence),
	}
}

func parseFloat(value string, dst *float64) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func parseInt(value string, lo int, dst *int) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	if v < lo {
		return fmt.Errorf("must be at least %d", lo)
	}
	*dst = v
	return nil
}

func parseUint(value string, dst *uint64) error {
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func uintParam(key, label string, value uint64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatUint(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}

// ParameterControls lists the tunables the viewer exposes for interactive
// adjustment. Keys match Parameters and Set.
func ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		intControl("seed_elevation", "Elevation seed", 1, 0),
		intControl("seed_moisture", "Moisture seed", 1, 0),
		intControl("seed_temperature", "Temperature seed", 1, 0),
		intControl("elev_continental_octaves", "Continental octaves", 1, 1),
		intControl("elev_hills_octaves", "Hills octaves", 1, 1),
		floatControl("island_outer", "Island radius", 0.02, 0.3, 0.8),
		floatControl("temperature_latitude", "Latitude weight", 0.1, 0, 1),
		floatControl("moisture_coast_boost", "Coastal moisture", 0.05, 0, 1),
		intControl("river_sources", "River sources", 10, 0),
		floatControl("river_threshold", "River threshold", 0.01, 0.01, 1),
		floatControl("lake_threshold", "Lake threshold", 0.01, 0.01, 1),
	}
}

func intControl(key, label string, step, lo float64) core.ParameterControl {
	return core.ParameterControl{Key: key, Label: label, Type: core.ParamTypeInt, Step: step, Min: lo, HasMin: true}
}

func floatControl(key, label string, step, lo, hi float64) core.ParameterControl {
	return core.ParameterControl{Key: key, Label: label, Type: core.ParamTypeFloat, Step: step, Min: lo, Max: hi, HasMin: true, HasMax: true}
}
